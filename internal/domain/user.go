package domain

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleCustomer  Role = "Customer"
	RoleOrganizer Role = "Organizer"
	RoleAdmin     Role = "Admin"
)

// Capability is an action gated by role.
type Capability string

const (
	CapBrowse           Capability = "browse"
	CapBook             Capability = "book"
	CapCreateEvent      Capability = "create_event"
	CapEditOwnEvent     Capability = "edit_own_event"
	CapEditAnyEvent     Capability = "edit_any_event"
	CapModerate         Capability = "moderate"
	CapScanTicket       Capability = "scan_ticket"
	CapViewOwnReports   Capability = "view_own_reports"
	CapViewAllReports   Capability = "view_all_reports"
	CapManageUsers      Capability = "manage_users"
	CapManageCatalogue  Capability = "manage_catalogue"
	CapViewAnyBooking   Capability = "view_any_booking"
	CapCancelAnyBooking Capability = "cancel_any_booking"
)

var capabilities = map[Role]map[Capability]bool{
	RoleCustomer: {
		CapBrowse: true,
		CapBook:   true,
	},
	RoleOrganizer: {
		CapBrowse:         true,
		CapCreateEvent:    true,
		CapEditOwnEvent:   true,
		CapScanTicket:     true,
		CapViewOwnReports: true,
	},
	RoleAdmin: {
		CapBrowse:           true,
		CapCreateEvent:      true,
		CapEditOwnEvent:     true,
		CapEditAnyEvent:     true,
		CapModerate:         true,
		CapScanTicket:       true,
		CapViewOwnReports:   true,
		CapViewAllReports:   true,
		CapManageUsers:      true,
		CapManageCatalogue:  true,
		CapViewAnyBooking:   true,
		CapCancelAnyBooking: true,
	},
}

var Roles = []Role{RoleCustomer, RoleOrganizer, RoleAdmin}

func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", NewValidationError("role", fmt.Sprintf("unknown role %q", s))
}

func (r Role) Can(c Capability) bool {
	return capabilities[r][c]
}

// Actor is the authenticated caller of a request, passed explicitly to every service call.
type Actor struct {
	UserID uint
	Role   Role
}

func (a Actor) Can(c Capability) bool {
	return a.UserID != 0 && a.Role.Can(c)
}

// Require fails with ErrNotAuthorized unless the actor holds c.
func (a Actor) Require(c Capability) error {
	if !a.Can(c) {
		return fmt.Errorf("%s may not %s: %w", a.Role, c, ErrNotAuthorized)
	}
	return nil
}

// CanManageEvent reports whether the actor may edit or cancel an event owned by organizerID.
func (a Actor) CanManageEvent(organizerID uint) bool {
	if a.Can(CapEditAnyEvent) {
		return true
	}
	return a.Can(CapEditOwnEvent) && a.UserID == organizerID
}

type User struct {
	ID         uint       `json:"id"`
	Email      string     `json:"email"`
	Password   string     `json:"-"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	City       string     `json:"city,omitempty"`
	Role       Role       `json:"role"`
	DateJoined time.Time  `json:"date_joined"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	IsActive   bool       `json:"is_active"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u User) Actor() Actor {
	return Actor{UserID: u.ID, Role: u.Role}
}

type UserFilter struct {
	Search string
	Role   Role
}

// ProfileUpdate is what users may change about themselves.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	City      string
}

func (p ProfileUpdate) Apply(u *User) {
	u.FirstName = p.FirstName
	u.LastName = p.LastName
	u.City = p.City
}
