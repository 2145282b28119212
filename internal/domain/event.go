package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Event struct {
	ID               uint            `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Date             time.Time       `json:"date"`
	Time             string          `json:"time"`
	TicketPrice      decimal.Decimal `json:"ticket_price"`
	TotalTickets     int             `json:"total_tickets"`
	AvailableTickets int             `json:"available_tickets"`
	Status           EventStatus     `json:"status"`
	OrganizerID      uint            `json:"organizer_id"`
	VenueID          uint            `json:"venue_id"`
	CategoryID       uint            `json:"category_id"`
	ImagePath        string          `json:"image_path,omitempty"`
	Version          int             `json:"version"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	Organizer *User          `json:"organizer,omitempty"`
	Venue     *Venue         `json:"venue,omitempty"`
	Category  *EventCategory `json:"category,omitempty"`
}

// StartsAt combines the calendar date and the time of day in the date's location.
func (e Event) StartsAt() time.Time {
	t, err := time.Parse(TimeLayout, e.Time)
	if err != nil {
		return e.Date
	}
	y, m, d := e.Date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, e.Date.Location())
}

func (e Event) Sold() int {
	return e.TotalTickets - e.AvailableTickets
}

// CheckBookable fails with ErrEventNotBookable unless the event is approved and still ahead.
func (e Event) CheckBookable(now time.Time) error {
	if e.Status != EventApproved {
		return fmt.Errorf("event %d is %s: %w", e.ID, e.Status, ErrEventNotBookable)
	}
	if !e.StartsAt().After(now) {
		return fmt.Errorf("event %d already started: %w", e.ID, ErrEventNotBookable)
	}
	return nil
}

// EventDetails is the set of core fields an organizer supplies on create and edit.
// Editing any of them on an approved event sends it back to moderation.
type EventDetails struct {
	Title        string
	Description  string
	Date         time.Time
	Time         string
	TicketPrice  decimal.Decimal
	TotalTickets int
	VenueID      uint
	CategoryID   uint
}

func (d EventDetails) StartsAt() time.Time {
	return Event{Date: d.Date, Time: d.Time}.StartsAt()
}

func (d EventDetails) Validate(now time.Time) error {
	verr := &ValidationError{Fields: map[string]string{}}
	if d.Title == "" {
		verr.Fields["title"] = "is required"
	}
	if _, err := time.Parse(TimeLayout, d.Time); err != nil {
		verr.Fields["time"] = "must be HH:MM"
	} else if !d.StartsAt().After(now) {
		verr.Fields["date"] = "event date and time must be in the future"
	}
	if d.TicketPrice.IsNegative() {
		verr.Fields["ticket_price"] = "must not be negative"
	}
	if d.TotalTickets < 1 {
		verr.Fields["total_tickets"] = "must be at least 1"
	}
	if d.VenueID == 0 {
		verr.Fields["venue_id"] = "is required"
	}
	if d.CategoryID == 0 {
		verr.Fields["category_id"] = "is required"
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// Apply copies the details onto e and recalculates inventory. An approved
// event goes back to Pending; sold tickets are kept.
func (d EventDetails) Apply(e *Event) error {
	if err := ApplyTotalChange(e, d.TotalTickets); err != nil {
		return err
	}
	e.Title = d.Title
	e.Description = d.Description
	e.Date = d.Date
	e.Time = d.Time
	e.TicketPrice = d.TicketPrice
	e.VenueID = d.VenueID
	e.CategoryID = d.CategoryID
	if e.Status == EventApproved {
		e.Status = EventPending
	}
	return nil
}

type EventSort string

const (
	SortDateAsc   EventSort = "date"
	SortDateDesc  EventSort = "date_desc"
	SortNameDesc  EventSort = "name_desc"
	SortPriceAsc  EventSort = "price"
	SortPriceDesc EventSort = "price_desc"
)

type EventFilter struct {
	Search      string
	Category    string
	City        string
	Sort        EventSort
	Status      EventStatus
	OrganizerID uint
	// PublicOnly restricts to approved, upcoming events with tickets left.
	PublicOnly bool
	From       time.Time
}

// EventRow is one line of the admin moderation list.
type EventRow struct {
	Event
	OrganizerName string `json:"organizer_name"`
	Location      string `json:"location"`
	TicketsSold   int    `json:"tickets_sold"`
}

// Availability is what live subscribers receive after every inventory or status change.
type Availability struct {
	EventID          uint        `json:"event_id"`
	AvailableTickets int         `json:"available_tickets"`
	TotalTickets     int         `json:"total_tickets"`
	Status           EventStatus `json:"status"`
}

func (e Event) Availability() Availability {
	return Availability{
		EventID:          e.ID,
		AvailableTickets: e.AvailableTickets,
		TotalTickets:     e.TotalTickets,
		Status:           e.Status,
	}
}
