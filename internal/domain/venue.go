package domain

import (
	"fmt"
	"time"
)

type Venue struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Capacity     int       `json:"capacity"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Facilities   string    `json:"facilities,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedBy    uint      `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

type EventCategory struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

func (v Venue) Validate() error {
	verr := &ValidationError{Fields: map[string]string{}}
	if v.Name == "" {
		verr.Fields["name"] = "is required"
	}
	if v.Address == "" {
		verr.Fields["address"] = "is required"
	}
	if v.City == "" {
		verr.Fields["city"] = "is required"
	}
	if v.Capacity < 1 {
		verr.Fields["capacity"] = "must be at least 1"
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// CheckCapacity fails when the venue cannot seat totalTickets.
func (v Venue) CheckCapacity(totalTickets int) error {
	if totalTickets > v.Capacity {
		return NewValidationError("total_tickets", fmt.Sprintf("venue capacity is %d", v.Capacity))
	}
	return nil
}

func (c EventCategory) Validate() error {
	if c.Name == "" {
		return NewValidationError("name", "is required")
	}
	return nil
}
