package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_CheckBookable(t *testing.T) {
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	e := Event{ID: 1, Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Time: "19:30", Status: EventApproved}

	assert.NoError(t, e.CheckBookable(now))
	assert.ErrorIs(t, e.CheckBookable(now.Add(2*time.Hour)), ErrEventNotBookable)

	e.Status = EventPending
	assert.ErrorIs(t, e.CheckBookable(now), ErrEventNotBookable)
}

func TestEventDetails_Apply(t *testing.T) {
	e := Event{
		Title:            "Old",
		TotalTickets:     100,
		AvailableTickets: 70,
		Status:           EventApproved,
	}
	d := EventDetails{
		Title:        "New",
		Date:         time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Time:         "20:00",
		TicketPrice:  decimal.NewFromInt(30),
		TotalTickets: 120,
		VenueID:      1,
		CategoryID:   1,
	}

	require.NoError(t, d.Apply(&e))
	assert.Equal(t, "New", e.Title)
	assert.Equal(t, 90, e.AvailableTickets)
	assert.Equal(t, EventPending, e.Status)

	d.TotalTickets = 10
	assert.ErrorIs(t, d.Apply(&e), ErrCapacityViolation)
	assert.Equal(t, "New", e.Title)
}

func TestEventDetails_Validate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	d := EventDetails{
		Date:        time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Time:        "10:00",
		TicketPrice: decimal.NewFromInt(-1),
	}

	var verr *ValidationError
	require.ErrorAs(t, d.Validate(now), &verr)
	for _, f := range []string{"title", "date", "ticket_price", "total_tickets", "venue_id", "category_id"} {
		assert.Contains(t, verr.Fields, f)
	}
}
