package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starevents/starevents-api/internal/domain"
)

type bookingFixture struct {
	store     *store
	hub       *fakeHub
	svc       *BookingService
	organizer domain.User
	customer  domain.User
}

func newBookingFixture() bookingFixture {
	st := newStore()
	hub := &fakeHub{}
	svc := NewBookingService(fakeBookings{st}, fakeEvents{st}, fakeUsers{st}, fakePromotions{st}, hub, nil)
	svc.now = fixedNow

	return bookingFixture{
		store:     st,
		hub:       hub,
		svc:       svc,
		organizer: st.addUser(domain.RoleOrganizer),
		customer:  st.addUser(domain.RoleCustomer),
	}
}

func bookingRequest(eventID uint, quantity int) domain.BookingRequest {
	return domain.BookingRequest{
		EventID:       eventID,
		Quantity:      quantity,
		PaymentMethod: domain.PaymentCreditCard,
	}
}

func TestBookingService_PlaceBooking(t *testing.T) {
	f := newBookingFixture()
	event := f.store.addEvent(approvedEvent(f.organizer.ID, 100, 100))

	booking, err := f.svc.PlaceBooking(context.Background(), f.customer.Actor(), bookingRequest(event.ID, 3))
	require.NoError(t, err)

	assert.Equal(t, domain.BookingConfirmed, booking.Status)
	assert.Equal(t, 3, booking.Quantity)
	assert.True(t, price("150.00").Equal(booking.TotalAmount), booking.TotalAmount.String())
	assert.Regexp(t, `^BK-[0-9A-F]{10}$`, booking.Reference)

	require.Len(t, booking.Tickets, 3)
	numbers := map[string]bool{}
	payloads := map[string]bool{}
	for _, ticket := range booking.Tickets {
		assert.Equal(t, domain.TicketValid, ticket.Status)
		assert.Equal(t, f.customer.FullName(), ticket.AttendeeName)
		assert.Equal(t, f.customer.Email, ticket.AttendeeEmail)
		assert.Contains(t, ticket.QRPayload, booking.Reference)
		numbers[ticket.Number] = true
		payloads[ticket.QRPayload] = true
	}
	assert.Len(t, numbers, 3)
	assert.Len(t, payloads, 3)

	require.NotNil(t, booking.Payment)
	assert.Equal(t, domain.PaymentCompleted, booking.Payment.Status)
	assert.Equal(t, domain.PaymentCreditCard, booking.Payment.Method)
	assert.True(t, booking.TotalAmount.Equal(booking.Payment.Amount))

	assert.Equal(t, 97, f.store.event(event.ID).AvailableTickets)
	assert.Equal(t, domain.Availability{
		EventID:          event.ID,
		AvailableTickets: 97,
		TotalTickets:     100,
		Status:           domain.EventApproved,
	}, f.hub.last())
}

func TestBookingService_PlaceBookingNamedAttendees(t *testing.T) {
	f := newBookingFixture()
	event := f.store.addEvent(approvedEvent(f.organizer.ID, 10, 10))

	req := bookingRequest(event.ID, 2)
	req.Attendees = []domain.Attendee{
		{Name: "Ada Lovelace", Email: "ada@example.com"},
		{Name: "Alan Turing", Email: "alan@example.com"},
	}

	booking, err := f.svc.PlaceBooking(context.Background(), f.customer.Actor(), req)
	require.NoError(t, err)
	require.Len(t, booking.Tickets, 2)
	assert.Equal(t, "Ada Lovelace", booking.Tickets[0].AttendeeName)
	assert.Equal(t, "alan@example.com", booking.Tickets[1].AttendeeEmail)
}

func TestBookingService_PlaceBookingRejects(t *testing.T) {
	f := newBookingFixture()
	open := f.store.addEvent(approvedEvent(f.organizer.ID, 5, 2))

	pending := approvedEvent(f.organizer.ID, 5, 5)
	pending.Status = domain.EventPending
	pendingEvent := f.store.addEvent(pending)

	past := approvedEvent(f.organizer.ID, 5, 5)
	past.Date = testNow.AddDate(0, 0, -1)
	pastEvent := f.store.addEvent(past)

	tests := []struct {
		name    string
		actor   domain.Actor
		req     domain.BookingRequest
		wantErr error
	}{
		{
			name:    "more than available",
			actor:   f.customer.Actor(),
			req:     bookingRequest(open.ID, 3),
			wantErr: domain.ErrInsufficientInventory,
		},
		{
			name:    "pending event",
			actor:   f.customer.Actor(),
			req:     bookingRequest(pendingEvent.ID, 1),
			wantErr: domain.ErrEventNotBookable,
		},
		{
			name:    "event already started",
			actor:   f.customer.Actor(),
			req:     bookingRequest(pastEvent.ID, 1),
			wantErr: domain.ErrEventNotBookable,
		},
		{
			name:    "zero quantity",
			actor:   f.customer.Actor(),
			req:     bookingRequest(open.ID, 0),
			wantErr: domain.ErrValidation,
		},
		{
			name:    "above per booking limit",
			actor:   f.customer.Actor(),
			req:     bookingRequest(open.ID, domain.MaxTicketsPerBooking+1),
			wantErr: domain.ErrValidation,
		},
		{
			name:  "attendee count mismatch",
			actor: f.customer.Actor(),
			req: domain.BookingRequest{
				EventID:       open.ID,
				Quantity:      2,
				Attendees:     []domain.Attendee{{Name: "Solo", Email: "solo@example.com"}},
				PaymentMethod: domain.PaymentCash,
			},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unknown payment method",
			actor:   f.customer.Actor(),
			req:     domain.BookingRequest{EventID: open.ID, Quantity: 1, PaymentMethod: "Barter"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "organizers do not book",
			actor:   f.organizer.Actor(),
			req:     bookingRequest(open.ID, 1),
			wantErr: domain.ErrNotAuthorized,
		},
		{
			name:    "unknown event",
			actor:   f.customer.Actor(),
			req:     bookingRequest(9999, 1),
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.PlaceBooking(context.Background(), tt.actor, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, 2, f.store.event(open.ID).AvailableTickets)
	assert.Empty(t, f.store.bookings)
}

func TestBookingService_PlaceBookingNeverOversells(t *testing.T) {
	f := newBookingFixture()
	event := f.store.addEvent(approvedEvent(f.organizer.ID, 10, 10))

	const attempts = 25
	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		confirmed    int
		insufficient int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.PlaceBooking(context.Background(), f.customer.Actor(), bookingRequest(event.ID, 1))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				confirmed++
			case errors.Is(err, domain.ErrInsufficientInventory):
				insufficient++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, confirmed)
	assert.Equal(t, attempts-10, insufficient)
	assert.Equal(t, 0, f.store.event(event.ID).AvailableTickets)
	assert.Len(t, f.store.bookings, 10)
}

func TestBookingService_FailedInsertLeavesInventory(t *testing.T) {
	f := newBookingFixture()
	event := f.store.addEvent(approvedEvent(f.organizer.ID, 10, 10))
	f.store.failInsert = true

	_, err := f.svc.PlaceBooking(context.Background(), f.customer.Actor(), bookingRequest(event.ID, 4))
	require.Error(t, err)

	assert.Equal(t, 10, f.store.event(event.ID).AvailableTickets)
	assert.Empty(t, f.store.bookings)
}

func TestBookingService_PlaceBookingWithPromotion(t *testing.T) {
	f := newBookingFixture()
	event := f.store.addEvent(approvedEvent(f.organizer.ID, 10, 10))
	f.store.addPromotion(domain.Promotion{
		Code:          "SPRING10",
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: price("10"),
		StartsAt:      testNow.AddDate(0, 0, -1),
		EndsAt:        testNow.AddDate(0, 1, 0),
		UsageLimit:    1,
		IsActive:      true,
	})

	req := bookingRequest(event.ID, 2)
	req.PromotionCode = " spring10 "

	booking, err := f.svc.PlaceBooking(context.Background(), f.customer.Actor(), req)
	require.NoError(t, err)
	assert.True(t, price("10.00").Equal(booking.Discount), booking.Discount.String())
	assert.True(t, price("90.00").Equal(booking.TotalAmount), booking.TotalAmount.String())
	assert.Equal(t, "SPRING10", booking.PromotionCode)
	assert.Equal(t, 1, f.store.promotion("SPRING10").UsedCount)

	_, err = f.svc.PlaceBooking(context.Background(), f.customer.Actor(), req)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 8, f.store.event(event.ID).AvailableTickets)

	req.PromotionCode = "NOPE"
	_, err = f.svc.PlaceBooking(context.Background(), f.customer.Actor(), req)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_CancelBooking(t *testing.T) {
	f := newBookingFixture()
	event := f.store.addEvent(approvedEvent(f.organizer.ID, 10, 10))
	other := f.store.addUser(domain.RoleCustomer)
	admin := f.store.addUser(domain.RoleAdmin)

	booking, err := f.svc.PlaceBooking(context.Background(), f.customer.Actor(), bookingRequest(event.ID, 4))
	require.NoError(t, err)
	require.Equal(t, 6, f.store.event(event.ID).AvailableTickets)

	_, err = f.svc.CancelBooking(context.Background(), other.Actor(), booking.Reference)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	cancelled, err := f.svc.CancelBooking(context.Background(), f.customer.Actor(), booking.Reference)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
	for _, ticket := range cancelled.Tickets {
		assert.Equal(t, domain.TicketCancelled, ticket.Status)
	}
	require.NotNil(t, cancelled.Payment)
	assert.Equal(t, domain.PaymentRefunded, cancelled.Payment.Status)
	require.NotNil(t, cancelled.Payment.RefundAmount)
	assert.True(t, cancelled.Payment.Amount.Equal(*cancelled.Payment.RefundAmount))
	assert.Equal(t, 10, f.store.event(event.ID).AvailableTickets)
	assert.Equal(t, 10, f.hub.last().AvailableTickets)

	_, err = f.svc.CancelBooking(context.Background(), admin.Actor(), booking.Reference)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 10, f.store.event(event.ID).AvailableTickets)
}

func TestBookingService_GetBooking(t *testing.T) {
	f := newBookingFixture()
	event := f.store.addEvent(approvedEvent(f.organizer.ID, 10, 10))
	otherOrganizer := f.store.addUser(domain.RoleOrganizer)
	admin := f.store.addUser(domain.RoleAdmin)

	booking, err := f.svc.PlaceBooking(context.Background(), f.customer.Actor(), bookingRequest(event.ID, 1))
	require.NoError(t, err)

	for _, actor := range []domain.Actor{f.customer.Actor(), f.organizer.Actor(), admin.Actor()} {
		got, err := f.svc.GetBooking(context.Background(), actor, booking.Reference)
		require.NoError(t, err)
		assert.Equal(t, booking.Reference, got.Reference)
	}

	_, err = f.svc.GetBooking(context.Background(), otherOrganizer.Actor(), booking.Reference)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	_, err = f.svc.GetBooking(context.Background(), admin.Actor(), "BK-MISSING")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_ListMyTickets(t *testing.T) {
	f := newBookingFixture()
	event := f.store.addEvent(approvedEvent(f.organizer.ID, 10, 10))

	kept, err := f.svc.PlaceBooking(context.Background(), f.customer.Actor(), bookingRequest(event.ID, 2))
	require.NoError(t, err)
	dropped, err := f.svc.PlaceBooking(context.Background(), f.customer.Actor(), bookingRequest(event.ID, 1))
	require.NoError(t, err)
	_, err = f.svc.CancelBooking(context.Background(), f.customer.Actor(), dropped.Reference)
	require.NoError(t, err)

	tickets, err := f.svc.ListMyTickets(context.Background(), f.customer.Actor())
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	for _, ticket := range tickets {
		assert.Equal(t, kept.Reference, ticket.BookingReference)
		assert.Equal(t, event.ID, ticket.Event.ID)
	}

	bookings, err := f.svc.ListMyBookings(context.Background(), f.customer.Actor())
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestBookingService_ScanTicket(t *testing.T) {
	f := newBookingFixture()
	event := f.store.addEvent(approvedEvent(f.organizer.ID, 10, 10))
	otherOrganizer := f.store.addUser(domain.RoleOrganizer)

	booking, err := f.svc.PlaceBooking(context.Background(), f.customer.Actor(), bookingRequest(event.ID, 1))
	require.NoError(t, err)
	number := booking.Tickets[0].Number

	_, err = f.svc.ScanTicket(context.Background(), f.customer.Actor(), number)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	_, err = f.svc.ScanTicket(context.Background(), otherOrganizer.Actor(), number)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	scanned, err := f.svc.ScanTicket(context.Background(), f.organizer.Actor(), number)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketUsed, scanned.Status)
	require.NotNil(t, scanned.ScannedAt)
	assert.Equal(t, testNow, *scanned.ScannedAt)

	_, err = f.svc.ScanTicket(context.Background(), f.organizer.Actor(), number)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = f.svc.ScanTicket(context.Background(), f.organizer.Actor(), "TK-UNKNOWN")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingOutcome(t *testing.T) {
	assert.Equal(t, "confirmed", bookingOutcome(nil))
	assert.Equal(t, "insufficient_inventory", bookingOutcome(domain.ErrInsufficientInventory))
	assert.Equal(t, "not_bookable", bookingOutcome(domain.ErrEventNotBookable))
	assert.Equal(t, "invalid", bookingOutcome(domain.NewValidationError("quantity", "bad")))
	assert.Equal(t, "denied", bookingOutcome(domain.ErrNotAuthorized))
	assert.Equal(t, "error", bookingOutcome(errors.New("boom")))
}
