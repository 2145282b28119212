package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/starevents/starevents-api/internal/cache"
	"github.com/starevents/starevents-api/internal/domain"
	"github.com/starevents/starevents-api/internal/metrics"
	"github.com/starevents/starevents-api/internal/repository"
	"github.com/starevents/starevents-api/internal/telemetry"
)

var (
	ErrBookingNotFound = repository.ErrBookingNotFound
	ErrTicketNotFound  = repository.ErrTicketNotFound
)

type BookingRepository interface {
	Place(ctx context.Context, booking domain.Booking, promotionID *uint) (domain.Booking, error)
	Cancel(ctx context.Context, reference string, at time.Time) (domain.Booking, error)
	FindByReference(ctx context.Context, reference string) (domain.Booking, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Booking, error)
	ListUpcomingTickets(ctx context.Context, userID uint, from time.Time) ([]domain.TicketDetails, error)
	FindTicketByNumber(ctx context.Context, number string) (domain.TicketDetails, error)
	MarkTicketUsed(ctx context.Context, id uint, at time.Time) error
}

type EventReader interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type UserReader interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type PromotionReader interface {
	FindByCode(ctx context.Context, code string) (domain.Promotion, error)
}

type BookingService struct {
	repo       BookingRepository
	events     EventReader
	users      UserReader
	promotions PromotionReader
	hub        AvailabilityPublisher
	cache      *cache.Cache
	now        func() time.Time
}

func NewBookingService(repo BookingRepository, events EventReader, users UserReader, promotions PromotionReader, hub AvailabilityPublisher, c *cache.Cache) *BookingService {
	return &BookingService{
		repo:       repo,
		events:     events,
		users:      users,
		promotions: promotions,
		hub:        publisherOrNop(hub),
		cache:      c,
		now:        time.Now,
	}
}

// PlaceBooking reserves req.Quantity tickets of an event and records the
// confirmed booking with its tickets and payment. Nothing is stored when any
// step fails, and inventory is left as it was.
func (s *BookingService) PlaceBooking(ctx context.Context, actor domain.Actor, req domain.BookingRequest) (booking domain.Booking, err error) {
	start := s.now()
	state := domain.AttemptDraft

	ctx, span := telemetry.StartSpan(ctx, "BookingService.PlaceBooking",
		attribute.Int64("event.id", int64(req.EventID)),
		attribute.Int("booking.quantity", req.Quantity),
	)
	defer func() {
		if err != nil {
			state, _ = state.Next(domain.AttemptFailed)
		}
		span.SetAttributes(attribute.String("booking.state", string(state)))
		telemetry.EndSpan(span, err)
		metrics.ObserveBooking(bookingOutcome(err), time.Since(start))
	}()

	if err = actor.Require(domain.CapBook); err != nil {
		return domain.Booking{}, err
	}
	if err = req.Validate(); err != nil {
		return domain.Booking{}, err
	}
	if req.PaymentMethod, err = domain.ParsePaymentMethod(string(req.PaymentMethod)); err != nil {
		return domain.Booking{}, err
	}

	event, err := s.events.FindByID(ctx, req.EventID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.events.FindByID -> %w", err)
	}
	if err = event.CheckBookable(start); err != nil {
		return domain.Booking{}, err
	}
	trial := event
	if err = domain.Reserve(&trial, req.Quantity); err != nil {
		return domain.Booking{}, err
	}

	booker, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}

	subtotal := event.TicketPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))
	discount, promotionID, err := s.discount(ctx, req.PromotionCode, subtotal, start)
	if err != nil {
		return domain.Booking{}, err
	}
	req.PromotionCode = strings.ToUpper(strings.TrimSpace(req.PromotionCode))

	draft := domain.NewBooking(actor.UserID, booker, event, req, discount, start)

	if state, err = state.Next(domain.AttemptReserved); err != nil {
		return domain.Booking{}, err
	}
	booking, err = s.repo.Place(ctx, draft, promotionID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.Place -> %w", err)
	}
	if state, err = state.Next(domain.AttemptConfirmed); err != nil {
		return domain.Booking{}, err
	}

	metrics.TicketsReserved(booking.Quantity)
	zap.L().Info("booking confirmed",
		zap.String("booking_ref", booking.Reference),
		zap.Uint("event_id", booking.EventID),
		zap.Uint("user_id", actor.UserID),
		zap.Int("quantity", booking.Quantity),
		zap.String("total", booking.TotalAmount.StringFixed(2)),
	)
	s.changed(ctx, booking)

	return booking, nil
}

func (s *BookingService) discount(ctx context.Context, code string, subtotal decimal.Decimal, now time.Time) (decimal.Decimal, *uint, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return decimal.Zero, nil, nil
	}

	promotion, err := s.promotions.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return decimal.Zero, nil, domain.NewValidationError("promotion_code", "unknown promotion code")
		}
		return decimal.Zero, nil, fmt.Errorf("s.promotions.FindByCode -> %w", err)
	}

	d, err := promotion.Discount(subtotal, now)
	if err != nil {
		return decimal.Zero, nil, err
	}

	return d, &promotion.ID, nil
}

// CancelBooking cancels a confirmed booking, returns its tickets to the event
// and refunds the payment. Only the booker or an admin may cancel.
func (s *BookingService) CancelBooking(ctx context.Context, actor domain.Actor, reference string) (cancelled domain.Booking, err error) {
	ctx, span := telemetry.StartSpan(ctx, "BookingService.CancelBooking", attribute.String("booking.reference", reference))
	defer func() { telemetry.EndSpan(span, err) }()

	booking, err := s.repo.FindByReference(ctx, reference)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.FindByReference -> %w", err)
	}
	if actor.UserID != booking.UserID && !actor.Can(domain.CapCancelAnyBooking) {
		return domain.Booking{}, fmt.Errorf("booking %s: %w", reference, domain.ErrNotAuthorized)
	}
	if _, err = booking.Status.TransitionTo(domain.BookingCancelled); err != nil {
		return domain.Booking{}, err
	}

	cancelled, err = s.repo.Cancel(ctx, reference, s.now())
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.Cancel -> %w", err)
	}

	metrics.TicketsReleased(cancelled.Quantity)
	zap.L().Info("booking cancelled",
		zap.String("booking_ref", reference),
		zap.Uint("event_id", cancelled.EventID),
		zap.Uint("user_id", actor.UserID),
		zap.Int("quantity", cancelled.Quantity),
	)
	s.changed(ctx, cancelled)

	return cancelled, nil
}

// GetBooking returns a booking to its booker, the organizer of its event or an admin.
func (s *BookingService) GetBooking(ctx context.Context, actor domain.Actor, reference string) (domain.Booking, error) {
	booking, err := s.repo.FindByReference(ctx, reference)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.FindByReference -> %w", err)
	}

	var organizerID uint
	if booking.Event != nil {
		organizerID = booking.Event.OrganizerID
	}
	if !booking.CanView(actor, organizerID) {
		return domain.Booking{}, fmt.Errorf("booking %s: %w", reference, domain.ErrNotAuthorized)
	}

	return booking, nil
}

func (s *BookingService) ListMyBookings(ctx context.Context, actor domain.Actor) ([]domain.Booking, error) {
	bookings, err := s.repo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByUser -> %w", err)
	}

	return bookings, nil
}

// ListMyTickets returns the valid tickets of the caller for events from today on.
func (s *BookingService) ListMyTickets(ctx context.Context, actor domain.Actor) ([]domain.TicketDetails, error) {
	tickets, err := s.repo.ListUpcomingTickets(ctx, actor.UserID, today(s.now()))
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListUpcomingTickets -> %w", err)
	}

	return tickets, nil
}

// ScanTicket admits the holder of a valid ticket. A ticket can be scanned once.
func (s *BookingService) ScanTicket(ctx context.Context, actor domain.Actor, number string) (domain.TicketDetails, error) {
	if err := actor.Require(domain.CapScanTicket); err != nil {
		return domain.TicketDetails{}, err
	}

	ticket, err := s.repo.FindTicketByNumber(ctx, number)
	if err != nil {
		return domain.TicketDetails{}, fmt.Errorf("s.repo.FindTicketByNumber -> %w", err)
	}
	if !actor.CanManageEvent(ticket.Event.OrganizerID) {
		return domain.TicketDetails{}, fmt.Errorf("ticket %s: %w", number, domain.ErrNotAuthorized)
	}

	next, err := ticket.Status.TransitionTo(domain.TicketUsed)
	if err != nil {
		return domain.TicketDetails{}, err
	}

	now := s.now()
	if err = s.repo.MarkTicketUsed(ctx, ticket.ID, now); err != nil {
		return domain.TicketDetails{}, fmt.Errorf("s.repo.MarkTicketUsed -> %w", err)
	}
	ticket.Status = next
	ticket.ScannedAt = &now

	zap.L().Info("ticket scanned", zap.String("ticket", number), zap.Uint("event_id", ticket.Event.ID))

	return ticket, nil
}

func (s *BookingService) changed(ctx context.Context, booking domain.Booking) {
	if booking.Event != nil {
		s.hub.Publish(booking.Event.Availability())
	}
	s.cache.Invalidate(ctx, cache.NamespaceEvents, cache.NamespaceReports)
}

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeConfirmed
	case errors.Is(err, domain.ErrInsufficientInventory):
		return metrics.OutcomeInsufficient
	case errors.Is(err, domain.ErrEventNotBookable):
		return metrics.OutcomeNotBookable
	case errors.Is(err, domain.ErrValidation):
		return metrics.OutcomeInvalid
	case errors.Is(err, domain.ErrNotAuthorized):
		return metrics.OutcomeDenied
	}
	return metrics.OutcomeError
}
