package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/starevents/starevents-api/internal/domain"
	"github.com/starevents/starevents-api/internal/repository/dao"
)

var (
	ErrBookingNotFound   = dao.ErrBookingNotFound
	ErrTicketNotFound    = dao.ErrTicketNotFound
	ErrInvalidTransition = dao.ErrInvalidTransition
)

type BookingDAO interface {
	Place(ctx context.Context, booking dao.Booking) (dao.Booking, error)
	Cancel(ctx context.Context, reference string, at time.Time) (dao.Booking, error)
	FindByReference(ctx context.Context, reference string) (dao.Booking, error)
	ListByUser(ctx context.Context, userID uint) ([]dao.Booking, error)
	ListUpcomingTickets(ctx context.Context, userID uint, from time.Time) ([]dao.Ticket, error)
	FindTicketByNumber(ctx context.Context, number string) (dao.Ticket, error)
	MarkTicketUsed(ctx context.Context, id uint, at time.Time) error
}

type BookingRepository struct {
	dao BookingDAO
}

func NewBookingRepository(dao BookingDAO) *BookingRepository {
	return &BookingRepository{
		dao: dao,
	}
}

// Place reserves inventory and stores the booking atomically. promotionID, when
// set, has one redemption counted in the same transaction.
func (r *BookingRepository) Place(ctx context.Context, booking domain.Booking, promotionID *uint) (domain.Booking, error) {
	row := bookingToDAO(booking)
	row.PromotionID = promotionID

	placed, err := r.dao.Place(ctx, row)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.Place -> %w", err)
	}

	return bookingToDomain(placed), nil
}

func (r *BookingRepository) Cancel(ctx context.Context, reference string, at time.Time) (domain.Booking, error) {
	cancelled, err := r.dao.Cancel(ctx, reference, at)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.Cancel -> %w", err)
	}

	return bookingToDomain(cancelled), nil
}

func (r *BookingRepository) FindByReference(ctx context.Context, reference string) (domain.Booking, error) {
	found, err := r.dao.FindByReference(ctx, reference)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.FindByReference -> %w", err)
	}

	return bookingToDomain(found), nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	found, err := r.dao.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByUser -> %w", err)
	}

	bookings := make([]domain.Booking, len(found))
	for i, b := range found {
		bookings[i] = bookingToDomain(b)
	}

	return bookings, nil
}

func (r *BookingRepository) ListUpcomingTickets(ctx context.Context, userID uint, from time.Time) ([]domain.TicketDetails, error) {
	found, err := r.dao.ListUpcomingTickets(ctx, userID, from)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListUpcomingTickets -> %w", err)
	}

	tickets := make([]domain.TicketDetails, len(found))
	for i, t := range found {
		tickets[i] = ticketDetailsToDomain(t)
	}

	return tickets, nil
}

func (r *BookingRepository) FindTicketByNumber(ctx context.Context, number string) (domain.TicketDetails, error) {
	found, err := r.dao.FindTicketByNumber(ctx, number)
	if err != nil {
		return domain.TicketDetails{}, fmt.Errorf("r.dao.FindTicketByNumber -> %w", err)
	}

	return ticketDetailsToDomain(found), nil
}

func (r *BookingRepository) MarkTicketUsed(ctx context.Context, id uint, at time.Time) error {
	if err := r.dao.MarkTicketUsed(ctx, id, at); err != nil {
		return fmt.Errorf("r.dao.MarkTicketUsed -> %w", err)
	}

	return nil
}

func bookingToDAO(b domain.Booking) dao.Booking {
	row := dao.Booking{
		ID:            b.ID,
		Reference:     b.Reference,
		UserID:        b.UserID,
		EventID:       b.EventID,
		Quantity:      b.Quantity,
		UnitPrice:     b.UnitPrice,
		Discount:      b.Discount,
		TotalAmount:   b.TotalAmount,
		PromotionCode: b.PromotionCode,
		BookingDate:   b.BookingDate,
		Status:        string(b.Status),
		CancelledAt:   b.CancelledAt,
	}
	row.Tickets = make([]dao.Ticket, len(b.Tickets))
	for i, t := range b.Tickets {
		row.Tickets[i] = dao.Ticket{
			Number:        t.Number,
			AttendeeName:  t.AttendeeName,
			AttendeeEmail: t.AttendeeEmail,
			QRPayload:     t.QRPayload,
			Status:        string(t.Status),
			ScannedAt:     t.ScannedAt,
		}
	}
	if b.Payment != nil {
		row.Payment = &dao.Payment{
			Reference:    b.Payment.Reference,
			Amount:       b.Payment.Amount,
			Method:       string(b.Payment.Method),
			Status:       string(b.Payment.Status),
			PaymentDate:  b.Payment.PaymentDate,
			RefundAmount: b.Payment.RefundAmount,
		}
	}

	return row
}

func bookingToDomain(b dao.Booking) domain.Booking {
	booking := domain.Booking{
		ID:            b.ID,
		Reference:     b.Reference,
		UserID:        b.UserID,
		EventID:       b.EventID,
		Quantity:      b.Quantity,
		UnitPrice:     b.UnitPrice,
		Discount:      b.Discount,
		TotalAmount:   b.TotalAmount,
		PromotionCode: b.PromotionCode,
		BookingDate:   b.BookingDate,
		Status:        domain.BookingStatus(b.Status),
		CancelledAt:   b.CancelledAt,
	}
	booking.Tickets = make([]domain.Ticket, len(b.Tickets))
	for i, t := range b.Tickets {
		booking.Tickets[i] = ticketToDomain(t)
	}
	if b.Payment != nil {
		booking.Payment = &domain.Payment{
			ID:           b.Payment.ID,
			Reference:    b.Payment.Reference,
			BookingID:    b.Payment.BookingID,
			Amount:       b.Payment.Amount,
			Method:       domain.PaymentMethod(b.Payment.Method),
			Status:       domain.PaymentStatus(b.Payment.Status),
			PaymentDate:  b.Payment.PaymentDate,
			RefundAmount: b.Payment.RefundAmount,
		}
	}
	if b.Event.ID != 0 {
		event := eventToDomain(b.Event)
		booking.Event = &event
	}

	return booking
}

func ticketToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:            t.ID,
		Number:        t.Number,
		BookingID:     t.BookingID,
		AttendeeName:  t.AttendeeName,
		AttendeeEmail: t.AttendeeEmail,
		QRPayload:     t.QRPayload,
		Status:        domain.TicketStatus(t.Status),
		ScannedAt:     t.ScannedAt,
	}
}

func ticketDetailsToDomain(t dao.Ticket) domain.TicketDetails {
	details := domain.TicketDetails{Ticket: ticketToDomain(t)}
	if t.Booking != nil {
		details.BookingReference = t.Booking.Reference
		details.BookingStatus = domain.BookingStatus(t.Booking.Status)
		details.Event = eventToDomain(t.Booking.Event)
	}

	return details
}
