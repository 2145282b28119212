package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/starevents/starevents-api/internal/domain"
)

var (
	ErrBookingNotFound   = domain.ErrBookingNotFound
	ErrTicketNotFound    = domain.ErrTicketNotFound
	ErrInvalidTransition = domain.ErrInvalidTransition
)

type Booking struct {
	ID            uint            `gorm:"primaryKey"`
	Reference     string          `gorm:"unique;not null"`
	UserID        uint            `gorm:"not null;index"`
	User          User            `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	EventID       uint            `gorm:"not null;index"`
	Event         Event           `gorm:"foreignKey:EventID;constraint:OnDelete:RESTRICT"`
	Quantity      int             `gorm:"not null;check:chk_bookings_quantity,quantity >= 1"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Discount      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(10,2);not null;check:chk_bookings_total,total_amount >= 0"`
	PromotionID   *uint           `gorm:"index"`
	PromotionCode string
	BookingDate   time.Time `gorm:"not null;index"`
	Status        string    `gorm:"not null;index"`
	CancelledAt   *time.Time
	Tickets       []Ticket `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	Payment       *Payment `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Ticket struct {
	ID            uint     `gorm:"primaryKey"`
	Number        string   `gorm:"unique;not null"`
	BookingID     uint     `gorm:"not null;index"`
	Booking       *Booking `gorm:"foreignKey:BookingID"`
	AttendeeName  string   `gorm:"not null"`
	AttendeeEmail string   `gorm:"not null"`
	QRPayload     string   `gorm:"column:qr_payload;unique;not null"`
	Status        string   `gorm:"not null;index"`
	ScannedAt     *time.Time
	CreatedAt     time.Time
}

type Payment struct {
	ID           uint             `gorm:"primaryKey"`
	Reference    string           `gorm:"unique;not null"`
	BookingID    uint             `gorm:"unique;not null"`
	Amount       decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	Method       string           `gorm:"not null"`
	Status       string           `gorm:"not null;index"`
	PaymentDate  time.Time        `gorm:"not null"`
	RefundAmount *decimal.Decimal `gorm:"type:numeric(10,2)"`
	CreatedAt    time.Time
}

type BookingDAO struct {
	db *gorm.DB
}

func NewBookingDAO(db *gorm.DB) *BookingDAO {
	return &BookingDAO{
		db: db,
	}
}

// Place reserves the tickets and stores the booking with its tickets and payment
// in one transaction. The reserve is a single conditional update so concurrent
// bookings can never oversell; any later failure rolls it back.
func (d *BookingDAO) Place(ctx context.Context, booking Booking) (Booking, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := reserve(tx, booking.EventID, booking.Quantity); err != nil {
			return err
		}

		if booking.PromotionID != nil {
			if err := usePromotion(tx, *booking.PromotionID); err != nil {
				return err
			}
		}

		if err := tx.Omit("User", "Event").Create(&booking).Error; err != nil {
			return fmt.Errorf("tx.Create -> %w", err)
		}

		return nil
	})
	if err != nil {
		return Booking{}, err
	}

	return d.FindByReference(ctx, booking.Reference)
}

func reserve(tx *gorm.DB, eventID uint, quantity int) error {
	result := tx.Model(&Event{}).
		Where("id = ? AND status = ? AND available_tickets >= ?", eventID, string(domain.EventApproved), quantity).
		Updates(map[string]interface{}{
			"available_tickets": gorm.Expr("available_tickets - ?", quantity),
		})
	if result.Error != nil {
		return fmt.Errorf("reserve -> %w", result.Error)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var event Event
	if err := tx.Select("id", "status", "available_tickets").First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	if event.Status != string(domain.EventApproved) {
		return fmt.Errorf("event %d is %s: %w", eventID, event.Status, ErrEventNotBookable)
	}

	return fmt.Errorf("event %d: requested %d, available %d: %w", eventID, quantity, event.AvailableTickets, ErrInsufficientInventory)
}

func release(tx *gorm.DB, eventID uint, quantity int) error {
	return tx.Model(&Event{}).Where("id = ?", eventID).Updates(map[string]interface{}{
		"available_tickets": gorm.Expr("LEAST(total_tickets, available_tickets + ?)", quantity),
	}).Error
}

// cancelBooking flips a confirmed booking to cancelled, gives its tickets back
// to the event and refunds the payment. Rows are kept.
func cancelBooking(tx *gorm.DB, booking Booking, at time.Time) error {
	result := tx.Model(&Booking{}).
		Where("id = ? AND status = ?", booking.ID, string(domain.BookingConfirmed)).
		Updates(map[string]interface{}{
			"status":       string(domain.BookingCancelled),
			"cancelled_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("booking %s: %w", booking.Reference, ErrInvalidTransition)
	}

	if err := release(tx, booking.EventID, booking.Quantity); err != nil {
		return fmt.Errorf("release -> %w", err)
	}

	err := tx.Model(&Ticket{}).
		Where("booking_id = ? AND status = ?", booking.ID, string(domain.TicketValid)).
		Update("status", string(domain.TicketCancelled)).Error
	if err != nil {
		return err
	}

	return tx.Model(&Payment{}).
		Where("booking_id = ? AND status = ?", booking.ID, string(domain.PaymentCompleted)).
		Updates(map[string]interface{}{
			"status":        string(domain.PaymentRefunded),
			"refund_amount": gorm.Expr("amount"),
		}).Error
}

// Cancel cancels the booking with the given reference.
func (d *BookingDAO) Cancel(ctx context.Context, reference string, at time.Time) (Booking, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking Booking
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, "reference = ?", reference).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		return cancelBooking(tx, booking, at)
	})
	if err != nil {
		return Booking{}, err
	}

	return d.FindByReference(ctx, reference)
}

func (d *BookingDAO) FindByReference(ctx context.Context, reference string) (Booking, error) {
	var booking Booking

	err := d.db.WithContext(ctx).
		Preload("Tickets", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Payment").
		Preload("Event").Preload("Event.Venue").
		First(&booking, "reference = ?", reference).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Booking{}, ErrBookingNotFound
		}
		return Booking{}, err
	}

	return booking, nil
}

// ListByUser returns the booking history of a user, newest first.
func (d *BookingDAO) ListByUser(ctx context.Context, userID uint) ([]Booking, error) {
	var bookings []Booking

	err := d.db.WithContext(ctx).
		Preload("Tickets", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Payment").
		Preload("Event").Preload("Event.Venue").
		Where("user_id = ?", userID).
		Order("booking_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// ListUpcomingTickets returns the valid tickets of a user for events on or after from.
func (d *BookingDAO) ListUpcomingTickets(ctx context.Context, userID uint, from time.Time) ([]Ticket, error) {
	var tickets []Ticket

	err := d.db.WithContext(ctx).
		Joins("JOIN bookings ON bookings.id = tickets.booking_id").
		Joins("JOIN events ON events.id = bookings.event_id").
		Where("bookings.user_id = ? AND bookings.status = ? AND tickets.status = ? AND events.date >= ?",
			userID, string(domain.BookingConfirmed), string(domain.TicketValid), from).
		Preload("Booking").Preload("Booking.Event").Preload("Booking.Event.Venue").
		Order("events.date, events.time, tickets.id").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}

	return tickets, nil
}

func (d *BookingDAO) FindTicketByNumber(ctx context.Context, number string) (Ticket, error) {
	var ticket Ticket

	err := d.db.WithContext(ctx).
		Preload("Booking").Preload("Booking.Event").
		First(&ticket, "number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Ticket{}, ErrTicketNotFound
		}
		return Ticket{}, err
	}

	return ticket, nil
}

// MarkTicketUsed flips a valid ticket to used.
func (d *BookingDAO) MarkTicketUsed(ctx context.Context, id uint, at time.Time) error {
	result := d.db.WithContext(ctx).Model(&Ticket{}).
		Where("id = ? AND status = ?", id, string(domain.TicketValid)).
		Updates(map[string]interface{}{
			"status":     string(domain.TicketUsed),
			"scanned_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket %d is not valid: %w", id, ErrInvalidTransition)
	}

	return nil
}
