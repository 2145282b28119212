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
	ErrEventNotFound         = domain.ErrEventNotFound
	ErrEventNotBookable      = domain.ErrEventNotBookable
	ErrInsufficientInventory = domain.ErrInsufficientInventory
	ErrCapacityViolation     = domain.ErrCapacityViolation
)

type Event struct {
	ID               uint            `gorm:"primaryKey"`
	Title            string          `gorm:"not null"`
	Description      string          `gorm:"type:text"`
	Date             time.Time       `gorm:"type:date;not null;index"`
	Time             string          `gorm:"type:varchar(5);not null"`
	TicketPrice      decimal.Decimal `gorm:"type:numeric(10,2);not null;check:chk_events_price,ticket_price >= 0"`
	TotalTickets     int             `gorm:"not null;check:chk_events_total,total_tickets >= 1"`
	AvailableTickets int             `gorm:"not null;check:chk_events_available,available_tickets >= 0 AND available_tickets <= total_tickets"`
	Status           string          `gorm:"not null;index;default:Pending"`
	OrganizerID      uint            `gorm:"not null;index"`
	Organizer        User            `gorm:"foreignKey:OrganizerID;constraint:OnDelete:RESTRICT"`
	VenueID          uint            `gorm:"not null;index"`
	Venue            Venue           `gorm:"foreignKey:VenueID;constraint:OnDelete:RESTRICT"`
	CategoryID       uint            `gorm:"not null;index"`
	Category         EventCategory   `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	ImagePath        string
	Version          int `gorm:"not null;default:1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EventQuery narrows the event listings. Zero values mean "any".
type EventQuery struct {
	Search      string
	Category    string
	City        string
	Status      string
	OrganizerID uint
	Bookable    bool
	From        time.Time
	OrderBy     string
}

// EventRow is an event joined with the data of the admin moderation list.
type EventRow struct {
	Event
	TicketsSold int
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	if err := d.db.WithContext(ctx).Omit(clause.Associations).Create(&event).Error; err != nil {
		if isForeignKeyViolation(err) {
			return Event{}, fmt.Errorf("venue, category or organizer missing: %w", domain.ErrNotFound)
		}
		return Event{}, err
	}

	return d.FindByID(ctx, event.ID)
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	err := d.db.WithContext(ctx).
		Preload("Organizer").Preload("Venue").Preload("Category").
		First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}
		return Event{}, err
	}

	return event, nil
}

func (d *EventDAO) FindByIDs(ctx context.Context, ids []uint) ([]Event, error) {
	var events []Event
	if len(ids) == 0 {
		return events, nil
	}

	if err := d.db.WithContext(ctx).Where("id IN ?", ids).Order("date, id").Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (d *EventDAO) List(ctx context.Context, q EventQuery) ([]Event, error) {
	var events []Event

	tx := d.db.WithContext(ctx).Model(&Event{}).
		Joins("JOIN venues ON venues.id = events.venue_id").
		Joins("JOIN event_categories ON event_categories.id = events.category_id").
		Preload("Organizer").Preload("Venue").Preload("Category")

	if q.Search != "" {
		like := containsPattern(q.Search)
		tx = tx.Where("events.title ILIKE ? OR events.description ILIKE ?", like, like)
	}
	if q.Category != "" {
		tx = tx.Where("event_categories.name = ?", q.Category)
	}
	if q.City != "" {
		tx = tx.Where("venues.city ILIKE ?", containsPattern(q.City))
	}
	if q.Status != "" {
		tx = tx.Where("events.status = ?", q.Status)
	}
	if q.OrganizerID != 0 {
		tx = tx.Where("events.organizer_id = ?", q.OrganizerID)
	}
	if q.Bookable {
		tx = tx.Where("events.available_tickets > 0")
	}
	if !q.From.IsZero() {
		tx = tx.Where("events.date >= ?", q.From)
	}

	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = "events.date ASC, events.time ASC"
	}
	if err := tx.Order(orderBy).Order("events.id").Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

// ListForModeration returns events pending first, then approved, then the rest, by date.
func (d *EventDAO) ListForModeration(ctx context.Context, search, status string) ([]EventRow, error) {
	var events []Event

	tx := d.db.WithContext(ctx).Model(&Event{}).Preload("Organizer").Preload("Venue")
	if search != "" {
		like := containsPattern(search)
		tx = tx.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	if status != "" {
		tx = tx.Where("status = ?", status)
	}

	err := tx.Order(clause.OrderBy{Expression: clause.Expr{
		SQL:  "CASE status WHEN ? THEN 0 WHEN ? THEN 1 ELSE 2 END, date, id",
		Vars: []interface{}{string(domain.EventPending), string(domain.EventApproved)},
	}}).Find(&events).Error
	if err != nil {
		return nil, err
	}

	rows := make([]EventRow, len(events))
	for i, e := range events {
		rows[i] = EventRow{Event: e, TicketsSold: e.TotalTickets - e.AvailableTickets}
	}

	return rows, nil
}

// Update locks the event row, lets mutate change it and writes it back with a
// bumped version. mutate runs inside the transaction; an error aborts it.
func (d *EventDAO) Update(ctx context.Context, id uint, mutate func(*Event) error) (Event, error) {
	var updated Event

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event Event
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		if err = mutate(&event); err != nil {
			return err
		}
		event.Version++

		err = tx.Model(&event).Omit(clause.Associations).
			Select("title", "description", "date", "time", "ticket_price", "total_tickets",
				"available_tickets", "status", "venue_id", "category_id", "image_path", "version", "updated_at").
			Updates(&event).Error
		if err != nil {
			if isCheckViolation(err) {
				return ErrCapacityViolation
			}
			return err
		}

		updated = event
		return nil
	})
	if err != nil {
		return Event{}, err
	}

	return d.FindByID(ctx, updated.ID)
}

// Cancel locks the event, runs check, marks it Cancelled and cancels every
// confirmed booking of it in the same transaction. It returns the number of
// bookings cancelled.
func (d *EventDAO) Cancel(ctx context.Context, id uint, check func(*Event) error, at time.Time) (Event, int, error) {
	var cancelled int

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event Event
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		if err = check(&event); err != nil {
			return err
		}

		err = tx.Model(&Event{}).Where("id = ?", id).Updates(map[string]interface{}{
			"status":     string(domain.EventCancelled),
			"version":    gorm.Expr("version + 1"),
			"updated_at": at,
		}).Error
		if err != nil {
			return err
		}

		var bookings []Booking
		err = tx.Where("event_id = ? AND status = ?", id, string(domain.BookingConfirmed)).Find(&bookings).Error
		if err != nil {
			return err
		}
		for _, b := range bookings {
			if err = cancelBooking(tx, b, at); err != nil {
				return fmt.Errorf("cancelBooking %s -> %w", b.Reference, err)
			}
		}
		cancelled = len(bookings)

		return nil
	})
	if err != nil {
		return Event{}, 0, err
	}

	event, err := d.FindByID(ctx, id)
	return event, cancelled, err
}
