package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/starevents/starevents-api/internal/domain"
	"github.com/starevents/starevents-api/internal/repository/dao"
)

var (
	ErrEventNotFound         = dao.ErrEventNotFound
	ErrEventNotBookable      = dao.ErrEventNotBookable
	ErrInsufficientInventory = dao.ErrInsufficientInventory
	ErrCapacityViolation     = dao.ErrCapacityViolation
)

var eventOrder = map[domain.EventSort]string{
	domain.SortDateAsc:   "events.date ASC, events.time ASC",
	domain.SortDateDesc:  "events.date DESC, events.time DESC",
	domain.SortNameDesc:  "events.title DESC",
	domain.SortPriceAsc:  "events.ticket_price ASC",
	domain.SortPriceDesc: "events.ticket_price DESC",
}

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindByIDs(ctx context.Context, ids []uint) ([]dao.Event, error)
	List(ctx context.Context, q dao.EventQuery) ([]dao.Event, error)
	ListForModeration(ctx context.Context, search, status string) ([]dao.EventRow, error)
	Update(ctx context.Context, id uint, mutate func(*dao.Event) error) (dao.Event, error)
	Cancel(ctx context.Context, id uint, check func(*dao.Event) error, at time.Time) (dao.Event, int, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, eventToDAO(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return eventToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return eventToDomain(found), nil
}

func (r *EventRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Event, error) {
	found, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByIDs -> %w", err)
	}

	return eventsToDomain(found), nil
}

func (r *EventRepository) List(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	q := dao.EventQuery{
		Search:      filter.Search,
		Category:    filter.Category,
		City:        filter.City,
		Status:      string(filter.Status),
		OrganizerID: filter.OrganizerID,
		From:        filter.From,
		OrderBy:     eventOrder[filter.Sort],
	}
	if filter.PublicOnly {
		q.Status = string(domain.EventApproved)
		q.Bookable = true
	}

	found, err := r.dao.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return eventsToDomain(found), nil
}

func (r *EventRepository) ListForModeration(ctx context.Context, search string, status domain.EventStatus) ([]domain.EventRow, error) {
	found, err := r.dao.ListForModeration(ctx, search, string(status))
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListForModeration -> %w", err)
	}

	rows := make([]domain.EventRow, len(found))
	for i, row := range found {
		e := eventToDomain(row.Event)
		rows[i] = domain.EventRow{Event: e, TicketsSold: row.TicketsSold}
		if e.Organizer != nil {
			rows[i].OrganizerName = e.Organizer.FullName()
		}
		if e.Venue != nil {
			rows[i].Location = e.Venue.Name + ", " + e.Venue.City
		}
	}

	return rows, nil
}

// Update runs mutate on the locked event. Only the fields an edit may change are written back.
func (r *EventRepository) Update(ctx context.Context, id uint, mutate func(*domain.Event) error) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, id, func(row *dao.Event) error {
		e := eventToDomain(*row)
		if err := mutate(&e); err != nil {
			return err
		}
		applyEventToDAO(row, e)
		return nil
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return eventToDomain(updated), nil
}

// Cancel cancels the event and its confirmed bookings once check accepts the locked event.
func (r *EventRepository) Cancel(ctx context.Context, id uint, check func(domain.Event) error, at time.Time) (domain.Event, int, error) {
	cancelled, n, err := r.dao.Cancel(ctx, id, func(row *dao.Event) error {
		return check(eventToDomain(*row))
	}, at)
	if err != nil {
		return domain.Event{}, 0, fmt.Errorf("r.dao.Cancel -> %w", err)
	}

	return eventToDomain(cancelled), n, nil
}

func applyEventToDAO(row *dao.Event, e domain.Event) {
	row.Title = e.Title
	row.Description = e.Description
	row.Date = e.Date
	row.Time = e.Time
	row.TicketPrice = e.TicketPrice
	row.TotalTickets = e.TotalTickets
	row.AvailableTickets = e.AvailableTickets
	row.Status = string(e.Status)
	row.VenueID = e.VenueID
	row.CategoryID = e.CategoryID
	row.ImagePath = e.ImagePath
}

func eventToDAO(e domain.Event) dao.Event {
	row := dao.Event{
		ID:          e.ID,
		OrganizerID: e.OrganizerID,
		Version:     e.Version,
	}
	applyEventToDAO(&row, e)

	return row
}

func eventToDomain(e dao.Event) domain.Event {
	event := domain.Event{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		Date:             e.Date,
		Time:             e.Time,
		TicketPrice:      e.TicketPrice,
		TotalTickets:     e.TotalTickets,
		AvailableTickets: e.AvailableTickets,
		Status:           domain.EventStatus(e.Status),
		OrganizerID:      e.OrganizerID,
		VenueID:          e.VenueID,
		CategoryID:       e.CategoryID,
		ImagePath:        e.ImagePath,
		Version:          e.Version,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if e.Organizer.ID != 0 {
		organizer := userToDomain(e.Organizer)
		event.Organizer = &organizer
	}
	if e.Venue.ID != 0 {
		venue := venueToDomain(e.Venue)
		event.Venue = &venue
	}
	if e.Category.ID != 0 {
		category := categoryToDomain(e.Category)
		event.Category = &category
	}

	return event
}

func eventsToDomain(rows []dao.Event) []domain.Event {
	events := make([]domain.Event, len(rows))
	for i, e := range rows {
		events[i] = eventToDomain(e)
	}

	return events
}
