package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/starevents/starevents-api/internal/cache"
	"github.com/starevents/starevents-api/internal/domain"
	"github.com/starevents/starevents-api/internal/metrics"
	"github.com/starevents/starevents-api/internal/repository"
	"github.com/starevents/starevents-api/internal/telemetry"
)

var (
	ErrEventNotFound     = repository.ErrEventNotFound
	ErrCapacityViolation = repository.ErrCapacityViolation
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	ListForModeration(ctx context.Context, search string, status domain.EventStatus) ([]domain.EventRow, error)
	Update(ctx context.Context, id uint, mutate func(*domain.Event) error) (domain.Event, error)
	Cancel(ctx context.Context, id uint, check func(domain.Event) error, at time.Time) (domain.Event, int, error)
}

// PlacementReader resolves the venue and category an event is held in.
type PlacementReader interface {
	FindVenueByID(ctx context.Context, id uint) (domain.Venue, error)
	FindCategoryByID(ctx context.Context, id uint) (domain.EventCategory, error)
}

type EventService struct {
	repo    EventRepository
	catalog PlacementReader
	images  ImageStore
	hub     AvailabilityPublisher
	cache   *cache.Cache
	now     func() time.Time
}

func NewEventService(repo EventRepository, catalog PlacementReader, images ImageStore, hub AvailabilityPublisher, c *cache.Cache) *EventService {
	return &EventService{
		repo:    repo,
		catalog: catalog,
		images:  images,
		hub:     publisherOrNop(hub),
		cache:   c,
		now:     time.Now,
	}
}

// CreateEvent stores a new Pending event with every ticket available.
func (s *EventService) CreateEvent(ctx context.Context, actor domain.Actor, details domain.EventDetails, image *Image) (domain.Event, error) {
	if err := actor.Require(domain.CapCreateEvent); err != nil {
		return domain.Event{}, err
	}
	if err := details.Validate(s.now()); err != nil {
		return domain.Event{}, err
	}
	if err := s.checkPlacement(ctx, details, nil); err != nil {
		return domain.Event{}, err
	}

	total, available, err := domain.NewInventory(details.TotalTickets)
	if err != nil {
		return domain.Event{}, err
	}

	event := domain.Event{
		Title:            details.Title,
		Description:      details.Description,
		Date:             details.Date,
		Time:             details.Time,
		TicketPrice:      details.TicketPrice,
		TotalTickets:     total,
		AvailableTickets: available,
		Status:           domain.EventPending,
		OrganizerID:      actor.UserID,
		VenueID:          details.VenueID,
		CategoryID:       details.CategoryID,
		Version:          1,
	}

	if event.ImagePath, err = s.storeImage(ctx, image); err != nil {
		return domain.Event{}, err
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		s.deleteImage(ctx, event.ImagePath)
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	zap.L().Info("event created", zap.Uint("event_id", created.ID), zap.Uint("user_id", actor.UserID))
	s.cache.Invalidate(ctx, cache.NamespaceReports)

	return created, nil
}

// EditEvent applies details to the event read at version. Editing an approved
// event sends it back to moderation. A new image, when given, replaces the old one.
func (s *EventService) EditEvent(ctx context.Context, actor domain.Actor, id uint, version int, details domain.EventDetails, image *Image) (updated domain.Event, err error) {
	ctx, span := telemetry.StartSpan(ctx, "EventService.EditEvent",
		attribute.Int64("event.id", int64(id)),
		attribute.Int("event.total_tickets", details.TotalTickets),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	if err = actor.Require(domain.CapEditOwnEvent); err != nil {
		return domain.Event{}, err
	}
	if err = details.Validate(s.now()); err != nil {
		return domain.Event{}, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if !actor.CanManageEvent(current.OrganizerID) {
		return domain.Event{}, fmt.Errorf("event %d: %w", id, domain.ErrNotAuthorized)
	}
	if err = s.checkPlacement(ctx, details, &current); err != nil {
		return domain.Event{}, err
	}

	newImage, err := s.storeImage(ctx, image)
	if err != nil {
		return domain.Event{}, err
	}

	var previous domain.Event
	updated, err = s.repo.Update(ctx, id, func(e *domain.Event) error {
		previous = *e
		if e.Version != version {
			return fmt.Errorf("event %d at version %d, edit read %d: %w", id, e.Version, version, domain.ErrConflict)
		}
		if e.Status == domain.EventCancelled {
			return fmt.Errorf("event %d is cancelled: %w", id, domain.ErrInvalidTransition)
		}
		if err := details.Apply(e); err != nil {
			return err
		}
		if newImage != "" {
			e.ImagePath = newImage
		}
		return nil
	})
	if err != nil {
		s.deleteImage(ctx, newImage)
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	if newImage != "" {
		s.deleteImage(ctx, previous.ImagePath)
	}
	if previous.Status != updated.Status {
		metrics.ModerationTransition(string(previous.Status), string(updated.Status))
	}

	zap.L().Info("event edited",
		zap.Uint("event_id", id),
		zap.Uint("user_id", actor.UserID),
		zap.String("status", string(updated.Status)),
		zap.Int("version", updated.Version),
	)
	s.changed(ctx, updated)

	return updated, nil
}

// ReplaceImage swaps the image of an event without touching its moderation status.
func (s *EventService) ReplaceImage(ctx context.Context, actor domain.Actor, id uint, image Image) (domain.Event, error) {
	if err := actor.Require(domain.CapEditOwnEvent); err != nil {
		return domain.Event{}, err
	}

	path, err := s.storeImage(ctx, &image)
	if err != nil {
		return domain.Event{}, err
	}

	var old string
	updated, err := s.repo.Update(ctx, id, func(e *domain.Event) error {
		if !actor.CanManageEvent(e.OrganizerID) {
			return fmt.Errorf("event %d: %w", id, domain.ErrNotAuthorized)
		}
		if e.Status == domain.EventCancelled {
			return fmt.Errorf("event %d is cancelled: %w", id, domain.ErrInvalidTransition)
		}
		old = e.ImagePath
		e.ImagePath = path
		return nil
	})
	if err != nil {
		s.deleteImage(ctx, path)
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}
	s.deleteImage(ctx, old)
	s.cache.Invalidate(ctx, cache.NamespaceEvents)

	return updated, nil
}

func (s *EventService) Approve(ctx context.Context, actor domain.Actor, id uint) (domain.Event, error) {
	return s.moderate(ctx, actor, id, domain.EventApproved)
}

func (s *EventService) Reject(ctx context.Context, actor domain.Actor, id uint) (domain.Event, error) {
	return s.moderate(ctx, actor, id, domain.EventRejected)
}

func (s *EventService) moderate(ctx context.Context, actor domain.Actor, id uint, to domain.EventStatus) (domain.Event, error) {
	if err := actor.Require(domain.CapModerate); err != nil {
		return domain.Event{}, err
	}

	var from domain.EventStatus
	updated, err := s.repo.Update(ctx, id, func(e *domain.Event) error {
		from = e.Status
		next, err := e.Status.TransitionTo(to)
		if err != nil {
			return err
		}
		e.Status = next
		return nil
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	metrics.ModerationTransition(string(from), string(to))
	zap.L().Info("event moderated",
		zap.Uint("event_id", id),
		zap.Uint("user_id", actor.UserID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)
	s.changed(ctx, updated)

	return updated, nil
}

// CancelEvent cancels the event and every confirmed booking of it. It returns
// the cancelled event and the number of bookings refunded.
func (s *EventService) CancelEvent(ctx context.Context, actor domain.Actor, id uint) (cancelled domain.Event, refunded int, err error) {
	ctx, span := telemetry.StartSpan(ctx, "EventService.CancelEvent", attribute.Int64("event.id", int64(id)))
	defer func() { telemetry.EndSpan(span, err) }()

	if err = actor.Require(domain.CapEditOwnEvent); err != nil {
		return domain.Event{}, 0, err
	}

	var previous domain.Event
	cancelled, refunded, err = s.repo.Cancel(ctx, id, func(e domain.Event) error {
		previous = e
		if !actor.CanManageEvent(e.OrganizerID) {
			return fmt.Errorf("event %d: %w", id, domain.ErrNotAuthorized)
		}
		_, err := e.Status.TransitionTo(domain.EventCancelled)
		return err
	}, s.now())
	if err != nil {
		return domain.Event{}, 0, fmt.Errorf("s.repo.Cancel -> %w", err)
	}

	s.deleteImage(ctx, previous.ImagePath)
	metrics.ModerationTransition(string(previous.Status), string(domain.EventCancelled))
	metrics.TicketsReleased(previous.Sold())
	zap.L().Info("event cancelled",
		zap.Uint("event_id", id),
		zap.Uint("user_id", actor.UserID),
		zap.Int("bookings_refunded", refunded),
	)
	s.changed(ctx, cancelled)

	return cancelled, refunded, nil
}

// ListPublicEvents returns approved upcoming events with tickets left.
func (s *EventService) ListPublicEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	filter.PublicOnly = true
	filter.Status = ""
	filter.OrganizerID = 0
	filter.From = today(s.now())
	if filter.Sort == "" {
		filter.Sort = domain.SortDateAsc
	}

	key := fmt.Sprintf("public:%s|%s|%s|%s|%s",
		filter.Search, filter.Category, filter.City, filter.Sort, filter.From.Format(domain.DateLayout))

	return cache.Remember(ctx, s.cache, cache.NamespaceEvents, key, func(ctx context.Context) ([]domain.Event, error) {
		events, err := s.repo.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("s.repo.List -> %w", err)
		}
		return events, nil
	})
}

func (s *EventService) GetPublicEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if event.Status != domain.EventApproved {
		return domain.Event{}, ErrEventNotFound
	}

	return event, nil
}

func (s *EventService) ListMyEvents(ctx context.Context, actor domain.Actor, search string, status domain.EventStatus) ([]domain.Event, error) {
	if err := actor.Require(domain.CapCreateEvent); err != nil {
		return nil, err
	}

	events, err := s.repo.List(ctx, domain.EventFilter{
		Search:      search,
		Status:      status,
		OrganizerID: actor.UserID,
		Sort:        domain.SortDateDesc,
	})
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return events, nil
}

func (s *EventService) GetMyEvent(ctx context.Context, actor domain.Actor, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if !actor.CanManageEvent(event.OrganizerID) {
		return domain.Event{}, fmt.Errorf("event %d: %w", id, domain.ErrNotAuthorized)
	}

	return event, nil
}

// ManageEvents lists every event for moderation, pending ones first.
func (s *EventService) ManageEvents(ctx context.Context, actor domain.Actor, search string, status domain.EventStatus) ([]domain.EventRow, error) {
	if err := actor.Require(domain.CapModerate); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListForModeration(ctx, search, status)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListForModeration -> %w", err)
	}

	return rows, nil
}

// Availability is the current inventory snapshot of a public event.
func (s *EventService) Availability(ctx context.Context, id uint) (domain.Availability, error) {
	event, err := s.GetPublicEvent(ctx, id)
	if err != nil {
		return domain.Availability{}, err
	}

	return event.Availability(), nil
}

// checkPlacement validates venue and category. current is nil on create; on
// edit an unchanged venue or category may have been deactivated since.
func (s *EventService) checkPlacement(ctx context.Context, details domain.EventDetails, current *domain.Event) error {
	venue, err := s.catalog.FindVenueByID(ctx, details.VenueID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("venue_id", "unknown venue")
		}
		return fmt.Errorf("s.catalog.FindVenueByID -> %w", err)
	}
	if !venue.IsActive && (current == nil || current.VenueID != venue.ID) {
		return domain.NewValidationError("venue_id", "venue is not active")
	}
	if err = venue.CheckCapacity(details.TotalTickets); err != nil {
		return err
	}

	category, err := s.catalog.FindCategoryByID(ctx, details.CategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("category_id", "unknown category")
		}
		return fmt.Errorf("s.catalog.FindCategoryByID -> %w", err)
	}
	if !category.IsActive && (current == nil || current.CategoryID != category.ID) {
		return domain.NewValidationError("category_id", "category is not active")
	}

	return nil
}

func (s *EventService) storeImage(ctx context.Context, image *Image) (string, error) {
	if image == nil || len(image.Data) == 0 {
		return "", nil
	}
	if s.images == nil {
		return "", domain.NewValidationError("image", "image uploads are disabled")
	}

	path, err := s.images.Save(ctx, image.Data, image.Name)
	if err != nil {
		return "", fmt.Errorf("s.images.Save -> %w", err)
	}

	return path, nil
}

func (s *EventService) deleteImage(ctx context.Context, path string) {
	if path == "" || s.images == nil {
		return
	}
	if err := s.images.Delete(ctx, path); err != nil {
		zap.L().Warn("event image not deleted", zap.String("path", path), zap.Error(err))
	}
}

func (s *EventService) changed(ctx context.Context, event domain.Event) {
	s.hub.Publish(event.Availability())
	s.cache.Invalidate(ctx, cache.NamespaceEvents, cache.NamespaceReports)
}
