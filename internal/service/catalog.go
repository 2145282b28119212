package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/starevents/starevents-api/internal/cache"
	"github.com/starevents/starevents-api/internal/domain"
	"github.com/starevents/starevents-api/internal/repository"
)

var (
	ErrVenueNotFound    = repository.ErrVenueNotFound
	ErrCategoryNotFound = repository.ErrCategoryNotFound
)

type CatalogRepository interface {
	CreateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	UpdateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	FindVenueByID(ctx context.Context, id uint) (domain.Venue, error)
	ListVenues(ctx context.Context, activeOnly bool) ([]domain.Venue, error)
	Cities(ctx context.Context) ([]string, error)
	CreateCategory(ctx context.Context, category domain.EventCategory) (domain.EventCategory, error)
	UpdateCategory(ctx context.Context, category domain.EventCategory) (domain.EventCategory, error)
	FindCategoryByID(ctx context.Context, id uint) (domain.EventCategory, error)
	ListCategories(ctx context.Context, activeOnly bool) ([]domain.EventCategory, error)
}

type CatalogService struct {
	repo  CatalogRepository
	cache *cache.Cache
}

func NewCatalogService(repo CatalogRepository, c *cache.Cache) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: c,
	}
}

func (s *CatalogService) CreateVenue(ctx context.Context, actor domain.Actor, venue domain.Venue) (domain.Venue, error) {
	if err := actor.Require(domain.CapManageCatalogue); err != nil {
		return domain.Venue{}, err
	}
	venue.Name = strings.TrimSpace(venue.Name)
	if err := venue.Validate(); err != nil {
		return domain.Venue{}, err
	}
	venue.CreatedBy = actor.UserID
	venue.IsActive = true

	created, err := s.repo.CreateVenue(ctx, venue)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.CreateVenue -> %w", err)
	}

	return created, nil
}

// UpdateVenue overwrites the editable fields of a venue, including its active flag.
func (s *CatalogService) UpdateVenue(ctx context.Context, actor domain.Actor, venue domain.Venue) (domain.Venue, error) {
	if err := actor.Require(domain.CapManageCatalogue); err != nil {
		return domain.Venue{}, err
	}
	venue.Name = strings.TrimSpace(venue.Name)
	if err := venue.Validate(); err != nil {
		return domain.Venue{}, err
	}

	updated, err := s.repo.UpdateVenue(ctx, venue)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.UpdateVenue -> %w", err)
	}
	s.cache.Invalidate(ctx, cache.NamespaceEvents)

	return updated, nil
}

func (s *CatalogService) GetVenue(ctx context.Context, id uint) (domain.Venue, error) {
	venue, err := s.repo.FindVenueByID(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.FindVenueByID -> %w", err)
	}

	return venue, nil
}

// ListVenues returns active venues, or every venue for catalogue managers.
func (s *CatalogService) ListVenues(ctx context.Context, actor domain.Actor) ([]domain.Venue, error) {
	venues, err := s.repo.ListVenues(ctx, !actor.Can(domain.CapManageCatalogue))
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListVenues -> %w", err)
	}

	return venues, nil
}

func (s *CatalogService) Cities(ctx context.Context) ([]string, error) {
	cities, err := s.repo.Cities(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Cities -> %w", err)
	}

	return cities, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, actor domain.Actor, category domain.EventCategory) (domain.EventCategory, error) {
	if err := actor.Require(domain.CapManageCatalogue); err != nil {
		return domain.EventCategory{}, err
	}
	category.Name = strings.TrimSpace(category.Name)
	if err := category.Validate(); err != nil {
		return domain.EventCategory{}, err
	}
	category.IsActive = true

	created, err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		return domain.EventCategory{}, fmt.Errorf("s.repo.CreateCategory -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, actor domain.Actor, category domain.EventCategory) (domain.EventCategory, error) {
	if err := actor.Require(domain.CapManageCatalogue); err != nil {
		return domain.EventCategory{}, err
	}
	category.Name = strings.TrimSpace(category.Name)
	if err := category.Validate(); err != nil {
		return domain.EventCategory{}, err
	}

	updated, err := s.repo.UpdateCategory(ctx, category)
	if err != nil {
		return domain.EventCategory{}, fmt.Errorf("s.repo.UpdateCategory -> %w", err)
	}
	s.cache.Invalidate(ctx, cache.NamespaceEvents)

	return updated, nil
}

func (s *CatalogService) ListCategories(ctx context.Context, actor domain.Actor) ([]domain.EventCategory, error) {
	categories, err := s.repo.ListCategories(ctx, !actor.Can(domain.CapManageCatalogue))
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCategories -> %w", err)
	}

	return categories, nil
}
