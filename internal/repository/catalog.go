package repository

import (
	"context"
	"fmt"

	"github.com/starevents/starevents-api/internal/domain"
	"github.com/starevents/starevents-api/internal/repository/dao"
)

var (
	ErrVenueNotFound      = dao.ErrVenueNotFound
	ErrVenueNameExists    = dao.ErrVenueNameExists
	ErrCategoryNotFound   = dao.ErrCategoryNotFound
	ErrCategoryNameExists = dao.ErrCategoryNameExists
)

type CatalogDAO interface {
	InsertVenue(ctx context.Context, venue dao.Venue) (dao.Venue, error)
	UpdateVenue(ctx context.Context, venue dao.Venue) (dao.Venue, error)
	FindVenueByID(ctx context.Context, id uint) (dao.Venue, error)
	ListVenues(ctx context.Context, activeOnly bool) ([]dao.Venue, error)
	Cities(ctx context.Context) ([]string, error)
	InsertCategory(ctx context.Context, category dao.EventCategory) (dao.EventCategory, error)
	UpdateCategory(ctx context.Context, category dao.EventCategory) (dao.EventCategory, error)
	FindCategoryByID(ctx context.Context, id uint) (dao.EventCategory, error)
	ListCategories(ctx context.Context, activeOnly bool) ([]dao.EventCategory, error)
}

type CatalogRepository struct {
	dao CatalogDAO
}

func NewCatalogRepository(dao CatalogDAO) *CatalogRepository {
	return &CatalogRepository{
		dao: dao,
	}
}

func (r *CatalogRepository) CreateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	created, err := r.dao.InsertVenue(ctx, venueToDAO(venue))
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.InsertVenue -> %w", err)
	}

	return venueToDomain(created), nil
}

func (r *CatalogRepository) UpdateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	updated, err := r.dao.UpdateVenue(ctx, venueToDAO(venue))
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.UpdateVenue -> %w", err)
	}

	return venueToDomain(updated), nil
}

func (r *CatalogRepository) FindVenueByID(ctx context.Context, id uint) (domain.Venue, error) {
	found, err := r.dao.FindVenueByID(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.dao.FindVenueByID -> %w", err)
	}

	return venueToDomain(found), nil
}

func (r *CatalogRepository) ListVenues(ctx context.Context, activeOnly bool) ([]domain.Venue, error) {
	found, err := r.dao.ListVenues(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListVenues -> %w", err)
	}

	venues := make([]domain.Venue, len(found))
	for i, v := range found {
		venues[i] = venueToDomain(v)
	}

	return venues, nil
}

func (r *CatalogRepository) Cities(ctx context.Context) ([]string, error) {
	cities, err := r.dao.Cities(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Cities -> %w", err)
	}

	return cities, nil
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, category domain.EventCategory) (domain.EventCategory, error) {
	created, err := r.dao.InsertCategory(ctx, categoryToDAO(category))
	if err != nil {
		return domain.EventCategory{}, fmt.Errorf("r.dao.InsertCategory -> %w", err)
	}

	return categoryToDomain(created), nil
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, category domain.EventCategory) (domain.EventCategory, error) {
	updated, err := r.dao.UpdateCategory(ctx, categoryToDAO(category))
	if err != nil {
		return domain.EventCategory{}, fmt.Errorf("r.dao.UpdateCategory -> %w", err)
	}

	return categoryToDomain(updated), nil
}

func (r *CatalogRepository) FindCategoryByID(ctx context.Context, id uint) (domain.EventCategory, error) {
	found, err := r.dao.FindCategoryByID(ctx, id)
	if err != nil {
		return domain.EventCategory{}, fmt.Errorf("r.dao.FindCategoryByID -> %w", err)
	}

	return categoryToDomain(found), nil
}

func (r *CatalogRepository) ListCategories(ctx context.Context, activeOnly bool) ([]domain.EventCategory, error) {
	found, err := r.dao.ListCategories(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListCategories -> %w", err)
	}

	categories := make([]domain.EventCategory, len(found))
	for i, c := range found {
		categories[i] = categoryToDomain(c)
	}

	return categories, nil
}

func venueToDAO(v domain.Venue) dao.Venue {
	return dao.Venue{
		ID:           v.ID,
		Name:         v.Name,
		Address:      v.Address,
		City:         v.City,
		Capacity:     v.Capacity,
		ContactPhone: v.ContactPhone,
		ContactEmail: v.ContactEmail,
		Facilities:   v.Facilities,
		IsActive:     v.IsActive,
		CreatedBy:    v.CreatedBy,
	}
}

func venueToDomain(v dao.Venue) domain.Venue {
	return domain.Venue{
		ID:           v.ID,
		Name:         v.Name,
		Address:      v.Address,
		City:         v.City,
		Capacity:     v.Capacity,
		ContactPhone: v.ContactPhone,
		ContactEmail: v.ContactEmail,
		Facilities:   v.Facilities,
		IsActive:     v.IsActive,
		CreatedBy:    v.CreatedBy,
		CreatedAt:    v.CreatedAt,
	}
}

func categoryToDAO(c domain.EventCategory) dao.EventCategory {
	return dao.EventCategory{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
	}
}

func categoryToDomain(c dao.EventCategory) domain.EventCategory {
	return domain.EventCategory{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
	}
}
