package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/starevents/starevents-api/internal/domain"
)

var (
	ErrVenueNotFound      = domain.ErrVenueNotFound
	ErrVenueNameExists    = domain.ErrVenueNameExists
	ErrCategoryNotFound   = domain.ErrCategoryNotFound
	ErrCategoryNameExists = domain.ErrCategoryNameExists
)

type Venue struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"unique;not null"`
	Address      string `gorm:"not null"`
	City         string `gorm:"not null;index"`
	Capacity     int    `gorm:"not null;check:chk_venues_capacity,capacity > 0"`
	ContactPhone string
	ContactEmail string
	Facilities   string `gorm:"type:text"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedBy    uint   `gorm:"not null;index"`
	Creator      User   `gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type EventCategory struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"unique;not null"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CatalogDAO struct {
	db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{
		db: db,
	}
}

func (d *CatalogDAO) InsertVenue(ctx context.Context, venue Venue) (Venue, error) {
	if err := d.db.WithContext(ctx).Omit("Creator").Create(&venue).Error; err != nil {
		if isUniqueViolation(err, "uni_venues_name") {
			return Venue{}, ErrVenueNameExists
		}
		return Venue{}, err
	}

	return venue, nil
}

func (d *CatalogDAO) UpdateVenue(ctx context.Context, venue Venue) (Venue, error) {
	result := d.db.WithContext(ctx).Model(&Venue{ID: venue.ID}).
		Select("name", "address", "city", "capacity", "contact_phone", "contact_email", "facilities", "is_active").
		Updates(&venue)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_venues_name") {
			return Venue{}, ErrVenueNameExists
		}
		return Venue{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Venue{}, ErrVenueNotFound
	}

	return d.FindVenueByID(ctx, venue.ID)
}

func (d *CatalogDAO) FindVenueByID(ctx context.Context, id uint) (Venue, error) {
	var venue Venue
	if err := d.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Venue{}, ErrVenueNotFound
		}
		return Venue{}, err
	}

	return venue, nil
}

func (d *CatalogDAO) ListVenues(ctx context.Context, activeOnly bool) ([]Venue, error) {
	var venues []Venue

	q := d.db.WithContext(ctx).Order("name")
	if activeOnly {
		q = q.Where("is_active")
	}
	if err := q.Find(&venues).Error; err != nil {
		return nil, err
	}

	return venues, nil
}

// Cities returns the distinct cities of active venues.
func (d *CatalogDAO) Cities(ctx context.Context) ([]string, error) {
	var cities []string
	err := d.db.WithContext(ctx).Model(&Venue{}).
		Where("is_active").
		Distinct().
		Order("city").
		Pluck("city", &cities).Error
	if err != nil {
		return nil, err
	}

	return cities, nil
}

func (d *CatalogDAO) InsertCategory(ctx context.Context, category EventCategory) (EventCategory, error) {
	if err := d.db.WithContext(ctx).Create(&category).Error; err != nil {
		if isUniqueViolation(err, "uni_event_categories_name") {
			return EventCategory{}, ErrCategoryNameExists
		}
		return EventCategory{}, err
	}

	return category, nil
}

func (d *CatalogDAO) UpdateCategory(ctx context.Context, category EventCategory) (EventCategory, error) {
	result := d.db.WithContext(ctx).Model(&EventCategory{ID: category.ID}).
		Select("name", "description", "is_active").
		Updates(&category)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_event_categories_name") {
			return EventCategory{}, ErrCategoryNameExists
		}
		return EventCategory{}, result.Error
	}
	if result.RowsAffected == 0 {
		return EventCategory{}, ErrCategoryNotFound
	}

	return d.FindCategoryByID(ctx, category.ID)
}

func (d *CatalogDAO) FindCategoryByID(ctx context.Context, id uint) (EventCategory, error) {
	var category EventCategory
	if err := d.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EventCategory{}, ErrCategoryNotFound
		}
		return EventCategory{}, err
	}

	return category, nil
}

func (d *CatalogDAO) ListCategories(ctx context.Context, activeOnly bool) ([]EventCategory, error) {
	var categories []EventCategory

	q := d.db.WithContext(ctx).Order("name")
	if activeOnly {
		q = q.Where("is_active")
	}
	if err := q.Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}
