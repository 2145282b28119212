package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/starevents/starevents-api/internal/domain"
)

var (
	ErrPromotionNotFound = domain.ErrPromotionNotFound
	ErrPromotionExists   = domain.ErrPromotionExists
)

type Promotion struct {
	ID              uint             `gorm:"primaryKey"`
	Code            string           `gorm:"unique;not null"`
	Description     string           `gorm:"type:text"`
	DiscountType    string           `gorm:"not null"`
	DiscountValue   decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	MinimumPurchase decimal.Decimal  `gorm:"type:numeric(10,2);not null;default:0"`
	MaximumDiscount *decimal.Decimal `gorm:"type:numeric(10,2)"`
	StartsAt        time.Time        `gorm:"not null"`
	EndsAt          time.Time        `gorm:"not null"`
	UsageLimit      int              `gorm:"not null;default:0"`
	UsedCount       int              `gorm:"not null;default:0"`
	IsActive        bool             `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PromotionDAO struct {
	db *gorm.DB
}

func NewPromotionDAO(db *gorm.DB) *PromotionDAO {
	return &PromotionDAO{
		db: db,
	}
}

func (d *PromotionDAO) Insert(ctx context.Context, promotion Promotion) (Promotion, error) {
	if err := d.db.WithContext(ctx).Create(&promotion).Error; err != nil {
		if isUniqueViolation(err, "uni_promotions_code") {
			return Promotion{}, ErrPromotionExists
		}
		return Promotion{}, err
	}

	return promotion, nil
}

func (d *PromotionDAO) FindByCode(ctx context.Context, code string) (Promotion, error) {
	var promotion Promotion
	if err := d.db.WithContext(ctx).First(&promotion, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Promotion{}, ErrPromotionNotFound
		}
		return Promotion{}, err
	}

	return promotion, nil
}

func (d *PromotionDAO) List(ctx context.Context) ([]Promotion, error) {
	var promotions []Promotion
	if err := d.db.WithContext(ctx).Order("starts_at DESC").Find(&promotions).Error; err != nil {
		return nil, err
	}

	return promotions, nil
}

func (d *PromotionDAO) SetActive(ctx context.Context, id uint, active bool) (Promotion, error) {
	result := d.db.WithContext(ctx).Model(&Promotion{ID: id}).Update("is_active", active)
	if result.Error != nil {
		return Promotion{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Promotion{}, ErrPromotionNotFound
	}

	var promotion Promotion
	if err := d.db.WithContext(ctx).First(&promotion, id).Error; err != nil {
		return Promotion{}, err
	}

	return promotion, nil
}

// usePromotion counts one redemption unless the usage limit has been reached.
func usePromotion(tx *gorm.DB, id uint) error {
	result := tx.Model(&Promotion{}).
		Where("id = ? AND is_active AND (usage_limit = 0 OR used_count < usage_limit)", id).
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("usePromotion -> %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewValidationError("promotion_code", "promotion usage limit reached")
	}

	return nil
}
