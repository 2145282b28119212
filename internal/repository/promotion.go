package repository

import (
	"context"
	"fmt"

	"github.com/starevents/starevents-api/internal/domain"
	"github.com/starevents/starevents-api/internal/repository/dao"
)

var (
	ErrPromotionNotFound = dao.ErrPromotionNotFound
	ErrPromotionExists   = dao.ErrPromotionExists
)

type PromotionDAO interface {
	Insert(ctx context.Context, promotion dao.Promotion) (dao.Promotion, error)
	FindByCode(ctx context.Context, code string) (dao.Promotion, error)
	List(ctx context.Context) ([]dao.Promotion, error)
	SetActive(ctx context.Context, id uint, active bool) (dao.Promotion, error)
}

type PromotionRepository struct {
	dao PromotionDAO
}

func NewPromotionRepository(dao PromotionDAO) *PromotionRepository {
	return &PromotionRepository{
		dao: dao,
	}
}

func (r *PromotionRepository) Create(ctx context.Context, p domain.Promotion) (domain.Promotion, error) {
	created, err := r.dao.Insert(ctx, dao.Promotion{
		Code:            p.Code,
		Description:     p.Description,
		DiscountType:    string(p.DiscountType),
		DiscountValue:   p.DiscountValue,
		MinimumPurchase: p.MinimumPurchase,
		MaximumDiscount: p.MaximumDiscount,
		StartsAt:        p.StartsAt,
		EndsAt:          p.EndsAt,
		UsageLimit:      p.UsageLimit,
		IsActive:        p.IsActive,
	})
	if err != nil {
		return domain.Promotion{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return promotionToDomain(created), nil
}

func (r *PromotionRepository) FindByCode(ctx context.Context, code string) (domain.Promotion, error) {
	found, err := r.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.Promotion{}, fmt.Errorf("r.dao.FindByCode -> %w", err)
	}

	return promotionToDomain(found), nil
}

func (r *PromotionRepository) List(ctx context.Context) ([]domain.Promotion, error) {
	found, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	promotions := make([]domain.Promotion, len(found))
	for i, p := range found {
		promotions[i] = promotionToDomain(p)
	}

	return promotions, nil
}

func (r *PromotionRepository) SetActive(ctx context.Context, id uint, active bool) (domain.Promotion, error) {
	updated, err := r.dao.SetActive(ctx, id, active)
	if err != nil {
		return domain.Promotion{}, fmt.Errorf("r.dao.SetActive -> %w", err)
	}

	return promotionToDomain(updated), nil
}

func promotionToDomain(p dao.Promotion) domain.Promotion {
	return domain.Promotion{
		ID:              p.ID,
		Code:            p.Code,
		Description:     p.Description,
		DiscountType:    domain.DiscountType(p.DiscountType),
		DiscountValue:   p.DiscountValue,
		MinimumPurchase: p.MinimumPurchase,
		MaximumDiscount: p.MaximumDiscount,
		StartsAt:        p.StartsAt,
		EndsAt:          p.EndsAt,
		UsageLimit:      p.UsageLimit,
		UsedCount:       p.UsedCount,
		IsActive:        p.IsActive,
	}
}
