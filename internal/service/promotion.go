package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/starevents/starevents-api/internal/domain"
	"github.com/starevents/starevents-api/internal/repository"
)

var ErrPromotionNotFound = repository.ErrPromotionNotFound

type PromotionRepository interface {
	Create(ctx context.Context, promotion domain.Promotion) (domain.Promotion, error)
	FindByCode(ctx context.Context, code string) (domain.Promotion, error)
	List(ctx context.Context) ([]domain.Promotion, error)
	SetActive(ctx context.Context, id uint, active bool) (domain.Promotion, error)
}

type PromotionService struct {
	repo PromotionRepository
}

func NewPromotionService(repo PromotionRepository) *PromotionService {
	return &PromotionService{
		repo: repo,
	}
}

func (s *PromotionService) CreatePromotion(ctx context.Context, actor domain.Actor, promotion domain.Promotion) (domain.Promotion, error) {
	if err := actor.Require(domain.CapManageCatalogue); err != nil {
		return domain.Promotion{}, err
	}

	promotion.Code = strings.ToUpper(strings.TrimSpace(promotion.Code))
	promotion.UsedCount = 0
	promotion.IsActive = true
	if err := promotion.Validate(); err != nil {
		return domain.Promotion{}, err
	}

	created, err := s.repo.Create(ctx, promotion)
	if err != nil {
		return domain.Promotion{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PromotionService) ListPromotions(ctx context.Context, actor domain.Actor) ([]domain.Promotion, error) {
	if err := actor.Require(domain.CapManageCatalogue); err != nil {
		return nil, err
	}

	promotions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return promotions, nil
}

func (s *PromotionService) SetActive(ctx context.Context, actor domain.Actor, id uint, active bool) (domain.Promotion, error) {
	if err := actor.Require(domain.CapManageCatalogue); err != nil {
		return domain.Promotion{}, err
	}

	promotion, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return domain.Promotion{}, fmt.Errorf("s.repo.SetActive -> %w", err)
	}

	return promotion, nil
}
