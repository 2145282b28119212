package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/starevents/starevents-api/internal/domain"
)

type mockPromotionRepository struct {
	mock.Mock
}

func (m *mockPromotionRepository) Create(ctx context.Context, promotion domain.Promotion) (domain.Promotion, error) {
	args := m.Called(ctx, promotion)
	return args.Get(0).(domain.Promotion), args.Error(1)
}

func (m *mockPromotionRepository) FindByCode(ctx context.Context, code string) (domain.Promotion, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Promotion), args.Error(1)
}

func (m *mockPromotionRepository) List(ctx context.Context) ([]domain.Promotion, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Promotion), args.Error(1)
}

func (m *mockPromotionRepository) SetActive(ctx context.Context, id uint, active bool) (domain.Promotion, error) {
	args := m.Called(ctx, id, active)
	return args.Get(0).(domain.Promotion), args.Error(1)
}

func TestPromotionService_CreatePromotion(t *testing.T) {
	repo := &mockPromotionRepository{}
	svc := NewPromotionService(repo)
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	promotion := domain.Promotion{
		Code:          " spring26 ",
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: price("15"),
		StartsAt:      testNow,
		EndsAt:        testNow.Add(30 * 24 * time.Hour),
		UsedCount:     4,
	}

	_, err := svc.CreatePromotion(context.Background(), domain.Actor{UserID: 3, Role: domain.RoleCustomer}, promotion)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p domain.Promotion) bool {
		return p.Code == "SPRING26" && p.UsedCount == 0 && p.IsActive
	})).Return(domain.Promotion{ID: 5, Code: "SPRING26", IsActive: true}, nil)

	created, err := svc.CreatePromotion(context.Background(), admin, promotion)
	require.NoError(t, err)
	assert.Equal(t, uint(5), created.ID)

	invalid := promotion
	invalid.EndsAt = invalid.StartsAt
	_, err = svc.CreatePromotion(context.Background(), admin, invalid)
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertExpectations(t)
}

func TestPromotionService_SetActive(t *testing.T) {
	repo := &mockPromotionRepository{}
	svc := NewPromotionService(repo)
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	repo.On("SetActive", mock.Anything, uint(5), false).Return(domain.Promotion{ID: 5, IsActive: false}, nil)
	repo.On("SetActive", mock.Anything, uint(6), false).Return(domain.Promotion{}, domain.ErrPromotionNotFound)

	p, err := svc.SetActive(context.Background(), admin, 5, false)
	require.NoError(t, err)
	assert.False(t, p.IsActive)

	_, err = svc.SetActive(context.Background(), admin, 6, false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertExpectations(t)
}
