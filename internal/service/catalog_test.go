package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/starevents/starevents-api/internal/domain"
)

type mockCatalogRepository struct {
	mock.Mock
}

func (m *mockCatalogRepository) CreateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	args := m.Called(ctx, venue)
	return args.Get(0).(domain.Venue), args.Error(1)
}

func (m *mockCatalogRepository) UpdateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	args := m.Called(ctx, venue)
	return args.Get(0).(domain.Venue), args.Error(1)
}

func (m *mockCatalogRepository) FindVenueByID(ctx context.Context, id uint) (domain.Venue, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Venue), args.Error(1)
}

func (m *mockCatalogRepository) ListVenues(ctx context.Context, activeOnly bool) ([]domain.Venue, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *mockCatalogRepository) Cities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockCatalogRepository) CreateCategory(ctx context.Context, category domain.EventCategory) (domain.EventCategory, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(domain.EventCategory), args.Error(1)
}

func (m *mockCatalogRepository) UpdateCategory(ctx context.Context, category domain.EventCategory) (domain.EventCategory, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(domain.EventCategory), args.Error(1)
}

func (m *mockCatalogRepository) FindCategoryByID(ctx context.Context, id uint) (domain.EventCategory, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.EventCategory), args.Error(1)
}

func (m *mockCatalogRepository) ListCategories(ctx context.Context, activeOnly bool) ([]domain.EventCategory, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.EventCategory), args.Error(1)
}

func TestCatalogService_CreateVenue(t *testing.T) {
	repo := &mockCatalogRepository{}
	svc := NewCatalogService(repo, nil)
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	_, err := svc.CreateVenue(context.Background(), domain.Actor{UserID: 2, Role: domain.RoleOrganizer}, domain.Venue{Name: "Hall"})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	_, err = svc.CreateVenue(context.Background(), admin, domain.Venue{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	repo.On("CreateVenue", mock.Anything, mock.MatchedBy(func(v domain.Venue) bool {
		return v.Name == "Olympia" && v.CreatedBy == 1 && v.IsActive
	})).Return(domain.Venue{ID: 3, Name: "Olympia"}, nil).Once()
	repo.On("CreateVenue", mock.Anything, mock.Anything).Return(domain.Venue{}, domain.ErrVenueNameExists).Once()

	venue := domain.Venue{Name: " Olympia ", Address: "28 Bd des Capucines", City: "Paris", Capacity: 2000}
	created, err := svc.CreateVenue(context.Background(), admin, venue)
	require.NoError(t, err)
	assert.Equal(t, uint(3), created.ID)

	_, err = svc.CreateVenue(context.Background(), admin, venue)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	repo.AssertExpectations(t)
}

func TestCatalogService_ListingsHideInactiveFromPublic(t *testing.T) {
	repo := &mockCatalogRepository{}
	svc := NewCatalogService(repo, nil)

	repo.On("ListVenues", mock.Anything, true).Return([]domain.Venue{{ID: 1}}, nil)
	repo.On("ListVenues", mock.Anything, false).Return([]domain.Venue{{ID: 1}, {ID: 2}}, nil)
	repo.On("ListCategories", mock.Anything, true).Return([]domain.EventCategory{{ID: 1}}, nil)

	venues, err := svc.ListVenues(context.Background(), domain.Actor{})
	require.NoError(t, err)
	assert.Len(t, venues, 1)

	venues, err = svc.ListVenues(context.Background(), domain.Actor{UserID: 1, Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, venues, 2)

	categories, err := svc.ListCategories(context.Background(), domain.Actor{UserID: 4, Role: domain.RoleCustomer})
	require.NoError(t, err)
	assert.Len(t, categories, 1)
	repo.AssertExpectations(t)
}
