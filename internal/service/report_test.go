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

type mockReportRepository struct {
	mock.Mock
}

func (m *mockReportRepository) AdminDashboard(ctx context.Context, today time.Time) (domain.AdminDashboard, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(domain.AdminDashboard), args.Error(1)
}

func (m *mockReportRepository) OrganizerDashboard(ctx context.Context, organizerID uint, today time.Time) (domain.OrganizerDashboard, error) {
	args := m.Called(ctx, organizerID, today)
	return args.Get(0).(domain.OrganizerDashboard), args.Error(1)
}

func (m *mockReportRepository) MonthlySales(ctx context.Context) ([]domain.MonthlySales, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.MonthlySales), args.Error(1)
}

func (m *mockReportRepository) EventSales(ctx context.Context) ([]domain.EventReportRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.EventReportRow), args.Error(1)
}

func (m *mockReportRepository) Users(ctx context.Context) ([]domain.UserReportRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UserReportRow), args.Error(1)
}

func (m *mockReportRepository) Sales(ctx context.Context, r domain.ReportRange) (domain.SalesReport, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.SalesReport), args.Error(1)
}

func (m *mockReportRepository) Revenue(ctx context.Context, r domain.ReportRange) (domain.RevenueReport, []uint, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.RevenueReport), args.Get(1).([]uint), args.Error(2)
}

func TestReportService_AdminOnly(t *testing.T) {
	repo := &mockReportRepository{}
	svc := NewReportService(repo, fakeEvents{newStore()}, nil)
	svc.now = fixedNow

	organizer := domain.Actor{UserID: 2, Role: domain.RoleOrganizer}
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	_, err := svc.AdminDashboard(context.Background(), organizer)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	_, err = svc.MonthlySales(context.Background(), organizer)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.On("AdminDashboard", mock.Anything, today).Return(domain.AdminDashboard{TotalUsers: 3, TotalRevenue: price("120.50")}, nil)

	d, err := svc.AdminDashboard(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, int64(3), d.TotalUsers)
	repo.AssertExpectations(t)
}

func TestReportService_OrganizerRevenue(t *testing.T) {
	st := newStore()
	repo := &mockReportRepository{}
	svc := NewReportService(repo, fakeEvents{st}, nil)
	svc.now = fixedNow

	organizer := st.addUser(domain.RoleOrganizer)
	gala := st.addEvent(approvedEvent(organizer.ID, 100, 25))
	talk := st.addEvent(approvedEvent(organizer.ID, 50, 50))

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	want := domain.ReportRange{OrganizerID: organizer.ID, From: from, To: to}

	repo.On("Revenue", mock.Anything, want).Return(domain.RevenueReport{
		TotalRevenue:     price("3750.00"),
		TotalTicketsSold: 75,
		RevenueByMethod:  []domain.NamedAmount{{Name: "CreditCard", Amount: price("3750.00")}},
	}, []uint{gala.ID, talk.ID}, nil)

	report, err := svc.OrganizerRevenue(context.Background(), organizer.Actor(), domain.ReportRange{From: from, To: to, OrganizerID: 999})
	require.NoError(t, err)

	assert.Equal(t, int64(150), report.TotalTicketsAvailable)
	assert.Equal(t, "50", report.OverallAttendanceRate.String())
	require.Len(t, report.AttendanceSummary, 2)
	assert.Equal(t, 75, report.AttendanceSummary[0].TicketsSold)
	assert.Equal(t, "75", report.AttendanceSummary[0].AttendanceRate.String())
	assert.Equal(t, "0", report.AttendanceSummary[1].AttendanceRate.String())
	repo.AssertExpectations(t)
}

func TestReportService_OrganizerRangeDefaults(t *testing.T) {
	repo := &mockReportRepository{}
	svc := NewReportService(repo, fakeEvents{newStore()}, nil)
	svc.now = fixedNow
	organizer := domain.Actor{UserID: 7, Role: domain.RoleOrganizer}

	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.On("Sales", mock.Anything, domain.ReportRange{OrganizerID: 7, From: today.AddDate(0, 0, -30), To: today}).
		Return(domain.SalesReport{TotalTicketsSold: 4}, nil)

	report, err := svc.OrganizerSales(context.Background(), organizer, domain.ReportRange{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), report.TotalTicketsSold)

	_, err = svc.OrganizerSales(context.Background(), organizer, domain.ReportRange{From: today, To: today.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.OrganizerSales(context.Background(), domain.Actor{UserID: 8, Role: domain.RoleCustomer}, domain.ReportRange{})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	repo.AssertExpectations(t)
}
