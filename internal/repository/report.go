package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/starevents/starevents-api/internal/domain"
	"github.com/starevents/starevents-api/internal/repository/dao"
)

const topCitiesLimit = 5

type ReportDAO interface {
	AdminTotals(ctx context.Context, today time.Time) (dao.AdminTotals, error)
	OrganizerTotals(ctx context.Context, organizerID uint, today time.Time) (dao.OrganizerTotals, error)
	MonthlySales(ctx context.Context) ([]dao.MonthlySalesRow, error)
	EventSales(ctx context.Context) ([]dao.EventSalesRow, error)
	Users(ctx context.Context) ([]dao.User, error)
	SalesTotals(ctx context.Context, r domain.ReportRange) (dao.SalesTotals, error)
	DailySales(ctx context.Context, r domain.ReportRange) ([]dao.DailySalesRow, error)
	TopCities(ctx context.Context, r domain.ReportRange, limit int) ([]dao.CityRow, error)
	RevenueByEvent(ctx context.Context, r domain.ReportRange) ([]dao.AmountRow, error)
	RevenueByMethod(ctx context.Context, r domain.ReportRange) ([]dao.AmountRow, error)
	EventIDs(ctx context.Context, r domain.ReportRange) ([]uint, error)
}

type ReportRepository struct {
	dao ReportDAO
}

func NewReportRepository(dao ReportDAO) *ReportRepository {
	return &ReportRepository{
		dao: dao,
	}
}

func (r *ReportRepository) AdminDashboard(ctx context.Context, today time.Time) (domain.AdminDashboard, error) {
	t, err := r.dao.AdminTotals(ctx, today)
	if err != nil {
		return domain.AdminDashboard{}, fmt.Errorf("r.dao.AdminTotals -> %w", err)
	}

	return domain.AdminDashboard{
		TotalUsers:   t.TotalUsers,
		TotalEvents:  t.TotalEvents,
		TotalRevenue: t.TotalRevenue,
		ActiveEvents: t.ActiveEvents,
	}, nil
}

func (r *ReportRepository) OrganizerDashboard(ctx context.Context, organizerID uint, today time.Time) (domain.OrganizerDashboard, error) {
	t, err := r.dao.OrganizerTotals(ctx, organizerID, today)
	if err != nil {
		return domain.OrganizerDashboard{}, fmt.Errorf("r.dao.OrganizerTotals -> %w", err)
	}

	return domain.OrganizerDashboard{
		TotalEvents:    t.TotalEvents,
		TotalRevenue:   t.TotalRevenue,
		TicketsSold:    t.TicketsSold,
		UpcomingEvents: t.UpcomingEvents,
	}, nil
}

func (r *ReportRepository) MonthlySales(ctx context.Context) ([]domain.MonthlySales, error) {
	rows, err := r.dao.MonthlySales(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.MonthlySales -> %w", err)
	}

	sales := make([]domain.MonthlySales, len(rows))
	for i, row := range rows {
		sales[i] = domain.MonthlySales{
			Year:         row.Year,
			Month:        row.Month,
			TotalRevenue: row.TotalRevenue,
			TotalTickets: row.TotalTickets,
		}
	}

	return sales, nil
}

func (r *ReportRepository) EventSales(ctx context.Context) ([]domain.EventReportRow, error) {
	rows, err := r.dao.EventSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.EventSales -> %w", err)
	}

	report := make([]domain.EventReportRow, len(rows))
	for i, row := range rows {
		report[i] = domain.EventReportRow{
			EventID:          row.EventID,
			Title:            row.Title,
			Date:             row.Date,
			TotalTicketsSold: row.TotalTicketsSold,
			AvailableTickets: row.AvailableTickets,
			Status:           domain.EventStatus(row.Status),
		}
	}

	return report, nil
}

func (r *ReportRepository) Users(ctx context.Context) ([]domain.UserReportRow, error) {
	users, err := r.dao.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Users -> %w", err)
	}

	report := make([]domain.UserReportRow, len(users))
	for i, u := range users {
		report[i] = domain.UserReportRow{
			FullName:         userToDomain(u).FullName(),
			Email:            u.Email,
			RegistrationDate: u.DateJoined,
			Role:             domain.Role(u.Role),
		}
	}

	return report, nil
}

func (r *ReportRepository) Sales(ctx context.Context, rng domain.ReportRange) (domain.SalesReport, error) {
	totals, err := r.dao.SalesTotals(ctx, rng)
	if err != nil {
		return domain.SalesReport{}, fmt.Errorf("r.dao.SalesTotals -> %w", err)
	}

	daily, err := r.dao.DailySales(ctx, rng)
	if err != nil {
		return domain.SalesReport{}, fmt.Errorf("r.dao.DailySales -> %w", err)
	}

	cities, err := r.dao.TopCities(ctx, rng, topCitiesLimit)
	if err != nil {
		return domain.SalesReport{}, fmt.Errorf("r.dao.TopCities -> %w", err)
	}

	report := domain.SalesReport{
		TotalRevenue:     totals.TotalRevenue,
		TotalTicketsSold: totals.TotalTicketsSold,
		SalesTrend:       make([]domain.DailySales, len(daily)),
		TopCities:        make([]domain.CityCount, len(cities)),
	}
	for i, d := range daily {
		report.SalesTrend[i] = domain.DailySales{Day: d.Day, Tickets: d.Tickets}
	}
	for i, c := range cities {
		report.TopCities[i] = domain.CityCount{City: c.City, Tickets: c.Tickets}
	}

	return report, nil
}

// Revenue returns the money side of a revenue report and the ids of the events it covers.
// Attendance is filled in by the caller from the current event rows.
func (r *ReportRepository) Revenue(ctx context.Context, rng domain.ReportRange) (domain.RevenueReport, []uint, error) {
	totals, err := r.dao.SalesTotals(ctx, rng)
	if err != nil {
		return domain.RevenueReport{}, nil, fmt.Errorf("r.dao.SalesTotals -> %w", err)
	}

	byEvent, err := r.dao.RevenueByEvent(ctx, rng)
	if err != nil {
		return domain.RevenueReport{}, nil, fmt.Errorf("r.dao.RevenueByEvent -> %w", err)
	}

	byMethod, err := r.dao.RevenueByMethod(ctx, rng)
	if err != nil {
		return domain.RevenueReport{}, nil, fmt.Errorf("r.dao.RevenueByMethod -> %w", err)
	}

	ids, err := r.dao.EventIDs(ctx, rng)
	if err != nil {
		return domain.RevenueReport{}, nil, fmt.Errorf("r.dao.EventIDs -> %w", err)
	}

	return domain.RevenueReport{
		TotalRevenue:     totals.TotalRevenue,
		TotalTicketsSold: totals.TotalTicketsSold,
		RevenueByEvent:   amountsToDomain(byEvent),
		RevenueByMethod:  amountsToDomain(byMethod),
	}, ids, nil
}

func amountsToDomain(rows []dao.AmountRow) []domain.NamedAmount {
	amounts := make([]domain.NamedAmount, len(rows))
	for i, row := range rows {
		amounts[i] = domain.NamedAmount{Name: row.Name, Amount: row.Amount}
	}

	return amounts
}
