package service

import (
	"context"
	"fmt"
	"time"

	"github.com/starevents/starevents-api/internal/cache"
	"github.com/starevents/starevents-api/internal/domain"
)

type ReportRepository interface {
	AdminDashboard(ctx context.Context, today time.Time) (domain.AdminDashboard, error)
	OrganizerDashboard(ctx context.Context, organizerID uint, today time.Time) (domain.OrganizerDashboard, error)
	MonthlySales(ctx context.Context) ([]domain.MonthlySales, error)
	EventSales(ctx context.Context) ([]domain.EventReportRow, error)
	Users(ctx context.Context) ([]domain.UserReportRow, error)
	Sales(ctx context.Context, r domain.ReportRange) (domain.SalesReport, error)
	Revenue(ctx context.Context, r domain.ReportRange) (domain.RevenueReport, []uint, error)
}

type EventBatchReader interface {
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Event, error)
}

type ReportService struct {
	repo   ReportRepository
	events EventBatchReader
	cache  *cache.Cache
	now    func() time.Time
}

func NewReportService(repo ReportRepository, events EventBatchReader, c *cache.Cache) *ReportService {
	return &ReportService{
		repo:   repo,
		events: events,
		cache:  c,
		now:    time.Now,
	}
}

func (s *ReportService) AdminDashboard(ctx context.Context, actor domain.Actor) (domain.AdminDashboard, error) {
	if err := actor.Require(domain.CapViewAllReports); err != nil {
		return domain.AdminDashboard{}, err
	}

	day := today(s.now())
	key := "admin:dashboard:" + day.Format(domain.DateLayout)

	return cache.Remember(ctx, s.cache, cache.NamespaceReports, key, func(ctx context.Context) (domain.AdminDashboard, error) {
		d, err := s.repo.AdminDashboard(ctx, day)
		if err != nil {
			return domain.AdminDashboard{}, fmt.Errorf("s.repo.AdminDashboard -> %w", err)
		}
		return d, nil
	})
}

func (s *ReportService) OrganizerDashboard(ctx context.Context, actor domain.Actor) (domain.OrganizerDashboard, error) {
	if err := actor.Require(domain.CapViewOwnReports); err != nil {
		return domain.OrganizerDashboard{}, err
	}

	day := today(s.now())
	key := fmt.Sprintf("organizer:%d:dashboard:%s", actor.UserID, day.Format(domain.DateLayout))

	return cache.Remember(ctx, s.cache, cache.NamespaceReports, key, func(ctx context.Context) (domain.OrganizerDashboard, error) {
		d, err := s.repo.OrganizerDashboard(ctx, actor.UserID, day)
		if err != nil {
			return domain.OrganizerDashboard{}, fmt.Errorf("s.repo.OrganizerDashboard -> %w", err)
		}
		return d, nil
	})
}

// MonthlySales is revenue and tickets per month of booking date, newest first.
func (s *ReportService) MonthlySales(ctx context.Context, actor domain.Actor) ([]domain.MonthlySales, error) {
	if err := actor.Require(domain.CapViewAllReports); err != nil {
		return nil, err
	}

	return cache.Remember(ctx, s.cache, cache.NamespaceReports, "admin:sales", func(ctx context.Context) ([]domain.MonthlySales, error) {
		rows, err := s.repo.MonthlySales(ctx)
		if err != nil {
			return nil, fmt.Errorf("s.repo.MonthlySales -> %w", err)
		}
		return rows, nil
	})
}

func (s *ReportService) EventsReport(ctx context.Context, actor domain.Actor) ([]domain.EventReportRow, error) {
	if err := actor.Require(domain.CapViewAllReports); err != nil {
		return nil, err
	}

	return cache.Remember(ctx, s.cache, cache.NamespaceReports, "admin:events", func(ctx context.Context) ([]domain.EventReportRow, error) {
		rows, err := s.repo.EventSales(ctx)
		if err != nil {
			return nil, fmt.Errorf("s.repo.EventSales -> %w", err)
		}
		return rows, nil
	})
}

// UsersReport is not cached: it changes with every signup.
func (s *ReportService) UsersReport(ctx context.Context, actor domain.Actor) ([]domain.UserReportRow, error) {
	if err := actor.Require(domain.CapViewAllReports); err != nil {
		return nil, err
	}

	rows, err := s.repo.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Users -> %w", err)
	}

	return rows, nil
}

func (s *ReportService) OrganizerSales(ctx context.Context, actor domain.Actor, r domain.ReportRange) (domain.SalesReport, error) {
	r, err := s.organizerRange(actor, r)
	if err != nil {
		return domain.SalesReport{}, err
	}

	return cache.Remember(ctx, s.cache, cache.NamespaceReports, rangeKey("sales", r), func(ctx context.Context) (domain.SalesReport, error) {
		report, err := s.repo.Sales(ctx, r)
		if err != nil {
			return domain.SalesReport{}, fmt.Errorf("s.repo.Sales -> %w", err)
		}
		return report, nil
	})
}

// OrganizerRevenue adds the attendance of every event that sold in the range
// to its revenue figures.
func (s *ReportService) OrganizerRevenue(ctx context.Context, actor domain.Actor, r domain.ReportRange) (domain.RevenueReport, error) {
	r, err := s.organizerRange(actor, r)
	if err != nil {
		return domain.RevenueReport{}, err
	}

	return cache.Remember(ctx, s.cache, cache.NamespaceReports, rangeKey("revenue", r), func(ctx context.Context) (domain.RevenueReport, error) {
		report, ids, err := s.repo.Revenue(ctx, r)
		if err != nil {
			return domain.RevenueReport{}, fmt.Errorf("s.repo.Revenue -> %w", err)
		}

		var events []domain.Event
		if len(ids) > 0 {
			if events, err = s.events.FindByIDs(ctx, ids); err != nil {
				return domain.RevenueReport{}, fmt.Errorf("s.events.FindByIDs -> %w", err)
			}
		}

		items, capacity, sold := domain.Attendance(events)
		report.AttendanceSummary = items
		report.TotalTicketsAvailable = capacity
		report.OverallAttendanceRate = domain.Rate(sold, capacity)

		return report, nil
	})
}

// organizerRange scopes r to the actor's own events and checks its bounds.
func (s *ReportService) organizerRange(actor domain.Actor, r domain.ReportRange) (domain.ReportRange, error) {
	if err := actor.Require(domain.CapViewOwnReports); err != nil {
		return r, err
	}
	if r.To.IsZero() {
		r.To = today(s.now())
	}
	if r.From.IsZero() {
		r.From = r.To.AddDate(0, 0, -30)
	}
	if r.From.After(r.To) {
		return r, domain.NewValidationError("from", "must not be after to")
	}
	r.OrganizerID = actor.UserID

	return r, nil
}

func rangeKey(kind string, r domain.ReportRange) string {
	return fmt.Sprintf("organizer:%d:%s:%d:%s:%s", r.OrganizerID, kind, r.EventID,
		r.From.Format(domain.DateLayout), r.To.Format(domain.DateLayout))
}
