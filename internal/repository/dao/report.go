package dao

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/starevents/starevents-api/internal/domain"
)

// Every report query binds its inputs as parameters.

type ReportDAO struct {
	db *gorm.DB
}

func NewReportDAO(db *gorm.DB) *ReportDAO {
	return &ReportDAO{
		db: db,
	}
}

type AdminTotals struct {
	TotalUsers   int64
	TotalEvents  int64
	TotalRevenue decimal.Decimal
	ActiveEvents int64
}

func (d *ReportDAO) AdminTotals(ctx context.Context, today time.Time) (AdminTotals, error) {
	var t AdminTotals
	err := d.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM events) AS total_events,
			(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = ?) AS total_revenue,
			(SELECT COUNT(*) FROM events WHERE status = ? AND date >= ?) AS active_events`,
		string(domain.PaymentCompleted), string(domain.EventApproved), today,
	).Scan(&t).Error

	return t, err
}

type OrganizerTotals struct {
	TotalEvents    int64
	TotalRevenue   decimal.Decimal
	TicketsSold    int64
	UpcomingEvents int64
}

func (d *ReportDAO) OrganizerTotals(ctx context.Context, organizerID uint, today time.Time) (OrganizerTotals, error) {
	var t OrganizerTotals
	err := d.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM events WHERE organizer_id = @org) AS total_events,
			(SELECT COALESCE(SUM(p.amount), 0)
			   FROM payments p
			   JOIN bookings b ON b.id = p.booking_id
			   JOIN events e ON e.id = b.event_id
			  WHERE e.organizer_id = @org AND p.status = @paid) AS total_revenue,
			(SELECT COALESCE(SUM(b.quantity), 0)
			   FROM bookings b
			   JOIN events e ON e.id = b.event_id
			  WHERE e.organizer_id = @org AND b.status = @confirmed) AS tickets_sold,
			(SELECT COUNT(*) FROM events
			  WHERE organizer_id = @org AND status = @approved AND date >= @today) AS upcoming_events`,
		map[string]interface{}{
			"org":       organizerID,
			"paid":      string(domain.PaymentCompleted),
			"confirmed": string(domain.BookingConfirmed),
			"approved":  string(domain.EventApproved),
			"today":     today,
		},
	).Scan(&t).Error

	return t, err
}

type MonthlySalesRow struct {
	Year         int
	Month        int
	TotalRevenue decimal.Decimal
	TotalTickets int64
}

func (d *ReportDAO) MonthlySales(ctx context.Context) ([]MonthlySalesRow, error) {
	var rows []MonthlySalesRow
	err := d.db.WithContext(ctx).Raw(`
		SELECT
			EXTRACT(YEAR FROM booking_date)::int AS year,
			EXTRACT(MONTH FROM booking_date)::int AS month,
			COALESCE(SUM(total_amount), 0) AS total_revenue,
			COALESCE(SUM(quantity), 0) AS total_tickets
		FROM bookings
		WHERE status = ?
		GROUP BY 1, 2
		ORDER BY 1 DESC, 2 DESC`,
		string(domain.BookingConfirmed),
	).Scan(&rows).Error

	return rows, err
}

type EventSalesRow struct {
	EventID          uint
	Title            string
	Date             time.Time
	TotalTicketsSold int64
	AvailableTickets int
	Status           string
}

func (d *ReportDAO) EventSales(ctx context.Context) ([]EventSalesRow, error) {
	var rows []EventSalesRow
	err := d.db.WithContext(ctx).Raw(`
		SELECT
			e.id AS event_id, e.title, e.date,
			COALESCE(SUM(b.quantity) FILTER (WHERE b.status = ?), 0) AS total_tickets_sold,
			e.available_tickets, e.status
		FROM events e
		LEFT JOIN bookings b ON b.event_id = e.id
		GROUP BY e.id
		ORDER BY e.date DESC, e.id`,
		string(domain.BookingConfirmed),
	).Scan(&rows).Error

	return rows, err
}

func (d *ReportDAO) Users(ctx context.Context) ([]User, error) {
	var users []User
	err := d.db.WithContext(ctx).Order("date_joined DESC").Find(&users).Error

	return users, err
}

// rangeScope restricts confirmed bookings of an organizer to [from, until) and optionally one event.
func rangeScope(r domain.ReportRange) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("e.organizer_id = ? AND b.status = ? AND b.booking_date >= ? AND b.booking_date < ?",
			r.OrganizerID, string(domain.BookingConfirmed), r.From, r.Until())
		if r.EventID != 0 {
			db = db.Where("e.id = ?", r.EventID)
		}
		return db
	}
}

func (d *ReportDAO) bookings(ctx context.Context, r domain.ReportRange) *gorm.DB {
	return d.db.WithContext(ctx).Table("bookings AS b").
		Joins("JOIN events e ON e.id = b.event_id").
		Scopes(rangeScope(r))
}

type SalesTotals struct {
	TotalRevenue     decimal.Decimal
	TotalTicketsSold int64
}

func (d *ReportDAO) SalesTotals(ctx context.Context, r domain.ReportRange) (SalesTotals, error) {
	var t SalesTotals
	err := d.bookings(ctx, r).
		Select("COALESCE(SUM(b.total_amount), 0) AS total_revenue, COALESCE(SUM(b.quantity), 0) AS total_tickets_sold").
		Scan(&t).Error

	return t, err
}

type DailySalesRow struct {
	Day     time.Time
	Tickets int64
}

func (d *ReportDAO) DailySales(ctx context.Context, r domain.ReportRange) ([]DailySalesRow, error) {
	var rows []DailySalesRow
	err := d.bookings(ctx, r).
		Select("DATE(b.booking_date) AS day, SUM(b.quantity) AS tickets").
		Group("DATE(b.booking_date)").
		Order("day").
		Scan(&rows).Error

	return rows, err
}

type CityRow struct {
	City    string
	Tickets int64
}

// TopCities ranks attendee cities by tickets bought.
func (d *ReportDAO) TopCities(ctx context.Context, r domain.ReportRange, limit int) ([]CityRow, error) {
	var rows []CityRow
	err := d.bookings(ctx, r).
		Joins("JOIN users u ON u.id = b.user_id").
		Where("u.city <> ''").
		Select("u.city AS city, SUM(b.quantity) AS tickets").
		Group("u.city").
		Order("tickets DESC, city").
		Limit(limit).
		Scan(&rows).Error

	return rows, err
}

type AmountRow struct {
	Name   string
	Amount decimal.Decimal
}

func (d *ReportDAO) payments(ctx context.Context, r domain.ReportRange) *gorm.DB {
	return d.bookings(ctx, r).
		Joins("JOIN payments p ON p.booking_id = b.id").
		Where("p.status = ?", string(domain.PaymentCompleted))
}

func (d *ReportDAO) RevenueByEvent(ctx context.Context, r domain.ReportRange) ([]AmountRow, error) {
	var rows []AmountRow
	err := d.payments(ctx, r).
		Select("e.title AS name, SUM(p.amount) AS amount").
		Group("e.id, e.title").
		Order("amount DESC, name").
		Scan(&rows).Error

	return rows, err
}

func (d *ReportDAO) RevenueByMethod(ctx context.Context, r domain.ReportRange) ([]AmountRow, error) {
	var rows []AmountRow
	err := d.payments(ctx, r).
		Select("p.method AS name, SUM(p.amount) AS amount").
		Group("p.method").
		Order("amount DESC, name").
		Scan(&rows).Error

	return rows, err
}

// EventIDs returns the ids of the events that sold tickets in the range.
func (d *ReportDAO) EventIDs(ctx context.Context, r domain.ReportRange) ([]uint, error) {
	var ids []uint
	err := d.bookings(ctx, r).Select("DISTINCT e.id").Scan(&ids).Error

	return ids, err
}
