package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AdminDashboard struct {
	TotalUsers   int64           `json:"total_users"`
	TotalEvents  int64           `json:"total_events"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	ActiveEvents int64           `json:"active_events"`
}

type OrganizerDashboard struct {
	TotalEvents    int64           `json:"total_events"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TicketsSold    int64           `json:"tickets_sold"`
	UpcomingEvents int64           `json:"upcoming_events"`
}

type MonthlySales struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalTickets int64           `json:"total_tickets"`
}

type EventReportRow struct {
	EventID          uint        `json:"event_id"`
	Title            string      `json:"title"`
	Date             time.Time   `json:"date"`
	TotalTicketsSold int64       `json:"total_tickets_sold"`
	AvailableTickets int         `json:"available_tickets"`
	Status           EventStatus `json:"status"`
}

type UserReportRow struct {
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registration_date"`
	Role             Role      `json:"role"`
}

// ReportRange selects bookings or payments dated in [From, To] inclusive of the whole To day.
type ReportRange struct {
	OrganizerID uint
	EventID     uint
	From        time.Time
	To          time.Time
}

// Until is the exclusive upper bound of the range.
func (r ReportRange) Until() time.Time {
	return r.To.AddDate(0, 0, 1)
}

type DailySales struct {
	Day     time.Time `json:"day"`
	Tickets int64     `json:"tickets"`
}

type CityCount struct {
	City    string `json:"city"`
	Tickets int64  `json:"tickets"`
}

type SalesReport struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalTicketsSold int64           `json:"total_tickets_sold"`
	SalesTrend       []DailySales    `json:"sales_trend"`
	TopCities        []CityCount     `json:"top_cities"`
}

type NamedAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type AttendanceItem struct {
	EventID        uint            `json:"event_id"`
	EventTitle     string          `json:"event_title"`
	TotalCapacity  int             `json:"total_capacity"`
	TicketsSold    int             `json:"tickets_sold"`
	AttendanceRate decimal.Decimal `json:"attendance_rate"`
}

type RevenueReport struct {
	TotalRevenue          decimal.Decimal  `json:"total_revenue"`
	TotalTicketsSold      int64            `json:"total_tickets_sold"`
	TotalTicketsAvailable int64            `json:"total_tickets_available"`
	OverallAttendanceRate decimal.Decimal  `json:"overall_attendance_rate"`
	RevenueByEvent        []NamedAmount    `json:"revenue_by_event"`
	RevenueByMethod       []NamedAmount    `json:"revenue_by_payment_method"`
	AttendanceSummary     []AttendanceItem `json:"attendance_summary"`
}

// Rate returns part/whole as a percentage rounded to one decimal place.
func Rate(part, whole int64) decimal.Decimal {
	if whole <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(whole)).Round(1)
}

// Attendance builds the per-event summary from the events that appear in a revenue report.
func Attendance(events []Event) ([]AttendanceItem, int64, int64) {
	items := make([]AttendanceItem, 0, len(events))
	var capacity, sold int64
	for _, e := range events {
		items = append(items, AttendanceItem{
			EventID:        e.ID,
			EventTitle:     e.Title,
			TotalCapacity:  e.TotalTickets,
			TicketsSold:    e.Sold(),
			AttendanceRate: Rate(int64(e.Sold()), int64(e.TotalTickets)),
		})
		capacity += int64(e.TotalTickets)
		sold += int64(e.Sold())
	}
	return items, capacity, sold
}
