package request

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/starevents/starevents-api/internal/domain"
)

var (
	timeOfDayExp = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	priceExp     = regexp.MustCompile(`^\d{1,8}(\.\d{1,2})?$`)
)

// EventRequest is accepted as JSON or as multipart form fields next to an "image" file.
type EventRequest struct {
	Title        string `json:"title" form:"title"`
	Description  string `json:"description" form:"description"`
	Date         string `json:"date" form:"date" example:"2026-12-31"`
	Time         string `json:"time" form:"time" example:"19:30"`
	TicketPrice  string `json:"ticket_price" form:"ticket_price" example:"25.00"`
	TotalTickets int    `json:"total_tickets" form:"total_tickets"`
	VenueID      uint   `json:"venue_id" form:"venue_id"`
	CategoryID   uint   `json:"category_id" form:"category_id"`
}

func (req *EventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Description, validation.Length(0, 5000)),
		validation.Field(&req.Date, validation.Required, validation.Date(domain.DateLayout)),
		validation.Field(&req.Time, validation.Required, validation.Match(timeOfDayExp)),
		validation.Field(&req.TicketPrice, validation.Required, validation.Match(priceExp)),
		validation.Field(&req.TotalTickets, validation.Required, validation.Min(1)),
		validation.Field(&req.VenueID, validation.Required),
		validation.Field(&req.CategoryID, validation.Required),
	)
}

// Details converts a validated request.
func (req *EventRequest) Details() (domain.EventDetails, error) {
	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return domain.EventDetails{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	price, err := decimal.NewFromString(req.TicketPrice)
	if err != nil {
		return domain.EventDetails{}, domain.NewValidationError("ticket_price", "must be a decimal amount")
	}

	return domain.EventDetails{
		Title:        req.Title,
		Description:  req.Description,
		Date:         date,
		Time:         req.Time,
		TicketPrice:  price.Round(2),
		TotalTickets: req.TotalTickets,
		VenueID:      req.VenueID,
		CategoryID:   req.CategoryID,
	}, nil
}

type EditEventRequest struct {
	EventRequest
	Version int `json:"version" form:"version"`
}

func (req *EditEventRequest) Validate() error {
	if err := req.EventRequest.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Version, validation.Required, validation.Min(1)),
	)
}

type EventQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	City     string `form:"city"`
	Sort     string `form:"sort"`
	Status   string `form:"status"`
}

func (q *EventQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Search, validation.Length(0, 200)),
		validation.Field(&q.Sort, validation.In(
			string(domain.SortDateAsc), string(domain.SortDateDesc), string(domain.SortNameDesc),
			string(domain.SortPriceAsc), string(domain.SortPriceDesc),
		)),
		validation.Field(&q.Status, validation.In(
			string(domain.EventPending), string(domain.EventApproved),
			string(domain.EventRejected), string(domain.EventCancelled),
		)),
	)
}

func (q *EventQuery) Filter() domain.EventFilter {
	return domain.EventFilter{
		Search:   q.Search,
		Category: q.Category,
		City:     q.City,
		Sort:     domain.EventSort(q.Sort),
		Status:   domain.EventStatus(q.Status),
	}
}
