package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/shopspring/decimal"

	"github.com/starevents/starevents-api/internal/domain"
)

type VenueRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Capacity     int    `json:"capacity"`
	ContactPhone string `json:"contact_phone,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	Facilities   string `json:"facilities,omitempty"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

func (req *VenueRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Address, validation.Required, validation.Length(1, 500)),
		validation.Field(&req.City, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&req.ContactPhone, validation.Length(0, 20)),
		validation.Field(&req.ContactEmail, is.Email),
	)
}

func (req *VenueRequest) Venue() domain.Venue {
	return domain.Venue{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		Capacity:     req.Capacity,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Facilities:   req.Facilities,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

func (req *CategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
	)
}

func (req *CategoryRequest) Category() domain.EventCategory {
	return domain.EventCategory{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
}

type PromotionRequest struct {
	Code            string `json:"code"`
	Description     string `json:"description,omitempty"`
	DiscountType    string `json:"discount_type" example:"Percentage"`
	DiscountValue   string `json:"discount_value" example:"10"`
	MinimumPurchase string `json:"minimum_purchase,omitempty" example:"0"`
	MaximumDiscount string `json:"maximum_discount,omitempty"`
	StartsAt        string `json:"starts_at" example:"2026-01-01"`
	EndsAt          string `json:"ends_at" example:"2026-12-31"`
	UsageLimit      int    `json:"usage_limit"`
}

func (req *PromotionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required, validation.Length(3, 50), is.Alphanumeric),
		validation.Field(&req.DiscountType, validation.Required, validation.In(string(domain.DiscountPercentage), string(domain.DiscountFixed))),
		validation.Field(&req.DiscountValue, validation.Required, validation.Match(priceExp)),
		validation.Field(&req.MinimumPurchase, validation.Match(priceExp)),
		validation.Field(&req.MaximumDiscount, validation.Match(priceExp)),
		validation.Field(&req.StartsAt, validation.Required, validation.Date(domain.DateLayout)),
		validation.Field(&req.EndsAt, validation.Required, validation.Date(domain.DateLayout)),
		validation.Field(&req.UsageLimit, validation.Min(0)),
	)
}

// Promotion converts a validated request. The promotion runs until the end of EndsAt.
func (req *PromotionRequest) Promotion() domain.Promotion {
	starts, _ := time.Parse(domain.DateLayout, req.StartsAt)
	ends, _ := time.Parse(domain.DateLayout, req.EndsAt)

	p := domain.Promotion{
		Code:            req.Code,
		Description:     req.Description,
		DiscountType:    domain.DiscountType(req.DiscountType),
		DiscountValue:   decimalOrZero(req.DiscountValue),
		MinimumPurchase: decimalOrZero(req.MinimumPurchase),
		StartsAt:        starts,
		EndsAt:          ends.AddDate(0, 0, 1).Add(-time.Second),
		UsageLimit:      req.UsageLimit,
	}
	if req.MaximumDiscount != "" {
		maxDiscount := decimalOrZero(req.MaximumDiscount)
		p.MaximumDiscount = &maxDiscount
	}

	return p
}

type ActiveRequest struct {
	IsActive bool `json:"is_active"`
}

type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	City      string `json:"city,omitempty"`
	Role      string `json:"role" example:"Organizer"`
}

func (req *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, strongPassword),
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Role, validation.Required, validation.In(roles()...)),
	)
}

func (req *CreateUserRequest) User() domain.User {
	return domain.User{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		City:      req.City,
		Role:      domain.Role(req.Role),
	}
}

type UserAccessRequest struct {
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func (req *UserAccessRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Role, validation.Required, validation.In(roles()...)),
	)
}

type UserQuery struct {
	Search string `form:"search"`
	Role   string `form:"role"`
}

func (q *UserQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.Role, validation.In(roles()...)),
	)
}

// RangeQuery selects a report period; both ends are optional.
type RangeQuery struct {
	From    string `form:"from" example:"2026-01-01"`
	To      string `form:"to" example:"2026-01-31"`
	EventID uint   `form:"event_id"`
}

func (q *RangeQuery) Validate() error {
	return validation.ValidateStruct(
		q,
		validation.Field(&q.From, validation.Date(domain.DateLayout)),
		validation.Field(&q.To, validation.Date(domain.DateLayout)),
	)
}

func (q *RangeQuery) Range() domain.ReportRange {
	r := domain.ReportRange{EventID: q.EventID}
	if q.From != "" {
		r.From, _ = time.Parse(domain.DateLayout, q.From)
	}
	if q.To != "" {
		r.To, _ = time.Parse(domain.DateLayout, q.To)
	}
	return r
}

func roles() []interface{} {
	out := make([]interface{}, 0, len(domain.Roles))
	for _, r := range domain.Roles {
		out = append(out, string(r))
	}
	return out
}

func decimalOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
