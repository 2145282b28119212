package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "Percentage"
	DiscountFixed      DiscountType = "Fixed"
)

type Promotion struct {
	ID              uint             `json:"id"`
	Code            string           `json:"code"`
	Description     string           `json:"description"`
	DiscountType    DiscountType     `json:"discount_type"`
	DiscountValue   decimal.Decimal  `json:"discount_value"`
	MinimumPurchase decimal.Decimal  `json:"minimum_purchase"`
	MaximumDiscount *decimal.Decimal `json:"maximum_discount,omitempty"`
	StartsAt        time.Time        `json:"starts_at"`
	EndsAt          time.Time        `json:"ends_at"`
	UsageLimit      int              `json:"usage_limit"`
	UsedCount       int              `json:"used_count"`
	IsActive        bool             `json:"is_active"`
}

// Discount computes what the promotion takes off subtotal at now.
func (p Promotion) Discount(subtotal decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	switch {
	case !p.IsActive:
		return decimal.Zero, NewValidationError("promotion_code", "promotion is not active")
	case now.Before(p.StartsAt) || now.After(p.EndsAt):
		return decimal.Zero, NewValidationError("promotion_code", "promotion is not running")
	case p.UsageLimit > 0 && p.UsedCount >= p.UsageLimit:
		return decimal.Zero, NewValidationError("promotion_code", "promotion usage limit reached")
	case subtotal.LessThan(p.MinimumPurchase):
		return decimal.Zero, NewValidationError("promotion_code", fmt.Sprintf("minimum purchase is %s", p.MinimumPurchase.StringFixed(2)))
	}

	var d decimal.Decimal
	switch p.DiscountType {
	case DiscountPercentage:
		d = subtotal.Mul(p.DiscountValue).Div(decimal.NewFromInt(100)).Round(2)
	case DiscountFixed:
		d = p.DiscountValue
	default:
		return decimal.Zero, NewValidationError("promotion_code", "unknown discount type")
	}

	if p.MaximumDiscount != nil && d.GreaterThan(*p.MaximumDiscount) {
		d = *p.MaximumDiscount
	}
	if d.GreaterThan(subtotal) {
		d = subtotal
	}
	return d, nil
}

func (p Promotion) Validate() error {
	verr := &ValidationError{Fields: map[string]string{}}
	if p.Code == "" {
		verr.Fields["code"] = "is required"
	}
	if p.DiscountType != DiscountPercentage && p.DiscountType != DiscountFixed {
		verr.Fields["discount_type"] = "must be Percentage or Fixed"
	}
	if !p.DiscountValue.IsPositive() {
		verr.Fields["discount_value"] = "must be positive"
	} else if p.DiscountType == DiscountPercentage && p.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		verr.Fields["discount_value"] = "must be at most 100 percent"
	}
	if !p.EndsAt.After(p.StartsAt) {
		verr.Fields["ends_at"] = "must be after starts_at"
	}
	if p.UsageLimit < 0 {
		verr.Fields["usage_limit"] = "must not be negative"
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
