package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromotion_Discount(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cap20 := decimal.NewFromInt(20)
	base := Promotion{
		Code:            "SPRING",
		DiscountType:    DiscountPercentage,
		DiscountValue:   decimal.NewFromInt(10),
		MinimumPurchase: decimal.NewFromInt(50),
		StartsAt:        now.AddDate(0, 0, -1),
		EndsAt:          now.AddDate(0, 0, 1),
		UsageLimit:      5,
		IsActive:        true,
	}

	tests := []struct {
		name     string
		mutate   func(p *Promotion)
		subtotal string
		want     string
		wantErr  bool
	}{
		{name: "percentage", subtotal: "120.00", want: "12"},
		{name: "capped", mutate: func(p *Promotion) { p.MaximumDiscount = &cap20 }, subtotal: "500", want: "20"},
		{name: "fixed above subtotal", mutate: func(p *Promotion) {
			p.DiscountType = DiscountFixed
			p.DiscountValue = decimal.NewFromInt(80)
		}, subtotal: "60", want: "60"},
		{name: "below minimum", subtotal: "49.99", wantErr: true},
		{name: "inactive", mutate: func(p *Promotion) { p.IsActive = false }, subtotal: "100", wantErr: true},
		{name: "expired", mutate: func(p *Promotion) { p.EndsAt = now.Add(-time.Hour) }, subtotal: "100", wantErr: true},
		{name: "used up", mutate: func(p *Promotion) { p.UsedCount = 5 }, subtotal: "100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			if tt.mutate != nil {
				tt.mutate(&p)
			}

			got, err := p.Discount(decimal.RequireFromString(tt.subtotal), now)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestPromotion_Validate(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	p := Promotion{
		DiscountType:  DiscountPercentage,
		DiscountValue: decimal.NewFromInt(150),
		StartsAt:      now,
		EndsAt:        now,
	}

	var verr *ValidationError
	require.ErrorAs(t, p.Validate(), &verr)
	assert.Contains(t, verr.Fields, "code")
	assert.Contains(t, verr.Fields, "discount_value")
	assert.Contains(t, verr.Fields, "ends_at")
}
