package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInventory(t *testing.T) {
	total, available, err := NewInventory(50)
	require.NoError(t, err)
	assert.Equal(t, 50, total)
	assert.Equal(t, 50, available)

	_, _, err = NewInventory(0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestApplyTotalChange(t *testing.T) {
	tests := []struct {
		name          string
		total, avail  int
		newTotal      int
		wantAvailable int
		wantErr       error
	}{
		{name: "grow keeps sold", total: 100, avail: 40, newTotal: 150, wantAvailable: 90},
		{name: "shrink to sold", total: 100, avail: 40, newTotal: 60, wantAvailable: 0},
		{name: "below sold", total: 100, avail: 40, newTotal: 59, wantErr: ErrCapacityViolation},
		{name: "zero", total: 100, avail: 100, newTotal: 0, wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{TotalTickets: tt.total, AvailableTickets: tt.avail}

			err := ApplyTotalChange(&e, tt.newTotal)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.total, e.TotalTickets)
				assert.Equal(t, tt.avail, e.AvailableTickets)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.newTotal, e.TotalTickets)
			assert.Equal(t, tt.wantAvailable, e.AvailableTickets)
			assert.Equal(t, tt.total-tt.avail, e.Sold())
		})
	}
}

func TestReserveAndRelease(t *testing.T) {
	e := Event{ID: 1, TotalTickets: 5, AvailableTickets: 5}

	require.NoError(t, Reserve(&e, 3))
	assert.Equal(t, 2, e.AvailableTickets)

	err := Reserve(&e, 3)
	assert.ErrorIs(t, err, ErrInsufficientInventory)
	assert.Equal(t, 2, e.AvailableTickets)

	assert.ErrorIs(t, Reserve(&e, 0), ErrValidation)

	Release(&e, 3)
	assert.Equal(t, 5, e.AvailableTickets)
	Release(&e, 10)
	assert.Equal(t, 5, e.AvailableTickets)
}
