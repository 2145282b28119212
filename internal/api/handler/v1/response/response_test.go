package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"

	"github.com/starevents/starevents-api/internal/domain"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("s.Place -> %w", domain.NewValidationError("quantity", "must be at least 1")),
			wantStatus: http.StatusBadRequest,
			wantText:   "validation failed",
		},
		{
			name:       "insufficient inventory",
			err:        fmt.Errorf("r.dao.Reserve -> %w", domain.ErrInsufficientInventory),
			wantStatus: http.StatusConflict,
			wantText:   "not enough tickets",
		},
		{name: "capacity", err: domain.ErrCapacityViolation, wantStatus: http.StatusUnprocessableEntity},
		{name: "not bookable", err: domain.ErrEventNotBookable, wantStatus: http.StatusConflict},
		{name: "not authorized", err: domain.ErrNotAuthorized, wantStatus: http.StatusForbidden, wantText: "permission denied"},
		{name: "not found", err: domain.ErrBookingNotFound, wantStatus: http.StatusNotFound, wantText: "booking not found"},
		{name: "duplicate", err: domain.ErrVenueNameExists, wantStatus: http.StatusConflict},
		{
			name:       "invalid transition keeps its message",
			err:        domain.ErrInvalidTransition,
			wantStatus: http.StatusConflict,
			wantText:   domain.ErrInvalidTransition.Error(),
		},
		{
			name:       "stale version",
			err:        fmt.Errorf("r.dao.Update -> %w", domain.ErrConflict),
			wantStatus: http.StatusConflict,
			wantText:   "updated by someone else, please retry",
		},
		{
			name:       "unknown",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantText:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromDomain(tt.err)

			assert.Equal(t, tt.wantStatus, got.HTTPStatusCode)
			assert.Equal(t, http.StatusText(tt.wantStatus), got.StatusText)
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, got.ErrorText)
			}
			assert.ErrorIs(t, got.Err, tt.err)
		})
	}
}

func TestErrBadRequest_Fields(t *testing.T) {
	got := ErrBadRequest(validation.Errors{
		"email":    errors.New("must be a valid email address"),
		"password": errors.New("cannot be blank"),
	})
	assert.Equal(t, map[string]string{
		"email":    "must be a valid email address",
		"password": "cannot be blank",
	}, got.Fields)
	assert.Equal(t, "validation failed", got.ErrorText)

	got = ErrBadRequest(errors.New("EOF"))
	assert.Nil(t, got.Fields)
	assert.Equal(t, "EOF", got.ErrorText)
}
