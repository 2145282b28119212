package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the core wraps exactly one of them so
// callers can switch on errors.Is without knowing the specific cause.
var (
	ErrValidation            = errors.New("validation failed")
	ErrInsufficientInventory = errors.New("not enough tickets")
	ErrCapacityViolation     = errors.New("total tickets below tickets already sold")
	ErrEventNotBookable      = errors.New("event is not bookable")
	ErrNotAuthorized         = errors.New("not authorized")
	ErrNotFound              = errors.New("not found")
	ErrConflict              = errors.New("updated by someone else, please retry")
	ErrDuplicate             = errors.New("already exists")
)

var (
	ErrEventNotFound     = fmt.Errorf("event %w", ErrNotFound)
	ErrBookingNotFound   = fmt.Errorf("booking %w", ErrNotFound)
	ErrTicketNotFound    = fmt.Errorf("ticket %w", ErrNotFound)
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrVenueNotFound     = fmt.Errorf("venue %w", ErrNotFound)
	ErrCategoryNotFound  = fmt.Errorf("category %w", ErrNotFound)
	ErrPromotionNotFound = fmt.Errorf("promotion %w", ErrNotFound)

	ErrUserEmailExists    = fmt.Errorf("user email %w", ErrDuplicate)
	ErrVenueNameExists    = fmt.Errorf("venue name %w", ErrDuplicate)
	ErrCategoryNameExists = fmt.Errorf("category name %w", ErrDuplicate)
	ErrPromotionExists    = fmt.Errorf("promotion code %w", ErrDuplicate)

	ErrInvalidTransition = fmt.Errorf("invalid status transition: %w", ErrConflict)
	ErrUserHasDependents = fmt.Errorf("user owns events or venues: %w", ErrConflict)
)

// ValidationError carries field level messages for caller-correctable input.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		for f, m := range e.Fields {
			return fmt.Sprintf("%s: %s", f, m)
		}
	}
	return fmt.Sprintf("%d invalid fields", len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
