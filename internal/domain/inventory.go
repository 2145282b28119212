package domain

import "fmt"

// NewInventory returns the counters of a freshly created event.
func NewInventory(total int) (totalTickets, availableTickets int, err error) {
	if total < 1 {
		return 0, 0, NewValidationError("total_tickets", "must be at least 1")
	}
	return total, total, nil
}

// ApplyTotalChange resizes the event keeping every sold ticket sold.
func ApplyTotalChange(e *Event, newTotal int) error {
	if newTotal < 1 {
		return NewValidationError("total_tickets", "must be at least 1")
	}
	sold := e.Sold()
	if newTotal < sold {
		return fmt.Errorf("event %d: %d tickets sold, requested total %d: %w", e.ID, sold, newTotal, ErrCapacityViolation)
	}
	e.AvailableTickets = newTotal - sold
	e.TotalTickets = newTotal
	return nil
}

// Reserve takes quantity tickets out of the available pool.
// The persistent store performs the same check as a single conditional update.
func Reserve(e *Event, quantity int) error {
	if quantity < 1 {
		return NewValidationError("quantity", "must be at least 1")
	}
	if quantity > e.AvailableTickets {
		return fmt.Errorf("event %d: requested %d, available %d: %w", e.ID, quantity, e.AvailableTickets, ErrInsufficientInventory)
	}
	e.AvailableTickets -= quantity
	return nil
}

// Release puts quantity tickets back, never above the total.
func Release(e *Event, quantity int) {
	e.AvailableTickets = min(e.TotalTickets, e.AvailableTickets+quantity)
}
