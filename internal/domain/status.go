package domain

import "fmt"

type EventStatus string

const (
	EventPending   EventStatus = "Pending"
	EventApproved  EventStatus = "Approved"
	EventRejected  EventStatus = "Rejected"
	EventCancelled EventStatus = "Cancelled"
)

var eventTransitions = map[EventStatus][]EventStatus{
	EventPending:   {EventApproved, EventRejected, EventCancelled},
	EventApproved:  {EventPending, EventRejected, EventCancelled},
	EventRejected:  {EventCancelled},
	EventCancelled: nil,
}

func (s EventStatus) Valid() bool {
	_, ok := eventTransitions[s]
	return ok
}

func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	for _, allowed := range eventTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the moderation table allows it.
func (s EventStatus) TransitionTo(next EventStatus) (EventStatus, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("%s -> %s: %w", s, next, ErrInvalidTransition)
	}
	return next, nil
}

func ParseEventStatus(s string) (EventStatus, error) {
	st := EventStatus(s)
	if !st.Valid() {
		return "", NewValidationError("status", fmt.Sprintf("unknown event status %q", s))
	}
	return st, nil
}

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
)

func (s BookingStatus) TransitionTo(next BookingStatus) (BookingStatus, error) {
	if s == BookingConfirmed && next == BookingCancelled {
		return next, nil
	}
	return s, fmt.Errorf("booking %s -> %s: %w", s, next, ErrInvalidTransition)
}

type TicketStatus string

const (
	TicketValid     TicketStatus = "Valid"
	TicketUsed      TicketStatus = "Used"
	TicketCancelled TicketStatus = "Cancelled"
)

var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketValid:     {TicketUsed, TicketCancelled},
	TicketUsed:      nil,
	TicketCancelled: nil,
}

func (s TicketStatus) TransitionTo(next TicketStatus) (TicketStatus, error) {
	for _, allowed := range ticketTransitions[s] {
		if allowed == next {
			return next, nil
		}
	}
	return s, fmt.Errorf("ticket %s -> %s: %w", s, next, ErrInvalidTransition)
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
	PaymentRefunded  PaymentStatus = "Refunded"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:   {PaymentCompleted, PaymentFailed},
	PaymentCompleted: {PaymentRefunded},
	PaymentFailed:    nil,
	PaymentRefunded:  nil,
}

func (s PaymentStatus) TransitionTo(next PaymentStatus) (PaymentStatus, error) {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return next, nil
		}
	}
	return s, fmt.Errorf("payment %s -> %s: %w", s, next, ErrInvalidTransition)
}

type PaymentMethod string

const (
	PaymentCreditCard    PaymentMethod = "CreditCard"
	PaymentDebitCard     PaymentMethod = "DebitCard"
	PaymentMobilePayment PaymentMethod = "MobilePayment"
	PaymentCash          PaymentMethod = "Cash"
)

var PaymentMethods = []PaymentMethod{PaymentCreditCard, PaymentDebitCard, PaymentMobilePayment, PaymentCash}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for _, m := range PaymentMethods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", NewValidationError("payment_method", fmt.Sprintf("unsupported payment method %q", s))
}

// AttemptState tracks one PlaceBooking call: Draft -> Reserved -> Confirmed, or Draft -> Failed.
type AttemptState string

const (
	AttemptDraft     AttemptState = "draft"
	AttemptReserved  AttemptState = "reserved"
	AttemptConfirmed AttemptState = "confirmed"
	AttemptFailed    AttemptState = "failed"
)

func (s AttemptState) Next(next AttemptState) (AttemptState, error) {
	switch {
	case s == AttemptDraft && (next == AttemptReserved || next == AttemptFailed),
		s == AttemptReserved && (next == AttemptConfirmed || next == AttemptFailed):
		return next, nil
	}
	return s, fmt.Errorf("attempt %s -> %s: %w", s, next, ErrInvalidTransition)
}
