package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxTicketsPerBooking = 10

type Booking struct {
	ID            uint            `json:"id"`
	Reference     string          `json:"reference"`
	UserID        uint            `json:"user_id"`
	EventID       uint            `json:"event_id"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Discount      decimal.Decimal `json:"discount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PromotionCode string          `json:"promotion_code,omitempty"`
	BookingDate   time.Time       `json:"booking_date"`
	Status        BookingStatus   `json:"status"`
	CancelledAt   *time.Time      `json:"cancelled_at,omitempty"`
	Tickets       []Ticket        `json:"tickets"`
	Payment       *Payment        `json:"payment,omitempty"`

	Event *Event `json:"event,omitempty"`
}

type Ticket struct {
	ID            uint         `json:"id"`
	Number        string       `json:"number"`
	BookingID     uint         `json:"booking_id"`
	AttendeeName  string       `json:"attendee_name"`
	AttendeeEmail string       `json:"attendee_email"`
	QRPayload     string       `json:"qr_payload"`
	Status        TicketStatus `json:"status"`
	ScannedAt     *time.Time   `json:"scanned_at,omitempty"`
}

type Payment struct {
	ID           uint             `json:"id"`
	Reference    string           `json:"reference"`
	BookingID    uint             `json:"booking_id"`
	Amount       decimal.Decimal  `json:"amount"`
	Method       PaymentMethod    `json:"method"`
	Status       PaymentStatus    `json:"status"`
	PaymentDate  time.Time        `json:"payment_date"`
	RefundAmount *decimal.Decimal `json:"refund_amount,omitempty"`
}

// TicketDetails is a ticket with the booking and event it admits to.
type TicketDetails struct {
	Ticket
	BookingReference string        `json:"booking_reference"`
	BookingStatus    BookingStatus `json:"booking_status"`
	Event            Event         `json:"event"`
}

type Attendee struct {
	Name  string
	Email string
}

// BookingRequest is the input of PlaceBooking once the caller has been identified.
type BookingRequest struct {
	EventID       uint
	Quantity      int
	Attendees     []Attendee
	PaymentMethod PaymentMethod
	PromotionCode string
}

func (r BookingRequest) Validate() error {
	verr := &ValidationError{Fields: map[string]string{}}
	if r.Quantity < 1 {
		verr.Fields["quantity"] = "must be at least 1"
	} else if r.Quantity > MaxTicketsPerBooking {
		verr.Fields["quantity"] = fmt.Sprintf("must be at most %d", MaxTicketsPerBooking)
	}
	if len(r.Attendees) > 0 && len(r.Attendees) != r.Quantity {
		verr.Fields["attendees"] = "one attendee per ticket is required"
	}
	if r.PaymentMethod == "" {
		verr.Fields["payment_method"] = "is required"
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func NewBookingReference() string {
	return "BK-" + shortID(10)
}

func NewPaymentReference() string {
	return "PAY-" + shortID(12)
}

func NewTicketNumber() string {
	return "TK-" + shortID(16)
}

// QRPayload binds a ticket to its booking; the nonce keeps payloads unguessable.
func QRPayload(bookingRef, ticketNumber string) string {
	return fmt.Sprintf("STAREVENTS|%s|%s|%s", bookingRef, ticketNumber, uuid.NewString())
}

func shortID(n int) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return id[:n]
}

// NewBooking assembles a confirmed booking with one ticket per unit and a completed payment.
func NewBooking(userID uint, booker User, event Event, req BookingRequest, discount decimal.Decimal, now time.Time) Booking {
	subtotal := event.TicketPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))
	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	b := Booking{
		Reference:     NewBookingReference(),
		UserID:        userID,
		EventID:       event.ID,
		Quantity:      req.Quantity,
		UnitPrice:     event.TicketPrice,
		Discount:      discount,
		TotalAmount:   total,
		PromotionCode: req.PromotionCode,
		BookingDate:   now,
		Status:        BookingConfirmed,
	}

	b.Tickets = make([]Ticket, req.Quantity)
	for i := range b.Tickets {
		name, email := booker.FullName(), booker.Email
		if len(req.Attendees) == req.Quantity {
			name, email = req.Attendees[i].Name, req.Attendees[i].Email
		}
		number := NewTicketNumber()
		b.Tickets[i] = Ticket{
			Number:        number,
			AttendeeName:  name,
			AttendeeEmail: email,
			QRPayload:     QRPayload(b.Reference, number),
			Status:        TicketValid,
		}
	}

	b.Payment = &Payment{
		Reference:   NewPaymentReference(),
		Amount:      total,
		Method:      req.PaymentMethod,
		Status:      PaymentCompleted,
		PaymentDate: now,
	}

	return b
}

// CanView reports whether the actor may read the booking. organizerID owns the booked event.
func (b Booking) CanView(a Actor, organizerID uint) bool {
	return a.UserID == b.UserID || a.Can(CapViewAnyBooking) || (a.Role == RoleOrganizer && a.UserID == organizerID)
}
