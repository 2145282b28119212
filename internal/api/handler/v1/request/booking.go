package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/starevents/starevents-api/internal/domain"
)

type AttendeeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (a AttendeeRequest) Validate() error {
	return validation.ValidateStruct(
		&a,
		validation.Field(&a.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&a.Email, validation.Required, is.Email),
	)
}

type BookingRequest struct {
	Quantity      int               `json:"quantity"`
	Attendees     []AttendeeRequest `json:"attendees,omitempty"`
	PaymentMethod string            `json:"payment_method" example:"CreditCard"`
	PromotionCode string            `json:"promotion_code,omitempty"`
}

func (req *BookingRequest) Validate() error {
	methods := make([]interface{}, 0, len(domain.PaymentMethods))
	for _, m := range domain.PaymentMethods {
		methods = append(methods, string(m))
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Quantity, validation.Required, validation.Min(1), validation.Max(domain.MaxTicketsPerBooking)),
		validation.Field(&req.Attendees),
		validation.Field(&req.PaymentMethod, validation.Required, validation.In(methods...)),
		validation.Field(&req.PromotionCode, validation.Length(0, 50)),
	)
}

func (req *BookingRequest) Booking(eventID uint) domain.BookingRequest {
	attendees := make([]domain.Attendee, 0, len(req.Attendees))
	for _, a := range req.Attendees {
		attendees = append(attendees, domain.Attendee{Name: a.Name, Email: a.Email})
	}

	return domain.BookingRequest{
		EventID:       eventID,
		Quantity:      req.Quantity,
		Attendees:     attendees,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		PromotionCode: req.PromotionCode,
	}
}
