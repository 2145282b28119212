package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Booking outcomes.
const (
	OutcomeConfirmed    = "confirmed"
	OutcomeInsufficient = "insufficient_inventory"
	OutcomeNotBookable  = "not_bookable"
	OutcomeInvalid      = "invalid"
	OutcomeDenied       = "denied"
	OutcomeError        = "error"
)

var (
	bookings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starevents_bookings_total",
			Help: "Booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	bookingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "starevents_booking_duration_seconds",
			Help:    "Duration of PlaceBooking",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
		},
	)

	ticketsReserved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "starevents_tickets_reserved_total",
			Help: "Tickets taken out of inventory",
		},
	)

	ticketsReleased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "starevents_tickets_released_total",
			Help: "Tickets returned to inventory",
		},
	)

	moderation = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starevents_moderation_transitions_total",
			Help: "Event status transitions",
		},
		[]string{"from", "to"},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starevents_http_requests_total",
			Help: "HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)
)

func ObserveBooking(outcome string, took time.Duration) {
	bookings.WithLabelValues(outcome).Inc()
	bookingDuration.Observe(took.Seconds())
}

func TicketsReserved(n int) {
	ticketsReserved.Add(float64(n))
}

func TicketsReleased(n int) {
	ticketsReleased.Add(float64(n))
}

func ModerationTransition(from, to string) {
	moderation.WithLabelValues(from, to).Inc()
}

func HTTPRequest(method, route, status string) {
	httpRequests.WithLabelValues(method, route, status).Inc()
}
