package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "beauty_booking"

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	bookings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking attempts by outcome (created, slot_taken, rejected, failed).",
		},
		[]string{"outcome"},
	)

	completions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointment_completions_total",
			Help:      "Completion requests by outcome (completed, already_completed).",
		},
		[]string{"outcome"},
	)
)

const (
	BookingCreated   = "created"
	BookingSlotTaken = "slot_taken"
	BookingRejected  = "rejected"
	BookingFailed    = "failed"

	CompletionDone = "completed"
	CompletionNoop = "already_completed"
)

// Register registers collectors with the default registry. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, bookings, completions)
	})
}

func ObserveHTTP(route, method, status string, seconds float64) {
	httpRequests.WithLabelValues(route, method, status).Inc()
	httpDuration.WithLabelValues(route, method).Observe(seconds)
}

func IncBooking(outcome string) {
	bookings.WithLabelValues(outcome).Inc()
}

func IncCompletion(outcome string) {
	completions.WithLabelValues(outcome).Inc()
}
