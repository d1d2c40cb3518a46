package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the booking and infrastructure metrics of the service.
type Metrics struct {
	// Booking metrics
	AppointmentsCreated  prometheus.Counter
	AppointmentsRejected *prometheus.CounterVec
	StatusUpdates        *prometheus.CounterVec
	PaymentStatusUpdates *prometheus.CounterVec
	AppointmentsDeleted  prometheus.Counter

	// Event metrics
	EventsPublished *prometheus.CounterVec
	EventsFailed    *prometheus.CounterVec
}

// New creates the metrics and registers them with reg. A nil reg leaves them unregistered.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AppointmentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_created_total",
			Help:      "Total number of booked appointments",
		}),
		AppointmentsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_rejected_total",
			Help:      "Total number of rejected booking attempts",
		}, []string{"reason"}),
		StatusUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointment_status_updates_total",
			Help:      "Total number of appointment status changes",
		}, []string{"status"}),
		PaymentStatusUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointment_payment_status_updates_total",
			Help:      "Total number of appointment payment status changes",
		}, []string{"payment_status"}),
		AppointmentsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_deleted_total",
			Help:      "Total number of deleted appointments",
		}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Total number of published domain events",
		}, []string{"event_type"}),
		EventsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_failed_total",
			Help:      "Total number of domain events that could not be published",
		}, []string{"event_type"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.AppointmentsCreated,
			m.AppointmentsRejected,
			m.StatusUpdates,
			m.PaymentStatusUpdates,
			m.AppointmentsDeleted,
			m.EventsPublished,
			m.EventsFailed,
		)
	}
	return m
}
