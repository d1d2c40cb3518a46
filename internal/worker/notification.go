package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/doctor-channel/internal/email"
	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/pkg/messaging"
)

const dateTimeLayout = "Mon, 02 Jan 2006 15:04 MST"

// NotificationWorker emails patients when their appointment changes.
type NotificationWorker struct {
	broker    messaging.Broker
	channel   string
	email     email.Service
	logger    zerolog.Logger
	processed *prometheus.CounterVec
}

func NewNotificationWorker(broker messaging.Broker, channel string, emailSvc email.Service,
	logger zerolog.Logger, reg prometheus.Registerer) *NotificationWorker {
	processed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_processed_total",
		Help: "Appointment events handled by the notification worker",
	}, []string{"event_type", "result"})
	if reg != nil {
		reg.MustRegister(processed)
	}

	return &NotificationWorker{
		broker:    broker,
		channel:   channel,
		email:     emailSvc,
		logger:    logger.With().Str("component", "notification_worker").Logger(),
		processed: processed,
	}
}

// Start consumes events until ctx is done.
func (w *NotificationWorker) Start(ctx context.Context) error {
	w.logger.Info().Str("channel", w.channel).Msg("worker started")
	defer w.logger.Info().Msg("worker stopped")
	return messaging.Consume(ctx, w.broker, w.channel, w.handle)
}

func (w *NotificationWorker) handle(ctx context.Context, payload []byte) error {
	var evt model.AppointmentEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		w.processed.WithLabelValues("unknown", "invalid").Inc()
		return fmt.Errorf("failed to decode event: %w", err)
	}

	subject, body, ok := compose(evt)
	if !ok {
		w.processed.WithLabelValues(string(evt.Type), "skipped").Inc()
		return nil
	}

	if err := w.email.Send(ctx, evt.Appointment.PatientEmail, subject, body); err != nil {
		w.processed.WithLabelValues(string(evt.Type), "failed").Inc()
		return err
	}
	w.processed.WithLabelValues(string(evt.Type), "sent").Inc()
	w.logger.Debug().Str("appointment_id", evt.AppointmentID).Str("event_type", string(evt.Type)).Msg("notification sent")
	return nil
}

// compose renders the patient email for an event. Events without a
// recipient are skipped.
func compose(evt model.AppointmentEvent) (subject, body string, ok bool) {
	a := evt.Appointment
	if a == nil || a.PatientEmail == "" {
		return "", "", false
	}

	when := a.AppointmentDateTime.UTC().Format(dateTimeLayout)
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", a.PatientName)

	switch evt.Type {
	case model.EventAppointmentCreated:
		subject = "Appointment request received"
		fmt.Fprintf(&b, "We received your appointment request for %s.\n", when)
		fmt.Fprintf(&b, "Payment option: %s.\n", a.PaymentOption)
	case model.EventAppointmentStatusChanged:
		subject = "Appointment " + strings.ToLower(string(a.Status))
		fmt.Fprintf(&b, "Your appointment on %s is now %s.\n", when, a.Status)
	case model.EventAppointmentPaymentStatusChanged:
		subject = "Payment update"
		fmt.Fprintf(&b, "The payment for your appointment on %s is now %s.\n", when, a.PaymentStatus)
	case model.EventAppointmentDeleted:
		subject = "Appointment removed"
		fmt.Fprintf(&b, "Your appointment on %s has been removed.\n", when)
	default:
		return "", "", false
	}

	fmt.Fprintf(&b, "\nReference: %s\n", a.ID)
	return subject, b.String(), true
}
