package event

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/pkg/messaging"
	"github.com/jwalitptl/doctor-channel/pkg/metrics"
)

const publishTimeout = 3 * time.Second

type EventService struct {
	broker  messaging.Broker
	channel string
	metrics *metrics.Metrics
	logger  zerolog.Logger
	now     func() time.Time
}

func NewEventService(broker messaging.Broker, channel string, m *metrics.Metrics, logger zerolog.Logger) *EventService {
	return &EventService{
		broker:  broker,
		channel: channel,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// Emit publishes the event synchronously. Failures are logged and counted only.
func (s *EventService) Emit(ctx context.Context, eventType model.EventType, appointment *model.Appointment) {
	evt := model.AppointmentEvent{
		Type:        eventType,
		OccurredAt:  s.now().UTC(),
		Appointment: appointment,
	}
	if appointment != nil {
		evt.AppointmentID = appointment.ID
	}

	// The event outlives a cancelled request.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.broker.Publish(pubCtx, s.channel, evt); err != nil {
		s.metrics.EventsFailed.WithLabelValues(string(eventType)).Inc()
		s.logger.Error().
			Err(err).
			Str("event_type", string(eventType)).
			Str("appointment_id", evt.AppointmentID).
			Msg("failed to publish event")
		return
	}
	s.metrics.EventsPublished.WithLabelValues(string(eventType)).Inc()
}
