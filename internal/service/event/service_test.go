package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/doctor-channel/internal/config"
	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/pkg/messaging"
	"github.com/jwalitptl/doctor-channel/pkg/metrics"
)

type failingBroker struct {
	messaging.NoopBroker
}

func (failingBroker) Publish(context.Context, string, interface{}) error {
	return errors.New("broker down")
}

func TestEmitPublishesEnvelope(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	broker := messaging.NewMemoryBroker()
	ch, err := broker.Subscribe(ctx, "appointments.events")
	require.NoError(t, err)

	m := metrics.New("test", nil)
	svc := NewEventService(broker, "appointments.events", m, zerolog.Nop())
	fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	svc.Emit(ctx, model.EventAppointmentCreated, &model.Appointment{Base: model.Base{ID: "a1"}, DoctorID: "d1"})

	var got model.AppointmentEvent
	select {
	case raw := <-ch:
		require.NoError(t, json.Unmarshal(raw, &got))
	case <-time.After(time.Second):
		t.Fatal("event not published")
	}
	assert.Equal(t, model.EventAppointmentCreated, got.Type)
	assert.Equal(t, "a1", got.AppointmentID)
	assert.True(t, fixed.Equal(got.OccurredAt))
	require.NotNil(t, got.Appointment)
	assert.Equal(t, "d1", got.Appointment.DoctorID)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues(string(model.EventAppointmentCreated))))
}

func TestEmitSwallowsPublishFailure(t *testing.T) {
	m := metrics.New("test", nil)
	svc := NewEventService(failingBroker{}, "appointments.events", m, zerolog.Nop())

	assert.NotPanics(t, func() {
		svc.Emit(context.Background(), model.EventAppointmentDeleted, &model.Appointment{Base: model.Base{ID: "a1"}})
	})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsFailed.WithLabelValues(string(model.EventAppointmentDeleted))))
}

func TestNewBrokerSelection(t *testing.T) {
	cfg := &config.Config{}
	cfg.Events.Broker = "none"
	b, err := NewBroker(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, messaging.NoopBroker{}, b)

	cfg.Events.Broker = "kafka"
	_, err = NewBroker(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}
