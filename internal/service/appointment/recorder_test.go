package appointment

import (
	"context"
	"sync"

	"github.com/jwalitptl/doctor-channel/internal/model"
)

// eventRecorder keeps emitted events in memory.
type eventRecorder struct {
	mu     sync.Mutex
	events []model.AppointmentEvent
}

func (r *eventRecorder) Emit(_ context.Context, eventType model.EventType, appointment *model.Appointment) {
	evt := model.AppointmentEvent{Type: eventType}
	if appointment != nil {
		evt.AppointmentID = appointment.ID
		cp := *appointment
		evt.Appointment = &cp
	}
	r.mu.Lock()
	r.events = append(r.events, evt)
	r.mu.Unlock()
}

func (r *eventRecorder) Types() []model.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}
