package event

import (
	"context"

	"github.com/jwalitptl/doctor-channel/internal/model"
)

// Emitter publishes appointment lifecycle events. Emit never fails the caller.
type Emitter interface {
	Emit(ctx context.Context, eventType model.EventType, appointment *model.Appointment)
}
