package model

import (
	"time"
)

type EventType string

const (
	EventAppointmentCreated              EventType = "appointment.created"
	EventAppointmentStatusChanged        EventType = "appointment.status_changed"
	EventAppointmentPaymentStatusChanged EventType = "appointment.payment_status_changed"
	EventAppointmentDeleted              EventType = "appointment.deleted"
)

// AppointmentEvent is published after every successful appointment mutation.
type AppointmentEvent struct {
	Type          EventType    `json:"type"`
	AppointmentID string       `json:"appointmentId"`
	OccurredAt    time.Time    `json:"occurredAt"`
	Appointment   *Appointment `json:"appointment,omitempty"`
}
