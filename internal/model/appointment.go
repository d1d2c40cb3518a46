package model

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

type PaymentOption string

const (
	PaymentOptionFull       PaymentOption = "FULL"
	PaymentOptionHalf       PaymentOption = "HALF"
	PaymentOptionPayAtVisit PaymentOption = "PAY_AT_VISIT"
)

func (o PaymentOption) IsValid() bool {
	switch o {
	case PaymentOptionFull, PaymentOptionHalf, PaymentOptionPayAtVisit:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "PENDING"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentStatusPaid          PaymentStatus = "PAID"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartiallyPaid, PaymentStatusPaid:
		return true
	}
	return false
}

type Appointment struct {
	Base                `bson:",inline"`
	PatientName         string            `json:"patientName" db:"patient_name" bson:"patient_name"`
	PatientEmail        string            `json:"patientEmail" db:"patient_email" bson:"patient_email"`
	PatientPhone        string            `json:"patientPhone" db:"patient_phone" bson:"patient_phone"`
	DoctorID            string            `json:"doctorId" db:"doctor_id" bson:"doctor_id"`
	UserID              string            `json:"userId,omitempty" db:"user_id" bson:"user_id,omitempty"`
	AppointmentDateTime time.Time         `json:"appointmentDateTime" db:"appointment_date_time" bson:"appointment_date_time"`
	Symptoms            string            `json:"symptoms,omitempty" db:"symptoms" bson:"symptoms,omitempty"`
	Status              AppointmentStatus `json:"status" db:"status" bson:"status"`
	PaymentOption       PaymentOption     `json:"paymentOption" db:"payment_option" bson:"payment_option"`
	PaymentStatus       PaymentStatus     `json:"paymentStatus" db:"payment_status" bson:"payment_status"`
}

// CreateAppointmentRequest is the booking payload. AppointmentDateTime is an ISO-8601
// string as sent by the browser client.
type CreateAppointmentRequest struct {
	PatientName         string        `json:"patientName" validate:"required,notblank"`
	PatientEmail        string        `json:"patientEmail" validate:"required,email"`
	PatientPhone        string        `json:"patientPhone" validate:"required,notblank"`
	DoctorID            string        `json:"doctorId" validate:"required,notblank"`
	UserID              string        `json:"userId"`
	AppointmentDateTime string        `json:"appointmentDateTime" validate:"required,notblank"`
	Symptoms            string        `json:"symptoms" validate:"max=2000"`
	PaymentOption       PaymentOption `json:"paymentOption" validate:"omitempty,oneof=FULL HALF PAY_AT_VISIT"`
}

// PaymentQuote is the presentation-only amount due for a doctor and payment option.
type PaymentQuote struct {
	DoctorID        string        `json:"doctorId"`
	Option          PaymentOption `json:"option"`
	ConsultationFee float64       `json:"consultationFee"`
	Amount          float64       `json:"amount"`
}
