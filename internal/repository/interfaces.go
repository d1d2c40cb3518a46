package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jwalitptl/doctor-channel/internal/model"
)

var (
	// ErrNotFound is returned when no record matches the given id or key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique key already exists.
	ErrDuplicate = errors.New("duplicate record")
)

// AppointmentFilter narrows List by equality on the set fields.
type AppointmentFilter struct {
	UserID   string
	DoctorID string
	// From and To bound appointmentDateTime inclusively when non-zero.
	From time.Time
	To   time.Time
}

// DoctorSearchField names the doctor attribute a search matches against.
type DoctorSearchField string

const (
	SearchByName      DoctorSearchField = "name"
	SearchBySpecialty DoctorSearchField = "specialty"
	SearchByCity      DoctorSearchField = "city"
)

func (f DoctorSearchField) IsValid() bool {
	switch f {
	case SearchByName, SearchBySpecialty, SearchByCity:
		return true
	}
	return false
}

// All repository interfaces in one file
type (
	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id string) (*model.Appointment, error)
		// List returns matches ordered by appointmentDateTime ascending.
		List(ctx context.Context, filter AppointmentFilter) ([]*model.Appointment, error)
		UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus, updatedAt time.Time) error
		UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus, updatedAt time.Time) error
		Delete(ctx context.Context, id string) error
	}

	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		Get(ctx context.Context, id string) (*model.Doctor, error)
		List(ctx context.Context) ([]*model.Doctor, error)
		Update(ctx context.Context, doctor *model.Doctor) error
		Delete(ctx context.Context, id string) error
		// Search matches term as a case-insensitive substring of field.
		Search(ctx context.Context, field DoctorSearchField, term string) ([]*model.Doctor, error)
	}

	ScheduleRepository interface {
		Create(ctx context.Context, schedule *model.Schedule) error
		Get(ctx context.Context, id string) (*model.Schedule, error)
		// List returns all schedules, or only those of doctorID when it is set.
		List(ctx context.Context, doctorID string) ([]*model.Schedule, error)
		Update(ctx context.Context, schedule *model.Schedule) error
		Delete(ctx context.Context, id string) error
	}

	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id string) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
	}

	// Store bundles the repositories of one storage backend.
	Store interface {
		Appointments() AppointmentRepository
		Doctors() DoctorRepository
		Schedules() ScheduleRepository
		Users() UserRepository
		Ping(ctx context.Context) error
		Close(ctx context.Context) error
	}
)
