package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/doctor-channel/internal/repository"
)

type appointmentRepository struct {
	BaseRepository
}

type doctorRepository struct {
	BaseRepository
}

type scheduleRepository struct {
	BaseRepository
}

type userRepository struct {
	BaseRepository
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{NewBaseRepository(db)}
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{NewBaseRepository(db)}
}

func NewScheduleRepository(db *sqlx.DB) repository.ScheduleRepository {
	return &scheduleRepository{NewBaseRepository(db)}
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{NewBaseRepository(db)}
}

type store struct {
	db           *sqlx.DB
	appointments repository.AppointmentRepository
	doctors      repository.DoctorRepository
	schedules    repository.ScheduleRepository
	users        repository.UserRepository
}

// NewStore wraps an open connection. The caller owns migrations.
func NewStore(db *sqlx.DB) repository.Store {
	return &store{
		db:           db,
		appointments: NewAppointmentRepository(db),
		doctors:      NewDoctorRepository(db),
		schedules:    NewScheduleRepository(db),
		users:        NewUserRepository(db),
	}
}

func (s *store) Appointments() repository.AppointmentRepository { return s.appointments }
func (s *store) Doctors() repository.DoctorRepository           { return s.doctors }
func (s *store) Schedules() repository.ScheduleRepository       { return s.schedules }
func (s *store) Users() repository.UserRepository               { return s.users }

func (s *store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *store) Close(context.Context) error {
	return s.db.Close()
}
