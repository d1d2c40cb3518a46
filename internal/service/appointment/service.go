package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/repository"
	"github.com/jwalitptl/doctor-channel/internal/service/event"
	apperrors "github.com/jwalitptl/doctor-channel/pkg/errors"
	"github.com/jwalitptl/doctor-channel/pkg/metrics"
	"github.com/jwalitptl/doctor-channel/pkg/validator"
)

const resource = "appointment"

// Config holds the booking rules.
type Config struct {
	// EnforceSlotUniqueness rejects a booking when the doctor already has a
	// non-cancelled appointment less than SlotWindow away.
	EnforceSlotUniqueness bool
	SlotWindow            time.Duration
}

type Service struct {
	repo      repository.AppointmentRepository
	events    event.Emitter
	metrics   *metrics.Metrics
	validator validator.Validator
	cfg       Config
	now       func() time.Time
}

func NewService(repo repository.AppointmentRepository, events event.Emitter, m *metrics.Metrics, cfg Config) *Service {
	if cfg.SlotWindow <= 0 {
		cfg.SlotWindow = 30 * time.Minute
	}
	return &Service{
		repo:      repo,
		events:    events,
		metrics:   m,
		validator: validator.New(),
		cfg:       cfg,
		now:       time.Now,
	}
}

// CreateAppointment validates and stores a new booking with status and payment status PENDING.
// Nothing is persisted when validation fails.
func (s *Service) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := s.validator.Validate(req); err != nil {
		s.metrics.AppointmentsRejected.WithLabelValues("validation").Inc()
		return nil, err
	}

	at, err := ParseDateTime(req.AppointmentDateTime)
	if err != nil {
		s.metrics.AppointmentsRejected.WithLabelValues("validation").Inc()
		return nil, apperrors.Validation("appointmentDateTime must be an ISO-8601 date-time", err)
	}

	option := req.PaymentOption
	if option == "" {
		option = model.PaymentOptionPayAtVisit
	}

	if s.cfg.EnforceSlotUniqueness {
		if err := s.checkSlot(ctx, req.DoctorID, at); err != nil {
			return nil, err
		}
	}

	apt := &model.Appointment{
		Base:                model.Base{ID: uuid.NewString()},
		PatientName:         req.PatientName,
		PatientEmail:        req.PatientEmail,
		PatientPhone:        req.PatientPhone,
		DoctorID:            req.DoctorID,
		UserID:              req.UserID,
		AppointmentDateTime: at,
		Symptoms:            req.Symptoms,
		Status:              model.AppointmentStatusPending,
		PaymentOption:       option,
		PaymentStatus:       model.PaymentStatusPending,
	}
	apt.Touch(s.now())

	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, repository.Wrap(resource, "create appointment", err)
	}

	s.metrics.AppointmentsCreated.Inc()
	s.events.Emit(ctx, model.EventAppointmentCreated, apt)
	return apt, nil
}

// checkSlot is a check-then-insert guard; two concurrent bookings can still both pass.
func (s *Service) checkSlot(ctx context.Context, doctorID string, at time.Time) error {
	existing, err := s.repo.List(ctx, repository.AppointmentFilter{
		DoctorID: doctorID,
		From:     at.Add(-s.cfg.SlotWindow),
		To:       at.Add(s.cfg.SlotWindow),
	})
	if err != nil {
		return repository.Wrap(resource, "check slot", err)
	}

	for _, apt := range existing {
		if apt.Status == model.AppointmentStatusCancelled {
			continue
		}
		gap := apt.AppointmentDateTime.Sub(at)
		if gap < 0 {
			gap = -gap
		}
		if gap < s.cfg.SlotWindow {
			s.metrics.AppointmentsRejected.WithLabelValues("slot_taken").Inc()
			return apperrors.Conflict(
				fmt.Sprintf("doctor already has an appointment within %s of the requested time", s.cfg.SlotWindow),
				nil,
			)
		}
	}
	return nil
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, repository.Wrap(resource, "get appointment", err)
	}
	return apt, nil
}

func (s *Service) ListAppointments(ctx context.Context) ([]*model.Appointment, error) {
	return s.list(ctx, repository.AppointmentFilter{})
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*model.Appointment, error) {
	return s.list(ctx, repository.AppointmentFilter{UserID: userID})
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string) ([]*model.Appointment, error) {
	return s.list(ctx, repository.AppointmentFilter{DoctorID: doctorID})
}

func (s *Service) list(ctx context.Context, filter repository.AppointmentFilter) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, repository.Wrap(resource, "list appointments", err)
	}
	return appointments, nil
}

// UpdateStatus overwrites the status with any enumeration value, regardless of the current one.
func (s *Service) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) (*model.Appointment, error) {
	if !status.IsValid() {
		return nil, apperrors.Validation(
			fmt.Sprintf("status must be one of [%s %s %s %s]",
				model.AppointmentStatusPending, model.AppointmentStatusConfirmed,
				model.AppointmentStatusCompleted, model.AppointmentStatusCancelled),
			nil,
		)
	}

	if err := s.repo.UpdateStatus(ctx, id, status, s.now().UTC()); err != nil {
		return nil, repository.Wrap(resource, "update appointment status", err)
	}

	apt, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	s.metrics.StatusUpdates.WithLabelValues(string(status)).Inc()
	s.events.Emit(ctx, model.EventAppointmentStatusChanged, apt)
	return apt, nil
}

// UpdatePaymentStatus overwrites the payment status; the appointment status is untouched.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus) (*model.Appointment, error) {
	if !status.IsValid() {
		return nil, apperrors.Validation(
			fmt.Sprintf("paymentStatus must be one of [%s %s %s]",
				model.PaymentStatusPending, model.PaymentStatusPartiallyPaid, model.PaymentStatusPaid),
			nil,
		)
	}

	if err := s.repo.UpdatePaymentStatus(ctx, id, status, s.now().UTC()); err != nil {
		return nil, repository.Wrap(resource, "update appointment payment status", err)
	}

	apt, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	s.metrics.PaymentStatusUpdates.WithLabelValues(string(status)).Inc()
	s.events.Emit(ctx, model.EventAppointmentPaymentStatusChanged, apt)
	return apt, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) error {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return repository.Wrap(resource, "get appointment", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return repository.Wrap(resource, "delete appointment", err)
	}

	s.metrics.AppointmentsDeleted.Inc()
	s.events.Emit(ctx, model.EventAppointmentDeleted, apt)
	return nil
}
