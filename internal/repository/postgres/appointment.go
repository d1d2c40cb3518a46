package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/repository"
)

const appointmentColumns = `id, patient_name, patient_email, patient_phone, doctor_id, user_id,
	appointment_date_time, symptoms, status, payment_option, payment_status, created_at, updated_at`

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (` + appointmentColumns + `)
		VALUES (:id, :patient_name, :patient_email, :patient_phone, :doctor_id, :user_id,
			:appointment_date_time, :symptoms, :status, :payment_option, :payment_status,
			:created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, appointment); err != nil {
		return mapError("create appointment", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id string) (*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		return nil, mapError("get appointment", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) List(ctx context.Context, filter repository.AppointmentFilter) ([]*model.Appointment, error) {
	var (
		where []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if filter.UserID != "" {
		add("user_id = $%d", filter.UserID)
	}
	if filter.DoctorID != "" {
		add("doctor_id = $%d", filter.DoctorID)
	}
	if !filter.From.IsZero() {
		add("appointment_date_time >= $%d", filter.From)
	}
	if !filter.To.IsZero() {
		add("appointment_date_time <= $%d", filter.To)
	}

	query := `SELECT ` + appointmentColumns + ` FROM appointments`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY appointment_date_time ASC, created_at ASC"

	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query, args...); err != nil {
		return nil, mapError("list appointments", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus, updatedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE appointments SET status = $1, updated_at = $2 WHERE id = $3`,
		status, updatedAt, id,
	)
	if err != nil {
		return mapError("update appointment status", err)
	}
	return expectRow("update appointment status", result)
}

func (r *appointmentRepository) UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus, updatedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE appointments SET payment_status = $1, updated_at = $2 WHERE id = $3`,
		status, updatedAt, id,
	)
	if err != nil {
		return mapError("update appointment payment status", err)
	}
	return expectRow("update appointment payment status", result)
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return mapError("delete appointment", err)
	}
	return expectRow("delete appointment", result)
}
