package postgres

import (
	"context"

	"github.com/jwalitptl/doctor-channel/internal/model"
)

const scheduleColumns = `id, doctor_id, date, start_time, end_time, is_available, created_at, updated_at`

func (r *scheduleRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	query := `
		INSERT INTO schedules (` + scheduleColumns + `)
		VALUES (:id, :doctor_id, :date, :start_time, :end_time, :is_available, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, schedule); err != nil {
		return mapError("create schedule", err)
	}
	return nil
}

func (r *scheduleRepository) Get(ctx context.Context, id string) (*model.Schedule, error) {
	var schedule model.Schedule
	if err := r.db.GetContext(ctx, &schedule, `SELECT `+scheduleColumns+` FROM schedules WHERE id = $1`, id); err != nil {
		return nil, mapError("get schedule", err)
	}
	return &schedule, nil
}

func (r *scheduleRepository) List(ctx context.Context, doctorID string) ([]*model.Schedule, error) {
	schedules := []*model.Schedule{}
	query := `SELECT ` + scheduleColumns + ` FROM schedules`
	args := []interface{}{}
	if doctorID != "" {
		query += ` WHERE doctor_id = $1`
		args = append(args, doctorID)
	}
	query += ` ORDER BY date, start_time`

	if err := r.db.SelectContext(ctx, &schedules, query, args...); err != nil {
		return nil, mapError("list schedules", err)
	}
	return schedules, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *model.Schedule) error {
	query := `
		UPDATE schedules SET
			doctor_id = :doctor_id, date = :date, start_time = :start_time, end_time = :end_time,
			is_available = :is_available, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, schedule)
	if err != nil {
		return mapError("update schedule", err)
	}
	return expectRow("update schedule", result)
}

func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return mapError("delete schedule", err)
	}
	return expectRow("delete schedule", result)
}
