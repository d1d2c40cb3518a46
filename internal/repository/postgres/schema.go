package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS doctors (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		specialty        TEXT NOT NULL,
		qualification    TEXT NOT NULL DEFAULT '',
		email            TEXT NOT NULL DEFAULT '',
		phone            TEXT NOT NULL DEFAULT '',
		hospital_name    TEXT NOT NULL DEFAULT '',
		address          TEXT NOT NULL DEFAULT '',
		city             TEXT NOT NULL DEFAULT '',
		consultation_fee DOUBLE PRECISION NOT NULL DEFAULT 0,
		image_url        TEXT NOT NULL DEFAULT '',
		available_days   TEXT[] NOT NULL DEFAULT '{}',
		start_time       TEXT NOT NULL DEFAULT '',
		end_time         TEXT NOT NULL DEFAULT '',
		slot_duration    INTEGER NOT NULL DEFAULT 30,
		is_active        BOOLEAN NOT NULL DEFAULT TRUE,
		created_seq      BIGSERIAL
	)`,
	`CREATE TABLE IF NOT EXISTS schedules (
		id           TEXT PRIMARY KEY,
		doctor_id    TEXT NOT NULL,
		date         TEXT NOT NULL,
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL,
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_doctor_id ON schedules (doctor_id)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id                    TEXT PRIMARY KEY,
		patient_name          TEXT NOT NULL,
		patient_email         TEXT NOT NULL,
		patient_phone         TEXT NOT NULL,
		doctor_id             TEXT NOT NULL,
		user_id               TEXT NOT NULL DEFAULT '',
		appointment_date_time TIMESTAMPTZ NOT NULL,
		symptoms              TEXT NOT NULL DEFAULT '',
		status                TEXT NOT NULL,
		payment_option        TEXT NOT NULL,
		payment_status        TEXT NOT NULL,
		created_at            TIMESTAMPTZ NOT NULL,
		updated_at            TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_doctor_time ON appointments (doctor_id, appointment_date_time)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_user_id ON appointments (user_id)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		full_name     TEXT NOT NULL,
		email         TEXT NOT NULL,
		phone         TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL,
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (LOWER(email))`,
}

// Migrate creates the tables when they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	base := NewBaseRepository(db)
	return base.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}
		}
		return nil
	})
}
