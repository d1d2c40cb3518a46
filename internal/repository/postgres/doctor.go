package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/repository"
)

const doctorColumns = `id, name, specialty, qualification, email, phone, hospital_name, address, city,
	consultation_fee, image_url, available_days, start_time, end_time, slot_duration, is_active`

var searchColumns = map[repository.DoctorSearchField]string{
	repository.SearchByName:      "name",
	repository.SearchBySpecialty: "specialty",
	repository.SearchByCity:      "city",
}

// doctorRow maps available_days onto a Postgres text[] column.
type doctorRow struct {
	model.Doctor
	AvailableDays pq.StringArray `db:"available_days"`
}

func toDoctorRow(d *model.Doctor) *doctorRow {
	return &doctorRow{Doctor: *d, AvailableDays: pq.StringArray(d.AvailableDays)}
}

func (r *doctorRow) toModel() *model.Doctor {
	d := r.Doctor
	d.AvailableDays = []string(r.AvailableDays)
	if d.AvailableDays == nil {
		d.AvailableDays = []string{}
	}
	return &d
}

func toDoctors(rows []*doctorRow) []*model.Doctor {
	doctors := make([]*model.Doctor, 0, len(rows))
	for _, row := range rows {
		doctors = append(doctors, row.toModel())
	}
	return doctors
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (` + doctorColumns + `)
		VALUES (:id, :name, :specialty, :qualification, :email, :phone, :hospital_name, :address,
			:city, :consultation_fee, :image_url, :available_days, :start_time, :end_time,
			:slot_duration, :is_active)
	`
	if _, err := r.db.NamedExecContext(ctx, query, toDoctorRow(doctor)); err != nil {
		return mapError("create doctor", err)
	}
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, id string) (*model.Doctor, error) {
	var row doctorRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+doctorColumns+` FROM doctors WHERE id = $1`, id); err != nil {
		return nil, mapError("get doctor", err)
	}
	return row.toModel(), nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	var rows []*doctorRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+doctorColumns+` FROM doctors ORDER BY created_seq`); err != nil {
		return nil, mapError("list doctors", err)
	}
	return toDoctors(rows), nil
}

func (r *doctorRepository) Search(ctx context.Context, field repository.DoctorSearchField, term string) ([]*model.Doctor, error) {
	column, ok := searchColumns[field]
	if !ok {
		return nil, fmt.Errorf("unsupported search field %q", field)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM doctors WHERE %s ILIKE '%%' || $1 || '%%' ESCAPE '\' ORDER BY created_seq`,
		doctorColumns, column,
	)
	var rows []*doctorRow
	if err := r.db.SelectContext(ctx, &rows, query, likeEscaper.Replace(term)); err != nil {
		return nil, mapError("search doctors", err)
	}
	return toDoctors(rows), nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	query := `
		UPDATE doctors SET
			name = :name, specialty = :specialty, qualification = :qualification, email = :email,
			phone = :phone, hospital_name = :hospital_name, address = :address, city = :city,
			consultation_fee = :consultation_fee, image_url = :image_url,
			available_days = :available_days, start_time = :start_time, end_time = :end_time,
			slot_duration = :slot_duration, is_active = :is_active
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, toDoctorRow(doctor))
	if err != nil {
		return mapError("update doctor", err)
	}
	return expectRow("update doctor", result)
}

func (r *doctorRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return mapError("delete doctor", err)
	}
	return expectRow("delete doctor", result)
}
