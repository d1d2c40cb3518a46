// Package memory implements the repositories on in-process maps.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/repository"
)

type store struct {
	appointments *appointmentRepository
	doctors      *doctorRepository
	schedules    *scheduleRepository
	users        *userRepository
}

func NewStore() repository.Store {
	return &store{
		appointments: NewAppointmentRepository(),
		doctors:      NewDoctorRepository(),
		schedules:    NewScheduleRepository(),
		users:        NewUserRepository(),
	}
}

func (s *store) Appointments() repository.AppointmentRepository { return s.appointments }
func (s *store) Doctors() repository.DoctorRepository           { return s.doctors }
func (s *store) Schedules() repository.ScheduleRepository       { return s.schedules }
func (s *store) Users() repository.UserRepository               { return s.users }
func (s *store) Ping(context.Context) error                     { return nil }
func (s *store) Close(context.Context) error                    { return nil }

type appointmentRepository struct {
	mu    sync.RWMutex
	items map[string]model.Appointment
}

func NewAppointmentRepository() *appointmentRepository {
	return &appointmentRepository{items: make(map[string]model.Appointment)}
}

func (r *appointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[a.ID]; ok {
		return repository.ErrDuplicate
	}
	r.items[a.ID] = *a
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id string) (*model.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r *appointmentRepository) List(ctx context.Context, f repository.AppointmentFilter) ([]*model.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]*model.Appointment, 0, len(r.items))
	for _, a := range r.items {
		if f.UserID != "" && a.UserID != f.UserID {
			continue
		}
		if f.DoctorID != "" && a.DoctorID != f.DoctorID {
			continue
		}
		if !f.From.IsZero() && a.AppointmentDateTime.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && a.AppointmentDateTime.After(f.To) {
			continue
		}
		a := a
		out = append(out, &a)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AppointmentDateTime.Equal(out[j].AppointmentDateTime) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].AppointmentDateTime.Before(out[j].AppointmentDateTime)
	})
	return out, nil
}

func (r *appointmentRepository) update(ctx context.Context, id string, fn func(*model.Appointment)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	fn(&a)
	r.items[id] = a
	return nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus, updatedAt time.Time) error {
	return r.update(ctx, id, func(a *model.Appointment) {
		a.Status = status
		a.UpdatedAt = updatedAt
	})
}

func (r *appointmentRepository) UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus, updatedAt time.Time) error {
	return r.update(ctx, id, func(a *model.Appointment) {
		a.PaymentStatus = status
		a.UpdatedAt = updatedAt
	})
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type doctorRepository struct {
	mu    sync.RWMutex
	items map[string]model.Doctor
	order []string
}

func NewDoctorRepository() *doctorRepository {
	return &doctorRepository{items: make(map[string]model.Doctor)}
}

func cloneDoctor(d model.Doctor) *model.Doctor {
	d.AvailableDays = append(d.AvailableDays[:0:0], d.AvailableDays...)
	return &d
}

func (r *doctorRepository) Create(ctx context.Context, d *model.Doctor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[d.ID]; ok {
		return repository.ErrDuplicate
	}
	r.items[d.ID] = *cloneDoctor(*d)
	r.order = append(r.order, d.ID)
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, id string) (*model.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneDoctor(d), nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	return r.filter(ctx, func(model.Doctor) bool { return true })
}

func (r *doctorRepository) Search(ctx context.Context, field repository.DoctorSearchField, term string) ([]*model.Doctor, error) {
	term = strings.ToLower(term)
	return r.filter(ctx, func(d model.Doctor) bool {
		var v string
		switch field {
		case repository.SearchByName:
			v = d.Name
		case repository.SearchBySpecialty:
			v = d.Specialty
		case repository.SearchByCity:
			v = d.City
		}
		return strings.Contains(strings.ToLower(v), term)
	})
}

func (r *doctorRepository) filter(ctx context.Context, keep func(model.Doctor) bool) ([]*model.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Doctor, 0)
	for _, id := range r.order {
		if d := r.items[id]; keep(d) {
			out = append(out, cloneDoctor(d))
		}
	}
	return out, nil
}

func (r *doctorRepository) Update(ctx context.Context, d *model.Doctor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[d.ID]; !ok {
		return repository.ErrNotFound
	}
	r.items[d.ID] = *cloneDoctor(*d)
	return nil
}

func (r *doctorRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type scheduleRepository struct {
	mu    sync.RWMutex
	items map[string]model.Schedule
	order []string
}

func NewScheduleRepository() *scheduleRepository {
	return &scheduleRepository{items: make(map[string]model.Schedule)}
}

func (r *scheduleRepository) Create(ctx context.Context, s *model.Schedule) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[s.ID]; ok {
		return repository.ErrDuplicate
	}
	r.items[s.ID] = *s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *scheduleRepository) Get(ctx context.Context, id string) (*model.Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *scheduleRepository) List(ctx context.Context, doctorID string) ([]*model.Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Schedule, 0)
	for _, id := range r.order {
		s := r.items[id]
		if doctorID != "" && s.DoctorID != doctorID {
			continue
		}
		out = append(out, &s)
	}
	return out, nil
}

func (r *scheduleRepository) Update(ctx context.Context, s *model.Schedule) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[s.ID]; !ok {
		return repository.ErrNotFound
	}
	r.items[s.ID] = *s
	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type userRepository struct {
	mu      sync.RWMutex
	items   map[string]model.User
	byEmail map[string]string
}

func NewUserRepository() *userRepository {
	return &userRepository{
		items:   make(map[string]model.User),
		byEmail: make(map[string]string),
	}
}

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := strings.ToLower(u.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[key]; ok {
		return repository.ErrDuplicate
	}
	if _, ok := r.items[u.ID]; ok {
		return repository.ErrDuplicate
	}
	r.items[u.ID] = *u
	r.byEmail[key] = u.ID
	return nil
}

func (r *userRepository) Get(ctx context.Context, id string) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := r.items[id]
	return &u, nil
}
