package doctor

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/repository"
	"github.com/jwalitptl/doctor-channel/internal/service/appointment"
	apperrors "github.com/jwalitptl/doctor-channel/pkg/errors"
	"github.com/jwalitptl/doctor-channel/pkg/validator"
)

const (
	resource = "doctor"
	listKey  = "doctors:all"
)

type Service struct {
	repo      repository.DoctorRepository
	cache     *cache.Cache
	validator validator.Validator
}

// NewService serves doctor reads through an in-process cache that expires after ttl.
// A zero ttl disables caching.
func NewService(repo repository.DoctorRepository, ttl, cleanup time.Duration) *Service {
	var c *cache.Cache
	if ttl > 0 {
		c = cache.New(ttl, cleanup)
	}
	return &Service{
		repo:      repo,
		cache:     c,
		validator: validator.New(),
	}
}

func doctorKey(id string) string { return "doctor:" + id }

func (s *Service) invalidate(id string) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(listKey)
	if id != "" {
		s.cache.Delete(doctorKey(id))
	}
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.DoctorRequest) (*model.Doctor, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	doctor := &model.Doctor{ID: uuid.NewString(), IsActive: true}
	req.Apply(doctor)

	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, repository.Wrap(resource, "create doctor", err)
	}
	s.invalidate("")
	return doctor, nil
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*model.Doctor, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(doctorKey(id)); ok {
			d := *v.(*model.Doctor)
			return &d, nil
		}
	}

	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, repository.Wrap(resource, "get doctor", err)
	}
	if s.cache != nil {
		d := *doctor
		s.cache.SetDefault(doctorKey(id), &d)
	}
	return doctor, nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(listKey); ok {
			return copyDoctors(v.([]*model.Doctor)), nil
		}
	}

	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, repository.Wrap(resource, "list doctors", err)
	}
	if s.cache != nil {
		s.cache.SetDefault(listKey, copyDoctors(doctors))
	}
	return doctors, nil
}

func copyDoctors(in []*model.Doctor) []*model.Doctor {
	out := make([]*model.Doctor, len(in))
	for i, d := range in {
		cp := *d
		out[i] = &cp
	}
	return out
}

// UpdateDoctor replaces every mutable field of the doctor.
func (s *Service) UpdateDoctor(ctx context.Context, id string, req *model.DoctorRequest) (*model.Doctor, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, repository.Wrap(resource, "get doctor", err)
	}
	req.Apply(doctor)

	if err := s.repo.Update(ctx, doctor); err != nil {
		return nil, repository.Wrap(resource, "update doctor", err)
	}
	s.invalidate(id)
	return doctor, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return repository.Wrap(resource, "delete doctor", err)
	}
	s.invalidate(id)
	return nil
}

// Search matches term as a case-insensitive substring of the given field.
func (s *Service) Search(ctx context.Context, field repository.DoctorSearchField, term string) ([]*model.Doctor, error) {
	if !field.IsValid() {
		return nil, apperrors.Validation("search field must be one of [name specialty city]", nil)
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperrors.Validation("search term is required", nil)
	}

	doctors, err := s.repo.Search(ctx, field, term)
	if err != nil {
		return nil, repository.Wrap(resource, "search doctors", err)
	}
	return doctors, nil
}

func (s *Service) SearchByName(ctx context.Context, name string) ([]*model.Doctor, error) {
	return s.Search(ctx, repository.SearchByName, name)
}

func (s *Service) SearchBySpecialty(ctx context.Context, specialty string) ([]*model.Doctor, error) {
	return s.Search(ctx, repository.SearchBySpecialty, specialty)
}

func (s *Service) SearchByCity(ctx context.Context, city string) ([]*model.Doctor, error) {
	return s.Search(ctx, repository.SearchByCity, city)
}

// PaymentQuote returns the amount due for the doctor's fee under option.
func (s *Service) PaymentQuote(ctx context.Context, id string, option model.PaymentOption) (*model.PaymentQuote, error) {
	if !option.IsValid() {
		return nil, apperrors.Validation("option must be one of [FULL HALF PAY_AT_VISIT]", nil)
	}
	doctor, err := s.GetDoctor(ctx, id)
	if err != nil {
		return nil, err
	}
	amount, err := appointment.PaymentAmount(doctor.ConsultationFee, option)
	if err != nil {
		return nil, apperrors.Validation(err.Error(), err)
	}
	return &model.PaymentQuote{
		DoctorID:        doctor.ID,
		Option:          option,
		ConsultationFee: doctor.ConsultationFee,
		Amount:          amount,
	}, nil
}
