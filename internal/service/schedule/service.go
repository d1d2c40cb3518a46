package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/repository"
	"github.com/jwalitptl/doctor-channel/pkg/validator"
)

const resource = "schedule"

// Service manages admin-declared availability windows. Schedules are never
// cross-checked against doctors or appointments.
type Service struct {
	repo      repository.ScheduleRepository
	validator validator.Validator
	now       func() time.Time
}

func NewService(repo repository.ScheduleRepository) *Service {
	return &Service{
		repo:      repo,
		validator: validator.New(),
		now:       time.Now,
	}
}

func (s *Service) CreateSchedule(ctx context.Context, req *model.ScheduleRequest) (*model.Schedule, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	schedule := &model.Schedule{
		Base:        model.Base{ID: uuid.NewString()},
		IsAvailable: true,
	}
	req.Apply(schedule)
	schedule.Touch(s.now())

	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, repository.Wrap(resource, "create schedule", err)
	}
	return schedule, nil
}

func (s *Service) GetSchedule(ctx context.Context, id string) (*model.Schedule, error) {
	schedule, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, repository.Wrap(resource, "get schedule", err)
	}
	return schedule, nil
}

// ListSchedules returns every schedule, or only doctorID's when it is set.
func (s *Service) ListSchedules(ctx context.Context, doctorID string) ([]*model.Schedule, error) {
	schedules, err := s.repo.List(ctx, doctorID)
	if err != nil {
		return nil, repository.Wrap(resource, "list schedules", err)
	}
	return schedules, nil
}

func (s *Service) UpdateSchedule(ctx context.Context, id string, req *model.ScheduleRequest) (*model.Schedule, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	schedule, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, repository.Wrap(resource, "get schedule", err)
	}
	req.Apply(schedule)
	schedule.Touch(s.now())

	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, repository.Wrap(resource, "update schedule", err)
	}
	return schedule, nil
}

func (s *Service) DeleteSchedule(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return repository.Wrap(resource, "delete schedule", err)
	}
	return nil
}
