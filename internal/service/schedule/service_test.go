package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/repository/memory"
	apperrors "github.com/jwalitptl/doctor-channel/pkg/errors"
)

func request(doctorID string) *model.ScheduleRequest {
	return &model.ScheduleRequest{
		DoctorID:  doctorID,
		Date:      "2025-03-03",
		StartTime: "09:00",
		EndTime:   "12:00",
	}
}

func TestCreateSchedule(t *testing.T) {
	svc := NewService(memory.NewScheduleRepository())

	s, err := svc.CreateSchedule(context.Background(), request("d1"))
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.True(t, s.IsAvailable)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestCreateScheduleValidation(t *testing.T) {
	svc := NewService(memory.NewScheduleRepository())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.ScheduleRequest)
	}{
		{"missing doctor", func(r *model.ScheduleRequest) { r.DoctorID = "" }},
		{"missing date", func(r *model.ScheduleRequest) { r.Date = "" }},
		{"bad date", func(r *model.ScheduleRequest) { r.Date = "03/03/2025" }},
		{"missing start", func(r *model.ScheduleRequest) { r.StartTime = "" }},
		{"bad end", func(r *model.ScheduleRequest) { r.EndTime = "noon" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request("d1")
			tt.mutate(req)
			_, err := svc.CreateSchedule(ctx, req)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestUpdateScheduleTogglesAvailability(t *testing.T) {
	svc := NewService(memory.NewScheduleRepository())
	ctx := context.Background()

	s, err := svc.CreateSchedule(ctx, request("d1"))
	require.NoError(t, err)

	unavailable := false
	req := request("d1")
	req.IsAvailable = &unavailable
	req.EndTime = "13:00"

	updated, err := svc.UpdateSchedule(ctx, s.ID, req)
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, "13:00", updated.EndTime)

	got, err := svc.GetSchedule(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)

	_, err = svc.UpdateSchedule(ctx, "missing", request("d1"))
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListAndDeleteSchedules(t *testing.T) {
	svc := NewService(memory.NewScheduleRepository())
	ctx := context.Background()

	s1, err := svc.CreateSchedule(ctx, request("d1"))
	require.NoError(t, err)
	_, err = svc.CreateSchedule(ctx, request("d2"))
	require.NoError(t, err)

	all, err := svc.ListSchedules(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	d1, err := svc.ListSchedules(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, d1, 1)
	assert.Equal(t, s1.ID, d1[0].ID)

	require.NoError(t, svc.DeleteSchedule(ctx, s1.ID))
	assert.True(t, apperrors.IsNotFound(svc.DeleteSchedule(ctx, s1.ID)))
	_, err = svc.GetSchedule(ctx, s1.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
