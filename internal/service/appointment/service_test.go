package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/repository"
	"github.com/jwalitptl/doctor-channel/internal/repository/memory"
	apperrors "github.com/jwalitptl/doctor-channel/pkg/errors"
	"github.com/jwalitptl/doctor-channel/pkg/metrics"
)

func newTestService(cfg Config) (*Service, repository.AppointmentRepository, *eventRecorder) {
	repo := memory.NewAppointmentRepository()
	rec := &eventRecorder{}
	return NewService(repo, rec, metrics.New("test", nil), cfg), repo, rec
}

func validRequest() *model.CreateAppointmentRequest {
	return &model.CreateAppointmentRequest{
		PatientName:         "Jane Doe",
		PatientEmail:        "jane@example.com",
		PatientPhone:        "+1-555-0100",
		DoctorID:            "doctor-1",
		UserID:              "user-1",
		AppointmentDateTime: "2025-03-01T09:30:00.000Z",
		Symptoms:            "headache",
		PaymentOption:       model.PaymentOptionHalf,
	}
}

func TestCreateAppointment(t *testing.T) {
	svc, repo, rec := newTestService(Config{})
	ctx := context.Background()

	first, err := svc.CreateAppointment(ctx, validRequest())
	require.NoError(t, err)
	second, err := svc.CreateAppointment(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, model.AppointmentStatusPending, first.Status)
	assert.Equal(t, model.PaymentStatusPending, first.PaymentStatus)
	assert.Equal(t, model.PaymentOptionHalf, first.PaymentOption)
	assert.Equal(t, time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC), first.AppointmentDateTime)
	assert.False(t, first.CreatedAt.IsZero())

	stored, err := repo.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.PatientEmail, stored.PatientEmail)

	assert.Equal(t, []model.EventType{model.EventAppointmentCreated, model.EventAppointmentCreated}, rec.Types())
}

func TestCreateAppointmentDefaultsPaymentOption(t *testing.T) {
	svc, _, _ := newTestService(Config{})
	req := validRequest()
	req.PaymentOption = ""
	req.AppointmentDateTime = "2025-03-01T09:30"

	apt, err := svc.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentOptionPayAtVisit, apt.PaymentOption)
}

func TestCreateAppointmentValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.CreateAppointmentRequest)
		msg    string
	}{
		{"missing patient name", func(r *model.CreateAppointmentRequest) { r.PatientName = "" }, "patientName is required"},
		{"blank patient name", func(r *model.CreateAppointmentRequest) { r.PatientName = "   " }, "patientName is required"},
		{"missing patient email", func(r *model.CreateAppointmentRequest) { r.PatientEmail = "" }, "patientEmail is required"},
		{"malformed patient email", func(r *model.CreateAppointmentRequest) { r.PatientEmail = "jane" }, "patientEmail must be a valid email"},
		{"missing patient phone", func(r *model.CreateAppointmentRequest) { r.PatientPhone = "" }, "patientPhone is required"},
		{"blank patient phone", func(r *model.CreateAppointmentRequest) { r.PatientPhone = " " }, "patientPhone is required"},
		{"missing doctor", func(r *model.CreateAppointmentRequest) { r.DoctorID = "" }, "doctorId is required"},
		{"blank doctor", func(r *model.CreateAppointmentRequest) { r.DoctorID = "\t " }, "doctorId is required"},
		{"missing date-time", func(r *model.CreateAppointmentRequest) { r.AppointmentDateTime = "" }, "appointmentDateTime is required"},
		{"unparseable date-time", func(r *model.CreateAppointmentRequest) { r.AppointmentDateTime = "next tuesday" }, "appointmentDateTime"},
		{"unknown payment option", func(r *model.CreateAppointmentRequest) { r.PaymentOption = "CREDIT" }, "paymentOption"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, rec := newTestService(Config{})
			req := validRequest()
			tt.mutate(req)

			_, err := svc.CreateAppointment(context.Background(), req)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Contains(t, err.Error(), tt.msg)

			all, err := repo.List(context.Background(), repository.AppointmentFilter{})
			require.NoError(t, err)
			assert.Empty(t, all)
			assert.Empty(t, rec.Types())
		})
	}
}

func TestUpdateStatusHasNoTransitionRules(t *testing.T) {
	svc, _, rec := newTestService(Config{})
	ctx := context.Background()
	apt, err := svc.CreateAppointment(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, apt.ID, model.AppointmentStatusConfirmed)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, apt.ID, model.AppointmentStatusCancelled)
	require.NoError(t, err)
	back, err := svc.UpdateStatus(ctx, apt.ID, model.AppointmentStatusPending)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusPending, back.Status)

	_, err = svc.UpdateStatus(ctx, apt.ID, model.AppointmentStatusCancelled)
	require.NoError(t, err)
	got, err := svc.GetAppointment(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCancelled, got.Status)
	assert.Equal(t, model.PaymentStatusPending, got.PaymentStatus)

	assert.Len(t, rec.Types(), 5)
}

func TestUpdateStatusErrors(t *testing.T) {
	svc, _, _ := newTestService(Config{})
	ctx := context.Background()
	apt, err := svc.CreateAppointment(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, apt.ID, "ARCHIVED")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.UpdateStatus(ctx, "missing", model.AppointmentStatusConfirmed)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdatePaymentStatusIsIndependent(t *testing.T) {
	svc, _, rec := newTestService(Config{})
	ctx := context.Background()
	apt, err := svc.CreateAppointment(ctx, validRequest())
	require.NoError(t, err)

	updated, err := svc.UpdatePaymentStatus(ctx, apt.ID, model.PaymentStatusPartiallyPaid)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPartiallyPaid, updated.PaymentStatus)
	assert.Equal(t, model.AppointmentStatusPending, updated.Status)

	_, err = svc.UpdatePaymentStatus(ctx, apt.ID, "REFUNDED")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.UpdatePaymentStatus(ctx, "missing", model.PaymentStatusPaid)
	assert.True(t, apperrors.IsNotFound(err))

	assert.Equal(t, model.EventAppointmentPaymentStatusChanged, rec.Types()[1])
}

func TestDeleteAppointment(t *testing.T) {
	svc, _, rec := newTestService(Config{})
	ctx := context.Background()

	err := svc.DeleteAppointment(ctx, "missing")
	assert.True(t, apperrors.IsNotFound(err))

	apt, err := svc.CreateAppointment(ctx, validRequest())
	require.NoError(t, err)
	require.NoError(t, svc.DeleteAppointment(ctx, apt.ID))

	_, err = svc.GetAppointment(ctx, apt.ID)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, model.EventAppointmentDeleted, rec.Types()[1])
}

func TestListsAreFilteredAndOrdered(t *testing.T) {
	svc, _, _ := newTestService(Config{})
	ctx := context.Background()

	for _, tc := range []struct{ user, doctor, at string }{
		{"u1", "d1", "2025-03-02T10:00:00Z"},
		{"u2", "d1", "2025-03-01T10:00:00Z"},
		{"u1", "d2", "2025-03-01T08:00:00Z"},
	} {
		req := validRequest()
		req.UserID, req.DoctorID, req.AppointmentDateTime = tc.user, tc.doctor, tc.at
		_, err := svc.CreateAppointment(ctx, req)
		require.NoError(t, err)
	}

	all, err := svc.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].AppointmentDateTime.Before(all[1].AppointmentDateTime))
	assert.True(t, all[1].AppointmentDateTime.Before(all[2].AppointmentDateTime))

	mine, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	doctors, err := svc.ListByDoctor(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Equal(t, "u2", doctors[0].UserID)

	none, err := svc.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestConcurrentCreatesForSameSlotBothSucceed(t *testing.T) {
	svc, _, _ := newTestService(Config{})
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]string, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			apt, err := svc.CreateAppointment(ctx, validRequest())
			errs[i] = err
			if err == nil {
				ids[i] = apt.ID
			}
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.NotEqual(t, ids[0], ids[1])

	all, err := svc.ListByDoctor(ctx, "doctor-1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSlotGuard(t *testing.T) {
	svc, _, _ := newTestService(Config{EnforceSlotUniqueness: true, SlotWindow: 30 * time.Minute})
	ctx := context.Background()

	first, err := svc.CreateAppointment(ctx, validRequest())
	require.NoError(t, err)

	near := validRequest()
	near.AppointmentDateTime = "2025-03-01T09:45:00Z"
	_, err = svc.CreateAppointment(ctx, near)
	assert.True(t, apperrors.IsConflict(err))

	adjacent := validRequest()
	adjacent.AppointmentDateTime = "2025-03-01T10:00:00Z"
	_, err = svc.CreateAppointment(ctx, adjacent)
	assert.NoError(t, err)

	otherDoctor := validRequest()
	otherDoctor.DoctorID = "doctor-2"
	_, err = svc.CreateAppointment(ctx, otherDoctor)
	assert.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, first.ID, model.AppointmentStatusCancelled)
	require.NoError(t, err)
	_, err = svc.CreateAppointment(ctx, validRequest())
	assert.NoError(t, err)
}
