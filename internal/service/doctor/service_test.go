package doctor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/doctor-channel/internal/model"
	"github.com/jwalitptl/doctor-channel/internal/repository"
	"github.com/jwalitptl/doctor-channel/internal/repository/memory"
	apperrors "github.com/jwalitptl/doctor-channel/pkg/errors"
)

func seededService(t *testing.T) (*Service, repository.DoctorRepository) {
	t.Helper()
	repo := memory.NewDoctorRepository()
	svc := NewService(repo, time.Minute, time.Minute)
	require.NoError(t, svc.Seed(context.Background(), DefaultDoctors))
	return svc, repo
}

func TestCreateDoctorDefaults(t *testing.T) {
	svc := NewService(memory.NewDoctorRepository(), 0, 0)

	d, err := svc.CreateDoctor(context.Background(), &model.DoctorRequest{
		Name:      "Dr. Ada Lovelace",
		Specialty: "Dermatologist",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	assert.True(t, d.IsActive)
	assert.Equal(t, model.DefaultSlotDuration, d.SlotDuration)
}

func TestCreateDoctorValidation(t *testing.T) {
	svc := NewService(memory.NewDoctorRepository(), 0, 0)
	ctx := context.Background()

	_, err := svc.CreateDoctor(ctx, &model.DoctorRequest{Specialty: "Dermatologist"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreateDoctor(ctx, &model.DoctorRequest{Name: "Dr. X", Specialty: "GP", ConsultationFee: -1})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreateDoctor(ctx, &model.DoctorRequest{Name: "Dr. X", Specialty: "GP", SlotDuration: -15})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreateDoctor(ctx, &model.DoctorRequest{Name: "Dr. X", Specialty: "GP", AvailableDays: []string{"Someday"}})
	assert.True(t, apperrors.IsValidation(err))
}

func TestSearchByCity(t *testing.T) {
	svc, _ := seededService(t)

	got, err := svc.SearchByCity(context.Background(), "chicago")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dr. Emily Rodriguez", got[0].Name)

	for _, d := range got {
		assert.NotEqual(t, "Dr. John Smith", d.Name)
	}
}

func TestSearchByNameAndSpecialty(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	got, err := svc.SearchByName(ctx, "CHEN")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Neurologist", got[0].Specialty)

	got, err = svc.SearchBySpecialty(ctx, "cardio")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New York", got[0].City)

	_, err = svc.SearchByCity(ctx, "  ")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Search(ctx, "email", "x")
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateInvalidatesCache(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	all, err := svc.ListDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	id := all[0].ID

	cached, err := svc.GetDoctor(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 150.0, cached.ConsultationFee)

	req := &model.DoctorRequest{Name: cached.Name, Specialty: cached.Specialty, City: cached.City, ConsultationFee: 175}
	_, err = svc.UpdateDoctor(ctx, id, req)
	require.NoError(t, err)

	fresh, err := svc.GetDoctor(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 175.0, fresh.ConsultationFee)

	all, err = svc.ListDoctors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 175.0, all[0].ConsultationFee)
}

func TestCacheReturnsCopies(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	all, err := svc.ListDoctors(ctx)
	require.NoError(t, err)
	all[0].Name = "mutated"

	again, err := svc.ListDoctors(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dr. John Smith", again[0].Name)
}

func TestDeleteDoctor(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	all, err := svc.ListDoctors(ctx)
	require.NoError(t, err)
	id := all[1].ID

	_, err = svc.GetDoctor(ctx, id)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDoctor(ctx, id))
	_, err = svc.GetDoctor(ctx, id)
	assert.True(t, apperrors.IsNotFound(err))
	assert.True(t, apperrors.IsNotFound(svc.DeleteDoctor(ctx, id)))

	all, err = svc.ListDoctors(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.UpdateDoctor(ctx, id, &model.DoctorRequest{Name: "x", Specialty: "y"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPaymentQuote(t *testing.T) {
	svc := NewService(memory.NewDoctorRepository(), 0, 0)
	ctx := context.Background()
	d, err := svc.CreateDoctor(ctx, &model.DoctorRequest{Name: "Dr. Q", Specialty: "GP", ConsultationFee: 200})
	require.NoError(t, err)

	q, err := svc.PaymentQuote(ctx, d.ID, model.PaymentOptionHalf)
	require.NoError(t, err)
	assert.Equal(t, 100.0, q.Amount)
	assert.Equal(t, 200.0, q.ConsultationFee)

	_, err = svc.PaymentQuote(ctx, d.ID, "BITCOIN")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.PaymentQuote(ctx, "missing", model.PaymentOptionFull)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSeedIsIdempotent(t *testing.T) {
	svc, _ := seededService(t)
	require.NoError(t, svc.Seed(context.Background(), DefaultDoctors))

	all, err := svc.ListDoctors(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
