package doctor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/doctor-channel/internal/model"
)

// DefaultDoctors is the starter directory loaded into an empty store.
var DefaultDoctors = []model.DoctorRequest{
	{
		Name:            "Dr. John Smith",
		Specialty:       "Cardiologist",
		Qualification:   "MBBS, MD (Cardiology)",
		Email:           "john.smith@hospital.com",
		Phone:           "+1-555-0101",
		HospitalName:    "City General Hospital",
		Address:         "123 Medical Center Dr",
		City:            "New York",
		ConsultationFee: 150,
		AvailableDays:   []string{"Monday", "Wednesday", "Friday"},
		StartTime:       "09:00",
		EndTime:         "17:00",
		SlotDuration:    30,
	},
	{
		Name:            "Dr. Michael Chen",
		Specialty:       "Neurologist",
		Qualification:   "MBBS, MD (Neurology)",
		Email:           "michael.chen@hospital.com",
		Phone:           "+1-555-0102",
		HospitalName:    "Bay Area Neuro Clinic",
		Address:         "456 Health Ave",
		City:            "San Francisco",
		ConsultationFee: 180,
		AvailableDays:   []string{"Tuesday", "Thursday"},
		StartTime:       "10:00",
		EndTime:         "18:00",
		SlotDuration:    30,
	},
	{
		Name:            "Dr. Emily Rodriguez",
		Specialty:       "Pediatrician",
		Qualification:   "MBBS, MD (Pediatrics)",
		Email:           "emily.rodriguez@hospital.com",
		Phone:           "+1-555-0103",
		HospitalName:    "Children's Care Center",
		Address:         "789 Kids Blvd",
		City:            "Chicago",
		ConsultationFee: 120,
		AvailableDays:   []string{"Monday", "Tuesday", "Thursday", "Saturday"},
		StartTime:       "08:00",
		EndTime:         "16:00",
		SlotDuration:    20,
	},
}

// Seed creates the given doctors when the directory is empty.
func (s *Service) Seed(ctx context.Context, doctors []model.DoctorRequest) error {
	existing, err := s.ListDoctors(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for i := range doctors {
		if _, err := s.CreateDoctor(ctx, &doctors[i]); err != nil {
			return fmt.Errorf("failed to seed doctor %q: %w", doctors[i].Name, err)
		}
	}
	log.Info().Int("count", len(doctors)).Msg("seeded doctor directory")
	return nil
}
