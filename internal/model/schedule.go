package model

type Schedule struct {
	Base        `bson:",inline"`
	DoctorID    string `json:"doctorId" db:"doctor_id" bson:"doctor_id"`
	Date        string `json:"date" db:"date" bson:"date"`
	StartTime   string `json:"startTime" db:"start_time" bson:"start_time"`
	EndTime     string `json:"endTime" db:"end_time" bson:"end_time"`
	IsAvailable bool   `json:"isAvailable" db:"is_available" bson:"is_available"`
}

type ScheduleRequest struct {
	DoctorID    string `json:"doctorId" validate:"required,notblank"`
	Date        string `json:"date" validate:"required,date"`
	StartTime   string `json:"startTime" validate:"required,clock"`
	EndTime     string `json:"endTime" validate:"required,clock"`
	IsAvailable *bool  `json:"isAvailable"`
}

// Apply copies the request onto s. A missing isAvailable keeps the current value.
func (r *ScheduleRequest) Apply(s *Schedule) {
	s.DoctorID = r.DoctorID
	s.Date = r.Date
	s.StartTime = r.StartTime
	s.EndTime = r.EndTime
	if r.IsAvailable != nil {
		s.IsAvailable = *r.IsAvailable
	}
}
