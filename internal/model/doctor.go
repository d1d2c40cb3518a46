package model

const DefaultSlotDuration = 30

type Doctor struct {
	ID              string         `json:"id" db:"id" bson:"_id"`
	Name            string         `json:"name" db:"name" bson:"name"`
	Specialty       string         `json:"specialty" db:"specialty" bson:"specialty"`
	Qualification   string         `json:"qualification" db:"qualification" bson:"qualification"`
	Email           string         `json:"email" db:"email" bson:"email"`
	Phone           string         `json:"phone" db:"phone" bson:"phone"`
	HospitalName    string         `json:"hospitalName" db:"hospital_name" bson:"hospital_name"`
	Address         string         `json:"address" db:"address" bson:"address"`
	City            string         `json:"city" db:"city" bson:"city"`
	ConsultationFee float64        `json:"consultationFee" db:"consultation_fee" bson:"consultation_fee"`
	ImageURL        string         `json:"imageUrl" db:"image_url" bson:"image_url"`
	AvailableDays   []string       `json:"availableDays" db:"-" bson:"available_days"`
	StartTime       string         `json:"startTime" db:"start_time" bson:"start_time"`
	EndTime         string         `json:"endTime" db:"end_time" bson:"end_time"`
	SlotDuration    int            `json:"slotDuration" db:"slot_duration" bson:"slot_duration"`
	IsActive        bool           `json:"isActive" db:"is_active" bson:"is_active"`
}

// DoctorRequest carries the mutable doctor fields for create and update.
type DoctorRequest struct {
	Name            string   `json:"name" validate:"required,notblank"`
	Specialty       string   `json:"specialty" validate:"required,notblank"`
	Qualification   string   `json:"qualification"`
	Email           string   `json:"email" validate:"omitempty,email"`
	Phone           string   `json:"phone"`
	HospitalName    string   `json:"hospitalName"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	ConsultationFee float64  `json:"consultationFee" validate:"gte=0"`
	ImageURL        string   `json:"imageUrl"`
	AvailableDays   []string `json:"availableDays" validate:"dive,weekday"`
	StartTime       string   `json:"startTime" validate:"omitempty,clock"`
	EndTime         string   `json:"endTime" validate:"omitempty,clock"`
	SlotDuration    int      `json:"slotDuration" validate:"gte=0"`
	IsActive        *bool    `json:"isActive"`
}

// Apply copies the request onto d, leaving the id untouched.
func (r *DoctorRequest) Apply(d *Doctor) {
	d.Name = r.Name
	d.Specialty = r.Specialty
	d.Qualification = r.Qualification
	d.Email = r.Email
	d.Phone = r.Phone
	d.HospitalName = r.HospitalName
	d.Address = r.Address
	d.City = r.City
	d.ConsultationFee = r.ConsultationFee
	d.ImageURL = r.ImageURL
	d.AvailableDays = append([]string{}, r.AvailableDays...)
	d.StartTime = r.StartTime
	d.EndTime = r.EndTime
	d.SlotDuration = r.SlotDuration
	if d.SlotDuration == 0 {
		d.SlotDuration = DefaultSlotDuration
	}
	if r.IsActive != nil {
		d.IsActive = *r.IsActive
	}
}

// DoctorResponse wraps a created doctor the way the admin client expects.
type DoctorResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Doctor  *Doctor `json:"doctor,omitempty"`
}
