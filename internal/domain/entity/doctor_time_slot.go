package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlotType distinguishes online from in-clinic consultations
type TimeSlotType string

const (
	TimeSlotOnline TimeSlotType = "ONLINE"
	TimeSlotClinic TimeSlotType = "CLINIC"
)

// DoctorTimeSlot represents a single bookable consultation window offered by
// a doctor
type DoctorTimeSlot struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"doctor_id"`
	StartAt   time.Time    `gorm:"not null;index" json:"start_at"`
	EndAt     time.Time    `gorm:"not null" json:"end_at"`
	Type      TimeSlotType `gorm:"type:varchar(10);not null;default:'ONLINE'" json:"type"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor       DoctorProfile       `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Appointments []ConsultAppointment `gorm:"foreignKey:TimeSlotID" json:"appointments,omitempty"`
}

func (DoctorTimeSlot) TableName() string {
	return "doctor_time_slots"
}
