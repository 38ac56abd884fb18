package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsultAppointmentStatus represents the lifecycle of an appointment.
// Only UPCOMING grants a doctor visibility into the patient's records.
type ConsultAppointmentStatus string

const (
	AppointmentUpcoming  ConsultAppointmentStatus = "UPCOMING"
	AppointmentCompleted ConsultAppointmentStatus = "COMPLETED"
	AppointmentCanceled  ConsultAppointmentStatus = "CANCELED"
)

// ConsultAppointment links a patient to a doctor's time slot. It is the
// ground truth the record access rules read to decide whether a doctor is
// currently entitled to see a patient's data.
type ConsultAppointment struct {
	ID          uuid.UUID                `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID                `gorm:"type:uuid;not null;index" json:"patient_id"`
	TimeSlotID  uuid.UUID                `gorm:"type:uuid;not null;index" json:"time_slot_id"`
	Status      ConsultAppointmentStatus `gorm:"type:varchar(20);not null;default:'UPCOMING';index" json:"status"`
	MeetingLink *string                  `gorm:"type:text" json:"meeting_link,omitempty"`
	CreatedAt   time.Time                `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt           `gorm:"index" json:"-"`

	// Relationships
	Patient  PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	TimeSlot DoctorTimeSlot `gorm:"foreignKey:TimeSlotID" json:"time_slot,omitempty"`
}

func (ConsultAppointment) TableName() string {
	return "consult_appointments"
}

// IsUpcoming checks if the appointment still grants record visibility
func (a *ConsultAppointment) IsUpcoming() bool {
	return a.Status == AppointmentUpcoming
}

// IsCanceled checks if the appointment was canceled
func (a *ConsultAppointment) IsCanceled() bool {
	return a.Status == AppointmentCanceled
}

// Complete moves the appointment to COMPLETED
func (a *ConsultAppointment) Complete() {
	a.Status = AppointmentCompleted
}

// Cancel moves the appointment to CANCELED
func (a *ConsultAppointment) Cancel() {
	a.Status = AppointmentCanceled
}
