package entity

import (
	"time"

	"github.com/google/uuid"
)

// BloodPressureRecord represents one blood pressure measurement.
// At most one record per patient per calendar day (composite unique index).
type BloodPressureRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uidx_bp_patient_date" json:"patient_id"`
	RecordDate     time.Time `gorm:"type:date;not null;uniqueIndex:uidx_bp_patient_date" json:"record_date"`
	MeasuredAt     time.Time `gorm:"not null" json:"measured_at"`
	SystolicMmHg   int       `gorm:"not null" json:"systolic_mm_hg"`
	DiastolicMmHg  int       `gorm:"not null" json:"diastolic_mm_hg"`
	HeartBeatSpeed int       `gorm:"not null" json:"heart_beat_speed"`
	Note           *string   `gorm:"type:text" json:"note,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (BloodPressureRecord) TableName() string {
	return "blood_pressure_records"
}

func (r BloodPressureRecord) OwnerPatientID() uuid.UUID {
	return r.PatientID
}

func (r BloodPressureRecord) RecordID() uuid.UUID {
	return r.ID
}
