package entity

import (
	"time"

	"github.com/google/uuid"
)

// BloodSugarMeasurementType distinguishes fasting from post-meal readings
type BloodSugarMeasurementType string

const (
	BloodSugarFasting  BloodSugarMeasurementType = "FAST_PLASMA_GLUCOSE"
	BloodSugarPostMeal BloodSugarMeasurementType = "POSTPRANDIAL_PLASMA_GLUCOSE"
)

// BloodSugarRecord represents one blood glucose measurement
type BloodSugarRecord struct {
	ID              uuid.UUID                 `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID                 `gorm:"type:uuid;not null;index" json:"patient_id"`
	MeasuredAt      time.Time                 `gorm:"not null" json:"measured_at"`
	ValueMmoL       float64                   `gorm:"not null" json:"value_mmo_l"`
	MeasurementType BloodSugarMeasurementType `gorm:"type:varchar(50);not null" json:"measurement_type"`
	Note            *string                   `gorm:"type:text" json:"note,omitempty"`
	CreatedAt       time.Time                 `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                 `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (BloodSugarRecord) TableName() string {
	return "blood_sugar_records"
}

func (r BloodSugarRecord) OwnerPatientID() uuid.UUID {
	return r.PatientID
}

func (r BloodSugarRecord) RecordID() uuid.UUID {
	return r.ID
}
