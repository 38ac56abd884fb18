package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GlycatedHemoglobinRecord represents one HbA1c lab value
type GlycatedHemoglobinRecord struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID              uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	MeasuredAt             time.Time       `gorm:"not null" json:"measured_at"`
	GlycatedHemoglobinPct  decimal.Decimal `gorm:"type:decimal(4,2);not null" json:"glycated_hemoglobin_pct"`
	Note                   *string         `gorm:"type:text" json:"note,omitempty"`
	CreatedAt              time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (GlycatedHemoglobinRecord) TableName() string {
	return "glycated_hemoglobin_records"
}

func (r GlycatedHemoglobinRecord) OwnerPatientID() uuid.UUID {
	return r.PatientID
}

func (r GlycatedHemoglobinRecord) RecordID() uuid.UUID {
	return r.ID
}
