package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WeightRecord represents one body weight measurement. BMI is derived from
// the patient's height at creation time and stored with the record.
// At most one record per patient per calendar day (composite unique index).
type WeightRecord struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:uidx_weight_patient_date" json:"patient_id"`
	RecordDate    time.Time       `gorm:"type:date;not null;uniqueIndex:uidx_weight_patient_date" json:"record_date"`
	MeasuredAt    time.Time       `gorm:"not null" json:"measured_at"`
	WeightValueKg decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"weight_value_kg"`
	BodyMassIndex decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"body_mass_index"`
	Note          *string         `gorm:"type:text" json:"note,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (WeightRecord) TableName() string {
	return "weight_records"
}

func (r WeightRecord) OwnerPatientID() uuid.UUID {
	return r.PatientID
}

func (r WeightRecord) RecordID() uuid.UUID {
	return r.ID
}
