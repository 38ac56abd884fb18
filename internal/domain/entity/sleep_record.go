package entity

import (
	"time"

	"github.com/google/uuid"
)

// SleepQuality rates a night of sleep
type SleepQuality string

const (
	SleepQualityGood SleepQuality = "GOOD"
	SleepQualityFair SleepQuality = "FAIR"
	SleepQualityPoor SleepQuality = "POOR"
)

// SleepRecord represents one night of sleep.
// At most one record per patient per calendar day (composite unique index).
type SleepRecord struct {
	ID                uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID         uuid.UUID    `gorm:"type:uuid;not null;index;uniqueIndex:uidx_sleep_patient_date" json:"patient_id"`
	RecordDate        time.Time    `gorm:"type:date;not null;uniqueIndex:uidx_sleep_patient_date" json:"record_date"`
	SleepStartAt      time.Time    `gorm:"not null" json:"sleep_start_at"`
	SleepEndAt        time.Time    `gorm:"not null" json:"sleep_end_at"`
	SleepDurationHour float64      `gorm:"not null" json:"sleep_duration_hour"`
	SleepQuality      SleepQuality `gorm:"type:varchar(10);not null" json:"sleep_quality"`
	Note              *string      `gorm:"type:text" json:"note,omitempty"`
	CreatedAt         time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (SleepRecord) TableName() string {
	return "sleep_records"
}

func (r SleepRecord) OwnerPatientID() uuid.UUID {
	return r.PatientID
}

func (r SleepRecord) RecordID() uuid.UUID {
	return r.ID
}
