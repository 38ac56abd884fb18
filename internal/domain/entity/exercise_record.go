package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExerciseType categorizes the activity of an exercise record
type ExerciseType string

const (
	ExerciseWalking          ExerciseType = "WALKING"
	ExerciseRunning          ExerciseType = "RUNNING"
	ExerciseCycling          ExerciseType = "CYCLING"
	ExerciseSwimming         ExerciseType = "SWIMMING"
	ExerciseWeightTraining   ExerciseType = "WEIGHT_TRAINING"
	ExerciseAerobicExercise  ExerciseType = "AEROBIC_EXERCISE"
	ExerciseYoga             ExerciseType = "YOGA"
	ExerciseOther            ExerciseType = "OTHER"
)

// IntensityType rates how strenuous the exercise was
type IntensityType string

const (
	IntensityHigh     IntensityType = "HIGH"
	IntensityModerate IntensityType = "MODERATE"
	IntensityLow      IntensityType = "LOW"
)

// ExerciseRecord represents one exercise session
type ExerciseRecord struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	MeasuredAt          time.Time       `gorm:"not null" json:"measured_at"`
	ExerciseType        ExerciseType    `gorm:"type:varchar(30);not null" json:"exercise_type"`
	ExerciseDurationMin int             `gorm:"not null" json:"exercise_duration_min"`
	Intensity           IntensityType   `gorm:"type:varchar(10);not null" json:"intensity"`
	KcalBurned          decimal.Decimal `gorm:"type:decimal(7,2)" json:"kcal_burned"`
	Note                *string         `gorm:"type:text" json:"note,omitempty"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (ExerciseRecord) TableName() string {
	return "exercise_records"
}

func (r ExerciseRecord) OwnerPatientID() uuid.UUID {
	return r.PatientID
}

func (r ExerciseRecord) RecordID() uuid.UUID {
	return r.ID
}
