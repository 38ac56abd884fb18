package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MealTimeCategory places a food record within the day
type MealTimeCategory string

const (
	MealBreakfast MealTimeCategory = "BREAKFAST"
	MealLunch     MealTimeCategory = "LUNCH"
	MealDinner    MealTimeCategory = "DINNER"
	MealSnack     MealTimeCategory = "SNACK"
)

// FoodRecord represents one meal entry
type FoodRecord struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"patient_id"`
	MeasuredAt   time.Time        `gorm:"not null" json:"measured_at"`
	MealTime     MealTimeCategory `gorm:"type:varchar(20);not null" json:"meal_time"`
	FoodCategory string           `gorm:"type:varchar(50)" json:"food_category,omitempty"`
	Kcal         decimal.Decimal  `gorm:"type:decimal(7,2)" json:"kcal"`
	Note         *string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (FoodRecord) TableName() string {
	return "food_records"
}

func (r FoodRecord) OwnerPatientID() uuid.UUID {
	return r.PatientID
}

func (r FoodRecord) RecordID() uuid.UUID {
	return r.ID
}
