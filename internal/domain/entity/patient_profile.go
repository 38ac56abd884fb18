package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PatientProfile represents patient-specific profile data.
// Exactly one profile exists per patient user (unique user_id).
type PatientProfile struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FirstName     string          `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName      string          `gorm:"type:varchar(100);not null" json:"last_name"`
	BirthDate     time.Time       `gorm:"type:date;not null" json:"birth_date"`
	Gender        string          `gorm:"type:varchar(10);not null" json:"gender"`
	HeightValueCm decimal.Decimal `gorm:"type:decimal(5,1)" json:"height_value_cm"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// Gender constants
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)
