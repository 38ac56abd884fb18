package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordOwnerResponse is the minimal demographic projection returned
// alongside a clinical record. Deliberately not the full patient profile.
type RecordOwnerResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
}

type PatientResponse struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Email         string          `json:"email,omitempty"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	BirthDate     string          `json:"birth_date"`
	Gender        string          `json:"gender"`
	HeightValueCm decimal.Decimal `json:"height_value_cm"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type UpdatePatientProfileRequest struct {
	FirstName     string  `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName      string  `json:"last_name,omitempty" validate:"omitempty,max=100"`
	HeightValueCm float64 `json:"height_value_cm,omitempty" validate:"omitempty,gte=50,lte=250"`
}
