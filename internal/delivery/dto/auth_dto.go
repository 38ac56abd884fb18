package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPatientRequest struct {
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=8"`
	FirstName     string  `json:"first_name" validate:"required,max=100"`
	LastName      string  `json:"last_name" validate:"required,max=100"`
	BirthDate     string  `json:"birth_date" validate:"required"`
	Gender        string  `json:"gender" validate:"required,oneof=MALE FEMALE"`
	HeightValueCm float64 `json:"height_value_cm" validate:"required,gte=50,lte=250"`
}

type RegisterDoctorRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Password      string   `json:"password" validate:"required,min=8"`
	FirstName     string   `json:"first_name" validate:"required,max=100"`
	LastName      string   `json:"last_name" validate:"required,max=100"`
	STRNumber     string   `json:"str_number" validate:"required,max=50"`
	Specialties   []string `json:"specialties" validate:"required,min=1"`
	CareerStartAt string   `json:"career_start_at" validate:"required"`
	AvatarURL     string   `json:"avatar_url,omitempty"`
	Biography     string   `json:"biography,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	RoleID    int       `json:"role_id"`
	RoleName  string    `json:"role_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
