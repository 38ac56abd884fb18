package dto

import (
	"time"

	"github.com/google/uuid"
)

type DoctorResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	STRNumber     string    `json:"str_number"`
	Specialties   []string  `json:"specialties"`
	CareerStartAt string    `json:"career_start_at"`
	Biography     string    `json:"biography,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type UpdateDoctorProfileRequest struct {
	AvatarURL   string   `json:"avatar_url,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Biography   string   `json:"biography,omitempty"`
}
