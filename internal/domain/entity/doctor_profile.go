package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorProfile represents doctor-specific profile data.
// Exactly one profile exists per doctor user (unique user_id).
type DoctorProfile struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FirstName     string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName      string    `gorm:"type:varchar(100);not null" json:"last_name"`
	AvatarURL     string    `gorm:"type:text" json:"avatar_url,omitempty"`
	STRNumber     string    `gorm:"column:str_number;type:varchar(50);uniqueIndex;not null" json:"str_number"`
	Specialties   []string  `gorm:"serializer:json" json:"specialties"`
	CareerStartAt time.Time `gorm:"type:date;not null" json:"career_start_at"`
	Biography     string    `gorm:"type:text" json:"biography,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User      User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TimeSlots []DoctorTimeSlot `gorm:"foreignKey:DoctorID" json:"time_slots,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
