package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientQuestion is an asynchronous medical question asked by a patient
type PatientQuestion struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AskerID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"asker_id"`
	Content          string         `gorm:"type:text;not null" json:"content"`
	MedicalSpecialty string         `gorm:"type:varchar(100);not null;index" json:"medical_specialty"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Asker   PatientProfile          `gorm:"foreignKey:AskerID" json:"asker,omitempty"`
	Answers []PatientQuestionAnswer `gorm:"foreignKey:PatientQuestionID" json:"answers,omitempty"`
}

func (PatientQuestion) TableName() string {
	return "patient_questions"
}
