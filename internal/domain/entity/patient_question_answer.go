package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientQuestionAnswer is one doctor's answer to a patient question.
// An answer belongs to exactly one question and one doctor.
type PatientQuestionAnswer struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientQuestionID uuid.UUID      `gorm:"type:uuid;not null;index" json:"patient_question_id"`
	DoctorID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Content           string         `gorm:"type:text;not null" json:"content"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	PatientQuestion PatientQuestion      `gorm:"foreignKey:PatientQuestionID" json:"patient_question,omitempty"`
	Doctor          DoctorProfile        `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Agreements      []AnswerAgreement    `gorm:"foreignKey:AnswerID" json:"agreements,omitempty"`
	Appreciations   []AnswerAppreciation `gorm:"foreignKey:AnswerID" json:"appreciations,omitempty"`
}

func (PatientQuestionAnswer) TableName() string {
	return "patient_question_answers"
}
