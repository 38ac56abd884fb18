package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerAppreciation is a patient's thank-you on a doctor's answer
type AnswerAppreciation struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AnswerID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_appreciation_answer_patient,unique,where:deleted_at IS NULL" json:"answer_id"`
	PatientID uuid.UUID      `gorm:"type:uuid;not null;index:idx_appreciation_answer_patient,unique,where:deleted_at IS NULL" json:"patient_id"`
	Content   *string        `gorm:"type:text" json:"content,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Answer  PatientQuestionAnswer `gorm:"foreignKey:AnswerID" json:"answer,omitempty"`
	Patient PatientProfile        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (AnswerAppreciation) TableName() string {
	return "answer_appreciations"
}
