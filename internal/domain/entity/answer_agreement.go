package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerAgreement is a doctor's endorsement of another doctor's answer.
// At most one non-deleted agreement exists per (answer, doctor) pair; the
// partial unique index backs the usecase's pre-insert check against the
// check-then-act race. Re-agreeing after cancellation creates a new row.
type AnswerAgreement struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AnswerID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_agreement_answer_doctor,unique,where:deleted_at IS NULL" json:"answer_id"`
	AgreedDoctorID uuid.UUID      `gorm:"type:uuid;not null;index:idx_agreement_answer_doctor,unique,where:deleted_at IS NULL" json:"agreed_doctor_id"`
	Comment        *string        `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Answer       PatientQuestionAnswer `gorm:"foreignKey:AnswerID" json:"answer,omitempty"`
	AgreedDoctor DoctorProfile         `gorm:"foreignKey:AgreedDoctorID" json:"agreed_doctor,omitempty"`
}

func (AnswerAgreement) TableName() string {
	return "answer_agreements"
}
