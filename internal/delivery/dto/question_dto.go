package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateQuestionRequest struct {
	Content          string `json:"content" validate:"required"`
	MedicalSpecialty string `json:"medical_specialty" validate:"required,max=100"`
}

type CreateAnswerRequest struct {
	Content string `json:"content" validate:"required"`
}

type CreateAgreementRequest struct {
	Comment *string `json:"comment,omitempty"`
}

type CreateAppreciationRequest struct {
	Content *string `json:"content,omitempty"`
}

// Response DTOs

type QuestionResponse struct {
	ID               uuid.UUID `json:"id"`
	AskerID          uuid.UUID `json:"asker_id"`
	Content          string    `json:"content"`
	MedicalSpecialty string    `json:"medical_specialty"`
	CreatedAt        time.Time `json:"created_at"`
}

type QuestionListResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Total     int                `json:"total"`
}

type AnswerResponse struct {
	ID                uuid.UUID `json:"id"`
	PatientQuestionID uuid.UUID `json:"patient_question_id"`
	DoctorID          uuid.UUID `json:"doctor_id"`
	Content           string    `json:"content"`
	CreatedAt         time.Time `json:"created_at"`
}

type AnswerListResponse struct {
	Answers []AnswerResponse `json:"answers"`
	Total   int              `json:"total"`
}

// AnswerAgreementSummaryResponse is the shared read-back payload of both
// agreement creation and cancellation.
type AnswerAgreementSummaryResponse struct {
	TotalAgreedDoctorCount int64    `json:"total_agreed_doctor_count"`
	AgreedDoctorAvatars    []string `json:"agreed_doctor_avatars"`
}
