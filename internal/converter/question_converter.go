package converter

import (
	"go-health-consult-platform/internal/delivery/dto"
	"go-health-consult-platform/internal/domain/entity"
)

// QuestionToResponse converts a PatientQuestion entity to QuestionResponse DTO
func QuestionToResponse(question *entity.PatientQuestion) *dto.QuestionResponse {
	if question == nil {
		return nil
	}

	return &dto.QuestionResponse{
		ID:               question.ID,
		AskerID:          question.AskerID,
		Content:          question.Content,
		MedicalSpecialty: question.MedicalSpecialty,
		CreatedAt:        question.CreatedAt,
	}
}

// QuestionsToResponses converts a slice of PatientQuestion entities
func QuestionsToResponses(questions []entity.PatientQuestion) []dto.QuestionResponse {
	responses := make([]dto.QuestionResponse, len(questions))
	for i, question := range questions {
		resp := QuestionToResponse(&question)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// AnswerToResponse converts a PatientQuestionAnswer entity to AnswerResponse DTO
func AnswerToResponse(answer *entity.PatientQuestionAnswer) *dto.AnswerResponse {
	if answer == nil {
		return nil
	}

	return &dto.AnswerResponse{
		ID:                answer.ID,
		PatientQuestionID: answer.PatientQuestionID,
		DoctorID:          answer.DoctorID,
		Content:           answer.Content,
		CreatedAt:         answer.CreatedAt,
	}
}

// AnswersToResponses converts a slice of PatientQuestionAnswer entities
func AnswersToResponses(answers []entity.PatientQuestionAnswer) []dto.AnswerResponse {
	responses := make([]dto.AnswerResponse, len(answers))
	for i, answer := range answers {
		resp := AnswerToResponse(&answer)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
