package handler

import (
	"encoding/json"
	"net/http"

	"go-health-consult-platform/internal/delivery/dto"
	"go-health-consult-platform/internal/usecase"
	"go-health-consult-platform/pkg/response"
	"go-health-consult-platform/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type QuestionHandler struct {
	questionUsecase  usecase.PatientQuestionUsecase
	agreementUsecase usecase.AnswerAgreementUsecase
	validator        *validator.CustomValidator
}

func NewQuestionHandler(
	questionUsecase usecase.PatientQuestionUsecase,
	agreementUsecase usecase.AnswerAgreementUsecase,
	validator *validator.CustomValidator,
) *QuestionHandler {
	return &QuestionHandler{
		questionUsecase:  questionUsecase,
		agreementUsecase: agreementUsecase,
		validator:        validator,
	}
}

// CreateQuestion posts a new question from the requesting patient
// @Summary Ask a question
// @Tags Questions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateQuestionRequest true "Create Question Request"
// @Success 201 {object} response.Response
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	question, err := h.questionUsecase.CreateQuestion(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create question")
		return
	}

	response.Success(w, http.StatusCreated, "Question created successfully", question)
}

// GetQuestions lists questions: the requester's own, or filtered by specialty
// @Summary List questions
// @Tags Questions
// @Security BearerAuth
// @Produce json
// @Param specialty query string false "Filter by medical specialty"
// @Success 200 {object} response.Response
// @Router /questions [get]
func (h *QuestionHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	var questions *dto.QuestionListResponse
	var err error
	if specialty := r.URL.Query().Get("specialty"); specialty != "" {
		questions, err = h.questionUsecase.GetQuestionsBySpecialty(r.Context(), specialty)
	} else {
		questions, err = h.questionUsecase.GetMyQuestions(r.Context())
	}
	if err != nil {
		writeUsecaseError(w, err, "Failed to list questions")
		return
	}

	response.Success(w, http.StatusOK, "Questions retrieved successfully", questions)
}

// DeleteQuestion removes the requester's own question and everything under it
// @Summary Delete a question
// @Tags Questions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid question ID", nil)
		return
	}

	if err := h.questionUsecase.DeleteQuestion(r.Context(), questionID); err != nil {
		writeUsecaseError(w, err, "Failed to delete question")
		return
	}

	response.Success(w, http.StatusOK, "Question deleted successfully", nil)
}

// CreateAnswer posts a doctor's answer to a question
// @Summary Answer a question
// @Tags Questions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param request body dto.CreateAnswerRequest true "Create Answer Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /questions/{id}/answers [post]
func (h *QuestionHandler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	questionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid question ID", nil)
		return
	}

	var req dto.CreateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	answer, err := h.questionUsecase.CreateAnswer(r.Context(), questionID, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create answer")
		return
	}

	response.Success(w, http.StatusCreated, "Answer created successfully", answer)
}

// GetAnswers lists all answers on a question
// @Summary List answers
// @Tags Questions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /questions/{id}/answers [get]
func (h *QuestionHandler) GetAnswers(w http.ResponseWriter, r *http.Request) {
	questionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid question ID", nil)
		return
	}

	answers, err := h.questionUsecase.GetAnswers(r.Context(), questionID)
	if err != nil {
		writeUsecaseError(w, err, "Failed to list answers")
		return
	}

	response.Success(w, http.StatusOK, "Answers retrieved successfully", answers)
}

// DeleteAnswer removes the requesting doctor's own answer
// @Summary Delete an answer
// @Tags Questions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Answer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /answers/{id} [delete]
func (h *QuestionHandler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	answerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid answer ID", nil)
		return
	}

	if err := h.questionUsecase.DeleteAnswer(r.Context(), answerID); err != nil {
		writeUsecaseError(w, err, "Failed to delete answer")
		return
	}

	response.Success(w, http.StatusOK, "Answer deleted successfully", nil)
}

// CreateAgreement registers the requesting doctor's agreement with an answer
// @Summary Agree with an answer
// @Tags Questions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Answer ID"
// @Param request body dto.CreateAgreementRequest false "Create Agreement Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /answers/{id}/agreements [post]
func (h *QuestionHandler) CreateAgreement(w http.ResponseWriter, r *http.Request) {
	answerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid answer ID", nil)
		return
	}

	var req dto.CreateAgreementRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
	}

	summary, err := h.agreementUsecase.CreateAgreement(r.Context(), answerID, req.Comment)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create agreement")
		return
	}

	response.Success(w, http.StatusCreated, "Agreement created successfully", summary)
}

// CancelAgreement retracts the requesting doctor's agreement
// @Summary Cancel an agreement
// @Tags Questions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Answer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /answers/{id}/agreements [delete]
func (h *QuestionHandler) CancelAgreement(w http.ResponseWriter, r *http.Request) {
	answerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid answer ID", nil)
		return
	}

	summary, err := h.agreementUsecase.CancelAgreement(r.Context(), answerID)
	if err != nil {
		writeUsecaseError(w, err, "Failed to cancel agreement")
		return
	}

	response.Success(w, http.StatusOK, "Agreement canceled successfully", summary)
}

// CreateAppreciation records a patient's thank-you on an answer
// @Summary Appreciate an answer
// @Tags Questions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Answer ID"
// @Param request body dto.CreateAppreciationRequest false "Create Appreciation Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /answers/{id}/appreciations [post]
func (h *QuestionHandler) CreateAppreciation(w http.ResponseWriter, r *http.Request) {
	answerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid answer ID", nil)
		return
	}

	var req dto.CreateAppreciationRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
	}

	if err := h.questionUsecase.CreateAppreciation(r.Context(), answerID, &req); err != nil {
		writeUsecaseError(w, err, "Failed to create appreciation")
		return
	}

	response.Success(w, http.StatusCreated, "Appreciation created successfully", nil)
}
