package handler

import (
	"encoding/json"
	"net/http"

	"go-health-consult-platform/internal/delivery/dto"
	"go-health-consult-platform/internal/usecase"
	"go-health-consult-platform/pkg/response"
	"go-health-consult-platform/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientProfileUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientProfileUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// GetMyProfile returns the requesting patient's profile
// @Summary Get my patient profile
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/me [get]
func (h *PatientHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.patientUsecase.GetMyProfile(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to get patient profile")
		return
	}

	response.Success(w, http.StatusOK, "Patient profile retrieved successfully", profile)
}

// UpdateMyProfile updates the requesting patient's profile
// @Summary Update my patient profile
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdatePatientProfileRequest true "Update Patient Profile Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /patients/me [put]
func (h *PatientHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePatientProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.patientUsecase.UpdateMyProfile(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update patient profile")
		return
	}

	response.Success(w, http.StatusOK, "Patient profile updated successfully", profile)
}
