package handler

import (
	"errors"
	"net/http"

	"go-health-consult-platform/internal/domain/entity"
	"go-health-consult-platform/internal/usecase"
	"go-health-consult-platform/pkg/response"
	"go-health-consult-platform/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// errInvalidBody marks a request body that could not be decoded at all, as
// opposed to one that decoded but failed field validation.
var errInvalidBody = errors.New("invalid request body")

// recordBuilder decodes and validates a kind-specific creation payload and
// returns a constructor the usecase calls once it has resolved the owning
// patient. Field validation failures come back as validator.ValidationErrors.
type recordBuilder[R entity.HealthRecord] func(r *http.Request) (func(patient *entity.PatientProfile) *R, error)

// HealthRecordHandler serves one measurement record kind. All four routes
// share the same shape across kinds; only the creation payload differs,
// which is what the injected builder covers.
type HealthRecordHandler[R entity.HealthRecord] struct {
	recordUsecase usecase.HealthRecordUsecase[R]
	validator     *validator.CustomValidator
	build         recordBuilder[R]
}

func NewHealthRecordHandler[R entity.HealthRecord](
	recordUsecase usecase.HealthRecordUsecase[R],
	validator *validator.CustomValidator,
	build recordBuilder[R],
) *HealthRecordHandler[R] {
	return &HealthRecordHandler[R]{
		recordUsecase: recordUsecase,
		validator:     validator,
		build:         build,
	}
}

// Create stores a new record for the requesting patient.
func (h *HealthRecordHandler[R]) Create(w http.ResponseWriter, r *http.Request) {
	build, err := h.build(r)
	if err != nil {
		if errors.Is(err, errInvalidBody) {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), build)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create record")
		return
	}

	response.Success(w, http.StatusCreated, "Record created successfully", record)
}

// Get returns one record. Doctors pass the target patient via the
// patient_id query parameter; for patients it is ignored.
func (h *HealthRecordHandler[R]) Get(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	targetPatientID, ok := parseOptionalPatientID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	record, err := h.recordUsecase.Get(r.Context(), recordID, targetPatientID)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get record")
		return
	}

	response.Success(w, http.StatusOK, "Record retrieved successfully", record)
}

// List returns all records of this kind for the target patient.
func (h *HealthRecordHandler[R]) List(w http.ResponseWriter, r *http.Request) {
	targetPatientID, ok := parseOptionalPatientID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	records, err := h.recordUsecase.List(r.Context(), targetPatientID)
	if err != nil {
		writeUsecaseError(w, err, "Failed to list records")
		return
	}

	response.Success(w, http.StatusOK, "Records retrieved successfully", records)
}

// Delete removes the requesting patient's own record.
func (h *HealthRecordHandler[R]) Delete(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	if err := h.recordUsecase.Delete(r.Context(), recordID); err != nil {
		writeUsecaseError(w, err, "Failed to delete record")
		return
	}

	response.Success(w, http.StatusOK, "Record deleted successfully", nil)
}

func parseOptionalPatientID(r *http.Request) (uuid.UUID, bool) {
	raw := r.URL.Query().Get("patient_id")
	if raw == "" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
