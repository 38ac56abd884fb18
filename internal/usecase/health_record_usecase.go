package usecase

import (
	"context"

	"go-health-consult-platform/internal/converter"
	"go-health-consult-platform/internal/delivery/dto"
	"go-health-consult-platform/internal/delivery/http/middleware"
	"go-health-consult-platform/internal/domain/entity"
	"go-health-consult-platform/internal/domain/repository"
	"go-health-consult-platform/internal/service"
	"go-health-consult-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// HealthRecordUsecase is the generic lifecycle for one measurement record
// kind. Creation and deletion are owner-only; reads go through the
// appointment-gated access path shared with doctors.
//
// Create takes a build callback instead of a finished entity because some
// kinds derive fields from the owner's profile (weight records compute BMI
// from the patient's height) and only the usecase knows who the owner is.
type HealthRecordUsecase[R entity.HealthRecord] interface {
	Create(ctx context.Context, build func(patient *entity.PatientProfile) *R) (*R, error)
	Get(ctx context.Context, recordID, targetPatientID uuid.UUID) (*dto.HealthRecordResponse, error)
	List(ctx context.Context, targetPatientID uuid.UUID) (*dto.HealthRecordListResponse, error)
	Delete(ctx context.Context, recordID uuid.UUID) error
}

type healthRecordUsecase[R entity.HealthRecord] struct {
	db           *gorm.DB
	log          *logrus.Logger
	kind         entity.HealthRecordKind
	recordRepo   repository.HealthRecordRepository[R]
	patientRepo  repository.PatientProfileRepository
	accessUc     RecordAccessUsecase[R]
	gate         viewerGate
	auditService service.AuditService
}

func NewHealthRecordUsecase[R entity.HealthRecord](
	db *gorm.DB,
	log *logrus.Logger,
	kind entity.HealthRecordKind,
	recordRepo repository.HealthRecordRepository[R],
	patientRepo repository.PatientProfileRepository,
	doctorRepo repository.DoctorProfileRepository,
	appointmentRepo repository.ConsultAppointmentRepository,
	accessUc RecordAccessUsecase[R],
	auditService service.AuditService,
) HealthRecordUsecase[R] {
	return &healthRecordUsecase[R]{
		db:          db,
		log:         log,
		kind:        kind,
		recordRepo:  recordRepo,
		patientRepo: patientRepo,
		accessUc:    accessUc,
		gate: viewerGate{
			log:             log,
			patientRepo:     patientRepo,
			doctorRepo:      doctorRepo,
			appointmentRepo: appointmentRepo,
		},
		auditService: auditService,
	}
}

// Create stores a new measurement for the requesting patient. Kinds with a
// one-per-day rule rely on the store's composite unique index; a violation
// maps to a ValidationError rather than bubbling a raw database error.
func (u *healthRecordUsecase[R]) Create(ctx context.Context, build func(patient *entity.PatientProfile) *R) (*R, error) {
	patient, err := u.requesterPatient(ctx)
	if err != nil {
		return nil, err
	}

	record := build(patient)
	if err := u.recordRepo.Create(ctx, u.db, record); err != nil {
		if isDuplicateKeyError(err, "patient_date") {
			return nil, apperror.NewValidation("a %s record already exists for this date", u.kind)
		}
		u.log.Warnf("Failed to create %s record for patient %s: %+v", u.kind, patient.ID, err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionRecordCreate, string(u.kind), (*record).RecordID().String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("%s record created: id=%s, patient=%s", u.kind, (*record).RecordID(), patient.ID)
	return record, nil
}

// Get returns one record after the full authorization sequence.
func (u *healthRecordUsecase[R]) Get(ctx context.Context, recordID, targetPatientID uuid.UUID) (*dto.HealthRecordResponse, error) {
	record, owner, err := u.accessUc.AuthorizeAndFetch(ctx, recordID, targetPatientID)
	if err != nil {
		return nil, err
	}

	return &dto.HealthRecordResponse{
		Data:        record,
		RecordOwner: owner,
	}, nil
}

// List returns every record of this kind for the target patient. The same
// appointment gate applies as for single-record reads; patients always list
// their own, doctors list a gated target's.
func (u *healthRecordUsecase[R]) List(ctx context.Context, targetPatientID uuid.UUID) (*dto.HealthRecordListResponse, error) {
	owner, err := u.gate.resolveViewableOwner(ctx, u.db, targetPatientID)
	if err != nil {
		return nil, err
	}

	records, err := u.recordRepo.FindByPatientID(ctx, u.db, owner.ID)
	if err != nil {
		u.log.Warnf("Failed to list %s records for patient %s: %+v", u.kind, owner.ID, err)
		return nil, err
	}
	if records == nil {
		records = []R{}
	}

	return &dto.HealthRecordListResponse{
		Records:     records,
		RecordOwner: converter.PatientProfileToRecordOwner(owner),
		Total:       len(records),
	}, nil
}

// Delete removes the requesting patient's own record. Scoping the delete by
// both record id and patient id means someone else's record id comes back
// as zero rows, indistinguishable from a record that never existed.
func (u *healthRecordUsecase[R]) Delete(ctx context.Context, recordID uuid.UUID) error {
	patient, err := u.requesterPatient(ctx)
	if err != nil {
		return err
	}

	affected, err := u.recordRepo.DeleteByIDAndPatientID(ctx, u.db, recordID, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to delete %s record %s: %+v", u.kind, recordID, err)
		return err
	}
	if affected == 0 {
		return apperror.NewNotFound("record does not exist")
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionRecordDelete, string(u.kind), recordID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("%s record deleted: id=%s, patient=%s", u.kind, recordID, patient.ID)
	return nil
}

func (u *healthRecordUsecase[R]) requesterPatient(ctx context.Context) (*entity.PatientProfile, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, apperror.NewAuthorization("requester identity missing")
	}

	patient, err := u.patientRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile for user %s: %+v", userID, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewAuthorization("patient does not exist")
	}
	return patient, nil
}
