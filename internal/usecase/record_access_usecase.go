package usecase

import (
	"context"

	"go-health-consult-platform/internal/converter"
	"go-health-consult-platform/internal/delivery/dto"
	"go-health-consult-platform/internal/domain/entity"
	"go-health-consult-platform/internal/domain/repository"
	"go-health-consult-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RecordAccessUsecase decides whether the requester may read one clinical
// record and returns it together with the owner's demographic projection.
// Visibility is appointment-gated, not role-gated: a doctor sees a
// patient's records only while an UPCOMING consultation exists between
// them, and loses it the moment none does.
//
// The algorithm is identical for every record kind; the type parameter
// selects which store is queried.
type RecordAccessUsecase[R entity.HealthRecord] interface {
	AuthorizeAndFetch(ctx context.Context, recordID, targetPatientID uuid.UUID) (*R, *dto.RecordOwnerResponse, error)
}

type recordAccessUsecase[R entity.HealthRecord] struct {
	db         *gorm.DB
	log        *logrus.Logger
	recordRepo repository.HealthRecordRepository[R]
	gate       viewerGate
}

func NewRecordAccessUsecase[R entity.HealthRecord](
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.HealthRecordRepository[R],
	patientRepo repository.PatientProfileRepository,
	doctorRepo repository.DoctorProfileRepository,
	appointmentRepo repository.ConsultAppointmentRepository,
) RecordAccessUsecase[R] {
	return &recordAccessUsecase[R]{
		db:         db,
		log:        log,
		recordRepo: recordRepo,
		gate: viewerGate{
			log:             log,
			patientRepo:     patientRepo,
			doctorRepo:      doctorRepo,
			appointmentRepo: appointmentRepo,
		},
	}
}

// AuthorizeAndFetch runs the ordered check sequence: record existence,
// requester profile, appointment gate, target patient, ownership match.
// Each layer fails with a distinct error so callers can tell "nothing to
// see" apart from "you may not see it". The whole path is read-only and
// safe to retry.
func (u *recordAccessUsecase[R]) AuthorizeAndFetch(ctx context.Context, recordID, targetPatientID uuid.UUID) (*R, *dto.RecordOwnerResponse, error) {
	// Step 1: the record itself. NotFound here is the only NotFound this
	// path ever produces, regardless of requester role.
	record, err := u.recordRepo.FindByID(ctx, u.db, recordID)
	if err != nil {
		u.log.Warnf("Failed to find record %s: %+v", recordID, err)
		return nil, nil, err
	}
	if record == nil {
		return nil, nil, apperror.NewNotFound("record does not exist")
	}

	// Steps 2-5: requester standing and, for doctors, the appointment
	// gate and the target patient.
	owner, err := u.gate.resolveViewableOwner(ctx, u.db, targetPatientID)
	if err != nil {
		return nil, nil, err
	}

	// Step 6: the record must actually belong to the resolved owner. For
	// a patient this rejects other patients' records; for a doctor it
	// rejects a target patient id that does not match the record's true
	// owner.
	if (*record).OwnerPatientID() != owner.ID {
		return nil, nil, apperror.NewAuthorization("record does not belong to the patient")
	}

	return record, converter.PatientProfileToRecordOwner(owner), nil
}
