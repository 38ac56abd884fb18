package usecase

import (
	"context"

	"go-health-consult-platform/internal/delivery/http/middleware"
	"go-health-consult-platform/internal/domain/entity"
	"go-health-consult-platform/internal/domain/repository"
	"go-health-consult-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// viewerGate answers one question for every record kind: which patient's
// records may the requester currently read. Patients may read their own;
// doctors may read a target patient's only while an UPCOMING appointment
// links the two. COMPLETED and CANCELED appointments grant nothing.
type viewerGate struct {
	log             *logrus.Logger
	patientRepo     repository.PatientProfileRepository
	doctorRepo      repository.DoctorProfileRepository
	appointmentRepo repository.ConsultAppointmentRepository
}

// resolveViewableOwner returns the patient profile whose records the
// requester is entitled to read, or an AuthorizationError naming the layer
// that failed.
func (g *viewerGate) resolveViewableOwner(ctx context.Context, db *gorm.DB, targetPatientID uuid.UUID) (*entity.PatientProfile, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, apperror.NewAuthorization("requester identity missing")
	}
	roleID, ok := middleware.GetRoleIDFromContext(ctx)
	if !ok {
		return nil, apperror.NewAuthorization("requester role missing")
	}

	switch roleID {
	case entity.RoleIDPatient:
		profile, err := g.patientRepo.FindByUserID(ctx, db, userID)
		if err != nil {
			g.log.Warnf("Failed to find patient profile for user %s: %+v", userID, err)
			return nil, err
		}
		if profile == nil {
			return nil, apperror.NewAuthorization("patient does not exist")
		}
		return profile, nil

	case entity.RoleIDDoctor:
		doctor, err := g.doctorRepo.FindByUserID(ctx, db, userID)
		if err != nil {
			g.log.Warnf("Failed to find doctor profile for user %s: %+v", userID, err)
			return nil, err
		}
		if doctor == nil {
			return nil, apperror.NewAuthorization("doctor does not exist")
		}

		appointments, err := g.appointmentRepo.FindByPatientIDAndDoctorIDAndStatus(
			ctx, db, targetPatientID, doctor.ID,
			[]entity.ConsultAppointmentStatus{entity.AppointmentUpcoming},
		)
		if err != nil {
			g.log.Warnf("Failed to find appointments for patient %s and doctor %s: %+v", targetPatientID, doctor.ID, err)
			return nil, err
		}
		if len(appointments) == 0 {
			return nil, apperror.NewAuthorization("doctor is not authorized to view this patient's records")
		}

		// A missing patient at this point means a tampered or stale
		// target id, not a legitimate not-found, so it stays an
		// authorization failure.
		patient, err := g.patientRepo.FindByID(ctx, db, targetPatientID)
		if err != nil {
			g.log.Warnf("Failed to find patient %s: %+v", targetPatientID, err)
			return nil, err
		}
		if patient == nil {
			return nil, apperror.NewAuthorization("patient does not exist")
		}
		return patient, nil

	default:
		return nil, apperror.NewAuthorization("role is not allowed to read records")
	}
}
