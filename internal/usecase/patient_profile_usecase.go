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

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientProfileUsecase interface {
	GetMyProfile(ctx context.Context) (*dto.PatientResponse, error)
	UpdateMyProfile(ctx context.Context, request *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error)
}

type patientProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientProfileRepository
	auditService service.AuditService
}

func NewPatientProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) PatientProfileUsecase {
	return &patientProfileUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientProfileUsecase) GetMyProfile(ctx context.Context) (*dto.PatientResponse, error) {
	profile, err := u.requesterProfile(ctx)
	if err != nil {
		return nil, err
	}
	return converter.PatientProfileToResponse(profile), nil
}

// UpdateMyProfile applies partial updates. Birth date and gender are fixed
// at registration; height is mutable because stored BMI on past weight
// records keeps the height it was computed with.
func (u *patientProfileUsecase) UpdateMyProfile(ctx context.Context, request *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error) {
	profile, err := u.requesterProfile(ctx)
	if err != nil {
		return nil, err
	}

	if request.FirstName != "" {
		profile.FirstName = request.FirstName
	}
	if request.LastName != "" {
		profile.LastName = request.LastName
	}
	if request.HeightValueCm > 0 {
		profile.HeightValueCm = decimal.NewFromFloat(request.HeightValueCm)
	}

	if err := u.patientRepo.Update(ctx, u.db, profile); err != nil {
		u.log.Warnf("Failed to update patient profile %s: %+v", profile.ID, err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionProfileUpdate, "patient_profile", profile.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Patient profile updated: id=%s", profile.ID)
	return converter.PatientProfileToResponse(profile), nil
}

func (u *patientProfileUsecase) requesterProfile(ctx context.Context) (*entity.PatientProfile, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, apperror.NewAuthorization("requester identity missing")
	}

	profile, err := u.patientRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile for user %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFound("patient profile does not exist")
	}
	return profile, nil
}
