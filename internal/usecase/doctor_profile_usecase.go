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

type DoctorProfileUsecase interface {
	GetMyProfile(ctx context.Context) (*dto.DoctorResponse, error)
	UpdateMyProfile(ctx context.Context, request *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
}

type doctorProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorProfileRepository
	auditService service.AuditService
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorProfileUsecase) GetMyProfile(ctx context.Context) (*dto.DoctorResponse, error) {
	profile, err := u.requesterProfile(ctx)
	if err != nil {
		return nil, err
	}
	return converter.DoctorProfileToResponse(profile), nil
}

// UpdateMyProfile applies partial updates. The STR number and career start
// never change after registration.
func (u *doctorProfileUsecase) UpdateMyProfile(ctx context.Context, request *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error) {
	profile, err := u.requesterProfile(ctx)
	if err != nil {
		return nil, err
	}

	if request.AvatarURL != "" {
		profile.AvatarURL = request.AvatarURL
	}
	if len(request.Specialties) > 0 {
		profile.Specialties = request.Specialties
	}
	if request.Biography != "" {
		profile.Biography = request.Biography
	}

	if err := u.doctorRepo.Update(ctx, u.db, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile %s: %+v", profile.ID, err)
		return nil, err
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionProfileUpdate, "doctor_profile", profile.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Doctor profile updated: id=%s", profile.ID)
	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorProfileUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFound("doctor does not exist")
	}
	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorProfileUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *doctorProfileUsecase) requesterProfile(ctx context.Context) (*entity.DoctorProfile, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, apperror.NewAuthorization("requester identity missing")
	}

	profile, err := u.doctorRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile for user %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFound("doctor profile does not exist")
	}
	return profile, nil
}
