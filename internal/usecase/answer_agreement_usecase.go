package usecase

import (
	"context"

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

// AnswerAgreementUsecase lets doctors other than an answer's author
// register agreement with it, and lets an agreeing doctor retract their
// own agreement. Both operations return the same read-back aggregate so
// clients always see the post-mutation consensus state.
type AnswerAgreementUsecase interface {
	CreateAgreement(ctx context.Context, answerID uuid.UUID, comment *string) (*dto.AnswerAgreementSummaryResponse, error)
	CancelAgreement(ctx context.Context, answerID uuid.UUID) (*dto.AnswerAgreementSummaryResponse, error)
}

type answerAgreementUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	doctorRepo    repository.DoctorProfileRepository
	answerRepo    repository.PatientQuestionAnswerRepository
	agreementRepo repository.AnswerAgreementRepository
	auditService  service.AuditService
}

func NewAnswerAgreementUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	answerRepo repository.PatientQuestionAnswerRepository,
	agreementRepo repository.AnswerAgreementRepository,
	auditService service.AuditService,
) AnswerAgreementUsecase {
	return &answerAgreementUsecase{
		db:            db,
		log:           log,
		doctorRepo:    doctorRepo,
		answerRepo:    answerRepo,
		agreementRepo: agreementRepo,
		auditService:  auditService,
	}
}

// CreateAgreement registers the requesting doctor's agreement with an
// answer. A doctor may hold at most one live agreement per answer; the
// pre-insert check is backed by a partial unique index in the store, and a
// unique violation slipping through the race window maps to the same
// ValidationError as a pre-check hit.
func (u *answerAgreementUsecase) CreateAgreement(ctx context.Context, answerID uuid.UUID, comment *string) (*dto.AnswerAgreementSummaryResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, apperror.NewAuthorization("requester identity missing")
	}

	doctor, err := u.doctorRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile for user %s: %+v", userID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewAuthorization("doctor does not exist")
	}

	answer, err := u.answerRepo.FindByID(ctx, u.db, answerID)
	if err != nil {
		u.log.Warnf("Failed to find answer %s: %+v", answerID, err)
		return nil, err
	}
	if answer == nil {
		return nil, apperror.NewNotFound("answer does not exist")
	}

	if answer.DoctorID == doctor.ID {
		return nil, apperror.NewValidation("cannot agree with your own answer")
	}

	existing, err := u.agreementRepo.FindByAnswerIDAndDoctorID(ctx, u.db, answerID, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to check existing agreement: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewValidation("already agreed with this answer")
	}

	agreement := &entity.AnswerAgreement{
		AnswerID:       answerID,
		AgreedDoctorID: doctor.ID,
		Comment:        comment,
	}
	if err := u.agreementRepo.Create(ctx, u.db, agreement); err != nil {
		if isDuplicateKeyError(err, "idx_agreement_answer_doctor") {
			return nil, apperror.NewValidation("already agreed with this answer")
		}
		u.log.Warnf("Failed to create agreement for answer %s: %+v", answerID, err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionAgreementCreate, "answer_agreement", agreement.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Agreement created: answer=%s, doctor=%s", answerID, doctor.ID)
	return u.readBackSummary(ctx, answerID)
}

// CancelAgreement soft-deletes the requesting doctor's agreement. The
// aggregate reflects the removal immediately; re-agreeing afterwards
// creates a fresh row.
func (u *answerAgreementUsecase) CancelAgreement(ctx context.Context, answerID uuid.UUID) (*dto.AnswerAgreementSummaryResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, apperror.NewAuthorization("requester identity missing")
	}

	doctor, err := u.doctorRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile for user %s: %+v", userID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewAuthorization("doctor does not exist")
	}

	agreement, err := u.agreementRepo.FindByAnswerIDAndDoctorID(ctx, u.db, answerID, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find agreement for answer %s: %+v", answerID, err)
		return nil, err
	}
	if agreement == nil {
		return nil, apperror.NewNotFound("agreement does not exist")
	}

	affected, err := u.agreementRepo.Delete(ctx, u.db, agreement.ID)
	if err != nil {
		u.log.Warnf("Failed to delete agreement %s: %+v", agreement.ID, err)
		return nil, err
	}
	if affected == 0 {
		// Lost a race against a concurrent cancel.
		return nil, apperror.NewNotFound("agreement does not exist")
	}

	if err := u.auditService.LogAction(ctx, u.db, &userID, entity.AuditActionAgreementCancel, "answer_agreement", agreement.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Agreement canceled: answer=%s, doctor=%s", answerID, doctor.ID)
	return u.readBackSummary(ctx, answerID)
}

// readBackSummary recomputes the consensus aggregate. Creation and
// cancellation share this single path, and soft-deleted rows are excluded
// by the store, so the count and avatar list always match.
func (u *answerAgreementUsecase) readBackSummary(ctx context.Context, answerID uuid.UUID) (*dto.AnswerAgreementSummaryResponse, error) {
	count, err := u.agreementRepo.CountByAnswerID(ctx, u.db, answerID)
	if err != nil {
		u.log.Warnf("Failed to count agreements for answer %s: %+v", answerID, err)
		return nil, err
	}

	avatars, err := u.agreementRepo.FindAgreedDoctorAvatarsByAnswerID(ctx, u.db, answerID)
	if err != nil {
		u.log.Warnf("Failed to list agreed doctor avatars for answer %s: %+v", answerID, err)
		return nil, err
	}
	if avatars == nil {
		avatars = []string{}
	}

	return &dto.AnswerAgreementSummaryResponse{
		TotalAgreedDoctorCount: count,
		AgreedDoctorAvatars:    avatars,
	}, nil
}
