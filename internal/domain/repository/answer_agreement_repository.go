package repository

import (
	"context"

	"go-health-consult-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnswerAgreementRepository interface {
	Create(ctx context.Context, db *gorm.DB, agreement *entity.AnswerAgreement) error
	FindByAnswerIDAndDoctorID(ctx context.Context, db *gorm.DB, answerID, doctorID uuid.UUID) (*entity.AnswerAgreement, error)
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	DeleteByAnswerIDs(ctx context.Context, db *gorm.DB, answerIDs []uuid.UUID) (int64, error)
	CountByAnswerID(ctx context.Context, db *gorm.DB, answerID uuid.UUID) (int64, error)
	// FindAgreedDoctorAvatarsByAnswerID returns the avatar URLs of all
	// doctors with a live agreement on the answer, most recent first.
	FindAgreedDoctorAvatarsByAnswerID(ctx context.Context, db *gorm.DB, answerID uuid.UUID) ([]string, error)
}
