package repository

import (
	"context"

	"go-health-consult-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientQuestionAnswerRepository interface {
	Create(ctx context.Context, db *gorm.DB, answer *entity.PatientQuestionAnswer) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PatientQuestionAnswer, error)
	FindByQuestionID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) ([]entity.PatientQuestionAnswer, error)
	FindByQuestionIDAndDoctorID(ctx context.Context, db *gorm.DB, questionID, doctorID uuid.UUID) (*entity.PatientQuestionAnswer, error)
	FindIDsByQuestionID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) ([]uuid.UUID, error)
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	DeleteByQuestionID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (int64, error)
}
