package repository

import (
	"context"

	"go-health-consult-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnswerAppreciationRepository interface {
	Create(ctx context.Context, db *gorm.DB, appreciation *entity.AnswerAppreciation) error
	FindByAnswerIDAndPatientID(ctx context.Context, db *gorm.DB, answerID, patientID uuid.UUID) (*entity.AnswerAppreciation, error)
	CountByAnswerID(ctx context.Context, db *gorm.DB, answerID uuid.UUID) (int64, error)
	DeleteByAnswerIDs(ctx context.Context, db *gorm.DB, answerIDs []uuid.UUID) (int64, error)
}
