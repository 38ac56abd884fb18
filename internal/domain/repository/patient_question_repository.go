package repository

import (
	"context"

	"go-health-consult-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientQuestionRepository interface {
	Create(ctx context.Context, db *gorm.DB, question *entity.PatientQuestion) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PatientQuestion, error)
	FindByAskerID(ctx context.Context, db *gorm.DB, askerID uuid.UUID) ([]entity.PatientQuestion, error)
	FindBySpecialty(ctx context.Context, db *gorm.DB, specialty string) ([]entity.PatientQuestion, error)
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
