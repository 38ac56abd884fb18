package repository

import (
	"context"

	"go-health-consult-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HealthRecordRepository is the store capability shared by all measurement
// record kinds. One generic gorm implementation serves all seven tables.
type HealthRecordRepository[R entity.HealthRecord] interface {
	Create(ctx context.Context, db *gorm.DB, record *R) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*R, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]R, error)
	DeleteByIDAndPatientID(ctx context.Context, db *gorm.DB, id, patientID uuid.UUID) (int64, error)
}
