package repository

import (
	"context"
	"errors"

	"go-health-consult-platform/internal/domain/entity"
	domainRepo "go-health-consult-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// healthRecordRepository is one gorm implementation for all record kinds;
// the type parameter selects the table.
type healthRecordRepository[R entity.HealthRecord] struct{}

func NewHealthRecordRepository[R entity.HealthRecord]() domainRepo.HealthRecordRepository[R] {
	return &healthRecordRepository[R]{}
}

func (r *healthRecordRepository[R]) Create(ctx context.Context, db *gorm.DB, record *R) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *healthRecordRepository[R]) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*R, error) {
	var record R
	err := db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *healthRecordRepository[R]) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]R, error) {
	var records []R
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *healthRecordRepository[R]) DeleteByIDAndPatientID(ctx context.Context, db *gorm.DB, id, patientID uuid.UUID) (int64, error) {
	var record R
	result := db.WithContext(ctx).
		Where("id = ? AND patient_id = ?", id, patientID).
		Delete(&record)
	return result.RowsAffected, result.Error
}
