package repository

import (
	"context"
	"errors"
	"time"

	"go-health-consult-platform/internal/domain/entity"
	domainRepo "go-health-consult-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorTimeSlotRepository struct{}

func NewDoctorTimeSlotRepository() domainRepo.DoctorTimeSlotRepository {
	return &doctorTimeSlotRepository{}
}

func (r *doctorTimeSlotRepository) Create(ctx context.Context, db *gorm.DB, slot *entity.DoctorTimeSlot) error {
	return db.WithContext(ctx).Create(slot).Error
}

func (r *doctorTimeSlotRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.DoctorTimeSlot, error) {
	var slot entity.DoctorTimeSlot
	err := db.WithContext(ctx).Preload("Doctor").Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *doctorTimeSlotRepository) FindByDoctorIDAndRange(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.DoctorTimeSlot, error) {
	var slots []entity.DoctorTimeSlot
	err := db.WithContext(ctx).
		Where("doctor_id = ? AND start_at >= ? AND start_at < ?", doctorID, from, to).
		Order("start_at ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *doctorTimeSlotRepository) Delete(ctx context.Context, db *gorm.DB, id, doctorID uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", id, doctorID).
		Delete(&entity.DoctorTimeSlot{})
	return result.RowsAffected, result.Error
}
