package repository

import (
	"context"
	"time"

	"go-health-consult-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorTimeSlotRepository interface {
	Create(ctx context.Context, db *gorm.DB, slot *entity.DoctorTimeSlot) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.DoctorTimeSlot, error)
	FindByDoctorIDAndRange(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, from, to time.Time) ([]entity.DoctorTimeSlot, error)
	Delete(ctx context.Context, db *gorm.DB, id, doctorID uuid.UUID) (int64, error)
}
