package repository

import (
	"context"

	"go-health-consult-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultAppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.ConsultAppointment) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.ConsultAppointment, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.ConsultAppointment, error)
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.ConsultAppointment, error)
	// FindByPatientIDAndDoctorIDAndStatus joins through doctor_time_slots:
	// the doctor is linked to the appointment only via the booked slot.
	FindByPatientIDAndDoctorIDAndStatus(ctx context.Context, db *gorm.DB, patientID, doctorID uuid.UUID, statuses []entity.ConsultAppointmentStatus) ([]entity.ConsultAppointment, error)
	FindActiveByTimeSlotID(ctx context.Context, db *gorm.DB, timeSlotID uuid.UUID) (*entity.ConsultAppointment, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, from, to entity.ConsultAppointmentStatus) (int64, error)
}
