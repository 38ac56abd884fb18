package repository

import (
	"context"
	"errors"

	"go-health-consult-platform/internal/domain/entity"
	domainRepo "go-health-consult-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type consultAppointmentRepository struct{}

func NewConsultAppointmentRepository() domainRepo.ConsultAppointmentRepository {
	return &consultAppointmentRepository{}
}

func (r *consultAppointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.ConsultAppointment) error {
	return db.WithContext(ctx).Create(appointment).Error
}

func (r *consultAppointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.ConsultAppointment, error) {
	var appointment entity.ConsultAppointment
	err := db.WithContext(ctx).Preload("TimeSlot.Doctor").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *consultAppointmentRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uuid.UUID) ([]entity.ConsultAppointment, error) {
	var appointments []entity.ConsultAppointment
	err := db.WithContext(ctx).
		Preload("TimeSlot.Doctor").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *consultAppointmentRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID uuid.UUID) ([]entity.ConsultAppointment, error) {
	var appointments []entity.ConsultAppointment
	err := db.WithContext(ctx).
		Preload("TimeSlot").
		Preload("Patient").
		Joins("JOIN doctor_time_slots ON doctor_time_slots.id = consult_appointments.time_slot_id").
		Where("doctor_time_slots.doctor_id = ?", doctorID).
		Order("consult_appointments.created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *consultAppointmentRepository) FindByPatientIDAndDoctorIDAndStatus(ctx context.Context, db *gorm.DB, patientID, doctorID uuid.UUID, statuses []entity.ConsultAppointmentStatus) ([]entity.ConsultAppointment, error) {
	var appointments []entity.ConsultAppointment
	err := db.WithContext(ctx).
		Joins("JOIN doctor_time_slots ON doctor_time_slots.id = consult_appointments.time_slot_id").
		Where("consult_appointments.patient_id = ? AND doctor_time_slots.doctor_id = ? AND consult_appointments.status IN ?", patientID, doctorID, statuses).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *consultAppointmentRepository) FindActiveByTimeSlotID(ctx context.Context, db *gorm.DB, timeSlotID uuid.UUID) (*entity.ConsultAppointment, error) {
	var appointment entity.ConsultAppointment
	err := db.WithContext(ctx).
		Where("time_slot_id = ? AND status = ?", timeSlotID, entity.AppointmentUpcoming).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// UpdateStatus transitions an appointment atomically: the row is touched
// only when it is still in the expected source status, so a double cancel
// or a cancel racing a complete affects zero rows.
func (r *consultAppointmentRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, from, to entity.ConsultAppointmentStatus) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.ConsultAppointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}
