package repository

import (
	"context"
	"errors"

	"go-health-consult-platform/internal/domain/entity"
	domainRepo "go-health-consult-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientQuestionAnswerRepository struct{}

func NewPatientQuestionAnswerRepository() domainRepo.PatientQuestionAnswerRepository {
	return &patientQuestionAnswerRepository{}
}

func (r *patientQuestionAnswerRepository) Create(ctx context.Context, db *gorm.DB, answer *entity.PatientQuestionAnswer) error {
	return db.WithContext(ctx).Create(answer).Error
}

func (r *patientQuestionAnswerRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PatientQuestionAnswer, error) {
	var answer entity.PatientQuestionAnswer
	err := db.WithContext(ctx).Where("id = ?", id).First(&answer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &answer, nil
}

func (r *patientQuestionAnswerRepository) FindByQuestionID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) ([]entity.PatientQuestionAnswer, error) {
	var answers []entity.PatientQuestionAnswer
	err := db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_question_id = ?", questionID).
		Order("created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *patientQuestionAnswerRepository) FindByQuestionIDAndDoctorID(ctx context.Context, db *gorm.DB, questionID, doctorID uuid.UUID) (*entity.PatientQuestionAnswer, error) {
	var answer entity.PatientQuestionAnswer
	err := db.WithContext(ctx).
		Where("patient_question_id = ? AND doctor_id = ?", questionID, doctorID).
		First(&answer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &answer, nil
}

func (r *patientQuestionAnswerRepository) FindIDsByQuestionID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.WithContext(ctx).Model(&entity.PatientQuestionAnswer{}).
		Where("patient_question_id = ?", questionID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *patientQuestionAnswerRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.PatientQuestionAnswer{})
	return result.RowsAffected, result.Error
}

func (r *patientQuestionAnswerRepository) DeleteByQuestionID(ctx context.Context, db *gorm.DB, questionID uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).
		Where("patient_question_id = ?", questionID).
		Delete(&entity.PatientQuestionAnswer{})
	return result.RowsAffected, result.Error
}
