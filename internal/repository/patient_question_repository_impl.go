package repository

import (
	"context"
	"errors"

	"go-health-consult-platform/internal/domain/entity"
	domainRepo "go-health-consult-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientQuestionRepository struct{}

func NewPatientQuestionRepository() domainRepo.PatientQuestionRepository {
	return &patientQuestionRepository{}
}

func (r *patientQuestionRepository) Create(ctx context.Context, db *gorm.DB, question *entity.PatientQuestion) error {
	return db.WithContext(ctx).Create(question).Error
}

func (r *patientQuestionRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.PatientQuestion, error) {
	var question entity.PatientQuestion
	err := db.WithContext(ctx).Where("id = ?", id).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *patientQuestionRepository) FindByAskerID(ctx context.Context, db *gorm.DB, askerID uuid.UUID) ([]entity.PatientQuestion, error) {
	var questions []entity.PatientQuestion
	err := db.WithContext(ctx).
		Where("asker_id = ?", askerID).
		Order("created_at DESC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *patientQuestionRepository) FindBySpecialty(ctx context.Context, db *gorm.DB, specialty string) ([]entity.PatientQuestion, error) {
	var questions []entity.PatientQuestion
	err := db.WithContext(ctx).
		Where("medical_specialty = ?", specialty).
		Order("created_at DESC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *patientQuestionRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.PatientQuestion{})
	return result.RowsAffected, result.Error
}
