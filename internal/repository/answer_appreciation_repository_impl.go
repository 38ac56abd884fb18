package repository

import (
	"context"
	"errors"

	"go-health-consult-platform/internal/domain/entity"
	domainRepo "go-health-consult-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type answerAppreciationRepository struct{}

func NewAnswerAppreciationRepository() domainRepo.AnswerAppreciationRepository {
	return &answerAppreciationRepository{}
}

func (r *answerAppreciationRepository) Create(ctx context.Context, db *gorm.DB, appreciation *entity.AnswerAppreciation) error {
	return db.WithContext(ctx).Create(appreciation).Error
}

func (r *answerAppreciationRepository) FindByAnswerIDAndPatientID(ctx context.Context, db *gorm.DB, answerID, patientID uuid.UUID) (*entity.AnswerAppreciation, error) {
	var appreciation entity.AnswerAppreciation
	err := db.WithContext(ctx).
		Where("answer_id = ? AND patient_id = ?", answerID, patientID).
		First(&appreciation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appreciation, nil
}

func (r *answerAppreciationRepository) CountByAnswerID(ctx context.Context, db *gorm.DB, answerID uuid.UUID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.AnswerAppreciation{}).
		Where("answer_id = ?", answerID).
		Count(&count).Error
	return count, err
}

func (r *answerAppreciationRepository) DeleteByAnswerIDs(ctx context.Context, db *gorm.DB, answerIDs []uuid.UUID) (int64, error) {
	if len(answerIDs) == 0 {
		return 0, nil
	}
	result := db.WithContext(ctx).
		Where("answer_id IN ?", answerIDs).
		Delete(&entity.AnswerAppreciation{})
	return result.RowsAffected, result.Error
}
