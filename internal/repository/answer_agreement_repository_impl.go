package repository

import (
	"context"
	"errors"

	"go-health-consult-platform/internal/domain/entity"
	domainRepo "go-health-consult-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type answerAgreementRepository struct{}

func NewAnswerAgreementRepository() domainRepo.AnswerAgreementRepository {
	return &answerAgreementRepository{}
}

func (r *answerAgreementRepository) Create(ctx context.Context, db *gorm.DB, agreement *entity.AnswerAgreement) error {
	return db.WithContext(ctx).Create(agreement).Error
}

func (r *answerAgreementRepository) FindByAnswerIDAndDoctorID(ctx context.Context, db *gorm.DB, answerID, doctorID uuid.UUID) (*entity.AnswerAgreement, error) {
	var agreement entity.AnswerAgreement
	err := db.WithContext(ctx).
		Where("answer_id = ? AND agreed_doctor_id = ?", answerID, doctorID).
		First(&agreement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &agreement, nil
}

func (r *answerAgreementRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.AnswerAgreement{})
	return result.RowsAffected, result.Error
}

func (r *answerAgreementRepository) DeleteByAnswerIDs(ctx context.Context, db *gorm.DB, answerIDs []uuid.UUID) (int64, error) {
	if len(answerIDs) == 0 {
		return 0, nil
	}
	result := db.WithContext(ctx).
		Where("answer_id IN ?", answerIDs).
		Delete(&entity.AnswerAgreement{})
	return result.RowsAffected, result.Error
}

func (r *answerAgreementRepository) CountByAnswerID(ctx context.Context, db *gorm.DB, answerID uuid.UUID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.AnswerAgreement{}).
		Where("answer_id = ?", answerID).
		Count(&count).Error
	return count, err
}

func (r *answerAgreementRepository) FindAgreedDoctorAvatarsByAnswerID(ctx context.Context, db *gorm.DB, answerID uuid.UUID) ([]string, error) {
	var avatars []string
	err := db.WithContext(ctx).Model(&entity.AnswerAgreement{}).
		Joins("JOIN doctor_profiles ON doctor_profiles.id = answer_agreements.agreed_doctor_id").
		Where("answer_agreements.answer_id = ?", answerID).
		Order("answer_agreements.created_at DESC").
		Pluck("doctor_profiles.avatar_url", &avatars).Error
	if err != nil {
		return nil, err
	}
	return avatars, nil
}
