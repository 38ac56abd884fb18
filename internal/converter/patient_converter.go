package converter

import (
	"go-health-consult-platform/internal/delivery/dto"
	"go-health-consult-platform/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity to PatientResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:            profile.ID,
		UserID:        profile.UserID,
		Email:         profile.User.Email,
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		BirthDate:     profile.BirthDate.Format("2006-01-02"),
		Gender:        profile.Gender,
		HeightValueCm: profile.HeightValueCm,
		CreatedAt:     profile.CreatedAt,
		UpdatedAt:     profile.UpdatedAt,
	}
}

// PatientProfileToRecordOwner reduces a PatientProfile to the demographic
// projection exposed next to a clinical record. Never returns the full
// profile.
func PatientProfileToRecordOwner(profile *entity.PatientProfile) *dto.RecordOwnerResponse {
	if profile == nil {
		return nil
	}

	return &dto.RecordOwnerResponse{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		BirthDate: profile.BirthDate.Format("2006-01-02"),
		Gender:    profile.Gender,
	}
}
