package converter

import (
	"go-health-consult-platform/internal/delivery/dto"
	"go-health-consult-platform/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:            profile.ID,
		UserID:        profile.UserID,
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		AvatarURL:     profile.AvatarURL,
		STRNumber:     profile.STRNumber,
		Specialties:   profile.Specialties,
		CareerStartAt: profile.CareerStartAt.Format("2006-01-02"),
		Biography:     profile.Biography,
		CreatedAt:     profile.CreatedAt,
	}
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i, profile := range profiles {
		resp := DoctorProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
