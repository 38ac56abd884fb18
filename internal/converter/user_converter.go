package converter

import (
	"go-health-consult-platform/internal/delivery/dto"
	"go-health-consult-platform/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		RoleID:    user.RoleID,
		RoleName:  user.Role.RoleName,
		CreatedAt: user.CreatedAt,
	}
}
