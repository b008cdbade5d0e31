package dto

import (
	"time"

	"stayhub/models"
)

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Photo     string    `json:"photo"`
	Role      int       `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Photo:     user.Photo,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

type UpdateRoleInput struct {
	Role *int `json:"role" binding:"required"`
}
