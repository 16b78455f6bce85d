package user

import (
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
)

type CreateUserRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=50"`
	Email       string `json:"email" binding:"required,email,max=255"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,phone"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	Role        string `json:"role" binding:"required,oneof=admin editor"`
}

type UpdateUserRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=50"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,phone"`
	Role        string `json:"role" binding:"required,oneof=admin editor"`
	IsActive    *bool  `json:"isActive"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=72"`
}

type UserResponse struct {
	ID          uint32     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func toUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
