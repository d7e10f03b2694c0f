package dto

import (
	"time"

	"wematch_backend/internal/models"
)

// RegisterRequest - запрос регистрации (SUPER_ADMIN через API не создается)
type RegisterRequest struct {
	Email     string          `json:"email" validate:"required,email,max=254"`
	Password  string          `json:"password" validate:"required,min=8,max=72"`
	FirstName string          `json:"firstName" validate:"required,max=100"`
	LastName  string          `json:"lastName" validate:"required,max=100"`
	Role      models.UserRole `json:"role" validate:"required,is-signup-role"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse - ответ с токеном доступа
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresIn   int64        `json:"expiresIn"` // секунды
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UpdateRoleRequest - смена роли администратором
type UpdateRoleRequest struct {
	Role models.UserRole `json:"role" validate:"required,is-user-role"`
}
