package dto

import (
	"time"

	"wematch_backend/internal/models"
)

type CreateSkillRequest struct {
	SkillName string `json:"skillName" validate:"required,max=100"`
	Level     string `json:"level" validate:"max=50"`
}

type UpdateSkillRequest struct {
	SkillName *string `json:"skillName" validate:"omitempty,min=1,max=100"`
	Level     *string `json:"level" validate:"omitempty,max=50"`
}

type SkillResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	SkillName string    `json:"skillName"`
	Level     string    `json:"level,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewSkillResponse(s *models.Skill) SkillResponse {
	return SkillResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		SkillName: s.SkillName,
		Level:     s.Level,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// SkillMatchResponse - результат поиска пользователей по навыку
type SkillMatchResponse struct {
	User  UserResponse  `json:"user"`
	Skill SkillResponse `json:"skill"`
}
