package services

import (
	"context"
	"errors"
	"strings"

	"wematch_backend/internal/access"
	"wematch_backend/internal/models"
	"wematch_backend/internal/repositories"
	"wematch_backend/internal/services/dto"
	"wematch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// searchLimit - максимум результатов поиска пользователей по навыку
const searchLimit = 50

type SkillService interface {
	Create(ctx context.Context, db *gorm.DB, p access.Principal, req *dto.CreateSkillRequest) (*dto.SkillResponse, error)
	ListMine(ctx context.Context, db *gorm.DB, p access.Principal) ([]dto.SkillResponse, error)
	Get(ctx context.Context, db *gorm.DB, p access.Principal, id string) (*dto.SkillResponse, error)
	Update(ctx context.Context, db *gorm.DB, p access.Principal, id string, req *dto.UpdateSkillRequest) (*dto.SkillResponse, error)
	Delete(ctx context.Context, db *gorm.DB, p access.Principal, id string) error
	SearchUsersBySkill(ctx context.Context, db *gorm.DB, name string) ([]dto.SkillMatchResponse, error)
}

type skillService struct {
	skillRepo repositories.SkillRepository
}

func NewSkillService(skillRepo repositories.SkillRepository) SkillService {
	return &skillService{skillRepo: skillRepo}
}

func (s *skillService) Create(ctx context.Context, db *gorm.DB, p access.Principal, req *dto.CreateSkillRequest) (*dto.SkillResponse, error) {
	if p.IsAnonymous() || !p.CanMutate() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	skill := &models.Skill{
		UserID:    p.ID,
		SkillName: strings.TrimSpace(req.SkillName),
		Level:     strings.TrimSpace(req.Level),
	}
	if err := s.skillRepo.Create(db, skill); err != nil {
		// токен пережил удаление аккаунта: FK на users не выполняется
		if errors.Is(err, repositories.ErrStillReferenced) {
			return nil, apperrors.ErrNotFound("user", err)
		}
		return nil, handleSkillError(err)
	}

	resp := dto.NewSkillResponse(skill)
	return &resp, nil
}

func (s *skillService) ListMine(ctx context.Context, db *gorm.DB, p access.Principal) ([]dto.SkillResponse, error) {
	skills, err := s.skillRepo.ListByUser(db, p.ID)
	if err != nil {
		return nil, handleSkillError(err)
	}

	out := make([]dto.SkillResponse, 0, len(skills))
	for i := range skills {
		out = append(out, dto.NewSkillResponse(&skills[i]))
	}
	return out, nil
}

func (s *skillService) Get(ctx context.Context, db *gorm.DB, p access.Principal, id string) (*dto.SkillResponse, error) {
	skill, err := s.skillRepo.FindByID(db, id, p.OwnerFilter())
	if err != nil {
		return nil, handleSkillError(err)
	}
	resp := dto.NewSkillResponse(skill)
	return &resp, nil
}

func (s *skillService) Update(ctx context.Context, db *gorm.DB, p access.Principal, id string, req *dto.UpdateSkillRequest) (*dto.SkillResponse, error) {
	if !p.CanMutate() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	upd := repositories.SkillUpdate{SkillName: trimmed(req.SkillName), Level: trimmed(req.Level)}
	skill, err := s.skillRepo.Update(db, id, p.OwnerFilter(), upd)
	if err != nil {
		return nil, handleSkillError(err)
	}
	resp := dto.NewSkillResponse(skill)
	return &resp, nil
}

func (s *skillService) Delete(ctx context.Context, db *gorm.DB, p access.Principal, id string) error {
	if !p.CanMutate() {
		return apperrors.ErrInsufficientPermissions
	}
	if err := s.skillRepo.Delete(db, id, p.OwnerFilter()); err != nil {
		return handleSkillError(err)
	}
	return nil
}

func (s *skillService) SearchUsersBySkill(ctx context.Context, db *gorm.DB, name string) ([]dto.SkillMatchResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.FieldError("name", "This field is required")
	}

	skills, err := s.skillRepo.SearchByName(db, name, searchLimit)
	if err != nil {
		return nil, handleSkillError(err)
	}

	out := make([]dto.SkillMatchResponse, 0, len(skills))
	for i := range skills {
		skill := &skills[i]
		if skill.User == nil {
			continue
		}
		out = append(out, dto.SkillMatchResponse{
			User:  dto.NewUserResponse(skill.User),
			Skill: dto.NewSkillResponse(skill),
		})
	}
	return out, nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

func handleSkillError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, repositories.ErrSkillNotFound) {
		return apperrors.ErrNotFound("skill", err)
	}
	return apperrors.InternalError(err)
}
