package services

import (
	"context"
	"errors"

	"wematch_backend/internal/access"
	"wematch_backend/internal/auth"
	"wematch_backend/internal/logger"
	"wematch_backend/internal/models"
	"wematch_backend/internal/query"
	"wematch_backend/internal/repositories"
	"wematch_backend/internal/services/dto"
	"wematch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// UserService - административные операции над аккаунтами
type UserService interface {
	List(ctx context.Context, db *gorm.DB, page query.Page, filter query.UserFilter) (*query.Result[dto.UserResponse], error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.UserResponse, error)
	UpdateRole(ctx context.Context, db *gorm.DB, p access.Principal, id string, role models.UserRole) (*dto.UserResponse, error)
	Delete(ctx context.Context, db *gorm.DB, p access.Principal, id string) error

	// EnsureAdmin создает SUPER_ADMIN, если пользователя с таким email нет. true - создан.
	EnsureAdmin(ctx context.Context, db *gorm.DB, email, password, firstName, lastName string) (bool, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context, db *gorm.DB, page query.Page, filter query.UserFilter) (*query.Result[dto.UserResponse], error) {
	plan, err := query.BuildUserPlan(page, filter)
	if err != nil {
		return nil, err
	}

	users, total, err := s.userRepo.List(db, plan)
	if err != nil {
		return nil, handleUserError(err)
	}

	result := query.MapResult(query.NewResult(users, total, page), func(u models.User) dto.UserResponse {
		return dto.NewUserResponse(&u)
	})
	return &result, nil
}

func (s *userService) Get(ctx context.Context, db *gorm.DB, id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		return nil, handleUserError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// UpdateRole - администратор не может менять собственную роль
func (s *userService) UpdateRole(ctx context.Context, db *gorm.DB, p access.Principal, id string, role models.UserRole) (*dto.UserResponse, error) {
	if !p.IsAdminScope() {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if p.ID == id {
		return nil, apperrors.ErrCannotModifySelf
	}
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := s.userRepo.UpdateRole(db, id, role); err != nil {
		return nil, handleUserError(err)
	}

	logger.CtxInfo(ctx, "User role changed", "target_user_id", id, "role", role)
	return s.Get(ctx, db, id)
}

// Delete - без каскада: пользователь с навыками, организацией или возможностями не удаляется
func (s *userService) Delete(ctx context.Context, db *gorm.DB, p access.Principal, id string) error {
	if !p.IsAdminScope() {
		return apperrors.ErrInsufficientPermissions
	}
	if p.ID == id {
		return apperrors.ErrCannotModifySelf
	}

	if err := s.userRepo.Delete(db, id); err != nil {
		return handleUserError(err)
	}
	logger.CtxInfo(ctx, "User deleted", "target_user_id", id)
	return nil
}

func (s *userService) EnsureAdmin(ctx context.Context, db *gorm.DB, email, password, firstName, lastName string) (bool, error) {
	email = normalizeEmail(email)

	existing, err := s.userRepo.FindByEmail(db, email)
	if err == nil {
		if !existing.IsAdmin() {
			logger.CtxWarn(ctx, "First admin email belongs to a non-admin account", "user_id", existing.ID)
		}
		return false, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return false, handleUserError(err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, apperrors.InternalError(err)
	}

	admin := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         models.UserRoleSuperAdmin,
	}
	if err := s.userRepo.Create(db, admin); err != nil {
		return false, handleUserError(err)
	}
	return true, nil
}

func handleUserError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.ErrNotFound("user", err)
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		return apperrors.ErrEmailAlreadyExists.WithError(err)
	}
	if errors.Is(err, repositories.ErrStillReferenced) {
		return apperrors.ErrUserInUse.WithError(err)
	}
	return apperrors.InternalError(err)
}
