package services

import (
	"context"
	"errors"
	"strings"

	"wematch_backend/internal/access"
	"wematch_backend/internal/auth"
	"wematch_backend/internal/logger"
	"wematch_backend/internal/models"
	"wematch_backend/internal/repositories"
	"wematch_backend/internal/services/dto"
	"wematch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const tokenTypeBearer = "Bearer"

type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context, db *gorm.DB, p access.Principal) (*dto.UserResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if req.Role != models.UserRoleUser && req.Role != models.UserRoleOrganization {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.FieldError("password", err.Error())
	}

	email := normalizeEmail(req.Email)
	if _, err := s.userRepo.FindByEmail(db, email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, handleUserError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         req.Role,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		return nil, handleUserError(err)
	}

	logger.CtxInfo(ctx, "User registered", "user_id", user.ID, "role", user.Role)
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, handleUserError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.CtxWarn(ctx, "Failed login attempt", "user_id", user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
		User:        dto.NewUserResponse(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, db *gorm.DB, p access.Principal) (*dto.UserResponse, error) {
	if p.IsAnonymous() {
		return nil, apperrors.NewUnauthorizedError("Authentication required")
	}
	user, err := s.userRepo.FindByID(db, p.ID)
	if err != nil {
		return nil, handleUserError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}
