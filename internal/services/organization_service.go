package services

import (
	"context"
	"errors"
	"strings"

	"wematch_backend/internal/access"
	"wematch_backend/internal/logger"
	"wematch_backend/internal/models"
	"wematch_backend/internal/query"
	"wematch_backend/internal/repositories"
	"wematch_backend/internal/services/dto"
	"wematch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type OrganizationService interface {
	Create(ctx context.Context, db *gorm.DB, p access.Principal, req *dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*dto.OrganizationResponse, error)
	List(ctx context.Context, db *gorm.DB, page query.Page, filter query.OrganizationFilter) (*query.Result[dto.OrganizationResponse], error)
	Update(ctx context.Context, db *gorm.DB, p access.Principal, id string, req *dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type organizationService struct {
	organizationRepo repositories.OrganizationRepository
}

func NewOrganizationService(organizationRepo repositories.OrganizationRepository) OrganizationService {
	return &organizationService{organizationRepo: organizationRepo}
}

// Create - у аккаунта может быть только одна организация
func (s *organizationService) Create(ctx context.Context, db *gorm.DB, p access.Principal, req *dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	if p.IsAnonymous() || !p.CanMutate() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if _, err := s.organizationRepo.FindByAccountID(db, p.ID); err == nil {
		return nil, apperrors.ErrOrganizationExists
	} else if !errors.Is(err, repositories.ErrOrganizationNotFound) {
		return nil, handleOrganizationError(err)
	}

	org := &models.Organization{
		AccountID:   p.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		LogoURL:     req.LogoURL,
	}
	if err := s.organizationRepo.Create(db, org); err != nil {
		if errors.Is(err, repositories.ErrStillReferenced) {
			return nil, apperrors.ErrNotFound("user", err)
		}
		return nil, handleOrganizationError(err)
	}

	logger.CtxInfo(ctx, "Organization created", "organization_id", org.ID)
	resp := dto.NewOrganizationResponse(org)
	return &resp, nil
}

func (s *organizationService) Get(ctx context.Context, db *gorm.DB, id string) (*dto.OrganizationResponse, error) {
	org, err := s.organizationRepo.FindByID(db, id)
	if err != nil {
		return nil, handleOrganizationError(err)
	}
	resp := dto.NewOrganizationResponse(org)
	return &resp, nil
}

func (s *organizationService) List(ctx context.Context, db *gorm.DB, page query.Page, filter query.OrganizationFilter) (*query.Result[dto.OrganizationResponse], error) {
	plan := query.BuildOrganizationPlan(page, filter)

	orgs, total, err := s.organizationRepo.List(db, plan)
	if err != nil {
		return nil, handleOrganizationError(err)
	}

	result := query.MapResult(query.NewResult(orgs, total, page), func(o models.Organization) dto.OrganizationResponse {
		return dto.NewOrganizationResponse(&o)
	})
	return &result, nil
}

func (s *organizationService) Update(ctx context.Context, db *gorm.DB, p access.Principal, id string, req *dto.UpdateOrganizationRequest) (*dto.OrganizationResponse, error) {
	if !p.CanMutate() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	upd := repositories.OrganizationUpdate{
		Name:        trimmed(req.Name),
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		LogoURL:     req.LogoURL,
	}
	org, err := s.organizationRepo.Update(db, id, p.OwnerFilter(), upd)
	if err != nil {
		return nil, handleOrganizationError(err)
	}
	resp := dto.NewOrganizationResponse(org)
	return &resp, nil
}

// Delete - без каскада: организация с возможностями не удаляется
func (s *organizationService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if _, err := s.organizationRepo.FindByID(db, id); err != nil {
		return handleOrganizationError(err)
	}

	n, err := s.organizationRepo.CountOpportunities(db, id)
	if err != nil {
		return handleOrganizationError(err)
	}
	if n > 0 {
		return apperrors.ErrOrganizationInUse.WithDetails(map[string]int64{"opportunities": n})
	}

	if err := s.organizationRepo.Delete(db, id); err != nil {
		return handleOrganizationError(err)
	}
	logger.CtxInfo(ctx, "Organization deleted", "organization_id", id)
	return nil
}

func handleOrganizationError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, repositories.ErrOrganizationNotFound) {
		return apperrors.ErrNotFound("organization", err)
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		return apperrors.ErrOrganizationExists.WithError(err)
	}
	if errors.Is(err, repositories.ErrStillReferenced) {
		return apperrors.ErrOrganizationInUse.WithError(err)
	}
	return apperrors.InternalError(err)
}
