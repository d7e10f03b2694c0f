package services

import (
	"context"
	"errors"

	"wematch_backend/internal/access"
	"wematch_backend/internal/logger"
	"wematch_backend/internal/models"
	"wematch_backend/internal/query"
	"wematch_backend/internal/repositories"
	"wematch_backend/internal/services/dto"
	"wematch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const opportunityImageFolder = "opportunities"

type OpportunityService interface {
	// Организация вызывающего - владелец
	CreateForOrganization(ctx context.Context, db *gorm.DB, p access.Principal, req *dto.CreateOpportunityRequest, image *dto.ImageUpload) (*dto.OpportunityResponse, error)
	// Вызывающий пользователь - владелец
	CreateByUser(ctx context.Context, db *gorm.DB, p access.Principal, req *dto.CreateOpportunityRequest, image *dto.ImageUpload) (*dto.OpportunityResponse, error)

	ListForOrganization(ctx context.Context, db *gorm.DB, p access.Principal, page query.Page, filter query.OpportunityFilter) (*query.Result[dto.OpportunityResponse], error)
	ListPublic(ctx context.Context, db *gorm.DB, page query.Page, filter query.OpportunityFilter) (*query.Result[dto.OpportunityResponse], error)
	ListByUser(ctx context.Context, db *gorm.DB, p access.Principal, page query.Page, filter query.OpportunityFilter) (*query.Result[dto.OpportunityResponse], error)

	Get(ctx context.Context, db *gorm.DB, p access.Principal, id string) (*dto.OpportunityResponse, error)
	Update(ctx context.Context, db *gorm.DB, p access.Principal, id string, req *dto.UpdateOpportunityRequest, image *dto.ImageUpload) (*dto.OpportunityResponse, error)
	Delete(ctx context.Context, db *gorm.DB, p access.Principal, id string) error
}

type opportunityService struct {
	opportunityRepo  repositories.OpportunityRepository
	organizationRepo repositories.OrganizationRepository
	images           ImageService
}

func NewOpportunityService(
	opportunityRepo repositories.OpportunityRepository,
	organizationRepo repositories.OrganizationRepository,
	images ImageService,
) OpportunityService {
	return &opportunityService{
		opportunityRepo:  opportunityRepo,
		organizationRepo: organizationRepo,
		images:           images,
	}
}

// ownerScope - в области owner видны только записи, принадлежащие вызывающему пользователю.
// Чужая запись неотличима от отсутствующей.
func ownerScope(p access.Principal) repositories.Owner {
	return repositories.Owner{UserID: p.OwnerFilter()}
}

// ---------------- Create ----------------

func (s *opportunityService) CreateForOrganization(ctx context.Context, db *gorm.DB, p access.Principal, req *dto.CreateOpportunityRequest, image *dto.ImageUpload) (*dto.OpportunityResponse, error) {
	if !p.CanMutate() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	org, err := s.organizationRepo.FindByAccountID(db, p.ID)
	if err != nil {
		return nil, handleOpportunityError(err)
	}

	opp := newOpportunity(req)
	opp.OrganizationID = &org.ID
	return s.create(ctx, db, opp, image)
}

func (s *opportunityService) CreateByUser(ctx context.Context, db *gorm.DB, p access.Principal, req *dto.CreateOpportunityRequest, image *dto.ImageUpload) (*dto.OpportunityResponse, error) {
	if !p.CanMutate() || p.IsAnonymous() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	opp := newOpportunity(req)
	userID := p.ID
	opp.UserID = &userID
	return s.create(ctx, db, opp, image)
}

func newOpportunity(req *dto.CreateOpportunityRequest) *models.Opportunity {
	return &models.Opportunity{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		OpportunityType: req.OpportunityType,
		ExperienceLevel: req.ExperienceLevel,
		PaymentType:     req.PaymentType,
		Location:        req.Location,
	}
}

// create сохраняет изображение, затем строку. Если строка не записалась, файл удаляется.
func (s *opportunityService) create(ctx context.Context, db *gorm.DB, opp *models.Opportunity, image *dto.ImageUpload) (*dto.OpportunityResponse, error) {
	if !opp.HasSingleOwner() {
		return nil, apperrors.InternalError(errors.New("opportunity must have exactly one owner"))
	}

	if image != nil {
		stored, err := s.images.Store(ctx, opportunityImageFolder, image)
		if err != nil {
			return nil, err
		}
		opp.ImageURL = stored.URL
		opp.ImageKey = stored.Key
	}

	if err := s.opportunityRepo.Create(db, opp); err != nil {
		s.images.Remove(ctx, opp.ImageKey)
		if errors.Is(err, repositories.ErrStillReferenced) {
			return nil, apperrors.ErrNotFound(opp.OwnerKind(), err)
		}
		return nil, handleOpportunityError(err)
	}

	logger.CtxInfo(ctx, "Opportunity created", "opportunity_id", opp.ID, "has_image", opp.ImageKey != "")
	resp := dto.NewOpportunityResponse(opp)
	return &resp, nil
}

// ---------------- List ----------------

func (s *opportunityService) ListForOrganization(ctx context.Context, db *gorm.DB, p access.Principal, page query.Page, filter query.OpportunityFilter) (*query.Result[dto.OpportunityResponse], error) {
	org, err := s.organizationRepo.FindByAccountID(db, p.ID)
	if err != nil {
		return nil, handleOpportunityError(err)
	}
	filter.OrganizationID = org.ID
	return s.list(db, page, filter, repositories.Owner{})
}

func (s *opportunityService) ListPublic(ctx context.Context, db *gorm.DB, page query.Page, filter query.OpportunityFilter) (*query.Result[dto.OpportunityResponse], error) {
	return s.list(db, page, filter, repositories.Owner{})
}

func (s *opportunityService) ListByUser(ctx context.Context, db *gorm.DB, p access.Principal, page query.Page, filter query.OpportunityFilter) (*query.Result[dto.OpportunityResponse], error) {
	if p.IsAnonymous() {
		return nil, apperrors.NewUnauthorizedError("Authentication required")
	}
	return s.list(db, page, filter, repositories.Owner{UserID: p.ID})
}

func (s *opportunityService) list(db *gorm.DB, page query.Page, filter query.OpportunityFilter, owner repositories.Owner) (*query.Result[dto.OpportunityResponse], error) {
	plan, err := query.BuildOpportunityPlan(page, filter)
	if err != nil {
		return nil, err
	}

	opps, total, err := s.opportunityRepo.List(db, plan, owner)
	if err != nil {
		return nil, handleOpportunityError(err)
	}

	result := query.MapResult(query.NewResult(opps, total, page), func(o models.Opportunity) dto.OpportunityResponse {
		return dto.NewOpportunityResponse(&o)
	})
	return &result, nil
}

// ---------------- Get / Update / Delete ----------------

func (s *opportunityService) Get(ctx context.Context, db *gorm.DB, p access.Principal, id string) (*dto.OpportunityResponse, error) {
	opp, err := s.opportunityRepo.FindByID(db, id, ownerScope(p))
	if err != nil {
		return nil, handleOpportunityError(err)
	}
	resp := dto.NewOpportunityResponse(opp)
	return &resp, nil
}

func (s *opportunityService) Update(ctx context.Context, db *gorm.DB, p access.Principal, id string, req *dto.UpdateOpportunityRequest, image *dto.ImageUpload) (*dto.OpportunityResponse, error) {
	if !p.CanMutate() {
		return nil, apperrors.ErrInsufficientPermissions
	}
	owner := ownerScope(p)

	current, err := s.opportunityRepo.FindByID(db, id, owner)
	if err != nil {
		return nil, handleOpportunityError(err)
	}

	upd := repositories.OpportunityUpdate{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		OpportunityType: req.OpportunityType,
		ExperienceLevel: req.ExperienceLevel,
		PaymentType:     req.PaymentType,
		Location:        req.Location,
	}

	var stored *StoredImage
	if image != nil {
		stored, err = s.images.Store(ctx, opportunityImageFolder, image)
		if err != nil {
			return nil, err
		}
		upd.ImageURL = &stored.URL
		upd.ImageKey = &stored.Key
	}

	updated, err := s.opportunityRepo.Update(db, id, owner, upd)
	if err != nil {
		if stored != nil {
			s.images.Remove(ctx, stored.Key)
		}
		return nil, handleOpportunityError(err)
	}

	// Старый файл удаляется только после успешной записи новой ссылки
	if stored != nil && current.ImageKey != "" && current.ImageKey != stored.Key {
		s.images.Remove(ctx, current.ImageKey)
	}

	resp := dto.NewOpportunityResponse(updated)
	return &resp, nil
}

func (s *opportunityService) Delete(ctx context.Context, db *gorm.DB, p access.Principal, id string) error {
	if !p.CanMutate() {
		return apperrors.ErrInsufficientPermissions
	}
	owner := ownerScope(p)

	current, err := s.opportunityRepo.FindByID(db, id, owner)
	if err != nil {
		return handleOpportunityError(err)
	}
	if err := s.opportunityRepo.Delete(db, id, owner); err != nil {
		return handleOpportunityError(err)
	}

	s.images.Remove(ctx, current.ImageKey)
	logger.CtxInfo(ctx, "Opportunity deleted", "opportunity_id", id)
	return nil
}

func handleOpportunityError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, repositories.ErrOpportunityNotFound) {
		return apperrors.ErrNotFound("opportunity", err)
	}
	if errors.Is(err, repositories.ErrOrganizationNotFound) {
		return apperrors.ErrNotFound("organization", err)
	}
	return apperrors.InternalError(err)
}
