package repositories

import (
	"wematch_backend/internal/models"
	"wematch_backend/internal/query"

	"gorm.io/gorm"
)

// OrganizationUpdate - частичное обновление; nil-поля не трогаются.
// Владелец (AccountID) не меняется.
type OrganizationUpdate struct {
	Name        *string
	Description *string
	Website     *string
	Location    *string
	LogoURL     *string
}

func (u OrganizationUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	setIf(cols, "name", u.Name)
	setIf(cols, "description", u.Description)
	setIf(cols, "website", u.Website)
	setIf(cols, "location", u.Location)
	setIf(cols, "logo_url", u.LogoURL)
	return cols
}

type OrganizationRepository interface {
	Create(db *gorm.DB, org *models.Organization) error
	FindByID(db *gorm.DB, id string) (*models.Organization, error)
	FindByAccountID(db *gorm.DB, accountID string) (*models.Organization, error)
	List(db *gorm.DB, plan *query.Plan) ([]models.Organization, int64, error)
	// Update применяет изменения; ownerID != "" ограничивает запись организацией этого аккаунта
	Update(db *gorm.DB, id, ownerID string, upd OrganizationUpdate) (*models.Organization, error)
	Delete(db *gorm.DB, id string) error
	CountOpportunities(db *gorm.DB, id string) (int64, error)
}

type OrganizationRepositoryImpl struct{}

func NewOrganizationRepository() OrganizationRepository {
	return &OrganizationRepositoryImpl{}
}

func (r *OrganizationRepositoryImpl) Create(db *gorm.DB, org *models.Organization) error {
	return translate(db.Create(org).Error, ErrOrganizationNotFound)
}

func (r *OrganizationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Organization, error) {
	var org models.Organization
	if err := db.First(&org, "id = ?", id).Error; err != nil {
		return nil, translate(err, ErrOrganizationNotFound)
	}
	return &org, nil
}

func (r *OrganizationRepositoryImpl) FindByAccountID(db *gorm.DB, accountID string) (*models.Organization, error) {
	var org models.Organization
	if err := db.Where("account_id = ?", accountID).First(&org).Error; err != nil {
		return nil, translate(err, ErrOrganizationNotFound)
	}
	return &org, nil
}

func (r *OrganizationRepositoryImpl) List(db *gorm.DB, plan *query.Plan) ([]models.Organization, int64, error) {
	var total int64
	if err := plan.Apply(db.Model(&models.Organization{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orgs []models.Organization
	if err := plan.Paginate(plan.Apply(db.Model(&models.Organization{}))).Find(&orgs).Error; err != nil {
		return nil, 0, err
	}
	return orgs, total, nil
}

func (r *OrganizationRepositoryImpl) Update(db *gorm.DB, id, ownerID string, upd OrganizationUpdate) (*models.Organization, error) {
	scoped := db.Model(&models.Organization{}).Where("id = ?", id)
	if ownerID != "" {
		scoped = scoped.Where("account_id = ?", ownerID)
	}

	if cols := upd.columns(); len(cols) > 0 {
		if err := affected(scoped.Updates(cols), ErrOrganizationNotFound); err != nil {
			return nil, err
		}
	}

	var org models.Organization
	q := db.Where("id = ?", id)
	if ownerID != "" {
		q = q.Where("account_id = ?", ownerID)
	}
	if err := q.First(&org).Error; err != nil {
		return nil, translate(err, ErrOrganizationNotFound)
	}
	return &org, nil
}

func (r *OrganizationRepositoryImpl) Delete(db *gorm.DB, id string) error {
	res := db.Delete(&models.Organization{}, "id = ?", id)
	return affected(res, ErrOrganizationNotFound)
}

func (r *OrganizationRepositoryImpl) CountOpportunities(db *gorm.DB, id string) (int64, error) {
	var n int64
	err := db.Model(&models.Opportunity{}).Where("organization_id = ?", id).Count(&n).Error
	return n, err
}

func setIf(cols map[string]interface{}, column string, v *string) {
	if v != nil {
		cols[column] = *v
	}
}
