package repositories

import (
	"wematch_backend/internal/models"
	"wematch_backend/internal/query"

	"gorm.io/gorm"
)

// Owner ограничивает выборку владельцем. Пустой Owner - без ограничения (админ или публичное чтение).
type Owner struct {
	OrganizationID string
	UserID         string
}

func (o Owner) apply(db *gorm.DB) *gorm.DB {
	if o.OrganizationID != "" {
		db = db.Where("organization_id = ?", o.OrganizationID)
	}
	if o.UserID != "" {
		db = db.Where("user_id = ?", o.UserID)
	}
	return db
}

// OpportunityUpdate - частичное обновление. Полей владельца нет: владелец неизменен.
type OpportunityUpdate struct {
	Title           *string
	Description     *string
	Category        *models.Category
	OpportunityType *models.OpportunityType
	ExperienceLevel *models.ExperienceLevel
	PaymentType     *models.PaymentType
	Location        *string
	ImageURL        *string
	ImageKey        *string
}

func (u OpportunityUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	setIf(cols, "title", u.Title)
	setIf(cols, "description", u.Description)
	setIf(cols, "location", u.Location)
	setIf(cols, "image_url", u.ImageURL)
	setIf(cols, "image_key", u.ImageKey)
	if u.Category != nil {
		cols["category"] = *u.Category
	}
	if u.OpportunityType != nil {
		cols["opportunity_type"] = *u.OpportunityType
	}
	if u.ExperienceLevel != nil {
		cols["experience_level"] = *u.ExperienceLevel
	}
	if u.PaymentType != nil {
		cols["payment_type"] = *u.PaymentType
	}
	return cols
}

type OpportunityRepository interface {
	Create(db *gorm.DB, opp *models.Opportunity) error
	FindByID(db *gorm.DB, id string, owner Owner) (*models.Opportunity, error)
	List(db *gorm.DB, plan *query.Plan, owner Owner) ([]models.Opportunity, int64, error)
	Update(db *gorm.DB, id string, owner Owner, upd OpportunityUpdate) (*models.Opportunity, error)
	Delete(db *gorm.DB, id string, owner Owner) error
}

type OpportunityRepositoryImpl struct{}

func NewOpportunityRepository() OpportunityRepository {
	return &OpportunityRepositoryImpl{}
}

func (r *OpportunityRepositoryImpl) Create(db *gorm.DB, opp *models.Opportunity) error {
	return translate(db.Create(opp).Error, ErrOpportunityNotFound)
}

func (r *OpportunityRepositoryImpl) FindByID(db *gorm.DB, id string, owner Owner) (*models.Opportunity, error) {
	var opp models.Opportunity
	if err := owner.apply(db.Where("id = ?", id)).First(&opp).Error; err != nil {
		return nil, translate(err, ErrOpportunityNotFound)
	}
	return &opp, nil
}

// List - COUNT по отфильтрованному набору и SELECT одной страницы
func (r *OpportunityRepositoryImpl) List(db *gorm.DB, plan *query.Plan, owner Owner) ([]models.Opportunity, int64, error) {
	base := func() *gorm.DB {
		return owner.apply(plan.Apply(db.Model(&models.Opportunity{})))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var opps []models.Opportunity
	if err := plan.Paginate(base()).Find(&opps).Error; err != nil {
		return nil, 0, err
	}
	return opps, total, nil
}

func (r *OpportunityRepositoryImpl) Update(db *gorm.DB, id string, owner Owner, upd OpportunityUpdate) (*models.Opportunity, error) {
	if cols := upd.columns(); len(cols) > 0 {
		scoped := owner.apply(db.Model(&models.Opportunity{}).Where("id = ?", id))
		if err := affected(scoped.Updates(cols), ErrOpportunityNotFound); err != nil {
			return nil, err
		}
	}
	return r.FindByID(db, id, owner)
}

func (r *OpportunityRepositoryImpl) Delete(db *gorm.DB, id string, owner Owner) error {
	res := owner.apply(db.Where("id = ?", id)).Delete(&models.Opportunity{})
	return affected(res, ErrOpportunityNotFound)
}
