package repositories

import (
	"wematch_backend/internal/models"
	"wematch_backend/internal/query"

	"gorm.io/gorm"
)

type SkillUpdate struct {
	SkillName *string
	Level     *string
}

func (u SkillUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	setIf(cols, "skill_name", u.SkillName)
	setIf(cols, "level", u.Level)
	return cols
}

type SkillRepository interface {
	Create(db *gorm.DB, skill *models.Skill) error
	// FindByID - ownerID != "" ограничивает поиск навыками этого пользователя
	FindByID(db *gorm.DB, id, ownerID string) (*models.Skill, error)
	ListByUser(db *gorm.DB, userID string) ([]models.Skill, error)
	Update(db *gorm.DB, id, ownerID string, upd SkillUpdate) (*models.Skill, error)
	Delete(db *gorm.DB, id, ownerID string) error
	SearchByName(db *gorm.DB, name string, limit int) ([]models.Skill, error)
}

type SkillRepositoryImpl struct{}

func NewSkillRepository() SkillRepository {
	return &SkillRepositoryImpl{}
}

func ownedBy(db *gorm.DB, column, ownerID string) *gorm.DB {
	if ownerID == "" {
		return db
	}
	return db.Where(column+" = ?", ownerID)
}

func (r *SkillRepositoryImpl) Create(db *gorm.DB, skill *models.Skill) error {
	return translate(db.Create(skill).Error, ErrSkillNotFound)
}

func (r *SkillRepositoryImpl) FindByID(db *gorm.DB, id, ownerID string) (*models.Skill, error) {
	var skill models.Skill
	if err := ownedBy(db.Where("id = ?", id), "user_id", ownerID).First(&skill).Error; err != nil {
		return nil, translate(err, ErrSkillNotFound)
	}
	return &skill, nil
}

func (r *SkillRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.Skill, error) {
	skills := []models.Skill{}
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Order("id DESC").Find(&skills).Error
	return skills, err
}

func (r *SkillRepositoryImpl) Update(db *gorm.DB, id, ownerID string, upd SkillUpdate) (*models.Skill, error) {
	if cols := upd.columns(); len(cols) > 0 {
		scoped := ownedBy(db.Model(&models.Skill{}).Where("id = ?", id), "user_id", ownerID)
		if err := affected(scoped.Updates(cols), ErrSkillNotFound); err != nil {
			return nil, err
		}
	}
	return r.FindByID(db, id, ownerID)
}

func (r *SkillRepositoryImpl) Delete(db *gorm.DB, id, ownerID string) error {
	res := ownedBy(db.Where("id = ?", id), "user_id", ownerID).Delete(&models.Skill{})
	return affected(res, ErrSkillNotFound)
}

// SearchByName - навыки по подстроке имени вместе с владельцами
func (r *SkillRepositoryImpl) SearchByName(db *gorm.DB, name string, limit int) ([]models.Skill, error) {
	skills := []models.Skill{}
	err := db.Preload("User").
		Where("skill_name ILIKE ?", query.Contains(name)).
		Order("skill_name ASC").Order("id ASC").
		Limit(limit).
		Find(&skills).Error
	return skills, err
}
