package repositories

import (
	"wematch_backend/internal/models"
	"wematch_backend/internal/query"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	List(db *gorm.DB, plan *query.Plan) ([]models.User, int64, error)
	UpdateRole(db *gorm.DB, id string, role models.UserRole) error
	Delete(db *gorm.DB, id string) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	return translate(db.Create(user).Error, ErrUserNotFound)
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) List(db *gorm.DB, plan *query.Plan) ([]models.User, int64, error) {
	var total int64
	if err := plan.Apply(db.Model(&models.User{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := plan.Paginate(plan.Apply(db.Model(&models.User{}))).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepositoryImpl) UpdateRole(db *gorm.DB, id string, role models.UserRole) error {
	res := db.Model(&models.User{}).Where("id = ?", id).Update("role", role)
	return affected(res, ErrUserNotFound)
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, id string) error {
	res := db.Delete(&models.User{}, "id = ?", id)
	return affected(res, ErrUserNotFound)
}
