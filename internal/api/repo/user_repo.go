package repo

import (
	"jobboard/internal/api/models"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	Db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Db: db}
}

func (slf *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := slf.Db.Where("email = ?", email).First(&user).Error
	return user, err
}

func (slf *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := slf.Db.First(&user, id).Error
	return user, err
}

func (slf *UserRepository) Create(user *models.User) error {
	return slf.Db.Create(user).Error
}

func (slf *UserRepository) Update(user *models.User) error {
	return slf.Db.Save(user).Error
}

func (slf *UserRepository) Delete(id uint) error {
	return slf.Db.Delete(&models.User{}, id).Error
}

func (slf *UserRepository) ExistsByEmailOrPhone(email, phone string) (bool, error) {
	var count int64
	err := slf.Db.Model(&models.User{}).
		Where("email = ? OR phone = ?", email, phone).
		Count(&count).Error
	return count > 0, err
}

func (slf *UserRepository) FindByResetToken(hashedToken string) (models.User, error) {
	var user models.User
	err := slf.Db.
		Where("reset_password_token = ? AND reset_password_exp > ?", hashedToken, time.Now()).
		First(&user).Error
	return user, err
}

func (slf *UserRepository) GetAll(role string, page, pageSize int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	q := slf.Db.Model(&models.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error
	return users, total, err
}

func (slf *UserRepository) CountByRole(role models.AppRole) (int64, error) {
	var count int64
	err := slf.Db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

// FindEmployers lists active employer accounts for the public company pages.
func (slf *UserRepository) FindEmployers() ([]models.User, error) {
	var users []models.User
	err := slf.Db.
		Where("role = ? AND is_active = true", models.RoleEmployer).
		Order("company_name ASC").
		Find(&users).Error
	return users, err
}
