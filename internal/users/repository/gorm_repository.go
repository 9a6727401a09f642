package repository

import (
	"errors"
	"time"

	authdomain "revdev-backend/internal/auth/domain"

	"gorm.io/gorm"
)

// gormUserAdminRepository implements UserAdminRepository over the shared
// users table.
type gormUserAdminRepository struct {
	db *gorm.DB
}

// NewGormUserAdminRepository creates a new GORM-based UserAdminRepository.
func NewGormUserAdminRepository(db *gorm.DB) UserAdminRepository {
	return &gormUserAdminRepository{db: db}
}

func (r *gormUserAdminRepository) List() ([]*authdomain.User, error) {
	var users []*authdomain.User
	err := r.db.Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *gormUserAdminRepository) FindByID(id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *gormUserAdminRepository) UpdateRole(id, role string) error {
	return r.db.Model(&authdomain.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"role":       role,
			"updated_at": time.Now(),
		}).Error
}

func (r *gormUserAdminRepository) Delete(id string) error {
	return r.db.Delete(&authdomain.User{}, "id = ?", id).Error
}
