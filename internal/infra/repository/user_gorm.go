package repository

import (
	"context"

	"gorm.io/gorm"

	ucuser "github.com/feliperamosdev/portfolio-api/internal/usecase/user"

	"github.com/feliperamosdev/portfolio-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserGormRepository) DeleteUser(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

func (r *UserGormRepository) AssignRole(ctx context.Context, userID uint, role string) error {
	return r.db.WithContext(ctx).Create(&models.UserRole{
		UserID: userID,
		Role:   role,
	}).Error
}

// Compile-time check
var _ ucuser.Repository = (*UserGormRepository)(nil)
