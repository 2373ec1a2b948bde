package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/feliperamosdev/portfolio-api/internal/domain/checkout"
	"github.com/feliperamosdev/portfolio-api/internal/models"
)

type CheckoutGormRepository struct {
	db *gorm.DB
}

func NewCheckoutGormRepository(db *gorm.DB) *CheckoutGormRepository {
	return &CheckoutGormRepository{db: db}
}

func (r *CheckoutGormRepository) Create(ctx context.Context, ck *models.Checkout) error {
	return r.db.WithContext(ctx).Create(ck).Error
}

func (r *CheckoutGormRepository) Update(ctx context.Context, ck *models.Checkout) error {
	return r.db.WithContext(ctx).Save(ck).Error
}

func (r *CheckoutGormRepository) GetByID(ctx context.Context, id uint) (*models.Checkout, error) {
	var ck models.Checkout
	if err := r.db.WithContext(ctx).First(&ck, id).Error; err != nil {
		return nil, err
	}
	return &ck, nil
}

// GetByLink devolve (nil, nil) quando não há checkout com o link —
// o chamador decide se isso é fatal (ex.: redirect para a home).
func (r *CheckoutGormRepository) GetByLink(ctx context.Context, link string) (*models.Checkout, error) {
	var ck models.Checkout
	err := r.db.WithContext(ctx).
		Where("unique_link = ?", link).
		First(&ck).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ck, nil
}

func (r *CheckoutGormRepository) GetByChargeID(ctx context.Context, chargeID string) (*models.Checkout, error) {
	var ck models.Checkout
	err := r.db.WithContext(ctx).
		Where("charge_id = ?", chargeID).
		First(&ck).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ck, nil
}

func (r *CheckoutGormRepository) List(
	ctx context.Context,
	limit int,
	status string,
) ([]models.Checkout, error) {

	q := r.db.WithContext(ctx).Model(&models.Checkout{})

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var checkouts []models.Checkout
	if err := q.
		Order("created_at DESC").
		Find(&checkouts).Error; err != nil {
		return nil, err
	}
	return checkouts, nil
}

// Compile-time check
var _ domain.Repository = (*CheckoutGormRepository)(nil)
