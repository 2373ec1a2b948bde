package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/feliperamosdev/portfolio-api/internal/domain/proposal"
	"github.com/feliperamosdev/portfolio-api/internal/models"
)

type ProposalGormRepository struct {
	db *gorm.DB
}

func NewProposalGormRepository(db *gorm.DB) *ProposalGormRepository {
	return &ProposalGormRepository{db: db}
}

// --------------------------------------------------
// Slug
// --------------------------------------------------

func (r *ProposalGormRepository) CountBySlug(
	ctx context.Context,
	slug string,
	excludeID uint,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Proposal{}).
		Where("slug = ?", slug)

	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (r *ProposalGormRepository) Create(ctx context.Context, p *models.Proposal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProposalGormRepository) Update(ctx context.Context, p *models.Proposal) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProposalGormRepository) GetByID(ctx context.Context, id uint) (*models.Proposal, error) {
	var p models.Proposal
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetBySlug devolve (nil, nil) quando não existe — ausência não é erro.
func (r *ProposalGormRepository) GetBySlug(ctx context.Context, slug string) (*models.Proposal, error) {
	var p models.Proposal
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProposalGormRepository) List(ctx context.Context) ([]models.Proposal, error) {
	var proposals []models.Proposal
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

// Compile-time check
var _ domain.Repository = (*ProposalGormRepository)(nil)
