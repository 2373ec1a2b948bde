package proposal

import (
	"context"

	"github.com/feliperamosdev/portfolio-api/internal/models"
)

// Repository abstrai a persistência de propostas.
// GetBySlug devolve (nil, nil) quando não há proposta — ausência não é erro.
type Repository interface {
	CountBySlug(ctx context.Context, slug string, excludeID uint) (int64, error)

	Create(ctx context.Context, p *models.Proposal) error
	Update(ctx context.Context, p *models.Proposal) error

	GetByID(ctx context.Context, id uint) (*models.Proposal, error)
	GetBySlug(ctx context.Context, slug string) (*models.Proposal, error)

	List(ctx context.Context) ([]models.Proposal, error)
}
