package checkout

import (
	"context"

	"github.com/feliperamosdev/portfolio-api/internal/models"
)

// Repository abstrai a persistência de checkouts.
// GetByLink e GetByChargeID devolvem (nil, nil) quando não há registro.
type Repository interface {
	Create(ctx context.Context, ck *models.Checkout) error
	Update(ctx context.Context, ck *models.Checkout) error

	GetByID(ctx context.Context, id uint) (*models.Checkout, error)
	GetByLink(ctx context.Context, link string) (*models.Checkout, error)
	GetByChargeID(ctx context.Context, chargeID string) (*models.Checkout, error)

	List(ctx context.Context, limit int, status string) ([]models.Checkout, error)
}
