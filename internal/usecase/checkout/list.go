package checkout

import (
	"context"

	domain "github.com/feliperamosdev/portfolio-api/internal/domain/checkout"
	"github.com/feliperamosdev/portfolio-api/internal/models"
)

const defaultListLimit = 50

type ListCheckouts struct {
	repo domain.Repository
}

func NewListCheckouts(repo domain.Repository) *ListCheckouts {
	return &ListCheckouts{repo: repo}
}

// Execute lista do mais recente para o mais antigo, com filtro exato de
// status opcional.
func (uc *ListCheckouts) Execute(
	ctx context.Context,
	limit int,
	status string,
) ([]models.Checkout, error) {

	if limit <= 0 {
		limit = defaultListLimit
	}

	return uc.repo.List(ctx, limit, status)
}
