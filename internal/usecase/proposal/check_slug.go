package proposal

import (
	"context"

	domain "github.com/feliperamosdev/portfolio-api/internal/domain/proposal"
)

type CheckSlugAvailability struct {
	repo domain.Repository
}

func NewCheckSlugAvailability(repo domain.Repository) *CheckSlugAvailability {
	return &CheckSlugAvailability{repo: repo}
}

// Execute responde se o slug está livre, ignorando a proposta em edição
// quando excludeID > 0. Match exato, sensível a maiúsculas.
func (uc *CheckSlugAvailability) Execute(
	ctx context.Context,
	slug string,
	excludeID uint,
) (bool, error) {

	normalized, err := domain.NormalizeSlug(slug)
	if err != nil {
		return false, err
	}

	count, err := uc.repo.CountBySlug(ctx, normalized, excludeID)
	if err != nil {
		return false, err
	}

	return count == 0, nil
}
