package proposal

import (
	"context"

	domain "github.com/feliperamosdev/portfolio-api/internal/domain/proposal"
	"github.com/feliperamosdev/portfolio-api/internal/models"
)

type ListProposals struct {
	repo domain.Repository
}

func NewListProposals(repo domain.Repository) *ListProposals {
	return &ListProposals{repo: repo}
}

func (uc *ListProposals) Execute(ctx context.Context) ([]models.Proposal, error) {
	return uc.repo.List(ctx)
}
