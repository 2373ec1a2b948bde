package proposal

import (
	"context"

	"github.com/feliperamosdev/portfolio-api/internal/audit"
	"github.com/feliperamosdev/portfolio-api/internal/cache"
	domain "github.com/feliperamosdev/portfolio-api/internal/domain/proposal"
	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/models"
)

type UpdateProposal struct {
	repo  domain.Repository
	cache *cache.ProposalCache
	audit *audit.Dispatcher
}

func NewUpdateProposal(
	repo domain.Repository,
	cache *cache.ProposalCache,
	audit *audit.Dispatcher,
) *UpdateProposal {
	return &UpdateProposal{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// Execute grava por cima do registro inteiro (last-write-wins): edições
// concorrentes de dois operadores se sobrescrevem em silêncio — limitação
// conhecida, sem token de concorrência otimista.
func (uc *UpdateProposal) Execute(
	ctx context.Context,
	userID uint,
	id uint,
	in ProposalInput,
) (*models.Proposal, error) {

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("proposal_not_found")
	}

	updated, err := buildProposal(in)
	if err != nil {
		return nil, err
	}

	// Slug re-verificado dentro do save, ignorando a própria proposta
	count, err := uc.repo.CountBySlug(ctx, updated.Slug, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ErrBusiness("slug_already_exists")
	}

	oldSlug := current.Slug

	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	updated.AcceptedAt = current.AcceptedAt
	updated.AcceptedByName = current.AcceptedByName
	updated.AcceptedByDocument = current.AcceptedByDocument

	if err := uc.repo.Update(ctx, updated); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, oldSlug, updated.Slug)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "proposal_updated",
		Entity:   "proposal",
		EntityID: &updated.ID,
	})

	return updated, nil
}
