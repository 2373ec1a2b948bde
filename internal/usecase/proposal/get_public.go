package proposal

import (
	"context"
	"time"

	"github.com/feliperamosdev/portfolio-api/internal/cache"
	domain "github.com/feliperamosdev/portfolio-api/internal/domain/proposal"
	"github.com/feliperamosdev/portfolio-api/internal/models"
	"github.com/feliperamosdev/portfolio-api/internal/timezone"
)

// PublicProposal é a visão pública da proposta: o registro mais o estado
// derivado de validade (nunca persistido).
type PublicProposal struct {
	models.Proposal
	ValidUntil time.Time `json:"valid_until"`
	Expired    bool      `json:"expired"`
}

type GetPublicProposal struct {
	repo  domain.Repository
	cache *cache.ProposalCache
}

func NewGetPublicProposal(
	repo domain.Repository,
	cache *cache.ProposalCache,
) *GetPublicProposal {
	return &GetPublicProposal{
		repo:  repo,
		cache: cache,
	}
}

// Execute devolve (nil, nil) quando não há proposta com o slug.
func (uc *GetPublicProposal) Execute(
	ctx context.Context,
	slug string,
) (*PublicProposal, error) {

	p, ok := uc.cache.Get(ctx, slug)
	if !ok {
		var err error
		p, err = uc.repo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, nil
		}
		uc.cache.Set(ctx, p)
	}

	now := timezone.Now()
	return &PublicProposal{
		Proposal:   *p,
		ValidUntil: domain.ValidUntil(p.CreatedAt),
		Expired:    domain.IsExpired(p.CreatedAt, now),
	}, nil
}
