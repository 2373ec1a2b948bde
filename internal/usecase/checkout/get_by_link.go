package checkout

import (
	"context"

	domain "github.com/feliperamosdev/portfolio-api/internal/domain/checkout"
	"github.com/feliperamosdev/portfolio-api/internal/models"
	"github.com/feliperamosdev/portfolio-api/internal/timezone"
)

type GetCheckoutByLink struct {
	repo domain.Repository
}

func NewGetCheckoutByLink(repo domain.Repository) *GetCheckoutByLink {
	return &GetCheckoutByLink{repo: repo}
}

// Execute devolve (nil, nil) quando não há checkout com o link — o
// chamador decide o comportamento (o handler público responde data: null).
// O vencimento por relógio é aplicado na leitura.
func (uc *GetCheckoutByLink) Execute(
	ctx context.Context,
	link string,
) (*models.Checkout, error) {

	ck, err := uc.repo.GetByLink(ctx, link)
	if err != nil {
		return nil, err
	}
	if ck == nil {
		return nil, nil
	}

	if domain.IsExpiredByClock(ck, timezone.Now()) {
		if err := domain.Expire(ck); err == nil {
			_ = uc.repo.Update(ctx, ck)
		}
	}

	return ck, nil
}
