package checkout

import (
	"context"
	"log"

	"github.com/feliperamosdev/portfolio-api/internal/audit"
	"github.com/feliperamosdev/portfolio-api/internal/billing"
	domain "github.com/feliperamosdev/portfolio-api/internal/domain/checkout"
	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/models"
	"github.com/feliperamosdev/portfolio-api/internal/timezone"
)

type CancelCheckout struct {
	repo    domain.Repository
	gateway billing.Gateway
	audit   *audit.Dispatcher
}

func NewCancelCheckout(
	repo domain.Repository,
	gateway billing.Gateway,
	audit *audit.Dispatcher,
) *CancelCheckout {
	return &CancelCheckout{
		repo:    repo,
		gateway: gateway,
		audit:   audit,
	}
}

func (uc *CancelCheckout) Execute(
	ctx context.Context,
	userID uint,
	id uint,
) (*models.Checkout, error) {

	ck, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("checkout_not_found")
	}

	if err := domain.Cancel(ck, timezone.Now()); err != nil {
		return nil, err
	}

	// Remoção da cobrança no gateway é melhor esforço: o cancelamento
	// local vale mesmo se o gateway falhar.
	if ck.ChargeID != "" {
		if err := uc.gateway.DeleteCharge(ctx, ck.ChargeID); err != nil {
			log.Printf("[checkout] failed to delete gateway charge %s: %v", ck.ChargeID, err)
		}
	}

	if err := uc.repo.Update(ctx, ck); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "checkout_cancelled",
		Entity:   "checkout",
		EntityID: &ck.ID,
	})

	return ck, nil
}
