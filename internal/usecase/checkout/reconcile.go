package checkout

import (
	"context"

	"github.com/feliperamosdev/portfolio-api/internal/audit"
	"github.com/feliperamosdev/portfolio-api/internal/billing"
	domain "github.com/feliperamosdev/portfolio-api/internal/domain/checkout"
	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/models"
)

// ReconcileCheckout consulta o status atual da cobrança no gateway e aplica
// as transições correspondentes. Usado quando o webhook se perdeu.
type ReconcileCheckout struct {
	repo    domain.Repository
	gateway billing.Gateway
	confirm *ConfirmPayment
}

func NewReconcileCheckout(
	repo domain.Repository,
	gateway billing.Gateway,
	audit *audit.Dispatcher,
) *ReconcileCheckout {
	return &ReconcileCheckout{
		repo:    repo,
		gateway: gateway,
		confirm: NewConfirmPayment(repo, audit),
	}
}

func (uc *ReconcileCheckout) Execute(
	ctx context.Context,
	id uint,
) (*models.Checkout, error) {

	ck, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("checkout_not_found")
	}
	if ck.ChargeID == "" {
		return nil, httperr.ErrBusiness("checkout_without_charge")
	}

	charge, err := uc.gateway.GetCharge(ctx, ck.ChargeID)
	if err != nil {
		return nil, err
	}

	switch charge.Status {
	case billing.ChargeStatusConfirmed:
		return uc.confirm.Execute(ctx, ck.ChargeID, EventPaymentConfirmed)
	case billing.ChargeStatusReceived:
		return uc.confirm.Execute(ctx, ck.ChargeID, EventPaymentReceived)
	}

	return ck, nil
}
