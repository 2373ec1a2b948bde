package checkout

import (
	"context"

	"github.com/feliperamosdev/portfolio-api/internal/audit"
	domain "github.com/feliperamosdev/portfolio-api/internal/domain/checkout"
	"github.com/feliperamosdev/portfolio-api/internal/models"
	"github.com/feliperamosdev/portfolio-api/internal/timezone"
)

// Eventos do gateway que movem o estado do checkout. O cliente nunca
// afirma confirmação diretamente: só evento do gateway atravessa as arestas
// payment_confirmed/completed.
const (
	EventPaymentConfirmed = "PAYMENT_CONFIRMED"
	EventPaymentReceived  = "PAYMENT_RECEIVED"
)

type ConfirmPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmPayment {
	return &ConfirmPayment{
		repo:  repo,
		audit: audit,
	}
}

// Execute aplica um evento de pagamento do gateway ao checkout da cobrança.
// Evento para cobrança desconhecida é ignorado sem erro (webhook pode
// chegar depois de um cancelamento local).
func (uc *ConfirmPayment) Execute(
	ctx context.Context,
	chargeID string,
	event string,
) (*models.Checkout, error) {

	ck, err := uc.repo.GetByChargeID(ctx, chargeID)
	if err != nil {
		return nil, err
	}
	if ck == nil {
		return nil, nil
	}

	now := timezone.Now()

	switch event {
	case EventPaymentConfirmed:
		if err := domain.ConfirmPayment(ck); err != nil {
			return nil, err
		}

	case EventPaymentReceived:
		// Liquidação: confirma (se ainda não confirmado) e finaliza
		if domain.Status(ck.Status) == domain.StatusPaymentSelected {
			if err := domain.ConfirmPayment(ck); err != nil {
				return nil, err
			}
		}
		if err := domain.Complete(ck, now); err != nil {
			return nil, err
		}

	default:
		return ck, nil
	}

	if err := uc.repo.Update(ctx, ck); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "checkout_payment_event",
		Entity:   "checkout",
		EntityID: &ck.ID,
		Metadata: map[string]any{"event": event},
	})

	return ck, nil
}
