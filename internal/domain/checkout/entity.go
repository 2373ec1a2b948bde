package checkout

import (
	"time"

	"github.com/feliperamosdev/portfolio-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func SelectPayment(ck *models.Checkout, method string) error {
	if err := Transition(Status(ck.Status), StatusPaymentSelected); err != nil {
		return err
	}

	ck.Status = string(StatusPaymentSelected)
	ck.PaymentMethod = &method
	return nil
}

func ConfirmPayment(ck *models.Checkout) error {
	if err := Transition(Status(ck.Status), StatusPaymentConfirmed); err != nil {
		return err
	}

	ck.Status = string(StatusPaymentConfirmed)
	return nil
}

func Complete(ck *models.Checkout, now time.Time) error {
	if err := Transition(Status(ck.Status), StatusCompleted); err != nil {
		return err
	}

	ck.Status = string(StatusCompleted)
	ck.CompletedAt = &now
	return nil
}

func Cancel(ck *models.Checkout, now time.Time) error {
	if err := Transition(Status(ck.Status), StatusCancelled); err != nil {
		return err
	}

	ck.Status = string(StatusCancelled)
	ck.CancelledAt = &now
	return nil
}

// Expire aplica o vencimento por relógio. O prazo é um dado comparado na
// leitura, não um timer ativo.
func Expire(ck *models.Checkout) error {
	if err := Transition(Status(ck.Status), StatusExpired); err != nil {
		return err
	}

	ck.Status = string(StatusExpired)
	return nil
}

func IsExpiredByClock(ck *models.Checkout, now time.Time) bool {
	if IsTerminal(Status(ck.Status)) {
		return false
	}
	if Status(ck.Status) == StatusPaymentConfirmed {
		return false
	}
	return now.After(ck.ExpiresAt)
}
