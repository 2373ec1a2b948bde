package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/models"
)

func TestTransitions(t *testing.T) {
	legal := []struct{ from, to Status }{
		{StatusPending, StatusPaymentSelected},
		{StatusPending, StatusExpired},
		{StatusPending, StatusCancelled},
		{StatusPaymentSelected, StatusPaymentConfirmed},
		{StatusPaymentSelected, StatusExpired},
		{StatusPaymentSelected, StatusCancelled},
		{StatusPaymentConfirmed, StatusCompleted},
		{StatusPaymentConfirmed, StatusCancelled},
	}

	for _, tc := range legal {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
		assert.NoError(t, Transition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	illegal := []struct{ from, to Status }{
		{StatusPending, StatusPaymentConfirmed},
		{StatusPending, StatusCompleted},
		{StatusPaymentSelected, StatusPending},
		{StatusPaymentConfirmed, StatusPending},
		{StatusPaymentConfirmed, StatusPaymentSelected},
		{StatusPaymentConfirmed, StatusExpired},
		{StatusCompleted, StatusCancelled},
		{StatusExpired, StatusPaymentSelected},
		{StatusCancelled, StatusPending},
	}

	for _, tc := range illegal {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)

		err := Transition(tc.from, tc.to)
		require.Error(t, err, "%s -> %s", tc.from, tc.to)

		code, _, ok := httperr.BusinessCode(err)
		require.True(t, ok)
		assert.Equal(t, "invalid_status_transition", code)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusExpired))
	assert.True(t, IsTerminal(StatusCancelled))

	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusPaymentSelected))
	assert.False(t, IsTerminal(StatusPaymentConfirmed))
}

func TestDomainActions(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ck := &models.Checkout{Status: string(StatusPending)}

	require.NoError(t, SelectPayment(ck, "pix"))
	assert.Equal(t, string(StatusPaymentSelected), ck.Status)
	require.NotNil(t, ck.PaymentMethod)
	assert.Equal(t, "pix", *ck.PaymentMethod)

	require.NoError(t, ConfirmPayment(ck))
	assert.Equal(t, string(StatusPaymentConfirmed), ck.Status)

	require.NoError(t, Complete(ck, now))
	assert.Equal(t, string(StatusCompleted), ck.Status)
	require.NotNil(t, ck.CompletedAt)
	assert.Equal(t, now, *ck.CompletedAt)

	// Terminal: nada mais se aplica
	assert.Error(t, Cancel(ck, now))
	assert.Error(t, Expire(ck))
}

func TestCancelStampsTimestamp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ck := &models.Checkout{Status: string(StatusPending)}
	require.NoError(t, Cancel(ck, now))

	assert.Equal(t, string(StatusCancelled), ck.Status)
	require.NotNil(t, ck.CancelledAt)
	assert.Equal(t, now, *ck.CancelledAt)
}

func TestIsExpiredByClock(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ck := &models.Checkout{
		Status:    string(StatusPending),
		ExpiresAt: now.Add(-time.Minute),
	}
	assert.True(t, IsExpiredByClock(ck, now))

	ck.ExpiresAt = now.Add(time.Minute)
	assert.False(t, IsExpiredByClock(ck, now))

	// Pagamento confirmado não vence por relógio
	ck.Status = string(StatusPaymentConfirmed)
	ck.ExpiresAt = now.Add(-time.Hour)
	assert.False(t, IsExpiredByClock(ck, now))

	// Estados terminais também não
	ck.Status = string(StatusCancelled)
	assert.False(t, IsExpiredByClock(ck, now))
}

func TestNewUniqueLink(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 50; i++ {
		link, err := NewUniqueLink()
		require.NoError(t, err)
		require.Len(t, link, 16)

		for _, r := range link {
			isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			assert.True(t, isAlnum, "link %q tem caractere inválido %q", link, r)
		}

		assert.False(t, seen[link], "link repetido: %s", link)
		seen[link] = true
	}
}

func TestComputeInstallmentsSinglePayment(t *testing.T) {
	for _, method := range []string{"pix", "boleto"} {
		plan, err := ComputeInstallments(method, 1500, 1)
		require.NoError(t, err, method)

		assert.Equal(t, 1, plan.Count)
		assert.Equal(t, 1500.00, plan.InstallmentValue)
		assert.Equal(t, 0.0, plan.InterestRate)
		assert.Equal(t, 0.0, plan.InterestAmount)
		assert.Equal(t, 1500.00, plan.TotalValue)

		_, err = ComputeInstallments(method, 1500, 3)
		require.Error(t, err, method)

		code, _, ok := httperr.BusinessCode(err)
		require.True(t, ok)
		assert.Equal(t, "installments_not_supported", code)
	}
}

func TestComputeInstallmentsCreditCard(t *testing.T) {
	// À vista no cartão: sem juros
	plan, err := ComputeInstallments("credit_card", 1000, 1)
	require.NoError(t, err)
	assert.Equal(t, 1000.00, plan.TotalValue)
	assert.Equal(t, 0.0, plan.InterestAmount)

	// 3x: juros compostos de 1,99% a.m.
	plan, err = ComputeInstallments("credit_card", 1000, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, plan.Count)
	assert.InDelta(t, 1060.90, plan.TotalValue, 0.01)
	assert.InDelta(t, 60.90, plan.InterestAmount, 0.01)
	assert.InDelta(t, plan.TotalValue/3, plan.InstallmentValue, 0.01)
	assert.Equal(t, CreditCardMonthlyInterest, plan.InterestRate)

	_, err = ComputeInstallments("credit_card", 1000, 13)
	require.Error(t, err)

	code, _, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "too_many_installments", code)
}

func TestComputeInstallmentsRejectsUnknownMethod(t *testing.T) {
	_, err := ComputeInstallments("cheque", 1000, 1)
	require.Error(t, err)

	code, _, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "invalid_payment_method", code)
}
