package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feliperamosdev/portfolio-api/internal/billing"
	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/models"
)

// fakeGateway conta chamadas e devolve respostas fixas.
type fakeGateway struct {
	customers int
	charges   int
	deleted   []string

	chargeErr  error
	lastCharge billing.ChargeInput
}

func (g *fakeGateway) CreateCustomer(_ context.Context, in billing.CustomerInput) (*billing.Customer, error) {
	g.customers++
	return &billing.Customer{ID: "cus_001", Name: in.Name}, nil
}

func (g *fakeGateway) GetCustomer(_ context.Context, id string) (*billing.Customer, error) {
	return &billing.Customer{ID: id}, nil
}

func (g *fakeGateway) UpdateCustomer(_ context.Context, id string, _ billing.CustomerInput) (*billing.Customer, error) {
	return &billing.Customer{ID: id}, nil
}

func (g *fakeGateway) DeleteCustomer(_ context.Context, _ string) error { return nil }

func (g *fakeGateway) ListCustomers(_ context.Context, _, _ int) (*billing.List[billing.Customer], error) {
	return &billing.List[billing.Customer]{}, nil
}

func (g *fakeGateway) CreateCharge(_ context.Context, in billing.ChargeInput) (*billing.Charge, error) {
	if g.chargeErr != nil {
		return nil, g.chargeErr
	}
	g.charges++
	g.lastCharge = in
	return &billing.Charge{ID: "pay_001", Status: billing.ChargeStatusPending}, nil
}

func (g *fakeGateway) GetCharge(_ context.Context, id string) (*billing.Charge, error) {
	return &billing.Charge{ID: id, Status: billing.ChargeStatusPending}, nil
}

func (g *fakeGateway) DeleteCharge(_ context.Context, id string) error {
	g.deleted = append(g.deleted, id)
	return nil
}

func (g *fakeGateway) ListCharges(_ context.Context, _, _ int) (*billing.List[billing.Charge], error) {
	return &billing.List[billing.Charge]{}, nil
}

func (g *fakeGateway) GetPixQrCode(_ context.Context, _ string) (*billing.PixQrCode, error) {
	return &billing.PixQrCode{
		EncodedImage:   "base64img",
		Payload:        "000201pix",
		ExpirationDate: "2025-07-01 23:59:59",
	}, nil
}

func (g *fakeGateway) GetInvoice(_ context.Context, id string) (*billing.Invoice, error) {
	return &billing.Invoice{ID: id}, nil
}

func (g *fakeGateway) ListInvoices(_ context.Context, _, _ int) (*billing.List[billing.Invoice], error) {
	return &billing.List[billing.Invoice]{}, nil
}

var _ billing.Gateway = (*fakeGateway)(nil)

func pendingCheckout(repo *fakeRepo) *models.Checkout {
	ck := &models.Checkout{
		UniqueLink:          "a1B2c3D4e5F6g7H8",
		CustomerName:        "João da Silva",
		CustomerCpfCnpj:     "12345678901",
		CustomerMobilePhone: "41999990000",
		Value:               1500,
		DueDate:             time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Status:              "pending",
		ExpiresAt:           time.Now().Add(time.Hour),
	}
	_ = repo.Create(context.Background(), ck)
	return ck
}

func TestSelectPaymentPix(t *testing.T) {
	repo := newFakeRepo()
	gw := &fakeGateway{}
	ck := pendingCheckout(repo)

	uc := NewSelectPaymentMethod(repo, gw, nil)

	got, err := uc.Execute(context.Background(), SelectPaymentInput{
		Link:   ck.UniqueLink,
		Method: "pix",
	})
	require.NoError(t, err)

	assert.Equal(t, "payment_selected", got.Status)
	require.NotNil(t, got.PaymentMethod)
	assert.Equal(t, "pix", *got.PaymentMethod)

	assert.Equal(t, "cus_001", got.GatewayCustomerID)
	assert.Equal(t, "pay_001", got.ChargeID)
	assert.Equal(t, "000201pix", got.PixQrCode)
	require.NotNil(t, got.PixExpiresAt)

	// A cobrança carrega a referência amarrada ao link
	assert.Equal(t, "checkout_a1B2c3D4e5F6g7H8", gw.lastCharge.ExternalReference)
	assert.Equal(t, billing.BillingTypePix, gw.lastCharge.BillingType)

	require.NotNil(t, got.InstallmentCount)
	assert.Equal(t, 1, *got.InstallmentCount)
}

func TestSelectPaymentCreditCardInstallments(t *testing.T) {
	repo := newFakeRepo()
	gw := &fakeGateway{}
	ck := pendingCheckout(repo)

	uc := NewSelectPaymentMethod(repo, gw, nil)

	got, err := uc.Execute(context.Background(), SelectPaymentInput{
		Link:         ck.UniqueLink,
		Method:       "credit_card",
		Installments: 3,
	})
	require.NoError(t, err)

	require.NotNil(t, got.InstallmentCount)
	assert.Equal(t, 3, *got.InstallmentCount)
	require.NotNil(t, got.TotalValue)
	assert.Greater(t, *got.TotalValue, ck.Value)

	assert.Equal(t, 3, gw.lastCharge.InstallmentCount)
	assert.Equal(t, billing.BillingTypeCreditCard, gw.lastCharge.BillingType)
}

func TestSelectPaymentGuardsStateBeforeGateway(t *testing.T) {
	repo := newFakeRepo()
	gw := &fakeGateway{}

	ck := pendingCheckout(repo)
	ck.Status = "cancelled"

	uc := NewSelectPaymentMethod(repo, gw, nil)

	_, err := uc.Execute(context.Background(), SelectPaymentInput{
		Link:   ck.UniqueLink,
		Method: "pix",
	})
	require.Error(t, err)

	code, _, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "invalid_status_transition", code)

	// O gateway nunca foi tocado
	assert.Equal(t, 0, gw.customers)
	assert.Equal(t, 0, gw.charges)
}

func TestSelectPaymentExpiredByClock(t *testing.T) {
	repo := newFakeRepo()
	gw := &fakeGateway{}

	ck := pendingCheckout(repo)
	ck.ExpiresAt = time.Now().Add(-time.Hour)

	uc := NewSelectPaymentMethod(repo, gw, nil)

	_, err := uc.Execute(context.Background(), SelectPaymentInput{
		Link:   ck.UniqueLink,
		Method: "pix",
	})
	require.Error(t, err)

	code, _, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "checkout_expired", code)

	assert.Equal(t, "expired", ck.Status)
	assert.Equal(t, 0, gw.charges)
}

func TestSelectPaymentInvalidInstallmentsForPix(t *testing.T) {
	repo := newFakeRepo()
	gw := &fakeGateway{}
	ck := pendingCheckout(repo)

	uc := NewSelectPaymentMethod(repo, gw, nil)

	_, err := uc.Execute(context.Background(), SelectPaymentInput{
		Link:         ck.UniqueLink,
		Method:       "pix",
		Installments: 3,
	})
	require.Error(t, err)

	code, _, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "installments_not_supported", code)

	assert.Equal(t, 0, gw.charges)
	assert.Equal(t, "pending", ck.Status)
}

// Falha na cobrança não descarta o cliente já criado no gateway: o ID é
// persistido e o retry o reutiliza em vez de criar um segundo cliente.
func TestSelectPaymentKeepsCustomerWhenChargeFails(t *testing.T) {
	repo := newFakeRepo()
	gw := &fakeGateway{
		chargeErr: httperr.ErrBusinessMsg("billing_gateway_error", "instabilidade no gateway"),
	}
	ck := pendingCheckout(repo)

	uc := NewSelectPaymentMethod(repo, gw, nil)

	_, err := uc.Execute(context.Background(), SelectPaymentInput{
		Link:   ck.UniqueLink,
		Method: "pix",
	})
	require.Error(t, err)

	// O checkout segue pendente, mas o cliente do gateway ficou gravado
	assert.Equal(t, "pending", ck.Status)
	assert.Equal(t, "cus_001", ck.GatewayCustomerID)
	assert.Equal(t, 1, gw.customers)

	gw.chargeErr = nil

	got, err := uc.Execute(context.Background(), SelectPaymentInput{
		Link:   ck.UniqueLink,
		Method: "pix",
	})
	require.NoError(t, err)

	assert.Equal(t, "payment_selected", got.Status)
	assert.Equal(t, "cus_001", got.GatewayCustomerID)

	// Nenhum cliente duplicado no retry
	assert.Equal(t, 1, gw.customers)
}

func TestCancelCheckoutDeletesGatewayCharge(t *testing.T) {
	repo := newFakeRepo()
	gw := &fakeGateway{}

	ck := pendingCheckout(repo)
	ck.Status = "payment_selected"
	ck.ChargeID = "pay_001"
	require.NoError(t, repo.Update(context.Background(), ck))

	uc := NewCancelCheckout(repo, gw, nil)

	got, err := uc.Execute(context.Background(), 1, ck.ID)
	require.NoError(t, err)

	assert.Equal(t, "cancelled", got.Status)
	require.NotNil(t, got.CancelledAt)
	assert.Equal(t, []string{"pay_001"}, gw.deleted)
}
