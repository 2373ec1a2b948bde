package checkout

import (
	"context"
	"time"

	"github.com/feliperamosdev/portfolio-api/internal/audit"
	"github.com/feliperamosdev/portfolio-api/internal/billing"
	domain "github.com/feliperamosdev/portfolio-api/internal/domain/checkout"
	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/models"
	"github.com/feliperamosdev/portfolio-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type SelectPaymentInput struct {
	Link         string
	Method       string // pix | boleto | credit_card
	Installments int
}

// ======================================================
// USE CASE
// ======================================================

type SelectPaymentMethod struct {
	repo    domain.Repository
	gateway billing.Gateway
	audit   *audit.Dispatcher
}

func NewSelectPaymentMethod(
	repo domain.Repository,
	gateway billing.Gateway,
	audit *audit.Dispatcher,
) *SelectPaymentMethod {
	return &SelectPaymentMethod{
		repo:    repo,
		gateway: gateway,
		audit:   audit,
	}
}

// Execute processa a escolha de forma de pagamento do cliente: valida a
// transição, garante o cliente no gateway, emite a cobrança e só então
// persiste payment_selected. Falha no gateway deixa o registro em pending
// com a mensagem do próprio gateway repassada ao chamador.
func (uc *SelectPaymentMethod) Execute(
	ctx context.Context,
	in SelectPaymentInput,
) (*models.Checkout, error) {

	ck, err := uc.repo.GetByLink(ctx, in.Link)
	if err != nil {
		return nil, err
	}
	if ck == nil {
		return nil, httperr.ErrBusiness("checkout_not_found")
	}

	now := timezone.Now()

	// Vencido por relógio: persiste o estado final e rejeita
	if domain.IsExpiredByClock(ck, now) {
		if err := domain.Expire(ck); err == nil {
			_ = uc.repo.Update(ctx, ck)
		}
		return nil, httperr.ErrBusiness("checkout_expired")
	}

	// A transição é validada antes de tocar o gateway
	if err := domain.Transition(domain.Status(ck.Status), domain.StatusPaymentSelected); err != nil {
		return nil, err
	}

	plan, err := domain.ComputeInstallments(in.Method, ck.Value, in.Installments)
	if err != nil {
		return nil, err
	}

	customerID, err := uc.ensureCustomer(ctx, ck)
	if err != nil {
		return nil, err
	}

	// O cliente criado no gateway é persistido antes da cobrança: se a
	// cobrança falhar, o retry reutiliza o mesmo cliente em vez de
	// duplicá-lo.
	if ck.GatewayCustomerID == "" {
		ck.GatewayCustomerID = customerID
		if err := uc.repo.Update(ctx, ck); err != nil {
			return nil, err
		}
	}

	charge, err := uc.createCharge(ctx, ck, customerID, in.Method, plan)
	if err != nil {
		return nil, err
	}

	if in.Method == "pix" {
		qr, err := uc.gateway.GetPixQrCode(ctx, charge.ID)
		if err != nil {
			return nil, err
		}

		ck.PixQrCode = qr.Payload
		ck.PixQrCodeImage = qr.EncodedImage
		if exp, err := time.ParseInLocation("2006-01-02 15:04:05", qr.ExpirationDate, timezone.Location()); err == nil {
			ck.PixExpiresAt = &exp
		}
	}

	if err := domain.SelectPayment(ck, in.Method); err != nil {
		return nil, err
	}

	ck.ChargeID = charge.ID
	ck.InstallmentCount = &plan.Count
	ck.InstallmentValue = &plan.InstallmentValue
	ck.InterestRate = &plan.InterestRate
	ck.InterestAmount = &plan.InterestAmount
	ck.TotalValue = &plan.TotalValue

	if err := uc.repo.Update(ctx, ck); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "checkout_payment_selected",
		Entity:   "checkout",
		EntityID: &ck.ID,
		Metadata: map[string]any{"method": in.Method, "installments": plan.Count},
	})

	return ck, nil
}

func (uc *SelectPaymentMethod) ensureCustomer(
	ctx context.Context,
	ck *models.Checkout,
) (string, error) {

	if ck.GatewayCustomerID != "" {
		return ck.GatewayCustomerID, nil
	}

	customer, err := uc.gateway.CreateCustomer(ctx, billing.CustomerInput{
		Name:              ck.CustomerName,
		Email:             ck.CustomerEmail,
		CpfCnpj:           ck.CustomerCpfCnpj,
		MobilePhone:       ck.CustomerMobilePhone,
		Phone:             ck.CustomerPhone,
		Company:           ck.CustomerCompany,
		ExternalReference: externalReference(ck),
	})
	if err != nil {
		return "", err
	}

	return customer.ID, nil
}

func (uc *SelectPaymentMethod) createCharge(
	ctx context.Context,
	ck *models.Checkout,
	customerID string,
	method string,
	plan *domain.InstallmentPlan,
) (*billing.Charge, error) {

	in := billing.ChargeInput{
		Customer:    customerID,
		BillingType: billingTypeFor(method),
		Value:       plan.TotalValue,
		DueDate:     ck.DueDate.Format("2006-01-02"),
		Description: ck.Description,
		// Referência estável amarrada ao link do checkout: reenvio da
		// mesma seleção não duplica cobrança no gateway.
		ExternalReference: externalReference(ck),
	}

	if plan.Count > 1 {
		in.InstallmentCount = plan.Count
		in.InstallmentValue = plan.InstallmentValue
	}

	return uc.gateway.CreateCharge(ctx, in)
}

func billingTypeFor(method string) string {
	switch method {
	case "pix":
		return billing.BillingTypePix
	case "boleto":
		return billing.BillingTypeBoleto
	case "credit_card":
		return billing.BillingTypeCreditCard
	}
	return billing.BillingTypeUndefined
}

func externalReference(ck *models.Checkout) string {
	return "checkout_" + ck.UniqueLink
}
