package checkout

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/feliperamosdev/portfolio-api/internal/audit"
	domain "github.com/feliperamosdev/portfolio-api/internal/domain/checkout"
	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/models"
	"github.com/feliperamosdev/portfolio-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateCheckoutInput struct {
	CustomerName        string
	CustomerEmail       string
	CustomerCpfCnpj     string
	CustomerMobilePhone string
	CustomerPhone       string
	CustomerCompany     string

	Value       float64
	Description string
	DueDate     time.Time
	BillingType string

	ExpiresAt *time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateCheckout struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateCheckout(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateCheckout {
	return &CreateCheckout{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateCheckout) Execute(
	ctx context.Context,
	userID uint,
	in CreateCheckoutInput,
) (*models.Checkout, error) {

	// Validação local completa antes de qualquer colaborador externo
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, httperr.ErrBusiness("customer_name_required")
	}
	if strings.TrimSpace(in.CustomerCpfCnpj) == "" {
		return nil, httperr.ErrBusiness("customer_cpf_cnpj_required")
	}
	if strings.TrimSpace(in.CustomerMobilePhone) == "" {
		return nil, httperr.ErrBusiness("customer_mobile_phone_required")
	}
	if in.Value <= 0 {
		return nil, httperr.ErrBusiness("invalid_value")
	}
	if in.DueDate.IsZero() {
		return nil, httperr.ErrBusiness("due_date_required")
	}
	// Limite em caracteres, não em bytes: "é" conta 1
	if utf8.RuneCountInString(in.Description) > 500 {
		return nil, httperr.ErrBusiness("description_too_long")
	}

	link, err := uc.availableLink(ctx)
	if err != nil {
		return nil, err
	}

	expiresAt := timezone.Now().Add(24 * time.Hour)
	if in.ExpiresAt != nil {
		expiresAt = *in.ExpiresAt
	}

	ck := &models.Checkout{
		UniqueLink:          link,
		CustomerName:        strings.TrimSpace(in.CustomerName),
		CustomerEmail:       strings.TrimSpace(in.CustomerEmail),
		CustomerCpfCnpj:     strings.TrimSpace(in.CustomerCpfCnpj),
		CustomerMobilePhone: strings.TrimSpace(in.CustomerMobilePhone),
		CustomerPhone:       strings.TrimSpace(in.CustomerPhone),
		CustomerCompany:     strings.TrimSpace(in.CustomerCompany),
		Value:               in.Value,
		Description:         in.Description,
		DueDate:             in.DueDate,
		BillingType:         in.BillingType,
		Status:              string(domain.InitialStatus()),
		ExpiresAt:           expiresAt,
	}

	if err := uc.repo.Create(ctx, ck); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "checkout_created",
		Entity:   "checkout",
		EntityID: &ck.ID,
	})

	return ck, nil
}

// availableLink gera o link público e confere colisão (improvável, mas a
// unicidade é invariante).
func (uc *CreateCheckout) availableLink(ctx context.Context) (string, error) {
	for i := 0; i < 3; i++ {
		link, err := domain.NewUniqueLink()
		if err != nil {
			return "", err
		}

		existing, err := uc.repo.GetByLink(ctx, link)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return link, nil
		}
	}
	return "", httperr.ErrBusiness("unique_link_already_exists")
}
