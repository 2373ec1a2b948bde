package proposal

import (
	"context"
	"strings"
	"time"

	"github.com/feliperamosdev/portfolio-api/internal/audit"
	"github.com/feliperamosdev/portfolio-api/internal/cache"
	domain "github.com/feliperamosdev/portfolio-api/internal/domain/proposal"
	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/models"
	"github.com/feliperamosdev/portfolio-api/internal/money"
	"gorm.io/datatypes"
)

// ======================================================
// INPUT
// ======================================================

type ProposalInput struct {
	ClientName string
	Slug       string

	Objective string
	Scope     []string
	Timeline  []models.TimelineStep

	DeliveryDate *time.Time

	// Valor no formato pt-BR ("1.500,00")
	InvestmentValue string

	PaymentMethods      []string
	CustomPaymentMethod string

	Conditions      []string
	RescisionPolicy string
}

// ======================================================
// USE CASE
// ======================================================

type CreateProposal struct {
	repo  domain.Repository
	cache *cache.ProposalCache
	audit *audit.Dispatcher
}

func NewCreateProposal(
	repo domain.Repository,
	cache *cache.ProposalCache,
	audit *audit.Dispatcher,
) *CreateProposal {
	return &CreateProposal{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CreateProposal) Execute(
	ctx context.Context,
	userID uint,
	in ProposalInput,
) (*models.Proposal, error) {

	p, err := buildProposal(in)
	if err != nil {
		return nil, err
	}

	// Unicidade de slug verificada antes do save; colisão é erro
	// recuperável, nada é gravado.
	count, err := uc.repo.CountBySlug(ctx, p.Slug, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ErrBusiness("slug_already_exists")
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, p.Slug)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "proposal_created",
		Entity:   "proposal",
		EntityID: &p.ID,
	})

	return p, nil
}

// buildProposal valida e converte o input antes de qualquer acesso à rede.
func buildProposal(in ProposalInput) (*models.Proposal, error) {
	if strings.TrimSpace(in.ClientName) == "" {
		return nil, httperr.ErrBusiness("client_name_required")
	}

	slug, err := domain.NormalizeSlug(in.Slug)
	if err != nil {
		return nil, err
	}

	value, err := money.ParseBRL(in.InvestmentValue)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidatePaymentMethods(in.PaymentMethods); err != nil {
		return nil, err
	}

	return &models.Proposal{
		ClientName:          strings.TrimSpace(in.ClientName),
		Slug:                slug,
		Objective:           in.Objective,
		Scope:               datatypes.NewJSONSlice(in.Scope),
		Timeline:            datatypes.NewJSONSlice(in.Timeline),
		DeliveryDate:        in.DeliveryDate,
		InvestmentValue:     value,
		PaymentMethods:      datatypes.NewJSONSlice(in.PaymentMethods),
		CustomPaymentMethod: strings.TrimSpace(in.CustomPaymentMethod),
		Conditions:          datatypes.NewJSONSlice(in.Conditions),
		RescisionPolicy:     in.RescisionPolicy,
	}, nil
}
