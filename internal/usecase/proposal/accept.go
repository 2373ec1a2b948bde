package proposal

import (
	"context"
	"strings"

	"github.com/feliperamosdev/portfolio-api/internal/audit"
	"github.com/feliperamosdev/portfolio-api/internal/contract"
	domain "github.com/feliperamosdev/portfolio-api/internal/domain/proposal"
	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type AcceptanceInput struct {
	ClientName     string
	ClientDocument string
	ClientEmail    string
	ClientRole     string
	Declaration    string
}

// ======================================================
// USE CASE
// ======================================================

type AcceptProposal struct {
	repo      domain.Repository
	generator *contract.Generator
	audit     *audit.Dispatcher
}

func NewAcceptProposal(
	repo domain.Repository,
	generator *contract.Generator,
	audit *audit.Dispatcher,
) *AcceptProposal {
	return &AcceptProposal{
		repo:      repo,
		generator: generator,
		audit:     audit,
	}
}

// Execute registra o aceite do cliente e devolve o contrato gerado
// (cabeçalho + cláusulas ordenadas). Propostas vencidas não aceitam.
func (uc *AcceptProposal) Execute(
	ctx context.Context,
	slug string,
	in AcceptanceInput,
) (*contract.Content, error) {

	p, err := uc.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, httperr.ErrBusiness("proposal_not_found")
	}

	now := timezone.Now()
	if domain.IsExpired(p.CreatedAt, now) {
		return nil, httperr.ErrBusiness("proposal_expired")
	}

	if strings.TrimSpace(in.ClientName) == "" {
		return nil, httperr.ErrBusiness("acceptance_client_name_required")
	}

	acc := contract.Acceptance{
		ClientName:     strings.TrimSpace(in.ClientName),
		ClientDocument: strings.TrimSpace(in.ClientDocument),
		ClientEmail:    strings.TrimSpace(in.ClientEmail),
		ClientRole:     strings.TrimSpace(in.ClientRole),
		Declaration:    strings.TrimSpace(in.Declaration),
		AcceptedAt:     now,
	}

	content, err := uc.generator.Generate(p, acc)
	if err != nil {
		return nil, err
	}

	p.AcceptedAt = &now
	p.AcceptedByName = acc.ClientName
	p.AcceptedByDocument = contract.FormatDocument(acc.ClientDocument)

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "proposal_accepted",
		Entity:   "proposal",
		EntityID: &p.ID,
	})

	return content, nil
}
