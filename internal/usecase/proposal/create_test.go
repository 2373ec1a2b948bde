package proposal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/feliperamosdev/portfolio-api/internal/domain/proposal"
	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/models"
)

type fakeRepo struct {
	bySlug  map[string]*models.Proposal
	created int
	updated int
	nextID  uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bySlug: map[string]*models.Proposal{}}
}

func (r *fakeRepo) CountBySlug(_ context.Context, slug string, excludeID uint) (int64, error) {
	p, ok := r.bySlug[slug]
	if !ok || p.ID == excludeID {
		return 0, nil
	}
	return 1, nil
}

func (r *fakeRepo) Create(_ context.Context, p *models.Proposal) error {
	r.nextID++
	p.ID = r.nextID
	r.bySlug[p.Slug] = p
	r.created++
	return nil
}

func (r *fakeRepo) Update(_ context.Context, p *models.Proposal) error {
	r.bySlug[p.Slug] = p
	r.updated++
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uint) (*models.Proposal, error) {
	for _, p := range r.bySlug {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) GetBySlug(_ context.Context, slug string) (*models.Proposal, error) {
	return r.bySlug[slug], nil
}

func (r *fakeRepo) List(_ context.Context) ([]models.Proposal, error) {
	out := make([]models.Proposal, 0, len(r.bySlug))
	for _, p := range r.bySlug {
		out = append(out, *p)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func validInput() ProposalInput {
	return ProposalInput{
		ClientName:      "ACME Ltda",
		Slug:            "acme-site",
		Objective:       "Site institucional",
		InvestmentValue: "1.500,00",
		PaymentMethods:  []string{"Pix"},
	}
}

func TestCreateProposal(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateProposal(repo, nil, nil)

	p, err := uc.Execute(context.Background(), 1, validInput())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.created)
	assert.Equal(t, "acme-site", p.Slug)
	assert.Equal(t, 1500.00, p.InvestmentValue)
}

func TestCreateProposalRejectsDuplicateSlug(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateProposal(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, validInput())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 1, validInput())
	require.Error(t, err)

	code, _, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "slug_already_exists", code)

	// Só a primeira gravou
	assert.Equal(t, 1, repo.created)
}

func TestCreateProposalRejectsMalformedValue(t *testing.T) {
	for _, raw := range []string{"", "abc", "1.500,0x", "-100,00"} {
		repo := newFakeRepo()
		uc := NewCreateProposal(repo, nil, nil)

		in := validInput()
		in.InvestmentValue = raw

		_, err := uc.Execute(context.Background(), 1, in)
		require.Error(t, err, "input %q", raw)

		code, _, ok := httperr.BusinessCode(err)
		require.True(t, ok, "input %q", raw)
		assert.Equal(t, "invalid_investment_value", code, "input %q", raw)

		assert.Equal(t, 0, repo.created, "input %q", raw)
	}
}

func TestCreateProposalRejectsUnknownPaymentMethod(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateProposal(repo, nil, nil)

	in := validInput()
	in.PaymentMethods = []string{"Cheque"}

	_, err := uc.Execute(context.Background(), 1, in)
	require.Error(t, err)
	assert.Equal(t, 0, repo.created)
}

func TestUpdateProposalPreservesAcceptance(t *testing.T) {
	repo := newFakeRepo()

	createUC := NewCreateProposal(repo, nil, nil)
	p, err := createUC.Execute(context.Background(), 1, validInput())
	require.NoError(t, err)

	// Simula um aceite já registrado
	accepted := p.CreatedAt
	p.AcceptedAt = &accepted
	p.AcceptedByName = "João da Silva"
	repo.bySlug[p.Slug] = p

	updateUC := NewUpdateProposal(repo, nil, nil)

	in := validInput()
	in.Objective = "Site institucional e blog"

	updated, err := updateUC.Execute(context.Background(), 1, p.ID, in)
	require.NoError(t, err)

	assert.Equal(t, "Site institucional e blog", updated.Objective)
	require.NotNil(t, updated.AcceptedAt)
	assert.Equal(t, "João da Silva", updated.AcceptedByName)
}

func TestUpdateProposalRejectsSlugTakenByOther(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateProposal(repo, nil, nil)

	first, err := createUC.Execute(context.Background(), 1, validInput())
	require.NoError(t, err)

	second := validInput()
	second.Slug = "acme-blog"
	other, err := createUC.Execute(context.Background(), 1, second)
	require.NoError(t, err)

	updateUC := NewUpdateProposal(repo, nil, nil)

	in := validInput()
	in.Slug = first.Slug

	_, err = updateUC.Execute(context.Background(), 1, other.ID, in)
	require.Error(t, err)

	code, _, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "slug_already_exists", code)
}

func TestCheckSlugAvailability(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateProposal(repo, nil, nil)

	p, err := createUC.Execute(context.Background(), 1, validInput())
	require.NoError(t, err)

	checkUC := NewCheckSlugAvailability(repo)

	available, err := checkUC.Execute(context.Background(), "acme-site", 0)
	require.NoError(t, err)
	assert.False(t, available)

	// O próprio registro não conta contra si
	available, err = checkUC.Execute(context.Background(), "acme-site", p.ID)
	require.NoError(t, err)
	assert.True(t, available)

	available, err = checkUC.Execute(context.Background(), "slug-livre", 0)
	require.NoError(t, err)
	assert.True(t, available)
}
