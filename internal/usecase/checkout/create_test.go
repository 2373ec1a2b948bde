package checkout

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/feliperamosdev/portfolio-api/internal/domain/checkout"
	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/models"
)

// fakeRepo guarda tudo em memória e conta chamadas de escrita.
type fakeRepo struct {
	byLink     map[string]*models.Checkout
	byChargeID map[string]*models.Checkout
	created    int
	updated    int
	nextID     uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byLink:     map[string]*models.Checkout{},
		byChargeID: map[string]*models.Checkout{},
	}
}

func (r *fakeRepo) Create(_ context.Context, ck *models.Checkout) error {
	r.nextID++
	ck.ID = r.nextID
	r.byLink[ck.UniqueLink] = ck
	r.created++
	return nil
}

func (r *fakeRepo) Update(_ context.Context, ck *models.Checkout) error {
	r.byLink[ck.UniqueLink] = ck
	if ck.ChargeID != "" {
		r.byChargeID[ck.ChargeID] = ck
	}
	r.updated++
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uint) (*models.Checkout, error) {
	for _, ck := range r.byLink {
		if ck.ID == id {
			return ck, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) GetByLink(_ context.Context, link string) (*models.Checkout, error) {
	return r.byLink[link], nil
}

func (r *fakeRepo) GetByChargeID(_ context.Context, chargeID string) (*models.Checkout, error) {
	return r.byChargeID[chargeID], nil
}

func (r *fakeRepo) List(_ context.Context, limit int, status string) ([]models.Checkout, error) {
	out := make([]models.Checkout, 0, len(r.byLink))
	for _, ck := range r.byLink {
		if status != "" && ck.Status != status {
			continue
		}
		out = append(out, *ck)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func validInput() CreateCheckoutInput {
	return CreateCheckoutInput{
		CustomerName:        "João da Silva",
		CustomerCpfCnpj:     "12345678901",
		CustomerMobilePhone: "41999990000",
		Value:               1500,
		Description:         "Site institucional",
		DueDate:             time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateCheckout(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateCheckout(repo, nil)

	ck, err := uc.Execute(context.Background(), 1, validInput())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.created)
	assert.Equal(t, "pending", ck.Status)
	assert.Len(t, ck.UniqueLink, 16)
	assert.False(t, ck.ExpiresAt.IsZero())
	assert.Equal(t, "João da Silva", ck.CustomerName)
}

// Uma descrição de exatamente 500 caracteres passa mesmo quando ocupa mais
// de 500 bytes.
func TestCreateCheckoutAcceptsMaxLengthMultibyteDescription(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateCheckout(repo, nil)

	in := validInput()
	in.Description = strings.Repeat("é", 500)

	ck, err := uc.Execute(context.Background(), 1, in)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.created)
	assert.Equal(t, 500, utf8.RuneCountInString(ck.Description))
}

func TestCreateCheckoutRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateCheckoutInput)
		code   string
	}{
		{
			name:   "sem nome",
			mutate: func(in *CreateCheckoutInput) { in.CustomerName = "  " },
			code:   "customer_name_required",
		},
		{
			name:   "sem documento",
			mutate: func(in *CreateCheckoutInput) { in.CustomerCpfCnpj = "" },
			code:   "customer_cpf_cnpj_required",
		},
		{
			name:   "sem celular",
			mutate: func(in *CreateCheckoutInput) { in.CustomerMobilePhone = "" },
			code:   "customer_mobile_phone_required",
		},
		{
			name:   "valor zero",
			mutate: func(in *CreateCheckoutInput) { in.Value = 0 },
			code:   "invalid_value",
		},
		{
			name:   "valor negativo",
			mutate: func(in *CreateCheckoutInput) { in.Value = -10 },
			code:   "invalid_value",
		},
		{
			name:   "sem vencimento",
			mutate: func(in *CreateCheckoutInput) { in.DueDate = time.Time{} },
			code:   "due_date_required",
		},
		{
			name: "descricao longa",
			mutate: func(in *CreateCheckoutInput) {
				in.Description = strings.Repeat("x", 501)
			},
			code: "description_too_long",
		},
		{
			name: "descricao longa multibyte",
			mutate: func(in *CreateCheckoutInput) {
				in.Description = strings.Repeat("é", 501)
			},
			code: "description_too_long",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := NewCreateCheckout(repo, nil)

			in := validInput()
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), 1, in)
			require.Error(t, err)

			code, _, ok := httperr.BusinessCode(err)
			require.True(t, ok)
			assert.Equal(t, tc.code, code)

			// Nada foi gravado
			assert.Equal(t, 0, repo.created)
		})
	}
}

func TestGetByLinkExpiresLazily(t *testing.T) {
	repo := newFakeRepo()

	ck := &models.Checkout{
		UniqueLink: "a1B2c3D4e5F6g7H8",
		Status:     "pending",
		ExpiresAt:  time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(context.Background(), ck))

	uc := NewGetCheckoutByLink(repo)

	got, err := uc.Execute(context.Background(), ck.UniqueLink)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "expired", got.Status)
	assert.Equal(t, 1, repo.updated)
}

func TestGetByLinkUnknownReturnsNil(t *testing.T) {
	uc := NewGetCheckoutByLink(newFakeRepo())

	got, err := uc.Execute(context.Background(), "nao-existe")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestConfirmPaymentEvents(t *testing.T) {
	repo := newFakeRepo()

	ck := &models.Checkout{
		UniqueLink: "a1B2c3D4e5F6g7H8",
		ChargeID:   "pay_001",
		Status:     "payment_selected",
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(context.Background(), ck))
	require.NoError(t, repo.Update(context.Background(), ck))

	uc := NewConfirmPayment(repo, nil)

	got, err := uc.Execute(context.Background(), "pay_001", EventPaymentConfirmed)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "payment_confirmed", got.Status)

	got, err = uc.Execute(context.Background(), "pay_001", EventPaymentReceived)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
	require.NotNil(t, got.CompletedAt)
}

func TestConfirmPaymentUnknownChargeIsIgnored(t *testing.T) {
	uc := NewConfirmPayment(newFakeRepo(), nil)

	got, err := uc.Execute(context.Background(), "pay_desconhecida", EventPaymentConfirmed)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestConfirmPaymentReceivedFromSelectedCompletes(t *testing.T) {
	repo := newFakeRepo()

	ck := &models.Checkout{
		UniqueLink: "b1B2c3D4e5F6g7H8",
		ChargeID:   "pay_002",
		Status:     "payment_selected",
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(context.Background(), ck))
	require.NoError(t, repo.Update(context.Background(), ck))

	uc := NewConfirmPayment(repo, nil)

	got, err := uc.Execute(context.Background(), "pay_002", EventPaymentReceived)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
}
