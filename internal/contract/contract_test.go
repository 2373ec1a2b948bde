package contract

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feliperamosdev/portfolio-api/internal/models"
)

func testDefaults() Defaults {
	return Defaults{
		ProviderName:     "Felipe Ramos Desenvolvimento de Software",
		ProviderDocument: "12345678000199",
		Venue:            "Curitiba/PR",
		Conditions:       defaultConditions(),
		RescisionPolicy:  defaultRescisionPolicy,
	}
}

func fullProposal() *models.Proposal {
	delivery := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	return &models.Proposal{
		ID:         1,
		ClientName: "ACME Ltda",
		Slug:       "acme-site",
		Objective:  "Desenvolvimento do site institucional da ACME.",
		Scope: datatypes.NewJSONSlice([]string{
			"Landing page",
			"Blog",
		}),
		Timeline: datatypes.NewJSONSlice([]models.TimelineStep{
			{Step: "Design", Period: "2 semanas"},
			{Step: "Desenvolvimento", Period: "4 semanas"},
		}),
		DeliveryDate:    &delivery,
		InvestmentValue: 1500.00,
		PaymentMethods:  datatypes.NewJSONSlice([]string{"Pix"}),
		Conditions:      datatypes.NewJSONSlice([]string{"Condição própria da proposta."}),
		RescisionPolicy: "Política de rescisão própria.",
	}
}

func acceptance() Acceptance {
	return Acceptance{
		ClientName:     "João da Silva",
		ClientDocument: "12345678901",
		ClientEmail:    "joao@acme.com",
		ClientRole:     "sócio-diretor",
		Declaration:    "Li e aceito os termos.",
		AcceptedAt:     time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC),
	}
}

func titles(c *Content) []string {
	out := make([]string, 0, len(c.Clauses))
	for _, cl := range c.Clauses {
		out = append(out, cl.Title)
	}
	return out
}

func TestGenerateFullProposal(t *testing.T) {
	g := NewGenerator(testDefaults())

	content, err := g.Generate(fullProposal(), acceptance())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Do Objeto",
		"Do Escopo",
		"Do Cronograma",
		"Do Investimento e Pagamento",
		"Das Condições Gerais",
		"Da Propriedade Intelectual e Direito de Imagem",
		"Da Entrega e do Aceite",
		"Da Infraestrutura",
		"Da Proteção de Dados",
		"Da Rescisão",
		"Do Aceite Eletrônico",
		"Do Foro",
	}, titles(content))
}

func TestGenerateIsPure(t *testing.T) {
	g := NewGenerator(testDefaults())
	p := fullProposal()
	acc := acceptance()

	first, err := g.Generate(p, acc)
	require.NoError(t, err)

	second, err := g.Generate(p, acc)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
}

func TestGenerateOmitsEmptySections(t *testing.T) {
	g := NewGenerator(testDefaults())

	p := fullProposal()
	p.Scope = nil
	p.Timeline = nil

	content, err := g.Generate(p, acceptance())
	require.NoError(t, err)

	got := titles(content)
	assert.NotContains(t, got, "Do Escopo")
	assert.NotContains(t, got, "Do Cronograma")
	assert.Len(t, content.Clauses, 10)
}

func TestGenerateInvestmentClause(t *testing.T) {
	g := NewGenerator(testDefaults())

	content, err := g.Generate(fullProposal(), acceptance())
	require.NoError(t, err)

	var investment *Clause
	for i := range content.Clauses {
		if content.Clauses[i].Title == "Do Investimento e Pagamento" {
			investment = &content.Clauses[i]
		}
	}
	require.NotNil(t, investment)

	assert.Contains(t, investment.Text, "R$ 1.500,00")
	assert.Contains(t, investment.Text, "Pix")
}

func TestGenerateInvestmentFallbackWithoutMethods(t *testing.T) {
	g := NewGenerator(testDefaults())

	p := fullProposal()
	p.PaymentMethods = nil
	p.CustomPaymentMethod = ""

	content, err := g.Generate(p, acceptance())
	require.NoError(t, err)

	found := false
	for _, cl := range content.Clauses {
		if cl.Title == "Do Investimento e Pagamento" {
			found = true
			assert.Contains(t, cl.Text, "a combinar entre as partes")
		}
	}
	assert.True(t, found)
}

func TestGenerateUsesDefaultsWhenProposalOmits(t *testing.T) {
	g := NewGenerator(testDefaults())

	p := fullProposal()
	p.Objective = ""
	p.Conditions = nil
	p.RescisionPolicy = ""

	content, err := g.Generate(p, acceptance())
	require.NoError(t, err)

	for _, cl := range content.Clauses {
		switch cl.Title {
		case "Do Objeto":
			assert.Contains(t, cl.Text, "Prestação de serviços de desenvolvimento de software")
		case "Das Condições Gerais":
			assert.Contains(t, cl.Text, "início dos trabalhos está condicionado")
		case "Da Rescisão":
			assert.Equal(t, defaultRescisionPolicy, cl.Text)
		}
	}
}

func TestGenerateHeaderAndAcceptance(t *testing.T) {
	g := NewGenerator(testDefaults())

	content, err := g.Generate(fullProposal(), acceptance())
	require.NoError(t, err)

	assert.Contains(t, content.Header, "Felipe Ramos Desenvolvimento de Software")
	assert.Contains(t, content.Header, "12.345.678/0001-99")
	assert.Contains(t, content.Header, "João da Silva")
	assert.Contains(t, content.Header, "123.456.789-01")

	last := content.Clauses[len(content.Clauses)-2]
	assert.Equal(t, "Do Aceite Eletrônico", last.Title)
	assert.Contains(t, last.Text, "10/06/2025 15:30")
	assert.Contains(t, last.Text, "Li e aceito os termos.")
}

func TestGenerateValidation(t *testing.T) {
	g := NewGenerator(testDefaults())

	p := fullProposal()
	p.ClientName = "  "
	_, err := g.Generate(p, acceptance())
	assert.Error(t, err)

	p = fullProposal()
	p.InvestmentValue = 0
	_, err = g.Generate(p, acceptance())
	assert.Error(t, err)

	acc := acceptance()
	acc.ClientName = ""
	_, err = g.Generate(fullProposal(), acc)
	assert.Error(t, err)
}

func TestGenerateDoesNotMutateDefaults(t *testing.T) {
	d := testDefaults()
	g := NewGenerator(d)

	before := strings.Join(d.Conditions, "|")

	p := fullProposal()
	p.Conditions = nil
	_, err := g.Generate(p, acceptance())
	require.NoError(t, err)

	assert.Equal(t, before, strings.Join(d.Conditions, "|"))
}
