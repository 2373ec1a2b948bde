package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/models"
	"github.com/feliperamosdev/portfolio-api/internal/money"
)

// ===============================
// Tipos
// ===============================

// Acceptance é o dado efêmero de aceite do cliente. Não é persistido por
// este pacote — só entra na geração do contrato.
type Acceptance struct {
	ClientName     string
	ClientDocument string
	ClientEmail    string
	ClientRole     string
	Declaration    string
	AcceptedAt     time.Time
}

// Clause é uma seção autônoma do contrato, renderizável como markdown
// independente. A ordem das cláusulas é fixa e deve ser preservada por
// qualquer renderizador.
type Clause struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type Content struct {
	Header  string   `json:"header"`
	Clauses []Clause `json:"clauses"`
}

// ===============================
// Generator
// ===============================

// Generator transforma (proposta, aceite) em contrato. Função pura: sem
// relógio, sem I/O — a mesma entrada produz sempre a mesma saída.
type Generator struct {
	defaults Defaults
}

func NewGenerator(d Defaults) *Generator {
	return &Generator{defaults: d}
}

func (g *Generator) Generate(p *models.Proposal, acc Acceptance) (*Content, error) {
	if strings.TrimSpace(p.ClientName) == "" {
		return nil, httperr.ErrBusiness("client_name_required")
	}
	if p.InvestmentValue <= 0 {
		return nil, httperr.ErrBusiness("investment_value_required")
	}
	if strings.TrimSpace(acc.ClientName) == "" {
		return nil, httperr.ErrBusiness("acceptance_client_name_required")
	}

	clauses := make([]Clause, 0, 12)

	clauses = append(clauses, g.objectiveClause(p))

	if c, ok := g.scopeClause(p); ok {
		clauses = append(clauses, c)
	}
	if c, ok := g.timelineClause(p); ok {
		clauses = append(clauses, c)
	}

	clauses = append(clauses, g.investmentClause(p))

	if c, ok := g.conditionsClause(p); ok {
		clauses = append(clauses, c)
	}

	clauses = append(clauses,
		g.ipRightsClause(),
		g.deliveryClause(p),
		g.infrastructureClause(),
		g.dataProtectionClause(),
		g.rescisionClause(p),
		g.electronicAcceptanceClause(acc),
		g.venueClause(),
	)

	return &Content{
		Header:  g.header(p, acc),
		Clauses: clauses,
	}, nil
}

// ===============================
// Cabeçalho
// ===============================

func (g *Generator) header(p *models.Proposal, acc Acceptance) string {
	var b strings.Builder

	b.WriteString("# Contrato de Prestação de Serviços\n\n")
	fmt.Fprintf(&b, "**Contratada:** %s", g.defaults.ProviderName)
	if g.defaults.ProviderDocument != "" {
		fmt.Fprintf(&b, ", inscrita no CNPJ/CPF sob o nº %s", FormatDocument(g.defaults.ProviderDocument))
	}
	b.WriteString(".\n\n")

	fmt.Fprintf(&b, "**Contratante:** %s", acc.ClientName)
	if acc.ClientDocument != "" {
		fmt.Fprintf(&b, ", inscrito(a) no CPF/CNPJ sob o nº %s", FormatDocument(acc.ClientDocument))
	}
	if acc.ClientEmail != "" {
		fmt.Fprintf(&b, ", e-mail %s", acc.ClientEmail)
	}
	if acc.ClientRole != "" {
		fmt.Fprintf(&b, ", na qualidade de %s", acc.ClientRole)
	}
	fmt.Fprintf(&b, ", referente à proposta comercial apresentada a %s.", p.ClientName)

	return b.String()
}

// ===============================
// Cláusulas
// ===============================

func (g *Generator) objectiveClause(p *models.Proposal) Clause {
	text := strings.TrimSpace(p.Objective)
	if text == "" {
		text = "Prestação de serviços de desenvolvimento de software, conforme proposta comercial aceita pelo contratante."
	}
	return Clause{Title: "Do Objeto", Text: text}
}

func (g *Generator) scopeClause(p *models.Proposal) (Clause, bool) {
	if len(p.Scope) == 0 {
		return Clause{}, false
	}

	var b strings.Builder
	b.WriteString("Os serviços contratados compreendem:\n")
	for _, item := range p.Scope {
		fmt.Fprintf(&b, "\n- %s", item)
	}

	return Clause{Title: "Do Escopo", Text: b.String()}, true
}

func (g *Generator) timelineClause(p *models.Proposal) (Clause, bool) {
	if len(p.Timeline) == 0 {
		return Clause{}, false
	}

	var b strings.Builder
	b.WriteString("A execução seguirá o cronograma estimado abaixo:\n")
	for _, step := range p.Timeline {
		fmt.Fprintf(&b, "\n- **%s** — %s", step.Step, step.Period)
	}
	if p.DeliveryDate != nil {
		fmt.Fprintf(&b, "\n\nData estimada de entrega: %s.", p.DeliveryDate.Format("02/01/2006"))
	}

	return Clause{Title: "Do Cronograma", Text: b.String()}, true
}

func (g *Generator) investmentClause(p *models.Proposal) Clause {
	var b strings.Builder
	fmt.Fprintf(&b,
		"O investimento total para a execução dos serviços é de %s.",
		money.FormatBRL(p.InvestmentValue),
	)

	methods := make([]string, 0, len(p.PaymentMethods)+1)
	methods = append(methods, p.PaymentMethods...)
	if m := strings.TrimSpace(p.CustomPaymentMethod); m != "" {
		methods = append(methods, m)
	}

	if len(methods) == 0 {
		b.WriteString(" A forma de pagamento será a combinar entre as partes.")
	} else {
		fmt.Fprintf(&b, " Formas de pagamento aceitas: %s.", strings.Join(methods, ", "))
	}

	return Clause{Title: "Do Investimento e Pagamento", Text: b.String()}
}

func (g *Generator) conditionsClause(p *models.Proposal) (Clause, bool) {
	conditions := []string(p.Conditions)
	if len(conditions) == 0 {
		conditions = g.defaults.Conditions
	}
	if len(conditions) == 0 {
		return Clause{}, false
	}

	var b strings.Builder
	b.WriteString("Aplicam-se as seguintes condições gerais:\n")
	for _, cond := range conditions {
		fmt.Fprintf(&b, "\n- %s", cond)
	}

	return Clause{Title: "Das Condições Gerais", Text: b.String()}, true
}

func (g *Generator) ipRightsClause() Clause {
	return Clause{
		Title: "Da Propriedade Intelectual e Direito de Imagem",
		Text: "Após a quitação integral dos valores contratados, os direitos patrimoniais sobre os entregáveis desenvolvidos especificamente para o contratante passam a lhe pertencer. A contratada conserva a titularidade de bibliotecas, componentes e ferramentas de uso geral empregados na execução. A contratada poderá divulgar o projeto em seu portfólio, citando o nome e a marca do contratante, salvo manifestação por escrito em contrário.",
	}
}

func (g *Generator) deliveryClause(p *models.Proposal) Clause {
	text := "As entregas serão disponibilizadas em ambiente acessível ao contratante, que terá o prazo de 7 (sete) dias corridos para apontar inconformidades em relação ao escopo contratado. Decorrido esse prazo sem manifestação, a entrega será considerada aceita."
	if p.DeliveryDate != nil {
		text += fmt.Sprintf(" A data estimada de entrega final é %s, sujeita ao cumprimento das obrigações do contratante.", p.DeliveryDate.Format("02/01/2006"))
	}
	return Clause{Title: "Da Entrega e do Aceite", Text: text}
}

func (g *Generator) infrastructureClause() Clause {
	return Clause{
		Title: "Da Infraestrutura",
		Text: "Custos de infraestrutura de terceiros — hospedagem, domínios, serviços em nuvem, gateways de pagamento e licenças — correm por conta do contratante e não integram o valor deste contrato. A contratada não responde por indisponibilidades, alterações de preço ou descontinuidade desses serviços.",
	}
}

func (g *Generator) dataProtectionClause() Clause {
	return Clause{
		Title: "Da Proteção de Dados",
		Text: "As partes se comprometem a tratar os dados pessoais a que tiverem acesso em razão deste contrato em conformidade com a Lei nº 13.709/2018 (LGPD), limitando o tratamento ao necessário para a execução dos serviços e adotando medidas razoáveis de segurança.",
	}
}

func (g *Generator) rescisionClause(p *models.Proposal) Clause {
	text := strings.TrimSpace(p.RescisionPolicy)
	if text == "" {
		text = g.defaults.RescisionPolicy
	}
	return Clause{Title: "Da Rescisão", Text: text}
}

func (g *Generator) electronicAcceptanceClause(acc Acceptance) Clause {
	var b strings.Builder
	b.WriteString("Este contrato é celebrado eletronicamente. ")
	fmt.Fprintf(&b,
		"O aceite foi registrado por %s",
		acc.ClientName,
	)
	if acc.ClientDocument != "" {
		fmt.Fprintf(&b, ", documento %s", FormatDocument(acc.ClientDocument))
	}
	fmt.Fprintf(&b, ", em %s.", acc.AcceptedAt.Format("02/01/2006 15:04"))
	if d := strings.TrimSpace(acc.Declaration); d != "" {
		fmt.Fprintf(&b, " Declaração do contratante: %q.", d)
	}
	b.WriteString(" As partes reconhecem a validade jurídica do aceite eletrônico como expressão de sua vontade.")

	return Clause{Title: "Do Aceite Eletrônico", Text: b.String()}
}

func (g *Generator) venueClause() Clause {
	venue := g.defaults.Venue
	if venue == "" {
		venue = "São Paulo/SP"
	}
	return Clause{
		Title: "Do Foro",
		Text:  fmt.Sprintf("Fica eleito o foro da comarca de %s para dirimir quaisquer controvérsias oriundas deste contrato, com renúncia a qualquer outro, por mais privilegiado que seja.", venue),
	}
}
