package contract

import "github.com/feliperamosdev/portfolio-api/internal/config"

// Defaults é a configuração imutável injetada no gerador: textos padrão e
// identificação do prestador. Nenhum valor aqui é mutado em tempo de
// execução.
type Defaults struct {
	ProviderName     string
	ProviderDocument string
	Venue            string

	Conditions      []string
	RescisionPolicy string
}

// Quatro condições canônicas aplicadas quando a proposta não define as suas.
func defaultConditions() []string {
	return []string{
		"O início dos trabalhos está condicionado ao pagamento da primeira parcela ou do valor integral, conforme a forma de pagamento acordada.",
		"Alterações de escopo após o aceite serão orçadas e formalizadas à parte, por escrito.",
		"O cliente se compromete a fornecer, em tempo hábil, todos os materiais, acessos e informações necessários à execução dos serviços.",
		"Os prazos estimados contam a partir da entrega completa dos insumos pelo cliente.",
	}
}

const defaultRescisionPolicy = "Qualquer das partes poderá rescindir o presente contrato mediante aviso prévio por escrito de 15 (quinze) dias. Em caso de rescisão pelo cliente, serão devidos os valores proporcionais aos serviços já executados até a data do aviso, além de eventuais despesas já incorridas. Valores pagos referentes a etapas concluídas não serão restituídos."

// NewDefaults monta a configuração do gerador a partir do config do serviço.
func NewDefaults(cfg *config.Config) Defaults {
	return Defaults{
		ProviderName:     cfg.ProviderName,
		ProviderDocument: cfg.ProviderDocument,
		Venue:            cfg.ProviderCity,
		Conditions:       defaultConditions(),
		RescisionPolicy:  defaultRescisionPolicy,
	}
}
