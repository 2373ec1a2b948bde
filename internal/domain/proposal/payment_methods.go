package proposal

import "github.com/feliperamosdev/portfolio-api/internal/httperr"

// Catálogo fixo de formas de pagamento de proposta. Uma entrada livre
// adicional vai no campo próprio (custom_payment_method), nunca aqui.
var PaymentMethodCatalog = []string{
	"Pix",
	"Boleto bancário",
	"Cartão de crédito",
	"Transferência bancária",
}

func ValidatePaymentMethods(methods []string) error {
	for _, m := range methods {
		if !inCatalog(m) {
			return httperr.ErrBusiness("invalid_payment_method")
		}
	}
	return nil
}

func inCatalog(method string) bool {
	for _, m := range PaymentMethodCatalog {
		if m == method {
			return true
		}
	}
	return false
}
