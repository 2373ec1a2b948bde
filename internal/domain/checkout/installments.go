package checkout

import (
	"github.com/feliperamosdev/portfolio-api/internal/httperr"
	"github.com/feliperamosdev/portfolio-api/internal/money"
)

// Juros compostos de 1,99% a.m. para cartão parcelado.
const CreditCardMonthlyInterest = 0.0199

const MaxInstallments = 12

type InstallmentPlan struct {
	Count            int
	InstallmentValue float64
	InterestRate     float64
	InterestAmount   float64
	TotalValue       float64
}

// ComputeInstallments calcula o plano de parcelamento para o método
// escolhido. Pix e boleto são sempre à vista; cartão parcelado acumula
// juros compostos mensais sobre o valor original.
func ComputeInstallments(method string, value float64, count int) (*InstallmentPlan, error) {
	if count <= 0 {
		count = 1
	}

	switch method {
	case "pix", "boleto":
		if count != 1 {
			return nil, httperr.ErrBusiness("installments_not_supported")
		}
	case "credit_card":
		if count > MaxInstallments {
			return nil, httperr.ErrBusiness("too_many_installments")
		}
	default:
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

	total := value
	rate := 0.0
	if method == "credit_card" && count > 1 {
		rate = CreditCardMonthlyInterest
		for i := 0; i < count; i++ {
			total *= 1 + rate
		}
		total = money.Round2(total)
	}

	return &InstallmentPlan{
		Count:            count,
		InstallmentValue: money.Round2(total / float64(count)),
		InterestRate:     rate,
		InterestAmount:   money.Round2(total - value),
		TotalValue:       total,
	}, nil
}
