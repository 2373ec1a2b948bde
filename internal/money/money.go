package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/feliperamosdev/portfolio-api/internal/httperr"
)

// ParseBRL converte um valor monetário no formato pt-BR ("1.500,00") para
// float64. Entrada malformada é rejeitada — nunca silenciosamente zerada.
func ParseBRL(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "R$")
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return 0, httperr.ErrBusiness("invalid_investment_value")
	}

	// "1.500,00" → "1500.00"
	raw = strings.ReplaceAll(raw, ".", "")
	raw = strings.ReplaceAll(raw, ",", ".")

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, httperr.ErrBusiness("invalid_investment_value")
	}

	return v, nil
}

// FormatBRL formata um valor como "R$ 1.500,00".
func FormatBRL(v float64) string {
	cents := int64(v*100 + 0.5)
	if v < 0 {
		cents = -int64(-v*100 + 0.5)
	}

	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	return fmt.Sprintf("R$ %s%s,%02d", sign, b.String(), frac)
}

// Round2 arredonda para centavos.
func Round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
