package contract

import "strings"

// FormatDocument aplica a máscara de CPF (11 dígitos) ou CNPJ (14 dígitos).
// Entrada já pontuada, ou com outro tamanho, passa inalterada.
func FormatDocument(doc string) string {
	trimmed := strings.TrimSpace(doc)

	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return trimmed
		}
	}

	switch len(trimmed) {
	case 11:
		// ###.###.###-##
		return trimmed[0:3] + "." + trimmed[3:6] + "." + trimmed[6:9] + "-" + trimmed[9:11]
	case 14:
		// ##.###.###/####-##
		return trimmed[0:2] + "." + trimmed[2:5] + "." + trimmed[5:8] + "/" + trimmed[8:12] + "-" + trimmed[12:14]
	}

	return trimmed
}
