package checkout

import "crypto/rand"

const (
	linkCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	linkLength  = 16
)

// NewUniqueLink gera o token público do checkout: 16 caracteres
// alfanuméricos, imutável depois de criado.
func NewUniqueLink() (string, error) {
	buf := make([]byte, linkLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	for i, b := range buf {
		buf[i] = linkCharset[int(b)%len(linkCharset)]
	}

	return string(buf), nil
}
