package proposal

import "time"

// ===============================
// Janela de validade
// ===============================

// Uma proposta vale por 10 dias a partir da criação.
const ValidityDays = 10

func ValidUntil(createdAt time.Time) time.Time {
	return createdAt.AddDate(0, 0, ValidityDays)
}

func IsExpired(createdAt, now time.Time) bool {
	return now.After(ValidUntil(createdAt))
}
