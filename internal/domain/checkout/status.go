package checkout

import "github.com/feliperamosdev/portfolio-api/internal/httperr"

// ===============================
// Checkout Status
// ===============================

type Status string

const (
	StatusPending          Status = "pending"
	StatusPaymentSelected  Status = "payment_selected"
	StatusPaymentConfirmed Status = "payment_confirmed"
	StatusCompleted        Status = "completed"
	StatusExpired          Status = "expired"
	StatusCancelled        Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func IsTerminal(s Status) bool {
	switch s {
	case StatusCompleted, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Transições
// ===============================

// Transições monotônicas: nunca voltam a um estado anterior; expired e
// cancelled são finais.
var transitions = map[Status][]Status{
	StatusPending:          {StatusPaymentSelected, StatusExpired, StatusCancelled},
	StatusPaymentSelected:  {StatusPaymentConfirmed, StatusExpired, StatusCancelled},
	StatusPaymentConfirmed: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition valida a mudança de estado na borda da API, em vez de confiar
// que todo chamador sequencie as chamadas corretamente.
func Transition(from, to Status) error {
	if !CanTransition(from, to) {
		return httperr.ErrBusiness("invalid_status_transition")
	}
	return nil
}
