package booking

import "github.com/barberclub/booking-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Occupies diz se o status segura o horário contra novas admissões.
// Só cancelamento libera o slot.
func (s Status) Occupies() bool {
	return s != StatusCancelled
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanConfirm: pagamento só confirma agendamento pendente
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: pendente ou confirmado podem ser cancelados
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: só agendamento confirmado é concluído
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus: assinante Premium ativo entra direto como confirmado
// (fast path, sem gate de pagamento); Start entra pendente
func InitialStatus(fastTracked bool) Status {
	if fastTracked {
		return StatusConfirmed
	}
	return StatusPending
}
