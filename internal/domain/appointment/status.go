package appointment

import "github.com/barberclubbr/barberclub-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

// Os valores persistidos são os literais em português: fazem parte
// do contrato de armazenamento e não mudam.
type Status string

const (
	StatusScheduled Status = "Agendado"
	StatusConfirmed Status = "Confirmado"
	StatusCompleted Status = "Concluído"
	StatusCancelled Status = "Cancelado"
)

func AllStatuses() []Status {
	return []Status{
		StatusScheduled,
		StatusConfirmed,
		StatusCompleted,
		StatusCancelled,
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ===============================
// Actors
// ===============================

type Actor string

const (
	ActorStaff  Actor = "staff"
	ActorClient Actor = "client"
)

// ===============================
// Transitions
// ===============================

// Todo agendamento nasce Agendado, sem exceção.
func InitialStatus() Status {
	return StatusScheduled
}

// CanConfirm: apenas a barbearia confirma, e só a partir de Agendado.
func CanConfirm(current Status, actor Actor) error {
	if actor != ActorStaff {
		return httperr.ErrBusiness("not_allowed")
	}
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: cancelável a partir de Agendado ou Confirmado.
// A janela de cancelamento do cliente é validada à parte (entity.go).
func CanCancel(current Status) error {
	if current != StatusScheduled && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: conclusão só a partir de Confirmado.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
