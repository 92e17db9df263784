package appointment

import (
	"time"

	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cada transição muda apenas o status e o carimbo correspondente;
// nenhum outro campo é tocado.

func Confirm(ap *models.Appointment, actor Actor, now time.Time) error {
	if err := CanConfirm(Status(ap.Status), actor); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, actor Actor, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	if actor == ActorClient && !WithinCancellationWindow(ap.ScheduledTime, now) {
		return httperr.ErrBusiness("cancellation_window_expired")
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
