package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/models"
)

func TestStatusLiterals(t *testing.T) {
	// literais persistidos: contrato de armazenamento
	assert.Equal(t, "Agendado", string(StatusScheduled))
	assert.Equal(t, "Confirmado", string(StatusConfirmed))
	assert.Equal(t, "Concluído", string(StatusCompleted))
	assert.Equal(t, "Cancelado", string(StatusCancelled))

	assert.Equal(t, StatusScheduled, InitialStatus())

	for _, s := range AllStatuses() {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("Pendente").Valid())
	assert.False(t, Status("").Valid())
}

func TestCanConfirm(t *testing.T) {
	assert.NoError(t, CanConfirm(StatusScheduled, ActorStaff))

	err := CanConfirm(StatusScheduled, ActorClient)
	assert.True(t, httperr.IsBusiness(err, "not_allowed"))

	for _, s := range []Status{StatusConfirmed, StatusCompleted, StatusCancelled} {
		err := CanConfirm(s, ActorStaff)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "from %s", s)
	}
}

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(StatusScheduled))
	assert.NoError(t, CanCancel(StatusConfirmed))

	for _, s := range []Status{StatusCompleted, StatusCancelled} {
		err := CanCancel(s)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "from %s", s)
	}
}

func TestCanComplete(t *testing.T) {
	assert.NoError(t, CanComplete(StatusConfirmed))

	for _, s := range []Status{StatusScheduled, StatusCompleted, StatusCancelled} {
		err := CanComplete(s)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "from %s", s)
	}
}

func TestConfirm_SetsStatusAndTimestamp(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusScheduled)}

	require.NoError(t, Confirm(ap, ActorStaff, now))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
	require.NotNil(t, ap.ConfirmedAt)
	assert.Equal(t, now, *ap.ConfirmedAt)
	assert.Nil(t, ap.CancelledAt)
	assert.Nil(t, ap.CompletedAt)
}

func TestConfirm_InvalidTransitionLeavesAppointmentUntouched(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusCancelled)}

	err := Confirm(ap, ActorStaff, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Nil(t, ap.ConfirmedAt)
}

func TestCancel_StaffIgnoresWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	ap := &models.Appointment{
		Status:        string(StatusConfirmed),
		ScheduledTime: now.Add(10 * time.Minute), // bem dentro das 2h
	}

	require.NoError(t, Cancel(ap, ActorStaff, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
}

func TestCancel_ClientRespectsWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	ap := &models.Appointment{
		Status:        string(StatusScheduled),
		ScheduledTime: now.Add(90 * time.Minute),
	}

	err := Cancel(ap, ActorClient, now)
	assert.True(t, httperr.IsBusiness(err, "cancellation_window_expired"))
	assert.Equal(t, string(StatusScheduled), ap.Status)
	assert.Nil(t, ap.CancelledAt)

	ap.ScheduledTime = now.Add(3 * time.Hour)
	require.NoError(t, Cancel(ap, ActorClient, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
}

func TestComplete_OnlyFromConfirmed(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	ap = &models.Appointment{Status: string(StatusScheduled)}
	err := Complete(ap, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, string(StatusScheduled), ap.Status)
}
