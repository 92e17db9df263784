package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberclubbr/barberclub-api/internal/audit"
	domain "github.com/barberclubbr/barberclub-api/internal/domain/appointment"
	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/models"
)

func seedAppointment(repo *fakeRepo, scheduled time.Time, status domain.Status) *models.Appointment {
	clientID := uint(5)
	ap := models.Appointment{
		ID:            repo.nextID,
		BarbershopID:  1,
		ClientID:      &clientID,
		ClientName:    "João Silva",
		ServiceType:   string(domain.ServiceHair),
		ScheduledTime: scheduled,
		Status:        string(status),
	}
	repo.nextID++
	repo.appointments = append(repo.appointments, ap)
	return &ap
}

func TestCancelClientAppointment_WithinWindow(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedAppointment(repo, time.Now().Add(3*time.Hour), domain.StatusScheduled)

	uc := NewCancelClientAppointment(repo, audit.NewDispatcher(nil))

	ap, err := uc.Execute(context.Background(), 1, 5, seeded.ID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	require.NotNil(t, repo.updated)
	assert.Equal(t, string(domain.StatusCancelled), repo.updated.Status)
}

func TestCancelClientAppointment_WindowExpired(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedAppointment(repo, time.Now().Add(time.Hour), domain.StatusConfirmed)

	uc := NewCancelClientAppointment(repo, audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), 1, 5, seeded.ID)
	assert.True(t, httperr.IsBusiness(err, "cancellation_window_expired"))

	// nada persistido
	assert.Nil(t, repo.updated)
	assert.Equal(t, string(domain.StatusConfirmed), repo.appointments[0].Status)
}

func TestCancelClientAppointment_NotOwnAppointment(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedAppointment(repo, time.Now().Add(3*time.Hour), domain.StatusScheduled)
	otherClient := uint(99)
	repo.appointments[0].ClientID = &otherClient

	uc := NewCancelClientAppointment(repo, audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), 1, 5, seeded.ID)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCancelAppointment_StaffIgnoresWindow(t *testing.T) {
	repo := newFakeRepo()
	// faltam só 10 minutos; o balcão cancela mesmo assim
	seeded := seedAppointment(repo, time.Now().Add(10*time.Minute), domain.StatusConfirmed)

	uc := NewCancelAppointment(repo, audit.NewDispatcher(nil))

	ap, err := uc.Execute(context.Background(), 1, 2, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
}

func TestCancelAppointment_AlreadyCancelled(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedAppointment(repo, time.Now().Add(3*time.Hour), domain.StatusCancelled)

	uc := NewCancelAppointment(repo, audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), 1, 2, seeded.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestConfirmAndComplete_Flow(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedAppointment(repo, time.Now().Add(3*time.Hour), domain.StatusScheduled)

	confirm := NewConfirmAppointment(repo, audit.NewDispatcher(nil))
	complete := NewCompleteAppointment(repo, audit.NewDispatcher(nil))

	// concluir direto de Agendado não pode
	_, err := complete.Execute(context.Background(), 1, 2, seeded.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	ap, err := confirm.Execute(context.Background(), 1, 2, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	require.NotNil(t, ap.ConfirmedAt)

	ap, err = complete.Execute(context.Background(), 1, 2, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	// confirmar de novo depois de concluído não pode
	_, err = confirm.Execute(context.Background(), 1, 2, seeded.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelAppointment_NotFound(t *testing.T) {
	repo := newFakeRepo()

	uc := NewCancelAppointment(repo, audit.NewDispatcher(nil))

	_, err := uc.Execute(context.Background(), 1, 2, 404)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
