package appointment

import (
	"context"

	"github.com/barberclubbr/barberclub-api/internal/audit"
	domain "github.com/barberclubbr/barberclub-api/internal/domain/appointment"
	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/models"
	"github.com/barberclubbr/barberclub-api/internal/timezone"
)

// ======================================================
// CANCEL (balcão — sem restrição de janela)
// ======================================================

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	barbershopID uint,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForShop(ctx, appointmentID, barbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Cancel(ap, domain.ActorStaff, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "appointment_cancelled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}

// ======================================================
// CANCEL (cliente — sujeito à janela de 2h)
// ======================================================

type CancelClientAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelClientAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelClientAppointment {
	return &CancelClientAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelClientAppointment) Execute(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForClient(ctx, appointmentID, clientID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Cancel(ap, domain.ActorClient, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		ClientID:     &clientID,
		Action:       "appointment_cancelled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
