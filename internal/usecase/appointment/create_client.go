package appointment

import (
	"context"

	"github.com/barberclubbr/barberclub-api/internal/audit"
	domain "github.com/barberclubbr/barberclub-api/internal/domain/appointment"
	subs "github.com/barberclubbr/barberclub-api/internal/domain/subscription"
	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/models"
	"github.com/barberclubbr/barberclub-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateClientAppointmentInput struct {
	BarbershopID uint
	ClientID     uint

	ProfessionalID uint
	ServiceType    string

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE — autoatendimento do cliente assinante
// ======================================================

type CreateClientAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateClientAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateClientAppointment {
	return &CreateClientAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateClientAppointment) Execute(
	ctx context.Context,
	in CreateClientAppointmentInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	// No autoatendimento a submissão exige profissional, data e horário.
	if in.ProfessionalID == 0 || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_booking_fields")
	}

	if !domain.ServiceType(in.ServiceType).ValidForSelfService() {
		return nil, httperr.ErrBusiness("invalid_service_type")
	}

	client, err := uc.repo.GetClient(ctx, in.BarbershopID, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	now := timezone.NowIn(shop.Timezone)

	// Assinatura precisa estar apta antes de qualquer escrita.
	if err := subs.CheckEligibility(client, now); err != nil {
		return nil, err
	}

	pro, err := uc.repo.GetProfessional(ctx, in.BarbershopID, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	start, err := parseStart(shop, in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	if start.Before(now) {
		return nil, httperr.ErrBusiness("time_in_past")
	}

	// Revalidação no servidor: o slot precisa continuar disponível no
	// conjunto calculado agora, não no que o cliente viu antes.
	if err := assertSlotAvailable(ctx, uc.repo, shop, pro.ID, start); err != nil {
		return nil, err
	}

	professionalID := pro.ID
	clientID := client.ID

	ap := &models.Appointment{
		BarbershopID:     in.BarbershopID,
		ClientID:         &clientID,
		ClientName:       client.Name,
		ClientPhone:      client.Phone,
		ProfessionalID:   &professionalID,
		ProfessionalName: pro.Name,
		ServiceType:      in.ServiceType,
		PlanName:         client.PlanName,
		ScheduledTime:    start,
	}

	if err := uc.repo.CreateScheduled(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		ClientID:     &clientID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
