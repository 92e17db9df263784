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
// INPUT
// ======================================================

type CreateConsoleAppointmentInput struct {
	BarbershopID uint
	UserID       uint

	ClientName  string
	ClientPhone string

	ProfessionalID *uint
	ServiceType    string

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE — agendamento criado pelo balcão
// ======================================================

type CreateConsoleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateConsoleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateConsoleAppointment {
	return &CreateConsoleAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateConsoleAppointment) Execute(
	ctx context.Context,
	in CreateConsoleAppointmentInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	if !domain.ServiceType(in.ServiceType).ValidForConsole() {
		return nil, httperr.ErrBusiness("invalid_service_type")
	}

	start, err := parseStart(shop, in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)
	if start.Before(now) {
		return nil, httperr.ErrBusiness("time_in_past")
	}

	// Profissional é opcional no balcão; sem atribuição o horário ocupa
	// a agenda inteira da barbearia.
	var professionalName string
	var professionalID uint
	if in.ProfessionalID != nil {
		pro, err := uc.repo.GetProfessional(ctx, in.BarbershopID, *in.ProfessionalID)
		if err != nil {
			return nil, httperr.ErrBusiness("professional_not_found")
		}
		professionalName = pro.Name
		professionalID = pro.ID
	}

	if err := assertSlotAvailable(ctx, uc.repo, shop, professionalID, start); err != nil {
		return nil, err
	}

	// Status inicial centralizado: qualquer status vindo do chamador é
	// ignorado pela escrita.
	ap := &models.Appointment{
		BarbershopID:     in.BarbershopID,
		ClientName:       in.ClientName,
		ClientPhone:      in.ClientPhone,
		ProfessionalID:   in.ProfessionalID,
		ProfessionalName: professionalName,
		ServiceType:      in.ServiceType,
		ScheduledTime:    start,
	}

	if err := uc.repo.CreateScheduled(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.UserID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
