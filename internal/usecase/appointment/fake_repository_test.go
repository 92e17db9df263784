package appointment

import (
	"context"
	"time"

	domain "github.com/barberclubbr/barberclub-api/internal/domain/appointment"
	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/models"
)

// fakeRepo guarda tudo em memória e replica o contrato do repositório
// real: CreateScheduled força o status inicial e atribui o ID.
type fakeRepo struct {
	shop         *models.Barbershop
	client       *models.Client
	professional *models.Professional

	appointments []models.Appointment

	nextID  uint
	created *models.Appointment
	updated *models.Appointment
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shop:   &models.Barbershop{ID: 1, Name: "Barber Club", Slug: "barber-club"},
		nextID: 100,
	}
}

func (f *fakeRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if f.shop == nil || f.shop.ID != id {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}
	return f.shop, nil
}

func (f *fakeRepo) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	if f.shop == nil || f.shop.Slug != slug {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}
	return f.shop, nil
}

func (f *fakeRepo) GetProfessional(_ context.Context, barbershopID, professionalID uint) (*models.Professional, error) {
	if f.professional == nil || f.professional.ID != professionalID || f.professional.BarbershopID != barbershopID {
		return nil, httperr.ErrBusiness("professional_not_found")
	}
	return f.professional, nil
}

func (f *fakeRepo) GetClient(_ context.Context, barbershopID, clientID uint) (*models.Client, error) {
	if f.client == nil || f.client.ID != clientID || f.client.BarbershopID != barbershopID {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	return f.client, nil
}

func (f *fakeRepo) UpdateClient(_ context.Context, cl *models.Client) error {
	f.client = cl
	return nil
}

func (f *fakeRepo) CreateScheduled(_ context.Context, ap *models.Appointment) error {
	for _, existing := range f.appointments {
		if domain.Status(existing.Status) == domain.StatusCancelled {
			continue
		}
		if existing.ScheduledTime.Equal(ap.ScheduledTime) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	ap.ID = f.nextID
	f.nextID++
	ap.Status = string(domain.InitialStatus())

	f.appointments = append(f.appointments, *ap)
	f.created = ap
	return nil
}

func (f *fakeRepo) GetAppointmentForShop(_ context.Context, appointmentID, barbershopID uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == appointmentID && f.appointments[i].BarbershopID == barbershopID {
			ap := f.appointments[i]
			return &ap, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) GetAppointmentForClient(_ context.Context, appointmentID, clientID uint) (*models.Appointment, error) {
	for i := range f.appointments {
		ap := f.appointments[i]
		if ap.ID == appointmentID && ap.ClientID != nil && *ap.ClientID == clientID {
			return &ap, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			f.updated = ap
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, barbershopID uint, start, end time.Time) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.BarbershopID != barbershopID {
			continue
		}
		if domain.Status(ap.Status) == domain.StatusCancelled {
			continue
		}
		if !ap.ScheduledTime.Before(start) && ap.ScheduledTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, barbershopID uint, start, end time.Time) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.BarbershopID != barbershopID {
			continue
		}
		if !ap.ScheduledTime.Before(start) && ap.ScheduledTime.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListClientAppointments(_ context.Context, clientID uint) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, ap := range f.appointments {
		if ap.ClientID != nil && *ap.ClientID == clientID {
			out = append(out, ap)
		}
	}
	return out, nil
}
