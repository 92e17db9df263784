package appointment

import (
	"context"
	"time"

	"github.com/barberclubbr/barberclub-api/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	// -------- Professional --------
	GetProfessional(
		ctx context.Context,
		barbershopID uint,
		professionalID uint,
	) (*models.Professional, error)

	// -------- Client --------
	GetClient(
		ctx context.Context,
		barbershopID uint,
		clientID uint,
	) (*models.Client, error)

	UpdateClient(
		ctx context.Context,
		cl *models.Client,
	) error

	// -------- Appointment (create / conflict) --------
	// CreateScheduled grava o agendamento com status inicial dentro de uma
	// transação que tranca e re-verifica o slot (guarda contra corrida de
	// double-booking).
	CreateScheduled(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForShop(
		ctx context.Context,
		appointmentID uint,
		barbershopID uint,
	) (*models.Appointment, error)

	GetAppointmentForClient(
		ctx context.Context,
		appointmentID uint,
		clientID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForDay(
		ctx context.Context,
		barbershopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barbershopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListClientAppointments(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)
}
