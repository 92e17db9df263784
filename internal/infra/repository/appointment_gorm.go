package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberclubbr/barberclub-api/internal/domain/appointment"
	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *AppointmentGormRepository) GetBarbershopBySlug(
	ctx context.Context,
	slug string,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	barbershopID uint,
	professionalID uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", professionalID, barbershopID).
		First(&pro).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", clientID, barbershopID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) UpdateClient(
	ctx context.Context,
	cl *models.Client,
) error {
	return r.db.WithContext(ctx).Save(cl).Error
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateScheduled tranca os agendamentos ativos do horário dentro de uma
// transação antes de inserir. O índice parcial único no banco cobre o que
// escapar do lock; a violação volta como slot_taken.
func (r *AppointmentGormRepository) CreateScheduled(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		q := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barbershop_id = ? AND status <> ? AND scheduled_time = ?",
				ap.BarbershopID,
				string(domain.StatusCancelled),
				ap.ScheduledTime,
			)

		if ap.ProfessionalID != nil {
			q = q.Where(
				"professional_id IS NULL OR professional_id = ?",
				*ap.ProfessionalID,
			)
		}

		var conflicts []models.Appointment
		if err := q.Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		ap.Status = string(domain.InitialStatus())
		return tx.Create(ap).Error
	})

	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForShop(
	ctx context.Context,
	appointmentID uint,
	barbershopID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", appointmentID, barbershopID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForClient(
	ctx context.Context,
	appointmentID uint,
	clientID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", appointmentID, clientID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barbershopID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barbershop_id = ? AND status <> ? AND scheduled_time >= ? AND scheduled_time < ?",
			barbershopID, string(domain.StatusCancelled), start, end,
		).
		Order("scheduled_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barbershopID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment

	err := r.db.WithContext(ctx).
		Where(
			"barbershop_id = ? AND scheduled_time >= ? AND scheduled_time < ?",
			barbershopID,
			start,
			end,
		).
		Order("scheduled_time ASC").
		Find(&aps).Error

	if err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListClientAppointments(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("scheduled_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
