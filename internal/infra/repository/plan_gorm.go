package repository

import (
	"context"

	subscription "github.com/barberclubbr/barberclub-api/internal/usecase/subscription"

	"github.com/barberclubbr/barberclub-api/internal/models"
)

// --------------------------------------------------
// Plan
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPlan(
	ctx context.Context,
	barbershopID uint,
	planID uint,
) (*models.Plan, error) {

	var plan models.Plan
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", planID, barbershopID).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// Compile-time check
var _ subscription.Repository = (*AppointmentGormRepository)(nil)
