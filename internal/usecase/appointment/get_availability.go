package appointment

import (
	"context"

	domain "github.com/barberclubbr/barberclub-api/internal/domain/appointment"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute gera os slots do expediente e remove os já ocupados para o
// profissional/data pedidos. Sem profissional selecionado devolve o
// conjunto completo (modo consulta).
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	hours := domain.EffectiveBusinessHours(
		shop.OpenTime,
		shop.CloseTime,
		shop.SlotIntervalMin,
	)

	candidates, err := domain.GenerateSlots(
		hours.OpenTime,
		hours.CloseTime,
		hours.Interval,
	)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := dayRange(in.Date)
	existing, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.BarbershopID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	return domain.FilterAvailable(
		candidates,
		in.Date,
		in.ProfessionalID,
		existing,
	), nil
}
