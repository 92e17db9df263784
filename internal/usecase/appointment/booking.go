package appointment

import (
	"context"
	"time"

	domain "github.com/barberclubbr/barberclub-api/internal/domain/appointment"
	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/models"
	"github.com/barberclubbr/barberclub-api/internal/timezone"
)

// ======================================================
// Regras compartilhadas de criação de agendamento
// ======================================================

func parseStart(shop *models.Barbershop, date, hhmm string) (time.Time, error) {
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		date+" "+hhmm,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	return start, nil
}

func dayRange(start time.Time) (time.Time, time.Time) {
	dayStart := time.Date(
		start.Year(), start.Month(), start.Day(),
		0, 0, 0, 0,
		start.Location(),
	)
	return dayStart, dayStart.Add(24 * time.Hour)
}

// assertSlotAvailable recalcula o conjunto disponível no momento da
// submissão: o horário pedido precisa ser um slot do expediente e não
// pode estar ocupado para o profissional escolhido. A confirmação final
// contra corrida fica na escrita transacional do repositório.
func assertSlotAvailable(
	ctx context.Context,
	repo domain.Repository,
	shop *models.Barbershop,
	professionalID uint,
	start time.Time,
) error {

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
		return err
	}

	hhmm := start.Format("15:04")

	inCandidates := false
	for _, slot := range candidates {
		if slot == hhmm {
			inCandidates = true
			break
		}
	}
	if !inCandidates {
		return httperr.ErrBusiness("outside_business_hours")
	}

	dayStart, dayEnd := dayRange(start)
	existing, err := repo.ListAppointmentsForDay(ctx, shop.ID, dayStart, dayEnd)
	if err != nil {
		return err
	}

	available := domain.FilterAvailable(candidates, start, professionalID, existing)
	for _, slot := range available {
		if slot == hhmm {
			return nil
		}
	}

	return httperr.ErrBusiness("slot_taken")
}
