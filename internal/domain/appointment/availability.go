package appointment

import (
	"time"

	"github.com/barberclubbr/barberclub-api/internal/models"
)

type AvailabilityInput struct {
	BarbershopID   uint
	ProfessionalID uint
	Date           time.Time
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// blocksProfessional: um agendamento sem profissional atribuído (balcão)
// ocupa a agenda de todos os profissionais.
func blocksProfessional(ap models.Appointment, professionalID uint) bool {
	if ap.ProfessionalID == nil {
		return true
	}
	return *ap.ProfessionalID == professionalID
}

// FilterAvailable remove dos candidatos os horários já ocupados por um
// agendamento não cancelado do mesmo profissional no mesmo dia. A
// comparação é por igualdade exata do HH:MM normalizado.
//
// Sem profissional ou sem data selecionados, devolve os candidatos sem
// filtrar (modo de consulta); a etapa de submissão exige ambos.
func FilterAvailable(
	candidates []string,
	date time.Time,
	professionalID uint,
	existing []models.Appointment,
) []string {

	if professionalID == 0 || date.IsZero() {
		return candidates
	}

	taken := make(map[string]bool, len(existing))
	for _, ap := range existing {
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		if !sameDay(ap.ScheduledTime, date) {
			continue
		}
		if !blocksProfessional(ap, professionalID) {
			continue
		}
		taken[ap.ScheduledTime.Format("15:04")] = true
	}

	out := make([]string, 0, len(candidates))
	for _, slot := range candidates {
		if !taken[slot] {
			out = append(out, slot)
		}
	}

	return out
}
