package appointment

import (
	"sort"
	"time"

	"github.com/barberclubbr/barberclub-api/internal/models"
)

// Idade máxima do agregado antes de ser considerado obsoleto pelo painel.
const StatsMaxAge = 5 * time.Minute

type Stats struct {
	Today      int            `json:"today"`
	Week       int            `json:"week"`
	Month      int            `json:"month"`
	ByStatus   map[Status]int `json:"by_status"`
	ComputedAt time.Time      `json:"computed_at"`
}

func (s Stats) Stale(now time.Time) bool {
	return now.Sub(s.ComputedAt) > StatsMaxAge
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StatsWindow é o período que precisa estar carregado em memória para o
// agregado: do início da semana (domingo) ou do mês, o que vier antes,
// até o fim da semana ou do mês, o que vier depois.
func StatsWindow(now time.Time) (time.Time, time.Time) {
	day := startOfDay(now)

	weekStart := day.AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	start := weekStart
	if monthStart.Before(start) {
		start = monthStart
	}
	end := weekEnd
	if monthEnd.After(end) {
		end = monthEnd
	}

	return start, end
}

// Aggregate é uma função pura sobre o snapshot já carregado: contagens de
// hoje, da semana corrente (início no domingo) e do mês corrente, mais a
// quebra por status sobre todos os quatro valores.
func Aggregate(aps []models.Appointment, now time.Time) Stats {
	day := startOfDay(now)
	weekStart := day.AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	st := Stats{
		ByStatus:   make(map[Status]int, 4),
		ComputedAt: now,
	}
	for _, s := range AllStatuses() {
		st.ByStatus[s] = 0
	}

	for _, ap := range aps {
		t := ap.ScheduledTime

		if sameDay(t, now) {
			st.Today++
		}
		if !t.Before(weekStart) && t.Before(weekEnd) {
			st.Week++
		}
		if !t.Before(monthStart) && t.Before(monthEnd) {
			st.Month++
		}

		if s := Status(ap.Status); s.Valid() {
			st.ByStatus[s]++
		}
	}

	return st
}

// ===============================
// Client List Filtering / Sorting
// ===============================

type ListFilter struct {
	IncludeCancelled bool
	Date             *time.Time
}

// FilterAndSort aplica o filtro e ordena: futuros em ordem crescente
// (mais próximo primeiro), depois passados em ordem decrescente (mais
// recente primeiro). Todo futuro vem antes de qualquer passado.
func FilterAndSort(
	aps []models.Appointment,
	f ListFilter,
	now time.Time,
) []models.Appointment {

	out := make([]models.Appointment, 0, len(aps))
	for _, ap := range aps {
		if !f.IncludeCancelled && Status(ap.Status) == StatusCancelled {
			continue
		}
		if f.Date != nil && !sameDay(ap.ScheduledTime, *f.Date) {
			continue
		}
		out = append(out, ap)
	}

	future := func(t time.Time) bool { return !t.Before(now) }

	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].ScheduledTime, out[j].ScheduledTime
		fi, fj := future(ti), future(tj)

		if fi != fj {
			return fi
		}
		if fi {
			return ti.Before(tj)
		}
		return tj.Before(ti)
	})

	return out
}
