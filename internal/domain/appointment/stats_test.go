package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberclubbr/barberclub-api/internal/models"
)

func apOn(t time.Time, status Status) models.Appointment {
	return models.Appointment{ScheduledTime: t, Status: string(status)}
}

func TestAggregate_Counters(t *testing.T) {
	// terça-feira; semana começa no domingo 2026-09-13
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	aps := []models.Appointment{
		apOn(now.Add(2*time.Hour), StatusScheduled),                        // hoje
		apOn(time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC), StatusCompleted), // hoje
		apOn(time.Date(2026, 9, 13, 9, 0, 0, 0, time.UTC), StatusConfirmed), // domingo, mesma semana
		apOn(time.Date(2026, 9, 19, 9, 0, 0, 0, time.UTC), StatusCancelled), // sábado, mesma semana
		apOn(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), StatusCompleted),  // mês, semana anterior
		apOn(time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC), StatusCompleted), // fora do mês e da semana
	}

	st := Aggregate(aps, now)

	assert.Equal(t, 2, st.Today)
	assert.Equal(t, 4, st.Week)
	assert.Equal(t, 5, st.Month)
	assert.Equal(t, now, st.ComputedAt)

	assert.Equal(t, 1, st.ByStatus[StatusScheduled])
	assert.Equal(t, 1, st.ByStatus[StatusConfirmed])
	assert.Equal(t, 3, st.ByStatus[StatusCompleted])
	assert.Equal(t, 1, st.ByStatus[StatusCancelled])
}

func TestAggregate_EmptyStillReportsAllStatuses(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	st := Aggregate(nil, now)

	assert.Zero(t, st.Today)
	assert.Zero(t, st.Week)
	assert.Zero(t, st.Month)

	require.Len(t, st.ByStatus, 4)
	for _, s := range AllStatuses() {
		count, ok := st.ByStatus[s]
		assert.True(t, ok, "status %s missing", s)
		assert.Zero(t, count)
	}
}

func TestStatsWindow_CoversWeekAndMonth(t *testing.T) {
	// início do mês cai no meio da semana: a janela precisa englobar os dois
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) // terça

	start, end := StatsWindow(now)

	// semana começa domingo 30/08, antes do início do mês
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), start)
	// mês termina 01/10, depois do fim da semana (06/09)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestStats_Stale(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	fresh := Stats{ComputedAt: now.Add(-4 * time.Minute)}
	assert.False(t, fresh.Stale(now))

	atLimit := Stats{ComputedAt: now.Add(-StatsMaxAge)}
	assert.False(t, atLimit.Stale(now))

	old := Stats{ComputedAt: now.Add(-StatsMaxAge - time.Second)}
	assert.True(t, old.Stale(now))
}

func TestFilterAndSort_FuturesAscendingThenPastsDescending(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	past1 := apOn(now.Add(-48*time.Hour), StatusCompleted)
	past2 := apOn(now.Add(-2*time.Hour), StatusCompleted)
	future1 := apOn(now.Add(time.Hour), StatusScheduled)
	future2 := apOn(now.Add(24*time.Hour), StatusConfirmed)

	got := FilterAndSort(
		[]models.Appointment{past1, future2, past2, future1},
		ListFilter{},
		now,
	)

	require.Len(t, got, 4)
	assert.Equal(t, future1.ScheduledTime, got[0].ScheduledTime)
	assert.Equal(t, future2.ScheduledTime, got[1].ScheduledTime)
	assert.Equal(t, past2.ScheduledTime, got[2].ScheduledTime)
	assert.Equal(t, past1.ScheduledTime, got[3].ScheduledTime)
}

func TestFilterAndSort_CancelledHiddenByDefault(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	aps := []models.Appointment{
		apOn(now.Add(time.Hour), StatusScheduled),
		apOn(now.Add(2*time.Hour), StatusCancelled),
	}

	got := FilterAndSort(aps, ListFilter{}, now)
	require.Len(t, got, 1)
	assert.Equal(t, string(StatusScheduled), got[0].Status)

	got = FilterAndSort(aps, ListFilter{IncludeCancelled: true}, now)
	assert.Len(t, got, 2)
}

func TestFilterAndSort_DateFilter(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	day := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)

	aps := []models.Appointment{
		apOn(time.Date(2026, 9, 20, 9, 0, 0, 0, time.UTC), StatusScheduled),
		apOn(time.Date(2026, 9, 21, 9, 0, 0, 0, time.UTC), StatusScheduled),
	}

	got := FilterAndSort(aps, ListFilter{Date: &day}, now)
	require.Len(t, got, 1)
	assert.Equal(t, aps[0].ScheduledTime, got[0].ScheduledTime)
}
