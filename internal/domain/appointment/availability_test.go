package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/barberclubbr/barberclub-api/internal/models"
)

func proID(id uint) *uint { return &id }

func apAt(t *testing.T, day time.Time, hhmm string, professional *uint, status Status) models.Appointment {
	t.Helper()
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		t.Fatalf("bad hhmm %q: %v", hhmm, err)
	}
	return models.Appointment{
		ProfessionalID: professional,
		ScheduledTime: time.Date(
			day.Year(), day.Month(), day.Day(),
			parsed.Hour(), parsed.Minute(), 0, 0, day.Location(),
		),
		Status: string(status),
	}
}

func TestFilterAvailable_RemovesTakenSlots(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	candidates := []string{"09:00", "09:30", "10:00", "10:30"}

	existing := []models.Appointment{
		apAt(t, day, "09:30", proID(1), StatusScheduled),
		apAt(t, day, "10:00", proID(1), StatusConfirmed),
	}

	got := FilterAvailable(candidates, day, 1, existing)
	assert.Equal(t, []string{"09:00", "10:30"}, got)
}

func TestFilterAvailable_CancelledDoesNotBlock(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	candidates := []string{"09:00", "09:30"}

	existing := []models.Appointment{
		apAt(t, day, "09:00", proID(1), StatusCancelled),
	}

	got := FilterAvailable(candidates, day, 1, existing)
	assert.Equal(t, candidates, got)
}

func TestFilterAvailable_OtherProfessionalDoesNotBlock(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	candidates := []string{"09:00", "09:30"}

	existing := []models.Appointment{
		apAt(t, day, "09:00", proID(2), StatusScheduled),
	}

	got := FilterAvailable(candidates, day, 1, existing)
	assert.Equal(t, candidates, got)
}

func TestFilterAvailable_UnassignedBlocksEveryone(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	candidates := []string{"09:00", "09:30"}

	// agendamento de balcão sem profissional atribuído
	existing := []models.Appointment{
		apAt(t, day, "09:00", nil, StatusScheduled),
	}

	assert.Equal(t, []string{"09:30"}, FilterAvailable(candidates, day, 1, existing))
	assert.Equal(t, []string{"09:30"}, FilterAvailable(candidates, day, 7, existing))
}

func TestFilterAvailable_OtherDayDoesNotBlock(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)
	candidates := []string{"09:00"}

	existing := []models.Appointment{
		apAt(t, otherDay, "09:00", proID(1), StatusScheduled),
	}

	got := FilterAvailable(candidates, day, 1, existing)
	assert.Equal(t, candidates, got)
}

func TestFilterAvailable_QueryModeSkipsFiltering(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	candidates := []string{"09:00", "09:30"}

	existing := []models.Appointment{
		apAt(t, day, "09:00", proID(1), StatusScheduled),
	}

	// sem profissional selecionado
	assert.Equal(t, candidates, FilterAvailable(candidates, day, 0, existing))

	// sem data selecionada
	assert.Equal(t, candidates, FilterAvailable(candidates, time.Time{}, 1, existing))
}
