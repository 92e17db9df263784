package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberclubbr/barberclub-api/internal/domain/appointment"
	"github.com/barberclubbr/barberclub-api/internal/timezone"
)

func TestGetAvailability_FullGridWhenEmpty(t *testing.T) {
	repo := newFakeRepo()
	repo.shop.OpenTime = "09:00"
	repo.shop.CloseTime = "11:00"
	repo.shop.SlotIntervalMin = 30

	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID:   1,
		ProfessionalID: 3,
		Date:           time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestGetAvailability_RemovesBookedSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.shop.OpenTime = "09:00"
	repo.shop.CloseTime = "11:00"
	repo.shop.SlotIntervalMin = 30

	day := time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC)
	seedAppointment(repo, day.Add(9*time.Hour+30*time.Minute), domain.StatusScheduled)
	proID := uint(3)
	repo.appointments[0].ProfessionalID = &proID

	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID:   1,
		ProfessionalID: 3,
		Date:           day,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, slots)

	// outro profissional continua com a grade cheia
	slots, err = uc.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID:   1,
		ProfessionalID: 7,
		Date:           day,
	})
	require.NoError(t, err)
	assert.Len(t, slots, 4)
}

func TestDashboardStats_AggregatesWithoutCache(t *testing.T) {
	repo := newFakeRepo()

	// o instante atual está sempre dentro da janela do agregado
	now := timezone.Now()
	seedAppointment(repo, now, domain.StatusScheduled)
	seedAppointment(repo, now, domain.StatusConfirmed)

	uc := NewDashboardStats(repo, nil)

	st, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 2, st.Today)
	assert.Equal(t, 2, st.Week)
	assert.Equal(t, 2, st.Month)
	assert.Equal(t, 1, st.ByStatus[domain.StatusScheduled])
	assert.Equal(t, 1, st.ByStatus[domain.StatusConfirmed])
	assert.Equal(t, 0, st.ByStatus[domain.StatusCancelled])
	assert.False(t, st.ComputedAt.IsZero())
}
