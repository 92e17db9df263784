package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberclubbr/barberclub-api/internal/httperr"
)

func TestGenerateSlots_DefaultDay(t *testing.T) {
	slots, err := GenerateSlots("08:00", "18:00", 30)
	require.NoError(t, err)

	// 10h de expediente em passos de 30min = 20 slots, fechamento excluído
	require.Len(t, slots, 20)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "08:30", slots[1])
	assert.Equal(t, "17:30", slots[19])
	assert.NotContains(t, slots, "18:00")
}

func TestGenerateSlots_CustomInterval(t *testing.T) {
	slots, err := GenerateSlots("09:00", "12:00", 45)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:45", "10:30", "11:15"}, slots)
}

func TestGenerateSlots_IntervalNotDividingDay(t *testing.T) {
	// último passo cai depois do fechamento e é descartado
	slots, err := GenerateSlots("08:00", "09:00", 40)
	require.NoError(t, err)

	assert.Equal(t, []string{"08:00", "08:40"}, slots)
}

func TestGenerateSlots_DegenerateHours(t *testing.T) {
	tests := []struct {
		name  string
		open  string
		close string
	}{
		{"open equals close", "10:00", "10:00"},
		{"open after close", "18:00", "08:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateSlots(tt.open, tt.close, 30)
			require.NoError(t, err)
			assert.Empty(t, slots)
			assert.NotNil(t, slots)
		})
	}
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	_, err := GenerateSlots("8h00", "18:00", 30)
	assert.True(t, httperr.IsBusiness(err, "invalid_business_hours"))

	_, err = GenerateSlots("08:00", "25:00", 30)
	assert.True(t, httperr.IsBusiness(err, "invalid_business_hours"))

	_, err = GenerateSlots("08:00", "18:00", 0)
	assert.True(t, httperr.IsBusiness(err, "invalid_interval"))

	_, err = GenerateSlots("08:00", "18:00", -15)
	assert.True(t, httperr.IsBusiness(err, "invalid_interval"))
}

func TestEffectiveBusinessHours_Defaults(t *testing.T) {
	hours := EffectiveBusinessHours("", "", 0)
	assert.Equal(t, DefaultOpenTime, hours.OpenTime)
	assert.Equal(t, DefaultCloseTime, hours.CloseTime)
	assert.Equal(t, DefaultSlotMinutes, hours.Interval)

	hours = EffectiveBusinessHours("07:00", "20:00", 15)
	assert.Equal(t, "07:00", hours.OpenTime)
	assert.Equal(t, "20:00", hours.CloseTime)
	assert.Equal(t, 15, hours.Interval)
}
