package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithinCancellationWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		scheduled time.Time
		want      bool
	}{
		{"far in the future", now.Add(48 * time.Hour), true},
		{"three hours ahead", now.Add(3 * time.Hour), true},
		{"exactly two hours ahead", now.Add(2 * time.Hour), true}, // limite inclusivo
		{"1h59 ahead", now.Add(2*time.Hour - time.Minute), false},
		{"one hour ahead", now.Add(time.Hour), false},
		{"already started", now.Add(-time.Minute), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinCancellationWindow(tt.scheduled, now))
		})
	}
}
