package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHHMM(t *testing.T) {
	valid := []string{"00:00", "08:00", "18:30", "23:59"}
	for _, s := range valid {
		assert.True(t, IsHHMM(s), s)
	}

	invalid := []string{"", "8:00", "24:00", "12:60", "12-30", "12:3", "120:30", "ab:cd"}
	for _, s := range invalid {
		assert.False(t, IsHHMM(s), s)
	}
}
