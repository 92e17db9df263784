package validators

import "time"

// IsHHMM valida um horário no formato 24h "HH:MM".
func IsHHMM(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
