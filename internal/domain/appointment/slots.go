package appointment

import (
	"fmt"
	"time"

	"github.com/barberclubbr/barberclub-api/internal/httperr"
)

const (
	DefaultOpenTime    = "08:00"
	DefaultCloseTime   = "18:00"
	DefaultSlotMinutes = 30
)

// BusinessHours é o expediente efetivo usado na geração de slots.
type BusinessHours struct {
	OpenTime  string
	CloseTime string
	Interval  int
}

// EffectiveBusinessHours aplica os padrões quando o expediente não foi configurado.
func EffectiveBusinessHours(open, close string, interval int) BusinessHours {
	if open == "" {
		open = DefaultOpenTime
	}
	if close == "" {
		close = DefaultCloseTime
	}
	if interval <= 0 {
		interval = DefaultSlotMinutes
	}
	return BusinessHours{OpenTime: open, CloseTime: close, Interval: interval}
}

func parseHHMM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// GenerateSlots produz a sequência ordenada de horários HH:MM a partir
// da abertura, em passos de intervalMin, estritamente antes do fechamento.
// Abertura >= fechamento produz uma sequência vazia, sem erro.
func GenerateSlots(open, close string, intervalMin int) ([]string, error) {
	if intervalMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_interval")
	}

	openMin, err := parseHHMM(open)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_business_hours")
	}

	closeMin, err := parseHHMM(close)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_business_hours")
	}

	slots := []string{}
	for cur := openMin; cur < closeMin; cur += intervalMin {
		slots = append(slots, fmt.Sprintf("%02d:%02d", cur/60, cur%60))
	}

	return slots, nil
}
