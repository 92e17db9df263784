package models

import "time"

type Barbershop struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Slug     string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	Timezone string `gorm:"size:50" json:"timezone"`

	// Expediente (horário comercial). Vazio = padrão 08:00/18:00.
	OpenTime        string `gorm:"size:5" json:"open_time"`
	CloseTime       string `gorm:"size:5" json:"close_time"`
	SlotIntervalMin int    `gorm:"default:30" json:"slot_interval_min"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
