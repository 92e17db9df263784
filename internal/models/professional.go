package models

import "time"

// Profissional da barbearia, atribuível a agendamentos.
// Agendamentos guardam um snapshot do nome: renomear o profissional
// não reescreve o histórico.
type Professional struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
