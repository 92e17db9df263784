package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint       `json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ClientID *uint  `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// Snapshot do cliente no momento do agendamento
	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	ProfessionalID *uint        `json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	// Snapshot do nome do profissional (não acompanha renomeações)
	ProfessionalName string `gorm:"size:100" json:"professional_name"`

	ServiceType string `gorm:"size:50;not null" json:"service_type"`
	PlanName    string `gorm:"size:100" json:"plan_name"`

	ScheduledTime time.Time `json:"scheduled_time"`

	Status string `gorm:"size:20;default:'Agendado'" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
