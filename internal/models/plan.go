package models

import "time"

type Plan struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`

	Name         string  `gorm:"size:100;not null" json:"name"`
	Description  string  `gorm:"size:255" json:"description"`
	PriceMonthly float64 `json:"price_monthly"`
	ServiceType  string  `gorm:"size:50" json:"service_type"`
	Active       bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
