package models

import "time"

// Cliente assinante, com login próprio, vinculado à barbearia
type Client struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Phone        string `gorm:"size:20" json:"phone"`
	Email        string `gorm:"size:100;index" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`

	// Assinatura
	PlanName       string     `gorm:"size:100" json:"plan_name"`
	PaymentStatus  string     `gorm:"size:20" json:"payment_status"`
	PlanExpiresAt  *time.Time `json:"plan_expires_at"`
	SubscriptionID string     `gorm:"size:100" json:"-"`
	Blocked        bool       `gorm:"default:false" json:"blocked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
