package dto

import "time"

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	ScheduledTime    time.Time `json:"scheduled_time"`
	Status           string    `json:"status"`
	ServiceType      string    `json:"service_type"`
	ClientName       string    `json:"client_name"`
	ProfessionalName string    `json:"professional_name"`
	PlanName         string    `json:"plan_name"`
}
