package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barberclubbr/barberclub-api/internal/domain/appointment"
	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/middleware"
	"github.com/barberclubbr/barberclub-api/internal/models"
	"github.com/barberclubbr/barberclub-api/internal/timezone"
	"github.com/barberclubbr/barberclub-api/internal/validators"
)

type BarbershopHandler struct {
	db *gorm.DB
}

func NewBarbershopHandler(db *gorm.DB) *BarbershopHandler {
	return &BarbershopHandler{db: db}
}

type UpdateBarbershopRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`

	Timezone *string `json:"timezone,omitempty"`

	OpenTime        *string `json:"open_time,omitempty"`
	CloseTime       *string `json:"close_time,omitempty"`
	SlotIntervalMin *int    `json:"slot_interval_min,omitempty"`
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar dados da barbearia.")
		return
	}

	hours := domain.EffectiveBusinessHours(shop.OpenTime, shop.CloseTime, shop.SlotIntervalMin)

	c.JSON(http.StatusOK, gin.H{
		"barbershop": shop,
		"business_hours": gin.H{
			"open_time":         hours.OpenTime,
			"close_time":        hours.CloseTime,
			"slot_interval_min": hours.Interval,
		},
	})
}

func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar dados da barbearia.")
		return
	}

	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Timezone inválido.")
			return
		}
		shop.Timezone = *req.Timezone
	}

	// Expediente: HH:MM válidos e abertura estritamente antes do fechamento
	open := shop.OpenTime
	closeT := shop.CloseTime
	if req.OpenTime != nil {
		open = *req.OpenTime
	}
	if req.CloseTime != nil {
		closeT = *req.CloseTime
	}

	if open != "" || closeT != "" {
		if !validators.IsHHMM(open) || !validators.IsHHMM(closeT) {
			httperr.BadRequest(c, "invalid_business_hours", "Horário de expediente inválido.")
			return
		}
		if open >= closeT {
			httperr.BadRequest(c, "invalid_business_hours", "Abertura deve ser antes do fechamento.")
			return
		}
	}
	shop.OpenTime = open
	shop.CloseTime = closeT

	if req.SlotIntervalMin != nil {
		if *req.SlotIntervalMin <= 0 {
			httperr.BadRequest(c, "invalid_interval", "Intervalo de slot inválido.")
			return
		}
		shop.SlotIntervalMin = *req.SlotIntervalMin
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao salvar dados da barbearia.")
		return
	}

	c.JSON(http.StatusOK, shop)
}
