package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberclubbr/barberclub-api/internal/domain/appointment"
	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/middleware"
	"github.com/barberclubbr/barberclub-api/internal/models"
)

type PlanHandler struct {
	db *gorm.DB
}

func NewPlanHandler(db *gorm.DB) *PlanHandler {
	return &PlanHandler{db: db}
}

type CreatePlanRequest struct {
	Name         string  `json:"name" binding:"required"`
	PriceMonthly float64 `json:"price_monthly" binding:"required,gt=0"`
	ServiceType  string  `json:"service_type" binding:"required"`
}

type UpdatePlanRequest struct {
	Name         *string  `json:"name,omitempty"`
	PriceMonthly *float64 `json:"price_monthly,omitempty"`
	ServiceType  *string  `json:"service_type,omitempty"`
	Active       *bool    `json:"active,omitempty"`
}

func (h *PlanHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var plans []models.Plan
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("price_monthly ASC").
		Find(&plans).Error; err != nil {

		httperr.Internal(c, "failed_to_list_plans", "Erro ao listar planos.")
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) Create(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !appointment.ServiceType(req.ServiceType).ValidForSelfService() {
		httperr.BadRequest(c, "invalid_service_type", "Tipo de serviço inválido.")
		return
	}

	plan := models.Plan{
		BarbershopID: barbershopID,
		Name:         req.Name,
		PriceMonthly: req.PriceMonthly,
		ServiceType:  req.ServiceType,
		Active:       true,
	}

	if err := h.db.Create(&plan).Error; err != nil {
		httperr.Internal(c, "failed_to_create_plan", "Erro ao criar plano.")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *PlanHandler) Update(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	var plan models.Plan
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&plan).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "plan_not_found", "Plano não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_plan", "Erro ao buscar plano.")
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.PriceMonthly != nil {
		if *req.PriceMonthly <= 0 {
			httperr.BadRequest(c, "invalid_price", "Valor mensal deve ser maior que zero.")
			return
		}
		plan.PriceMonthly = *req.PriceMonthly
	}
	if req.ServiceType != nil {
		if !appointment.ServiceType(*req.ServiceType).ValidForSelfService() {
			httperr.BadRequest(c, "invalid_service_type", "Tipo de serviço inválido.")
			return
		}
		plan.ServiceType = *req.ServiceType
	}
	if req.Active != nil {
		plan.Active = *req.Active
	}

	if err := h.db.Save(&plan).Error; err != nil {
		httperr.Internal(c, "failed_to_update_plan", "Erro ao salvar plano.")
		return
	}

	c.JSON(http.StatusOK, plan)
}
