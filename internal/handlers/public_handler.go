package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barberclubbr/barberclub-api/internal/domain/appointment"
	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/models"
	usecase "github.com/barberclubbr/barberclub-api/internal/usecase/appointment"
)

// ======================================================
// PublicHandler — vitrine da barbearia por slug, sem auth
// ======================================================

type PublicHandler struct {
	db           *gorm.DB
	availability *usecase.GetAvailability
}

func NewPublicHandler(db *gorm.DB, availability *usecase.GetAvailability) *PublicHandler {
	return &PublicHandler{db: db, availability: availability}
}

func (h *PublicHandler) shopBySlug(c *gin.Context) (*models.Barbershop, bool) {
	var shop models.Barbershop
	if err := h.db.
		Where("slug = ?", c.Param("slug")).
		First(&shop).Error; err != nil {

		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return nil, false
	}
	return &shop, true
}

// GetBarbershop expõe os dados públicos da barbearia e o expediente
// efetivo usado pela grade de horários.
func (h *PublicHandler) GetBarbershop(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	hours := domain.EffectiveBusinessHours(
		shop.OpenTime,
		shop.CloseTime,
		shop.SlotIntervalMin,
	)

	c.JSON(http.StatusOK, gin.H{
		"id":             shop.ID,
		"name":           shop.Name,
		"slug":           shop.Slug,
		"business_hours": hours,
		"service_types":  domain.SelfServiceTypes(),
	})
}

func (h *PublicHandler) ListPlans(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var plans []models.Plan
	if err := h.db.
		Where("barbershop_id = ? AND active = ?", shop.ID, true).
		Order("price_monthly ASC").
		Find(&plans).Error; err != nil {

		httperr.Internal(c, "failed_to_list_plans", "Erro ao listar planos.")
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var pros []models.Professional
	if err := h.db.
		Where("barbershop_id = ? AND active = ?", shop.ID, true).
		Order("id ASC").
		Find(&pros).Error; err != nil {

		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	c.JSON(http.StatusOK, pros)
}

// GetAvailability: GET /public/:slug/availability?date=YYYY-MM-DD&professional_id=3
//
// Sem professional_id devolve a grade completa do expediente, sem
// remover ocupados (modo consulta da vitrine).
func (h *PublicHandler) GetAvailability(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Parâmetro date obrigatório (YYYY-MM-DD).")
		return
	}

	date, err := parseDateInShop(shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida (use YYYY-MM-DD).")
		return
	}

	var professionalID uint
	if raw := c.Query("professional_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_professional", "Parâmetro professional_id inválido.")
			return
		}
		professionalID = uint(id)
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarbershopID:   shop.ID,
		ProfessionalID: professionalID,
		Date:           date,
	})
	if err != nil {
		writeError(c, err, "failed_to_get_availability", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
