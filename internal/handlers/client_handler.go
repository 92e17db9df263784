package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/middleware"
	"github.com/barberclubbr/barberclub-api/internal/models"
)

// ClientHandler: gestão de assinantes pelo painel da barbearia.
type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type UpdateClientRequest struct {
	PaymentStatus *string `json:"payment_status,omitempty"`
	Blocked       *bool   `json:"blocked,omitempty"`
}

func (h *ClientHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	query := h.db.Where("barbershop_id = ?", barbershopID)

	if status := c.Query("payment_status"); status != "" {
		query = query.Where("payment_status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR phone ILIKE ?", like, like)
	}

	var clients []models.Client
	if err := query.Order("name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// Update permite ajuste manual do status de pagamento e bloqueio,
// para cobranças resolvidas fora do gateway.
func (h *ClientHandler) Update(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	var client models.Client
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&client).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.PaymentStatus != nil {
		client.PaymentStatus = *req.PaymentStatus
	}
	if req.Blocked != nil {
		client.Blocked = *req.Blocked
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao salvar cliente.")
		return
	}

	c.JSON(http.StatusOK, client)
}
