package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/middleware"
	usecase "github.com/barberclubbr/barberclub-api/internal/usecase/subscription"
)

// ======================================================
// SubscriptionHandler — assinatura recorrente do cliente
// ======================================================

type SubscriptionHandler struct {
	checkout *usecase.Checkout
	refresh  *usecase.Refresh
}

func NewSubscriptionHandler(checkout *usecase.Checkout, refresh *usecase.Refresh) *SubscriptionHandler {
	return &SubscriptionHandler{
		checkout: checkout,
		refresh:  refresh,
	}
}

type CheckoutRequest struct {
	PlanID uint `json:"plan_id" binding:"required"`
}

// Checkout cria a assinatura no gateway e devolve a URL de pagamento.
func (h *SubscriptionHandler) Checkout(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.checkout.Execute(c.Request.Context(), usecase.CheckoutInput{
		BarbershopID: barbershopID,
		ClientID:     clientID,
		PlanID:       req.PlanID,
	})
	if err != nil {
		writeError(c, err, "failed_to_create_checkout", "Erro ao iniciar assinatura.")
		return
	}

	c.JSON(http.StatusCreated, out)
}

// Refresh reconsulta o gateway e sincroniza o status de pagamento.
// Chamado pelo front na volta do checkout (back URL).
func (h *SubscriptionHandler) Refresh(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	client, err := h.refresh.Execute(c.Request.Context(), barbershopID, clientID)
	if err != nil {
		writeError(c, err, "failed_to_refresh_subscription", "Erro ao atualizar assinatura.")
		return
	}

	c.JSON(http.StatusOK, client)
}
