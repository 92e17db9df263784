package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/middleware"
	usecase "github.com/barberclubbr/barberclub-api/internal/usecase/appointment"
)

// ======================================================
// ClientAppointmentHandler — autoatendimento do assinante
// ======================================================

type ClientAppointmentHandler struct {
	create *usecase.CreateClientAppointment
	list   *usecase.ListMyAppointments
	cancel *usecase.CancelClientAppointment
}

func NewClientAppointmentHandler(
	create *usecase.CreateClientAppointment,
	list *usecase.ListMyAppointments,
	cancel *usecase.CancelClientAppointment,
) *ClientAppointmentHandler {
	return &ClientAppointmentHandler{
		create: create,
		list:   list,
		cancel: cancel,
	}
}

type BookAppointmentRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceType    string `json:"service_type" binding:"required"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm
}

func (h *ClientAppointmentHandler) Book(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_booking_fields", "Profissional, serviço, data e horário são obrigatórios.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateClientAppointmentInput{
		BarbershopID:   barbershopID,
		ClientID:       clientID,
		ProfessionalID: req.ProfessionalID,
		ServiceType:    req.ServiceType,
		Date:           req.Date,
		Time:           req.Time,
	})
	if err != nil {
		writeError(c, err, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// List: GET /client/appointments?include_cancelled=true&date=YYYY-MM-DD
//
// Sem filtros devolve o histórico completo do cliente, futuros primeiro
// em ordem crescente e passados em seguida em ordem decrescente.
func (h *ClientAppointmentHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	in := usecase.ListMyAppointmentsInput{
		BarbershopID:     barbershopID,
		ClientID:         clientID,
		IncludeCancelled: c.Query("include_cancelled") == "true",
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDateInShop(nil, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida (use YYYY-MM-DD).")
			return
		}
		in.Date = &date
	}

	list, err := h.list.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ClientAppointmentHandler) Cancel(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), barbershopID, clientID, uint(id))
	if err != nil {
		writeError(c, err, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		return
	}

	c.JSON(http.StatusOK, ap)
}
