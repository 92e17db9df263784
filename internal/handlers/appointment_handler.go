package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barberclubbr/barberclub-api/internal/httperr"
	"github.com/barberclubbr/barberclub-api/internal/middleware"
	"github.com/barberclubbr/barberclub-api/internal/models"
	usecase "github.com/barberclubbr/barberclub-api/internal/usecase/appointment"
)

// ======================================================
// AppointmentHandler — agenda do painel da barbearia
// ======================================================

type AppointmentHandler struct {
	create      *usecase.CreateConsoleAppointment
	confirm     *usecase.ConfirmAppointment
	cancel      *usecase.CancelAppointment
	complete    *usecase.CompleteAppointment
	listByDate  *usecase.ListAppointmentsByDate
	listByMonth *usecase.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	create *usecase.CreateConsoleAppointment,
	confirm *usecase.ConfirmAppointment,
	cancel *usecase.CancelAppointment,
	complete *usecase.CompleteAppointment,
	listByDate *usecase.ListAppointmentsByDate,
	listByMonth *usecase.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:      create,
		confirm:     confirm,
		cancel:      cancel,
		complete:    complete,
		listByDate:  listByDate,
		listByMonth: listByMonth,
	}
}

type CreateAppointmentRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone"`
	ProfessionalID *uint  `json:"professional_id,omitempty"`
	ServiceType    string `json:"service_type" binding:"required"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateConsoleAppointmentInput{
		BarbershopID:   barbershopID,
		UserID:         userID,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
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

// ListByDate: GET /me/appointments?date=YYYY-MM-DD
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Parâmetro date obrigatório (YYYY-MM-DD).")
		return
	}

	date, err := parseDateInShop(nil, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida (use YYYY-MM-DD).")
		return
	}

	list, err := h.listByDate.Execute(c.Request.Context(), barbershopID, date)
	if err != nil {
		writeError(c, err, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, list)
}

// ListByMonth: GET /me/appointments/month?year=2026&month=8
func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Parâmetros year e month inválidos.")
		return
	}

	list, err := h.listByMonth.Execute(c.Request.Context(), barbershopID, year, month)
	if err != nil {
		writeError(c, err, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, h.confirm.Execute, "failed_to_confirm_appointment", "Erro ao confirmar agendamento.")
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancel.Execute, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.complete.Execute, "failed_to_complete_appointment", "Erro ao concluir agendamento.")
}

type transitionFn func(
	ctx context.Context,
	barbershopID uint,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error)

// transition fatora o trio confirmar/cancelar/concluir, que só difere
// no use case chamado.
func (h *AppointmentHandler) transition(
	c *gin.Context,
	exec transitionFn,
	fallbackCode string,
	fallbackMessage string,
) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := exec(c.Request.Context(), barbershopID, userID, uint(id))
	if err != nil {
		writeError(c, err, fallbackCode, fallbackMessage)
		return
	}

	c.JSON(http.StatusOK, ap)
}
