package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberclubbr/barberclub-api/internal/httperr"
)

// ======================================================
// Mapeamento erro de negócio -> resposta HTTP
// ======================================================

type businessResponse struct {
	status  int
	message string
}

var businessResponses = map[string]businessResponse{
	"invalid_service_type":        {http.StatusBadRequest, "Tipo de serviço inválido."},
	"invalid_date_or_time":        {http.StatusBadRequest, "Data ou horário inválidos."},
	"missing_booking_fields":      {http.StatusBadRequest, "Profissional, data e horário são obrigatórios."},
	"invalid_business_hours":      {http.StatusBadRequest, "Horário de funcionamento inválido."},
	"invalid_interval":            {http.StatusBadRequest, "Intervalo de agenda inválido."},
	"time_in_past":                {http.StatusBadRequest, "Não é possível agendar no passado."},
	"outside_business_hours":      {http.StatusBadRequest, "Horário fora do expediente."},
	"appointment_not_found":       {http.StatusNotFound, "Agendamento não encontrado."},
	"professional_not_found":      {http.StatusNotFound, "Profissional não encontrado."},
	"client_not_found":            {http.StatusNotFound, "Cliente não encontrado."},
	"plan_not_found":              {http.StatusNotFound, "Plano não encontrado."},
	"plan_inactive":               {http.StatusConflict, "Plano indisponível para assinatura."},
	"slot_taken":                  {http.StatusConflict, "Horário já ocupado."},
	"invalid_state":               {http.StatusConflict, "Transição de status inválida."},
	"cancellation_window_expired": {http.StatusConflict, "Cancelamento permitido até 2 horas antes do horário."},
	"not_allowed":                 {http.StatusForbidden, "Operação não permitida."},
	"client_blocked":              {http.StatusForbidden, "Acesso bloqueado pela barbearia."},
	"subscription_missing":        {http.StatusForbidden, "Assinatura necessária para agendar."},
	"payment_late":                {http.StatusForbidden, "Pagamento em atraso."},
	"plan_expired":                {http.StatusForbidden, "Assinatura expirada."},
}

// writeError responde erros de negócio com o status mapeado; qualquer
// outro erro vira 500 com o código genérico informado.
func writeError(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	if be, ok := httperr.AsBusiness(err); ok {
		if resp, known := businessResponses[be.Code]; known {
			httperr.Write(c, resp.status, be.Code, resp.message)
			return
		}
		httperr.BadRequest(c, be.Code, "Requisição inválida.")
		return
	}
	httperr.Internal(c, fallbackCode, fallbackMessage)
}
