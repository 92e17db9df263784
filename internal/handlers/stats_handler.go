package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberclubbr/barberclub-api/internal/middleware"
	usecase "github.com/barberclubbr/barberclub-api/internal/usecase/appointment"
)

type StatsHandler struct {
	stats *usecase.DashboardStats
}

func NewStatsHandler(stats *usecase.DashboardStats) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetDashboard: contadores de hoje / semana / mês + por status, com
// cache de curta duração.
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	st, err := h.stats.Execute(c.Request.Context(), barbershopID)
	if err != nil {
		writeError(c, err, "failed_to_get_stats", "Erro ao calcular estatísticas.")
		return
	}

	c.JSON(http.StatusOK, st)
}
