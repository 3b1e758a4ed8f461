package api

import (
	"net/http"

	"alcyxob/nutrition-app/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats godoc
// @Summary Statistics for a period
// @Tags Stats
// @Produce json
// @Param period query string false "week (default), month or year"
// @Success 200 {object} service.StatsReport
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	report, err := h.statsService.GetStats(c.Request.Context(), userID, c.DefaultQuery("period", "week"))
	if err != nil {
		abortWithInternal(c, err, "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *StatsHandler) GetStreak(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	info, err := h.statsService.GetStreak(c.Request.Context(), userID)
	if err != nil {
		abortWithInternal(c, err, "Failed to compute streak")
		return
	}
	c.JSON(http.StatusOK, info)
}
