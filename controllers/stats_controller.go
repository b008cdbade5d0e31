package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"stayhub/response"
	"stayhub/services"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

// GetAdminStats returns the dashboard aggregations; admin-only via
// route middleware.
func (ctl *StatsController) GetAdminStats(c *gin.Context) {
	stats, err := ctl.stats.AdminStats(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, stats)
}
