package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"relotrack/internal/service/onboarding"
)

type StatsHandler struct {
	onboardingService *onboarding.Service
	logger            *zap.Logger
}

func NewStatsHandler(onboardingService *onboarding.Service, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{onboardingService: onboardingService, logger: logger}
}

// GetStats returns the cross-client milestone aggregate.
// GET /stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.onboardingService.DashboardStats(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to compute dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
