package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"relotrack/internal/repository"
	"relotrack/internal/schedule"
	"relotrack/internal/service/onboarding"
)

type MilestoneHandler struct {
	onboardingService *onboarding.Service
	logger            *zap.Logger
}

func NewMilestoneHandler(onboardingService *onboarding.Service, logger *zap.Logger) *MilestoneHandler {
	return &MilestoneHandler{onboardingService: onboardingService, logger: logger}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves a milestone between pending, completed and delayed.
// POST /milestones/:id/status
func (h *MilestoneHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid milestone id"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	view, err := h.onboardingService.ChangeMilestoneStatus(c.Request.Context(), id, req.Status, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMilestoneNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "milestone not found"})
		case errors.Is(err, schedule.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to update milestone status",
				zap.Int("milestone_id", id),
				zap.String("status", req.Status),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update milestone status"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
