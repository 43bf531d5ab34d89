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

type ClientHandler struct {
	onboardingService *onboarding.Service
	logger            *zap.Logger
}

func NewClientHandler(onboardingService *onboarding.Service, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{onboardingService: onboardingService, logger: logger}
}

type createClientRequest struct {
	Name          string  `json:"name" binding:"required"`
	Phone         *string `json:"phone"`
	CoordinatorID *int    `json:"coordinator_id"`
	ArrivalDate   *string `json:"arrival_date"`
	DepartureDate *string `json:"departure_date" binding:"required"`
}

// parseDatePtr parses an optional YYYY-MM-DD field; nil stays nil.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := schedule.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateClient adds a client and generates its milestone schedule.
// POST /clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	arrival, err := parseDatePtr(req.ArrivalDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid arrival_date, expected YYYY-MM-DD"})
		return
	}
	departure, err := parseDatePtr(req.DepartureDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid departure_date, expected YYYY-MM-DD"})
		return
	}

	view, err := h.onboardingService.CreateClient(c.Request.Context(), onboarding.CreateClientInput{
		Name:          req.Name,
		Phone:         req.Phone,
		CoordinatorID: req.CoordinatorID,
		ArrivalDate:   arrival,
		DepartureDate: departure,
	})
	if err != nil {
		switch {
		case errors.Is(err, onboarding.ErrNameRequired), errors.Is(err, schedule.ErrMissingAnchor):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to create client", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create client"})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// ListClients returns the filtered dashboard list.
// GET /clients?search=&status=
func (h *ClientHandler) ListClients(c *gin.Context) {
	search := c.Query("search")
	statusFilter := c.DefaultQuery("status", schedule.FilterAll)

	switch statusFilter {
	case schedule.FilterAll, schedule.FilterInProgress, schedule.FilterDelayed, schedule.FilterCompleted:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}

	views, err := h.onboardingService.ListClients(c.Request.Context(), search, statusFilter, time.Now())
	if err != nil {
		h.logger.Error("Failed to list clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list clients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clients": views,
		"count":   len(views),
	})
}

// GetClient returns one client with milestones and derived fields.
// GET /clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
		return
	}

	view, err := h.onboardingService.GetClient(c.Request.Context(), id, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		h.logger.Error("Failed to get client", zap.Int("client_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get client"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// DeleteClient removes a client and its milestones.
// DELETE /clients/:id
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
		return
	}

	if err := h.onboardingService.DeleteClient(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		h.logger.Error("Failed to delete client", zap.Int("client_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted", "client_id": id})
}
