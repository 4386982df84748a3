package handler

import (
	"net/http"

	"bizops-dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	health service.HealthService
}

func NewHealthHandler(health service.HealthService) *HealthHandler {
	return &HealthHandler{health: health}
}

// Check handles GET /api/health; 503 when the database is unreachable.
func (h *HealthHandler) Check(c *gin.Context) {
	report := h.health.Check(c.Request.Context())
	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}
