package handler

import (
	"net/http"

	"bizops-dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the composite read models.
type DashboardHandler struct {
	dashboard service.DashboardService
	licensing service.LicensingService
	security  service.SecurityService
}

func NewDashboardHandler(dashboard service.DashboardService, licensing service.LicensingService, security service.SecurityService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, licensing: licensing, security: security}
}

// Metrics handles GET /api/dashboard/metrics.
func (h *DashboardHandler) Metrics(c *gin.Context) {
	m, err := h.dashboard.Metrics(c.Request.Context(), c.Query("brand"))
	if err != nil {
		respondError(c, err, "Dashboard")
		return
	}
	c.JSON(http.StatusOK, m)
}

// HolisticKPIs handles GET /api/dashboard/holistic-kpis.
func (h *DashboardHandler) HolisticKPIs(c *gin.Context) {
	k, err := h.dashboard.HolisticKPIs(c.Request.Context(), c.Query("brand"))
	if err != nil {
		respondError(c, err, "Dashboard")
		return
	}
	c.JSON(http.StatusOK, k)
}

// LicensingAnalytics handles GET /api/licensing/analytics.
func (h *DashboardHandler) LicensingAnalytics(c *gin.Context) {
	a, err := h.licensing.Analytics(c.Request.Context(), c.Query("brand"))
	if err != nil {
		respondError(c, err, "Licensing analytics")
		return
	}
	c.JSON(http.StatusOK, a)
}

// ZeroTrustSummary handles GET /api/zero-trust/summary.
func (h *DashboardHandler) ZeroTrustSummary(c *gin.Context) {
	s, err := h.security.ZeroTrustSummary(c.Request.Context(), c.Query("brand"))
	if err != nil {
		respondError(c, err, "Zero trust summary")
		return
	}
	c.JSON(http.StatusOK, s)
}
