// Package router assembles the gin engine and the API route table.
package router

import (
	"net/http"

	"bizops-dashboard/internal/handler"
	"bizops-dashboard/internal/middleware"
	"bizops-dashboard/internal/realtime"
	"bizops-dashboard/internal/service"
	"bizops-dashboard/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the services the routes are served by.
type Deps struct {
	CRUD      *service.CRUD
	Dashboard service.DashboardService
	Licensing service.LicensingService
	Security  service.SecurityService
	ITIL      service.ITILService
	Retail    service.RetailService
	Documents service.DocumentService
	Licenses  *service.LicenseResolver
	Auth      service.AuthService
	Health    service.HealthService

	// Hub serves /api/ws when set.
	Hub *realtime.Hub
	// Registry exposes /metrics and request metrics when set.
	Registry *prometheus.Registry
	// AuthEnabled guards every mutating route with an admin bearer token.
	AuthEnabled bool
}

// New builds the engine. Validation must be configured before any route binds JSON.
func New(d Deps) *gin.Engine {
	validation.Engine()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(), gin.Recovery())
	if d.Registry != nil {
		r.Use(middleware.NewHTTPMetrics(d.Registry).Middleware())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}

	var write []gin.HandlerFunc
	if d.AuthEnabled {
		write = []gin.HandlerFunc{middleware.AuthMiddleware(d.Auth), middleware.RequireRole(service.RoleAdmin)}
	}

	api := r.Group("/api")
	{
		health := handler.NewHealthHandler(d.Health)
		api.GET("/health", health.Check)

		auth := handler.NewAuthHandler(d.Auth)
		authGroup := api.Group("/auth")
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/refresh", auth.RefreshToken)
		authGroup.POST("/logout", middleware.AuthMiddleware(d.Auth), auth.Logout)

		if d.Hub != nil {
			api.GET("/ws", gin.WrapF(d.Hub.ServeWS))
		}

		registerResources(api, d.CRUD, write)

		dashboard := handler.NewDashboardHandler(d.Dashboard, d.Licensing, d.Security)
		api.GET("/dashboard/metrics", dashboard.Metrics)
		api.GET("/dashboard/holistic-kpis", dashboard.HolisticKPIs)
		api.GET("/licensing/analytics", dashboard.LicensingAnalytics)
		api.GET("/zero-trust/summary", dashboard.ZeroTrustSummary)

		ops := handler.NewOperationsHandler(d.ITIL, d.Retail, d.Licenses)
		api.GET("/itil-services/:id/dependencies", ops.ServiceDependencies)
		api.GET("/configuration-items/:id/relationships", ops.CIRelationships)
		api.GET("/user-license-assignments/:id/license", ops.AssignmentLicense)
		api.POST("/corporate-messages/:id/acknowledge", append(write, ops.Acknowledge)...)

		docs := handler.NewDocumentHandler(d.Documents)
		api.GET("/tree/document-categories", docs.CategoryTree)
		api.POST("/documents/:id/revise", append(write, docs.Revise)...)
		api.POST("/documents/:id/attachment", append(write, docs.UploadAttachment)...)
		api.GET("/documents/:id/attachment", docs.DownloadAttachment)
		api.POST("/documents/:id/ai-improvements/generate", append(write, docs.GenerateImprovement)...)
		api.GET("/search/documents", docs.Search)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})
	return r
}
