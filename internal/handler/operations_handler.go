package handler

import (
	"net/http"

	"bizops-dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// OperationsHandler serves the relationship and workflow endpoints that sit
// beside the plain CRUD routes.
type OperationsHandler struct {
	itil     service.ITILService
	retail   service.RetailService
	licenses *service.LicenseResolver
}

func NewOperationsHandler(itil service.ITILService, retail service.RetailService, licenses *service.LicenseResolver) *OperationsHandler {
	return &OperationsHandler{itil: itil, retail: retail, licenses: licenses}
}

// ServiceDependencies handles GET /api/itil-services/:id/dependencies.
func (h *OperationsHandler) ServiceDependencies(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	edges, err := h.itil.ServiceDependencies(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "ITIL service")
		return
	}
	c.JSON(http.StatusOK, edges)
}

// CIRelationships handles GET /api/configuration-items/:id/relationships.
func (h *OperationsHandler) CIRelationships(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	edges, err := h.itil.CIRelationships(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Configuration item")
		return
	}
	c.JSON(http.StatusOK, edges)
}

// AssignmentLicense handles GET /api/user-license-assignments/:id/license.
func (h *OperationsHandler) AssignmentLicense(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resolved, err := h.licenses.ForAssignment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "User license assignment")
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// Acknowledge handles POST /api/corporate-messages/:id/acknowledge.
func (h *OperationsHandler) Acknowledge(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req service.AcknowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ack, err := h.retail.Acknowledge(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Corporate message or store")
		return
	}
	c.JSON(http.StatusCreated, ack)
}
