package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/frontdesk-suite/service-frontdesk/internal/application"
	"github.com/frontdesk-suite/service-frontdesk/internal/response"
)

// ProviderHandler handles HTTP requests for provider operations.
type ProviderHandler struct {
	service *application.ProviderService
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(service *application.ProviderService) *ProviderHandler {
	return &ProviderHandler{service: service}
}

// RegisterRoutes registers all provider routes on the given router group.
func (h *ProviderHandler) RegisterRoutes(r *gin.RouterGroup) {
	providers := r.Group("/api/v1/providers")
	{
		providers.POST("", h.RegisterProvider)
		providers.GET("", h.ListProviders)
		providers.GET("/:id", h.GetProvider)
		providers.PATCH("/:id", h.UpdateProvider)
		providers.POST("/:id/deactivate", h.DeactivateProvider)
		providers.DELETE("/:id", h.DeleteProvider)
	}
}

// RegisterProvider handles POST /api/v1/providers.
func (h *ProviderHandler) RegisterProvider(c *gin.Context) {
	var req application.RegisterProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.RegisterProvider(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListProviders handles GET /api/v1/providers with an optional sector filter.
func (h *ProviderHandler) ListProviders(c *gin.Context) {
	page, limit := parsePagination(c)
	sector := c.Query("sector")

	result, err := h.service.ListProviders(c.Request.Context(), sector, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// GetProvider handles GET /api/v1/providers/:id.
func (h *ProviderHandler) GetProvider(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid provider ID")
		return
	}

	result, err := h.service.GetProvider(c.Request.Context(), providerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateProvider handles PATCH /api/v1/providers/:id.
func (h *ProviderHandler) UpdateProvider(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid provider ID")
		return
	}

	var req application.UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateProvider(c.Request.Context(), providerID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeactivateProvider handles POST /api/v1/providers/:id/deactivate.
func (h *ProviderHandler) DeactivateProvider(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid provider ID")
		return
	}

	result, err := h.service.DeactivateProvider(c.Request.Context(), providerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteProvider handles DELETE /api/v1/providers/:id.
func (h *ProviderHandler) DeleteProvider(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid provider ID")
		return
	}

	if err := h.service.DeleteProvider(c.Request.Context(), providerID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "provider deleted"})
}
