package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"renty/internal/service"
)

// TenantHandler handles tenant profile endpoints.
type TenantHandler struct {
	tenantService service.TenantService
}

// NewTenantHandler creates a new TenantHandler.
func NewTenantHandler(tenantService service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// Create handles POST /api/v1/tenants
func (h *TenantHandler) Create(c *gin.Context) {
	var input service.CreateTenantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), input)
	if err != nil {
		status, code, msg := MapDomainError(err)
		if status == http.StatusInternalServerError {
			log.Printf("tenantHandler.Create: %v", err)
		}
		RespondError(c, status, code, msg)
		return
	}
	RespondCreated(c, tenant)
}

// GetByID handles GET /api/v1/tenants/:id
func (h *TenantHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid tenant ID")
		return
	}

	profile, err := h.tenantService.GetProfile(c.Request.Context(), id)
	if err != nil {
		status, code, msg := MapDomainError(err)
		if status == http.StatusInternalServerError {
			log.Printf("tenantHandler.GetByID: %v", err)
		}
		RespondError(c, status, code, msg)
		return
	}
	RespondOK(c, profile)
}

// Search handles GET /api/v1/tenants/search?name=<name>
func (h *TenantHandler) Search(c *gin.Context) {
	tenants, err := h.tenantService.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		status, code, msg := MapDomainError(err)
		if status == http.StatusInternalServerError {
			log.Printf("tenantHandler.Search: %v", err)
		}
		RespondError(c, status, code, msg)
		return
	}
	RespondOK(c, tenants)
}
