package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/models"
)

// TenantHandler serves tenant CRUD endpoints.
type TenantHandler struct {
	repo TenantRepository
	log  *logrus.Logger
}

// NewTenantHandler creates a TenantHandler with the given service and logger.
func NewTenantHandler(repo TenantRepository, log *logrus.Logger) *TenantHandler {
	return &TenantHandler{repo: repo, log: log}
}

// List handles GET /api/v1/tenants.
func (h *TenantHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListTenants(c.Request.Context()))
}

// Get handles GET /api/v1/tenants/:id.
func (h *TenantHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	tenant, err := h.repo.GetTenant(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrTenantNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "tenant not found")

			return
		}

		h.log.WithError(err).Error("getting tenant")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, tenant)
}

// Create handles POST /api/v1/tenants.
func (h *TenantHandler) Create(c *gin.Context) {
	var req models.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	tenant, err := h.repo.CreateTenant(c.Request.Context(), req)
	if err != nil {
		h.log.WithError(err).Error("creating tenant")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "tenant.create", "tenant_id": tenant.ID}).Info("audit")

	c.JSON(http.StatusCreated, tenant)
}

// Update handles PUT /api/v1/tenants/:id.
func (h *TenantHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	tenant, err := h.repo.UpdateTenant(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrTenantNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "tenant not found")

			return
		}

		h.log.WithError(err).Error("updating tenant")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "tenant.update", "tenant_id": id}).Info("audit")

	c.JSON(http.StatusOK, tenant)
}

// Delete handles DELETE /api/v1/tenants/:id.
func (h *TenantHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteTenant(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrTenantNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "tenant not found")

			return
		}

		h.log.WithError(err).Error("deleting tenant")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "tenant.delete", "tenant_id": id}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
