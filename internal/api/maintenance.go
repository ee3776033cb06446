package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/models"
)

// MaintenanceHandler serves maintenance-request CRUD endpoints.
type MaintenanceHandler struct {
	repo MaintenanceRepository
	log  *logrus.Logger
}

// NewMaintenanceHandler creates a MaintenanceHandler with the given service and logger.
func NewMaintenanceHandler(repo MaintenanceRepository, log *logrus.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{repo: repo, log: log}
}

// List handles GET /api/v1/maintenance.
func (h *MaintenanceHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListMaintenance(c.Request.Context()))
}

// Get handles GET /api/v1/maintenance/:id.
func (h *MaintenanceHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	request, err := h.repo.GetMaintenance(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrMaintenanceNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "maintenance request not found")

			return
		}

		h.log.WithError(err).Error("getting maintenance request")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, request)
}

// Create handles POST /api/v1/maintenance.
func (h *MaintenanceHandler) Create(c *gin.Context) {
	var req models.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	request, err := h.repo.CreateMaintenance(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, "property not found")

			return
		}

		h.log.WithError(err).Error("creating maintenance request")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "maintenance.create", "request_id": request.ID, "property_id": request.PropertyID}).Info("audit")

	c.JSON(http.StatusCreated, request)
}

// Update handles PUT /api/v1/maintenance/:id.
func (h *MaintenanceHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	request, err := h.repo.UpdateMaintenance(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrMaintenanceNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "maintenance request not found")

			return
		}

		h.log.WithError(err).Error("updating maintenance request")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "maintenance.update", "request_id": id, "status": request.Status}).Info("audit")

	c.JSON(http.StatusOK, request)
}

// Delete handles DELETE /api/v1/maintenance/:id.
func (h *MaintenanceHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteMaintenance(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrMaintenanceNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "maintenance request not found")

			return
		}

		h.log.WithError(err).Error("deleting maintenance request")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "maintenance.delete", "request_id": id}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
