package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/models"
)

// LeaseHandler serves lease CRUD endpoints.
type LeaseHandler struct {
	repo LeaseRepository
	log  *logrus.Logger
}

// NewLeaseHandler creates a LeaseHandler with the given service and logger.
func NewLeaseHandler(repo LeaseRepository, log *logrus.Logger) *LeaseHandler {
	return &LeaseHandler{repo: repo, log: log}
}

// List handles GET /api/v1/leases.
func (h *LeaseHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListLeases(c.Request.Context()))
}

// Get handles GET /api/v1/leases/:id.
func (h *LeaseHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	lease, err := h.repo.GetLease(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrLeaseNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "lease not found")

			return
		}

		h.log.WithError(err).Error("getting lease")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, lease)
}

// Create handles POST /api/v1/leases. A dangling tenant or property
// reference is a validation failure, not a 404: the lease is the entity
// being created, the references are inputs.
func (h *LeaseHandler) Create(c *gin.Context) {
	var req models.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	lease, err := h.repo.CreateLease(c.Request.Context(), req)
	if err != nil {
		if isReferenceError(err) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

			return
		}

		h.log.WithError(err).Error("creating lease")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{
		"action": "lease.create", "lease_id": lease.ID,
		"property_id": lease.PropertyID, "tenant_id": lease.TenantID,
	}).Info("audit")

	c.JSON(http.StatusCreated, lease)
}

// Update handles PUT /api/v1/leases/:id.
func (h *LeaseHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.UpdateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	lease, err := h.repo.UpdateLease(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrLeaseNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "lease not found")
		case isReferenceError(err):
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
		default:
			h.log.WithError(err).Error("updating lease")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	h.log.WithFields(logrus.Fields{"action": "lease.update", "lease_id": id, "status": lease.Status}).Info("audit")

	c.JSON(http.StatusOK, lease)
}

// Delete handles DELETE /api/v1/leases/:id. Payments belonging to the
// lease are removed with it.
func (h *LeaseHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteLease(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrLeaseNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "lease not found")

			return
		}

		h.log.WithError(err).Error("deleting lease")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "lease.delete", "lease_id": id}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// isReferenceError reports whether err is a dangling foreign-key lookup.
func isReferenceError(err error) bool {
	return errors.Is(err, models.ErrTenantNotFound) || errors.Is(err, models.ErrPropertyNotFound)
}
