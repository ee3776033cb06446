package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/models"
)

// PropertyHandler serves property CRUD endpoints.
type PropertyHandler struct {
	repo PropertyRepository
	log  *logrus.Logger
}

// NewPropertyHandler creates a PropertyHandler with the given service and logger.
func NewPropertyHandler(repo PropertyRepository, log *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{repo: repo, log: log}
}

// List handles GET /api/v1/properties.
func (h *PropertyHandler) List(c *gin.Context) {
	properties := h.repo.ListProperties(c.Request.Context())

	c.JSON(http.StatusOK, properties)
}

// Get handles GET /api/v1/properties/:id.
func (h *PropertyHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	property, err := h.repo.GetProperty(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "property not found")

			return
		}

		h.log.WithError(err).Error("getting property")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, property)
}

// Create handles POST /api/v1/properties.
func (h *PropertyHandler) Create(c *gin.Context) {
	var req models.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	property, err := h.repo.CreateProperty(c.Request.Context(), req)
	if err != nil {
		h.log.WithError(err).Error("creating property")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "property.create", "property_id": property.ID}).Info("audit")

	c.JSON(http.StatusCreated, property)
}

// Update handles PUT /api/v1/properties/:id.
func (h *PropertyHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	property, err := h.repo.UpdateProperty(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "property not found")

			return
		}

		h.log.WithError(err).Error("updating property")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "property.update", "property_id": id}).Info("audit")

	c.JSON(http.StatusOK, property)
}

// Delete handles DELETE /api/v1/properties/:id.
func (h *PropertyHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteProperty(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "property not found")

			return
		}

		h.log.WithError(err).Error("deleting property")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "property.delete", "property_id": id}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
