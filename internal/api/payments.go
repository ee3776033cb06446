package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/models"
)

// PaymentHandler serves payment CRUD endpoints.
type PaymentHandler struct {
	repo PaymentRepository
	log  *logrus.Logger
}

// NewPaymentHandler creates a PaymentHandler with the given service and logger.
func NewPaymentHandler(repo PaymentRepository, log *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{repo: repo, log: log}
}

// List handles GET /api/v1/payments.
func (h *PaymentHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListPayments(c.Request.Context()))
}

// Get handles GET /api/v1/payments/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	payment, err := h.repo.GetPayment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "payment not found")

			return
		}

		h.log.WithError(err).Error("getting payment")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, payment)
}

// Create handles POST /api/v1/payments.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	payment, err := h.repo.CreatePayment(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrLeaseNotFound) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, "lease not found")

			return
		}

		h.log.WithError(err).Error("creating payment")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "payment.create", "payment_id": payment.ID, "lease_id": payment.LeaseID}).Info("audit")

	c.JSON(http.StatusCreated, payment)
}

// Update handles PUT /api/v1/payments/:id.
func (h *PaymentHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	payment, err := h.repo.UpdatePayment(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "payment not found")

			return
		}

		h.log.WithError(err).Error("updating payment")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "payment.update", "payment_id": id, "status": payment.Status}).Info("audit")

	c.JSON(http.StatusOK, payment)
}

// Delete handles DELETE /api/v1/payments/:id.
func (h *PaymentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := validatePathID(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeletePayment(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "payment not found")

			return
		}

		h.log.WithError(err).Error("deleting payment")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "payment.delete", "payment_id": id}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
