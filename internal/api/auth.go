package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/middleware"
	"github.com/rentdesk/rentdesk/internal/models"
)

// AuthHandler serves the mock login/logout/profile endpoints.
type AuthHandler struct {
	auth AuthProvider
	log  *logrus.Logger
}

// NewAuthHandler creates an AuthHandler with the given provider and logger.
func NewAuthHandler(auth AuthProvider, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid email or password")

			return
		}

		h.log.WithError(err).Error("logging in")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		User:    *user,
		Token:   token,
		Message: "Login successful",
	})
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.ExtractBearerToken(c); token != "" {
		h.auth.Logout(c.Request.Context(), token)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Profile handles GET /api/v1/auth/profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	token := middleware.ExtractBearerToken(c)

	user, err := h.auth.UserByToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid or expired session")

		return
	}

	c.JSON(http.StatusOK, user)
}
