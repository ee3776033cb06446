package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/models"
)

// Context keys set by Auth for downstream handlers.
const (
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"
)

// SessionLookup resolves a bearer token to the logged-in user.
type SessionLookup interface {
	UserByToken(ctx context.Context, token string) (*models.User, error)
}

// ExtractBearerToken returns the token from the Authorization header, or ""
// if the header is missing or not a Bearer scheme.
func ExtractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimSpace(header[len(prefix):])
}

// Auth returns Gin middleware that authenticates requests via bearer token
// and stores the user's ID and role in the request context.
func Auth(lookup SessionLookup, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractBearerToken(c)
		if token == "" {
			respondError(c, http.StatusUnauthorized, "unauthorized", "missing or invalid authorization header")

			return
		}

		user, err := lookup.UserByToken(c.Request.Context(), token)
		if err != nil {
			log.WithField("client", c.ClientIP()).Warn("rejected request with unknown session token")
			respondError(c, http.StatusUnauthorized, "unauthorized", "invalid or expired session")

			return
		}

		c.Set(UserIDKey, user.ID)
		c.Set(UserRoleKey, string(user.Role))
		c.Next()
	}
}
