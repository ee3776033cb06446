package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/models"
)

// AuthService authenticates against a fixed in-memory user list and tracks
// sessions in memory. Tokens are opaque UUIDs with no expiry; restarting
// the server logs everyone out. Mock auth by design.
type AuthService struct {
	mu       sync.Mutex
	users    []models.User
	sessions map[string]string // token -> user ID
	log      *logrus.Logger
	now      func() time.Time
}

// NewAuthService creates an AuthService seeded with the built-in users.
func NewAuthService(log *logrus.Logger) *AuthService {
	return &AuthService{
		users:    defaultUsers(),
		sessions: make(map[string]string),
		now:      time.Now,
		log:      log,
	}
}

// Login checks credentials, records a session, and returns the user with a
// bearer token.
func (s *AuthService) Login(_ context.Context, email, password string) (*models.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		u := &s.users[i]
		if !strings.EqualFold(u.Email, email) || !u.IsActive {
			continue
		}

		if subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) != 1 {
			break
		}

		last := s.now()
		u.LastLogin = &last

		token := uuid.NewString()
		s.sessions[token] = u.ID

		s.log.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("login")

		user := *u

		return &user, token, nil
	}

	return nil, "", models.ErrInvalidCredentials
}

// Logout revokes the session for the given token. Unknown tokens are a
// no-op; logout is idempotent.
func (s *AuthService) Logout(_ context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}

// UserByToken resolves a session token to its user.
func (s *AuthService) UserByToken(_ context.Context, token string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.sessions[token]
	if !ok {
		return nil, models.ErrSessionNotFound
	}

	for i := range s.users {
		if s.users[i].ID == userID {
			user := s.users[i]

			return &user, nil
		}
	}

	return nil, models.ErrSessionNotFound
}

// defaultUsers is the built-in credential list the desktop app ships with.
func defaultUsers() []models.User {
	created := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	return []models.User{
		{
			ID: "user-1", Email: "admin@propertymanager.com", Password: "admin123",
			FirstName: "John", LastName: "Admin", Role: models.RoleAdmin,
			Company: "Property Management Co.", Phone: "(555) 123-4567",
			IsActive: true, CreatedAt: created,
		},
		{
			ID: "user-2", Email: "manager@propertymanager.com", Password: "manager123",
			FirstName: "Sarah", LastName: "Manager", Role: models.RoleManager,
			Company: "Property Management Co.", Phone: "(555) 987-6543",
			IsActive: true, CreatedAt: created,
		},
		{
			ID: "user-3", Email: "staff@propertymanager.com", Password: "staff123",
			FirstName: "Mike", LastName: "Staff", Role: models.RoleStaff,
			Company: "Property Management Co.", Phone: "(555) 555-1234",
			IsActive: true, CreatedAt: created,
		},
	}
}
