package client

import "context"

// AuthService handles login, logout and profile lookup.
type AuthService struct {
	c *Client
}

// loginRequest is the login payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and stores the returned session token on the client.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := s.c.post(ctx, "/api/v1/auth/login", &loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	s.c.SetToken(resp.Token)
	return &resp, nil
}

// Logout invalidates the current session token.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.c.post(ctx, "/api/v1/auth/logout", nil, nil); err != nil {
		return err
	}
	s.c.SetToken("")
	return nil
}

// Profile returns the user bound to the current session token.
func (s *AuthService) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := s.c.get(ctx, "/api/v1/auth/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
