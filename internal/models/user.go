package models

import "time"

// UserRole is the access level of an application user.
type UserRole string

// User roles.
const (
	RoleAdmin   UserRole = "ADMIN"
	RoleManager UserRole = "MANAGER"
	RoleStaff   UserRole = "STAFF"
)

// User is an application login. Credentials are a fixed in-memory list and
// passwords are compared in plain text; this mirrors the mock auth the app
// ships with and is not a real identity system.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Password  string     `json:"-"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      UserRole   `json:"role"`
	Company   string     `json:"company"`
	Phone     string     `json:"phone"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields on LoginRequest.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return ErrMissingField("email")
	}

	if r.Password == "" {
		return ErrMissingField("password")
	}

	return nil
}

// LoginResponse is the payload returned by a successful login.
type LoginResponse struct {
	User    User   `json:"user"`
	Token   string `json:"token"`
	Message string `json:"message"`
}
