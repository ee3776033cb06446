package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for entity lookups.
var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrLeaseNotFound       = errors.New("lease not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrMaintenanceNotFound = errors.New("maintenance request not found")
)

// Sentinel errors for authentication.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
)

// ErrMissingField returns a validation error for a required field.
func ErrMissingField(field string) error {
	return fmt.Errorf("%s is required", field)
}

// ErrInvalidEnum returns a validation error for an out-of-range enum value.
func ErrInvalidEnum(field, value string) error {
	return fmt.Errorf("invalid %s %q", field, value)
}
