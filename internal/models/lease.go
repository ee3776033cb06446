package models

import "time"

// LeaseStatus is the lifecycle state of a lease. A lease with status ACTIVE
// is the sole signal that its property is occupied.
type LeaseStatus string

// Lease statuses.
const (
	LeaseActive     LeaseStatus = "ACTIVE"
	LeasePending    LeaseStatus = "PENDING"
	LeaseExpired    LeaseStatus = "EXPIRED"
	LeaseTerminated LeaseStatus = "TERMINATED"
)

// Lease binds a tenant to a property for a term.
type Lease struct {
	ID              string      `json:"id"`
	TenantID        string      `json:"tenantId"`
	PropertyID      string      `json:"propertyId"`
	StartDate       Date        `json:"startDate"`
	EndDate         Date        `json:"endDate"`
	MonthlyRent     float64     `json:"monthlyRent"`
	SecurityDeposit float64     `json:"securityDeposit"`
	Status          LeaseStatus `json:"status"`
	Notes           string      `json:"notes"`
	Payments        []Payment   `json:"payments,omitempty"`
	PaymentCount    int         `json:"paymentCount"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// validLeaseStatus reports whether s is a known lease status.
func validLeaseStatus(s LeaseStatus) bool {
	switch s {
	case LeaseActive, LeasePending, LeaseExpired, LeaseTerminated:
		return true
	}

	return false
}

// CreateLeaseRequest is the payload for creating a lease.
type CreateLeaseRequest struct {
	TenantID        string      `json:"tenantId"`
	PropertyID      string      `json:"propertyId"`
	StartDate       Date        `json:"startDate"`
	EndDate         Date        `json:"endDate"`
	MonthlyRent     float64     `json:"monthlyRent"`
	SecurityDeposit float64     `json:"securityDeposit"`
	Status          LeaseStatus `json:"status,omitempty"`
	Notes           string      `json:"notes"`

	// GeneratePayments controls whether monthly rent payment stubs are
	// generated for the lease term. Defaults to true when omitted.
	GeneratePayments *bool `json:"generatePayments,omitempty"`
}

// Validate checks required fields and defaults the status to ACTIVE.
func (r *CreateLeaseRequest) Validate() error {
	if r.TenantID == "" {
		return ErrMissingField("tenantId")
	}

	if r.PropertyID == "" {
		return ErrMissingField("propertyId")
	}

	if r.StartDate.IsZero() {
		return ErrMissingField("startDate")
	}

	if r.EndDate.IsZero() {
		return ErrMissingField("endDate")
	}

	if r.EndDate.Before(r.StartDate.Time) {
		return ErrInvalidEnum("endDate", "before startDate")
	}

	if r.MonthlyRent <= 0 {
		return ErrMissingField("monthlyRent")
	}

	if r.SecurityDeposit < 0 {
		return ErrInvalidEnum("securityDeposit", "negative")
	}

	if r.Status == "" {
		r.Status = LeaseActive
	}

	if !validLeaseStatus(r.Status) {
		return ErrInvalidEnum("status", string(r.Status))
	}

	return nil
}

// ShouldGeneratePayments reports whether payment stubs are wanted.
func (r *CreateLeaseRequest) ShouldGeneratePayments() bool {
	return r.GeneratePayments == nil || *r.GeneratePayments
}

// UpdateLeaseRequest is the payload for updating a lease. Nil fields are
// left unchanged.
type UpdateLeaseRequest struct {
	TenantID        *string      `json:"tenantId,omitempty"`
	PropertyID      *string      `json:"propertyId,omitempty"`
	StartDate       *Date        `json:"startDate,omitempty"`
	EndDate         *Date        `json:"endDate,omitempty"`
	MonthlyRent     *float64     `json:"monthlyRent,omitempty"`
	SecurityDeposit *float64     `json:"securityDeposit,omitempty"`
	Status          *LeaseStatus `json:"status,omitempty"`
	Notes           *string      `json:"notes,omitempty"`
}

// Validate checks UpdateLeaseRequest fields.
func (r *UpdateLeaseRequest) Validate() error {
	if r.TenantID != nil && *r.TenantID == "" {
		return ErrMissingField("tenantId")
	}

	if r.PropertyID != nil && *r.PropertyID == "" {
		return ErrMissingField("propertyId")
	}

	if r.MonthlyRent != nil && *r.MonthlyRent <= 0 {
		return ErrInvalidEnum("monthlyRent", "not positive")
	}

	if r.Status != nil && !validLeaseStatus(*r.Status) {
		return ErrInvalidEnum("status", string(*r.Status))
	}

	return nil
}

// Apply copies the non-nil request fields onto l.
func (r *UpdateLeaseRequest) Apply(l *Lease) {
	if r.TenantID != nil {
		l.TenantID = *r.TenantID
	}
	if r.PropertyID != nil {
		l.PropertyID = *r.PropertyID
	}
	if r.StartDate != nil {
		l.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		l.EndDate = *r.EndDate
	}
	if r.MonthlyRent != nil {
		l.MonthlyRent = *r.MonthlyRent
	}
	if r.SecurityDeposit != nil {
		l.SecurityDeposit = *r.SecurityDeposit
	}
	if r.Status != nil {
		l.Status = *r.Status
	}
	if r.Notes != nil {
		l.Notes = *r.Notes
	}
}
