package models

import "time"

// Tenant is a renter. Leases reference tenants by ID; a tenant record does
// not own its leases.
type Tenant struct {
	ID                    string    `json:"id"`
	FirstName             string    `json:"firstName"`
	LastName              string    `json:"lastName"`
	Email                 string    `json:"email"`
	Phone                 string    `json:"phone"`
	EmergencyContactName  string    `json:"emergencyContactName"`
	EmergencyContactPhone string    `json:"emergencyContactPhone"`
	Notes                 string    `json:"notes"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// FullName returns "First Last".
func (t *Tenant) FullName() string {
	return t.FirstName + " " + t.LastName
}

// CreateTenantRequest is the payload for creating a tenant.
type CreateTenantRequest struct {
	FirstName             string `json:"firstName"`
	LastName              string `json:"lastName"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
	Notes                 string `json:"notes"`
}

// Validate checks required fields on CreateTenantRequest.
func (r *CreateTenantRequest) Validate() error {
	if r.FirstName == "" {
		return ErrMissingField("firstName")
	}

	if r.LastName == "" {
		return ErrMissingField("lastName")
	}

	if r.Email == "" {
		return ErrMissingField("email")
	}

	return nil
}

// UpdateTenantRequest is the payload for updating a tenant. Nil fields are
// left unchanged.
type UpdateTenantRequest struct {
	FirstName             *string `json:"firstName,omitempty"`
	LastName              *string `json:"lastName,omitempty"`
	Email                 *string `json:"email,omitempty"`
	Phone                 *string `json:"phone,omitempty"`
	EmergencyContactName  *string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone *string `json:"emergencyContactPhone,omitempty"`
	Notes                 *string `json:"notes,omitempty"`
}

// Validate checks UpdateTenantRequest fields.
func (r *UpdateTenantRequest) Validate() error {
	if r.FirstName != nil && *r.FirstName == "" {
		return ErrMissingField("firstName")
	}

	if r.LastName != nil && *r.LastName == "" {
		return ErrMissingField("lastName")
	}

	if r.Email != nil && *r.Email == "" {
		return ErrMissingField("email")
	}

	return nil
}

// Apply copies the non-nil request fields onto t.
func (r *UpdateTenantRequest) Apply(t *Tenant) {
	if r.FirstName != nil {
		t.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		t.LastName = *r.LastName
	}
	if r.Email != nil {
		t.Email = *r.Email
	}
	if r.Phone != nil {
		t.Phone = *r.Phone
	}
	if r.EmergencyContactName != nil {
		t.EmergencyContactName = *r.EmergencyContactName
	}
	if r.EmergencyContactPhone != nil {
		t.EmergencyContactPhone = *r.EmergencyContactPhone
	}
	if r.Notes != nil {
		t.Notes = *r.Notes
	}
}
