// Package models defines the record types persisted by the rentdesk store.
package models

import "time"

// PropertyStatus is the occupancy state of a property.
//
// OCCUPIED and AVAILABLE are derived from leases by the status reconciler;
// MAINTENANCE and UNAVAILABLE are user-set and never touched by it.
type PropertyStatus string

// Property statuses.
const (
	PropertyAvailable   PropertyStatus = "AVAILABLE"
	PropertyOccupied    PropertyStatus = "OCCUPIED"
	PropertyMaintenance PropertyStatus = "MAINTENANCE"
	PropertyUnavailable PropertyStatus = "UNAVAILABLE"
)

// PropertyType is the kind of rental unit.
type PropertyType string

// Property types.
const (
	PropertyApartment PropertyType = "APARTMENT"
	PropertyHouse     PropertyType = "HOUSE"
	PropertyCondo     PropertyType = "CONDO"
	PropertyStudio    PropertyType = "STUDIO"
	PropertyTownhouse PropertyType = "TOWNHOUSE"
	PropertyOther     PropertyType = "OTHER"
)

// Property is a rental unit under management.
type Property struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	ZipCode     string         `json:"zipCode"`
	Type        PropertyType   `json:"type"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   float64        `json:"bathrooms"`
	SquareFeet  int            `json:"squareFeet"`
	Description string         `json:"description"`
	ImageURL    *string        `json:"imageUrl"`
	RentAmount  float64        `json:"rentAmount"`
	Status      PropertyStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// validPropertyStatus reports whether s is a known property status.
func validPropertyStatus(s PropertyStatus) bool {
	switch s {
	case PropertyAvailable, PropertyOccupied, PropertyMaintenance, PropertyUnavailable:
		return true
	}

	return false
}

// validPropertyType reports whether t is a known property type.
func validPropertyType(t PropertyType) bool {
	switch t {
	case PropertyApartment, PropertyHouse, PropertyCondo, PropertyStudio, PropertyTownhouse, PropertyOther:
		return true
	}

	return false
}

// CreatePropertyRequest is the payload for creating a property.
type CreatePropertyRequest struct {
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	ZipCode     string         `json:"zipCode"`
	Type        PropertyType   `json:"type"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   float64        `json:"bathrooms"`
	SquareFeet  int            `json:"squareFeet"`
	Description string         `json:"description"`
	RentAmount  float64        `json:"rentAmount"`
	Status      PropertyStatus `json:"status,omitempty"`
}

// Validate checks required fields and defaults the status to AVAILABLE.
func (r *CreatePropertyRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingField("name")
	}

	if r.Address == "" {
		return ErrMissingField("address")
	}

	if r.Type == "" {
		r.Type = PropertyApartment
	}

	if !validPropertyType(r.Type) {
		return ErrInvalidEnum("type", string(r.Type))
	}

	if r.RentAmount < 0 {
		return ErrInvalidEnum("rentAmount", "negative")
	}

	if r.Status == "" {
		r.Status = PropertyAvailable
	}

	if !validPropertyStatus(r.Status) {
		return ErrInvalidEnum("status", string(r.Status))
	}

	return nil
}

// UpdatePropertyRequest is the payload for updating a property. Nil fields
// are left unchanged.
type UpdatePropertyRequest struct {
	Name        *string         `json:"name,omitempty"`
	Address     *string         `json:"address,omitempty"`
	City        *string         `json:"city,omitempty"`
	State       *string         `json:"state,omitempty"`
	ZipCode     *string         `json:"zipCode,omitempty"`
	Type        *PropertyType   `json:"type,omitempty"`
	Bedrooms    *int            `json:"bedrooms,omitempty"`
	Bathrooms   *float64        `json:"bathrooms,omitempty"`
	SquareFeet  *int            `json:"squareFeet,omitempty"`
	Description *string         `json:"description,omitempty"`
	RentAmount  *float64        `json:"rentAmount,omitempty"`
	Status      *PropertyStatus `json:"status,omitempty"`
}

// Validate checks UpdatePropertyRequest fields.
func (r *UpdatePropertyRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return ErrMissingField("name")
	}

	if r.Type != nil && !validPropertyType(*r.Type) {
		return ErrInvalidEnum("type", string(*r.Type))
	}

	if r.RentAmount != nil && *r.RentAmount < 0 {
		return ErrInvalidEnum("rentAmount", "negative")
	}

	if r.Status != nil && !validPropertyStatus(*r.Status) {
		return ErrInvalidEnum("status", string(*r.Status))
	}

	return nil
}

// Apply copies the non-nil request fields onto p.
func (r *UpdatePropertyRequest) Apply(p *Property) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Address != nil {
		p.Address = *r.Address
	}
	if r.City != nil {
		p.City = *r.City
	}
	if r.State != nil {
		p.State = *r.State
	}
	if r.ZipCode != nil {
		p.ZipCode = *r.ZipCode
	}
	if r.Type != nil {
		p.Type = *r.Type
	}
	if r.Bedrooms != nil {
		p.Bedrooms = *r.Bedrooms
	}
	if r.Bathrooms != nil {
		p.Bathrooms = *r.Bathrooms
	}
	if r.SquareFeet != nil {
		p.SquareFeet = *r.SquareFeet
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.RentAmount != nil {
		p.RentAmount = *r.RentAmount
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
}
