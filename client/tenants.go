package client

import (
	"context"
	"net/url"
)

// TenantService handles tenant CRUD operations.
type TenantService struct {
	c *Client
}

// List returns all tenants.
func (s *TenantService) List(ctx context.Context) ([]Tenant, error) {
	var tenants []Tenant
	if err := s.c.get(ctx, "/api/v1/tenants", nil, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// Get returns a single tenant by ID.
func (s *TenantService) Get(ctx context.Context, id string) (*Tenant, error) {
	var tenant Tenant
	if err := s.c.get(ctx, "/api/v1/tenants/"+url.PathEscape(id), nil, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Create creates a new tenant.
func (s *TenantService) Create(ctx context.Context, req *CreateTenantRequest) (*Tenant, error) {
	var tenant Tenant
	if err := s.c.post(ctx, "/api/v1/tenants", req, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Update updates an existing tenant by ID.
func (s *TenantService) Update(ctx context.Context, id string, req *UpdateTenantRequest) (*Tenant, error) {
	var tenant Tenant
	if err := s.c.put(ctx, "/api/v1/tenants/"+url.PathEscape(id), req, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Delete removes a tenant by ID.
func (s *TenantService) Delete(ctx context.Context, id string) error {
	return s.c.del(ctx, "/api/v1/tenants/"+url.PathEscape(id), nil)
}
