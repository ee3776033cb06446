package client

import (
	"context"
	"net/url"
)

// LeaseService handles lease CRUD operations.
type LeaseService struct {
	c *Client
}

// List returns all leases.
func (s *LeaseService) List(ctx context.Context) ([]Lease, error) {
	var leases []Lease
	if err := s.c.get(ctx, "/api/v1/leases", nil, &leases); err != nil {
		return nil, err
	}
	return leases, nil
}

// Get returns a single lease by ID.
func (s *LeaseService) Get(ctx context.Context, id string) (*Lease, error) {
	var lease Lease
	if err := s.c.get(ctx, "/api/v1/leases/"+url.PathEscape(id), nil, &lease); err != nil {
		return nil, err
	}
	return &lease, nil
}

// Create creates a new lease. Unless GeneratePayments is explicitly false,
// the server also creates monthly pending rent payments over the lease term.
func (s *LeaseService) Create(ctx context.Context, req *CreateLeaseRequest) (*Lease, error) {
	var lease Lease
	if err := s.c.post(ctx, "/api/v1/leases", req, &lease); err != nil {
		return nil, err
	}
	return &lease, nil
}

// Update updates an existing lease by ID.
func (s *LeaseService) Update(ctx context.Context, id string, req *UpdateLeaseRequest) (*Lease, error) {
	var lease Lease
	if err := s.c.put(ctx, "/api/v1/leases/"+url.PathEscape(id), req, &lease); err != nil {
		return nil, err
	}
	return &lease, nil
}

// Delete removes a lease by ID along with its payments.
func (s *LeaseService) Delete(ctx context.Context, id string) error {
	return s.c.del(ctx, "/api/v1/leases/"+url.PathEscape(id), nil)
}
