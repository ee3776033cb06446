package client

import (
	"context"
	"net/url"
)

// MaintenanceService handles maintenance request CRUD operations.
type MaintenanceService struct {
	c *Client
}

// List returns all maintenance requests.
func (s *MaintenanceService) List(ctx context.Context) ([]MaintenanceRequest, error) {
	var requests []MaintenanceRequest
	if err := s.c.get(ctx, "/api/v1/maintenance", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// Get returns a single maintenance request by ID.
func (s *MaintenanceService) Get(ctx context.Context, id string) (*MaintenanceRequest, error) {
	var request MaintenanceRequest
	if err := s.c.get(ctx, "/api/v1/maintenance/"+url.PathEscape(id), nil, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// Create creates a new maintenance request.
func (s *MaintenanceService) Create(ctx context.Context, req *CreateMaintenanceRequest) (*MaintenanceRequest, error) {
	var request MaintenanceRequest
	if err := s.c.post(ctx, "/api/v1/maintenance", req, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// Update updates an existing maintenance request by ID.
func (s *MaintenanceService) Update(ctx context.Context, id string, req *UpdateMaintenanceRequest) (*MaintenanceRequest, error) {
	var request MaintenanceRequest
	if err := s.c.put(ctx, "/api/v1/maintenance/"+url.PathEscape(id), req, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// Delete removes a maintenance request by ID.
func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	return s.c.del(ctx, "/api/v1/maintenance/"+url.PathEscape(id), nil)
}
