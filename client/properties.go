package client

import (
	"context"
	"net/url"
)

// PropertyService handles property CRUD operations.
type PropertyService struct {
	c *Client
}

// List returns all properties.
func (s *PropertyService) List(ctx context.Context) ([]Property, error) {
	var properties []Property
	if err := s.c.get(ctx, "/api/v1/properties", nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// Get returns a single property by ID.
func (s *PropertyService) Get(ctx context.Context, id string) (*Property, error) {
	var property Property
	if err := s.c.get(ctx, "/api/v1/properties/"+url.PathEscape(id), nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// Create creates a new property.
func (s *PropertyService) Create(ctx context.Context, req *CreatePropertyRequest) (*Property, error) {
	var property Property
	if err := s.c.post(ctx, "/api/v1/properties", req, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// Update updates an existing property by ID.
func (s *PropertyService) Update(ctx context.Context, id string, req *UpdatePropertyRequest) (*Property, error) {
	var property Property
	if err := s.c.put(ctx, "/api/v1/properties/"+url.PathEscape(id), req, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// Delete removes a property by ID.
func (s *PropertyService) Delete(ctx context.Context, id string) error {
	return s.c.del(ctx, "/api/v1/properties/"+url.PathEscape(id), nil)
}
