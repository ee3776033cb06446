package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/models"
	"github.com/rentdesk/rentdesk/internal/store"
)

// PropertyService implements property CRUD over the record store. Each
// mutation loads the whole collection, edits it in memory, and writes it
// back; there is no locking between the read and the write.
type PropertyService struct {
	store *store.Store
	log   *logrus.Logger
	now   func() time.Time
}

// NewPropertyService creates a PropertyService using the wall clock.
func NewPropertyService(st *store.Store, log *logrus.Logger) *PropertyService {
	return &PropertyService{store: st, now: time.Now, log: log}
}

// ListProperties returns every property.
func (s *PropertyService) ListProperties(_ context.Context) []models.Property {
	return s.store.Properties()
}

// GetProperty returns a property by ID.
func (s *PropertyService) GetProperty(_ context.Context, id string) (*models.Property, error) {
	for _, p := range s.store.Properties() {
		if p.ID == id {
			return &p, nil
		}
	}

	return nil, models.ErrPropertyNotFound
}

// CreateProperty appends a new property record.
func (s *PropertyService) CreateProperty(_ context.Context, req models.CreatePropertyRequest) (*models.Property, error) {
	now := s.now()
	property := models.Property{
		ID:          newID(),
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Type:        req.Type,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		SquareFeet:  req.SquareFeet,
		Description: req.Description,
		RentAmount:  req.RentAmount,
		Status:      req.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	properties := append(s.store.Properties(), property)
	if err := s.store.SaveProperties(properties); err != nil {
		return nil, err
	}

	return &property, nil
}

// UpdateProperty overwrites the given fields of an existing property.
func (s *PropertyService) UpdateProperty(_ context.Context, id string, req models.UpdatePropertyRequest) (*models.Property, error) {
	properties := s.store.Properties()

	for i := range properties {
		if properties[i].ID != id {
			continue
		}

		req.Apply(&properties[i])
		properties[i].UpdatedAt = s.now()

		if err := s.store.SaveProperties(properties); err != nil {
			return nil, err
		}

		return &properties[i], nil
	}

	return nil, models.ErrPropertyNotFound
}

// DeleteProperty removes a property record. Leases referencing it are left
// in place; the dashboard treats such references as dangling.
func (s *PropertyService) DeleteProperty(_ context.Context, id string) error {
	properties := s.store.Properties()

	for i := range properties {
		if properties[i].ID != id {
			continue
		}

		properties = append(properties[:i], properties[i+1:]...)

		return s.store.SaveProperties(properties)
	}

	return models.ErrPropertyNotFound
}
