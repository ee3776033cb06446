package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/models"
	"github.com/rentdesk/rentdesk/internal/store"
)

// TenantService implements tenant CRUD over the record store.
type TenantService struct {
	store *store.Store
	log   *logrus.Logger
	now   func() time.Time
}

// NewTenantService creates a TenantService using the wall clock.
func NewTenantService(st *store.Store, log *logrus.Logger) *TenantService {
	return &TenantService{store: st, now: time.Now, log: log}
}

// ListTenants returns every tenant.
func (s *TenantService) ListTenants(_ context.Context) []models.Tenant {
	return s.store.Tenants()
}

// GetTenant returns a tenant by ID.
func (s *TenantService) GetTenant(_ context.Context, id string) (*models.Tenant, error) {
	for _, t := range s.store.Tenants() {
		if t.ID == id {
			return &t, nil
		}
	}

	return nil, models.ErrTenantNotFound
}

// CreateTenant appends a new tenant record.
func (s *TenantService) CreateTenant(_ context.Context, req models.CreateTenantRequest) (*models.Tenant, error) {
	now := s.now()
	tenant := models.Tenant{
		ID:                    newID(),
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		Notes:                 req.Notes,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	tenants := append(s.store.Tenants(), tenant)
	if err := s.store.SaveTenants(tenants); err != nil {
		return nil, err
	}

	return &tenant, nil
}

// UpdateTenant overwrites the given fields of an existing tenant.
func (s *TenantService) UpdateTenant(_ context.Context, id string, req models.UpdateTenantRequest) (*models.Tenant, error) {
	tenants := s.store.Tenants()

	for i := range tenants {
		if tenants[i].ID != id {
			continue
		}

		req.Apply(&tenants[i])
		tenants[i].UpdatedAt = s.now()

		if err := s.store.SaveTenants(tenants); err != nil {
			return nil, err
		}

		return &tenants[i], nil
	}

	return nil, models.ErrTenantNotFound
}

// DeleteTenant removes a tenant record. Leases referencing it are left in
// place as dangling references.
func (s *TenantService) DeleteTenant(_ context.Context, id string) error {
	tenants := s.store.Tenants()

	for i := range tenants {
		if tenants[i].ID != id {
			continue
		}

		tenants = append(tenants[:i], tenants[i+1:]...)

		return s.store.SaveTenants(tenants)
	}

	return models.ErrTenantNotFound
}
