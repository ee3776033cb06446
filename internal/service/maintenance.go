package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/models"
	"github.com/rentdesk/rentdesk/internal/store"
)

// MaintenanceService implements maintenance-request CRUD over the record store.
type MaintenanceService struct {
	store *store.Store
	log   *logrus.Logger
	now   func() time.Time
}

// NewMaintenanceService creates a MaintenanceService using the wall clock.
func NewMaintenanceService(st *store.Store, log *logrus.Logger) *MaintenanceService {
	return &MaintenanceService{store: st, now: time.Now, log: log}
}

// ListMaintenance returns every maintenance request.
func (s *MaintenanceService) ListMaintenance(_ context.Context) []models.MaintenanceRequest {
	return s.store.Maintenance()
}

// GetMaintenance returns a maintenance request by ID.
func (s *MaintenanceService) GetMaintenance(_ context.Context, id string) (*models.MaintenanceRequest, error) {
	for _, m := range s.store.Maintenance() {
		if m.ID == id {
			return &m, nil
		}
	}

	return nil, models.ErrMaintenanceNotFound
}

// CreateMaintenance appends a new maintenance request. The property
// reference must resolve.
func (s *MaintenanceService) CreateMaintenance(_ context.Context, req models.CreateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	propertyFound := false
	for _, p := range s.store.Properties() {
		if p.ID == req.PropertyID {
			propertyFound = true
			break
		}
	}

	if !propertyFound {
		return nil, models.ErrPropertyNotFound
	}

	now := s.now()

	requested := req.RequestedDate
	if requested.IsZero() {
		requested = models.DateOf(now)
	}

	request := models.MaintenanceRequest{
		ID:            newID(),
		PropertyID:    req.PropertyID,
		TenantID:      req.TenantID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Priority:      req.Priority,
		Status:        req.Status,
		AssignedTo:    req.AssignedTo,
		EstimatedCost: req.EstimatedCost,
		RequestedDate: requested,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	records := append(s.store.Maintenance(), request)
	if err := s.store.SaveMaintenance(records); err != nil {
		return nil, err
	}

	return &request, nil
}

// UpdateMaintenance overwrites the given fields of an existing request.
// Moving to COMPLETED without a completion date stamps today.
func (s *MaintenanceService) UpdateMaintenance(_ context.Context, id string, req models.UpdateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	records := s.store.Maintenance()

	for i := range records {
		if records[i].ID != id {
			continue
		}

		req.Apply(&records[i])

		if records[i].Status == models.MaintenanceCompleted && records[i].CompletedDate == nil {
			done := models.DateOf(s.now())
			records[i].CompletedDate = &done
		}

		records[i].UpdatedAt = s.now()

		if err := s.store.SaveMaintenance(records); err != nil {
			return nil, err
		}

		return &records[i], nil
	}

	return nil, models.ErrMaintenanceNotFound
}

// DeleteMaintenance removes a maintenance request.
func (s *MaintenanceService) DeleteMaintenance(_ context.Context, id string) error {
	records := s.store.Maintenance()

	for i := range records {
		if records[i].ID != id {
			continue
		}

		records = append(records[:i], records[i+1:]...)

		return s.store.SaveMaintenance(records)
	}

	return models.ErrMaintenanceNotFound
}
