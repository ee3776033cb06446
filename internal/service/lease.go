package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/models"
	"github.com/rentdesk/rentdesk/internal/store"
)

// LeaseService implements lease CRUD. Every mutation triggers a best-effort
// property-status reconciliation, and deleting a lease always cascades to
// its payments.
type LeaseService struct {
	store      *store.Store
	reconciler *Reconciler
	log        *logrus.Logger
	now        func() time.Time
}

// NewLeaseService creates a LeaseService using the wall clock.
func NewLeaseService(st *store.Store, reconciler *Reconciler, log *logrus.Logger) *LeaseService {
	return &LeaseService{store: st, reconciler: reconciler, now: time.Now, log: log}
}

// ListLeases returns every lease.
func (s *LeaseService) ListLeases(_ context.Context) []models.Lease {
	return s.store.Leases()
}

// GetLease returns a lease by ID.
func (s *LeaseService) GetLease(_ context.Context, id string) (*models.Lease, error) {
	for _, l := range s.store.Leases() {
		if l.ID == id {
			return &l, nil
		}
	}

	return nil, models.ErrLeaseNotFound
}

// CreateLease creates a lease after checking that both foreign keys
// resolve, generates monthly rent payment stubs for the term unless the
// request opts out, and reconciles property statuses.
func (s *LeaseService) CreateLease(ctx context.Context, req models.CreateLeaseRequest) (*models.Lease, error) {
	if err := s.checkReferences(req.TenantID, req.PropertyID); err != nil {
		return nil, err
	}

	now := s.now()
	lease := models.Lease{
		ID:              newID(),
		TenantID:        req.TenantID,
		PropertyID:      req.PropertyID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		MonthlyRent:     req.MonthlyRent,
		SecurityDeposit: req.SecurityDeposit,
		Status:          req.Status,
		Notes:           req.Notes,
		Payments:        []models.Payment{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if req.ShouldGeneratePayments() {
		stubs := generateMonthlyPayments(&lease, now)

		payments := append(s.store.Payments(), stubs...)
		if err := s.store.SavePayments(payments); err != nil {
			return nil, err
		}

		lease.Payments = stubs
		lease.PaymentCount = len(stubs)
	}

	leases := append(s.store.Leases(), lease)
	if err := s.store.SaveLeases(leases); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"lease_id": lease.ID, "property_id": lease.PropertyID,
		"tenant_id": lease.TenantID, "payments": lease.PaymentCount,
	}).Info("lease created")

	s.reconciler.syncBestEffort(ctx)

	return &lease, nil
}

// UpdateLease overwrites the given fields of an existing lease and
// reconciles property statuses.
func (s *LeaseService) UpdateLease(ctx context.Context, id string, req models.UpdateLeaseRequest) (*models.Lease, error) {
	if req.TenantID != nil || req.PropertyID != nil {
		tenantID, propertyID := "", ""
		if req.TenantID != nil {
			tenantID = *req.TenantID
		}
		if req.PropertyID != nil {
			propertyID = *req.PropertyID
		}

		if err := s.checkReferences(tenantID, propertyID); err != nil {
			return nil, err
		}
	}

	leases := s.store.Leases()

	for i := range leases {
		if leases[i].ID != id {
			continue
		}

		req.Apply(&leases[i])
		leases[i].UpdatedAt = s.now()

		if err := s.store.SaveLeases(leases); err != nil {
			return nil, err
		}

		s.reconciler.syncBestEffort(ctx)

		return &leases[i], nil
	}

	return nil, models.ErrLeaseNotFound
}

// DeleteLease removes a lease, cascade-deletes its payments, and
// reconciles property statuses.
func (s *LeaseService) DeleteLease(ctx context.Context, id string) error {
	leases := s.store.Leases()

	index := -1
	for i := range leases {
		if leases[i].ID == id {
			index = i
			break
		}
	}

	if index < 0 {
		return models.ErrLeaseNotFound
	}

	payments := s.store.Payments()
	kept := payments[:0]
	for _, p := range payments {
		if p.LeaseID != id {
			kept = append(kept, p)
		}
	}

	if err := s.store.SavePayments(kept); err != nil {
		return err
	}

	leases = append(leases[:index], leases[index+1:]...)
	if err := s.store.SaveLeases(leases); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"lease_id": id, "payments_removed": len(payments) - len(kept)}).Info("lease deleted")

	s.reconciler.syncBestEffort(ctx)

	return nil
}

// checkReferences verifies that non-empty tenant and property IDs resolve.
func (s *LeaseService) checkReferences(tenantID, propertyID string) error {
	if tenantID != "" {
		found := false
		for _, t := range s.store.Tenants() {
			if t.ID == tenantID {
				found = true
				break
			}
		}

		if !found {
			return models.ErrTenantNotFound
		}
	}

	if propertyID != "" {
		found := false
		for _, p := range s.store.Properties() {
			if p.ID == propertyID {
				found = true
				break
			}
		}

		if !found {
			return models.ErrPropertyNotFound
		}
	}

	return nil
}

// generateMonthlyPayments builds one PENDING rent stub per month of the
// lease term, due on the 1st. A month whose 1st precedes the start date is
// skipped, so a mid-month start owes its first full payment the following
// month.
func generateMonthlyPayments(lease *models.Lease, now time.Time) []models.Payment {
	stubs := []models.Payment{}

	cursor := lease.StartDate.Time
	for !cursor.After(lease.EndDate.Time) {
		due := time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, time.UTC)

		if !due.Before(lease.StartDate.Time) {
			stubs = append(stubs, models.Payment{
				ID:        newID(),
				LeaseID:   lease.ID,
				TenantID:  lease.TenantID,
				Amount:    lease.MonthlyRent,
				Type:      models.PaymentRent,
				Status:    models.PaymentPending,
				DueDate:   models.DateOf(due),
				Notes:     "Monthly rent for " + due.Format("January 2006"),
				CreatedAt: now,
				UpdatedAt: now,
			})
		}

		cursor = cursor.AddDate(0, 1, 0)
	}

	return stubs
}
