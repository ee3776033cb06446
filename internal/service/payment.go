package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/models"
	"github.com/rentdesk/rentdesk/internal/store"
)

// PaymentService implements payment CRUD over the record store.
type PaymentService struct {
	store *store.Store
	log   *logrus.Logger
	now   func() time.Time
}

// NewPaymentService creates a PaymentService using the wall clock.
func NewPaymentService(st *store.Store, log *logrus.Logger) *PaymentService {
	return &PaymentService{store: st, now: time.Now, log: log}
}

// ListPayments returns every payment.
func (s *PaymentService) ListPayments(_ context.Context) []models.Payment {
	return s.store.Payments()
}

// GetPayment returns a payment by ID.
func (s *PaymentService) GetPayment(_ context.Context, id string) (*models.Payment, error) {
	for _, p := range s.store.Payments() {
		if p.ID == id {
			return &p, nil
		}
	}

	return nil, models.ErrPaymentNotFound
}

// CreatePayment appends a new payment record. The lease reference must
// resolve; the tenant ID is taken as given (it may duplicate the lease's).
func (s *PaymentService) CreatePayment(_ context.Context, req models.CreatePaymentRequest) (*models.Payment, error) {
	leaseFound := false
	for _, l := range s.store.Leases() {
		if l.ID == req.LeaseID {
			leaseFound = true
			break
		}
	}

	if !leaseFound {
		return nil, models.ErrLeaseNotFound
	}

	now := s.now()
	payment := models.Payment{
		ID:        newID(),
		LeaseID:   req.LeaseID,
		TenantID:  req.TenantID,
		Amount:    req.Amount,
		Type:      req.Type,
		Status:    req.Status,
		DueDate:   req.DueDate,
		PaidDate:  req.PaidDate,
		Method:    req.Method,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	payments := append(s.store.Payments(), payment)
	if err := s.store.SavePayments(payments); err != nil {
		return nil, err
	}

	return &payment, nil
}

// UpdatePayment overwrites the given fields of an existing payment. When
// the status moves to PAID and no paid date was supplied, today is stamped.
func (s *PaymentService) UpdatePayment(_ context.Context, id string, req models.UpdatePaymentRequest) (*models.Payment, error) {
	payments := s.store.Payments()

	for i := range payments {
		if payments[i].ID != id {
			continue
		}

		req.Apply(&payments[i])

		if payments[i].Status == models.PaymentPaid && payments[i].PaidDate == nil {
			paid := models.DateOf(s.now())
			payments[i].PaidDate = &paid
		}

		payments[i].UpdatedAt = s.now()

		if err := s.store.SavePayments(payments); err != nil {
			return nil, err
		}

		return &payments[i], nil
	}

	return nil, models.ErrPaymentNotFound
}

// DeletePayment removes a payment record.
func (s *PaymentService) DeletePayment(_ context.Context, id string) error {
	payments := s.store.Payments()

	for i := range payments {
		if payments[i].ID != id {
			continue
		}

		payments = append(payments[:i], payments[i+1:]...)

		return s.store.SavePayments(payments)
	}

	return models.ErrPaymentNotFound
}
