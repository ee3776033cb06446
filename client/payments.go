package client

import (
	"context"
	"net/url"
)

// PaymentService handles payment CRUD operations.
type PaymentService struct {
	c *Client
}

// List returns all payments.
func (s *PaymentService) List(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	if err := s.c.get(ctx, "/api/v1/payments", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// Get returns a single payment by ID.
func (s *PaymentService) Get(ctx context.Context, id string) (*Payment, error) {
	var payment Payment
	if err := s.c.get(ctx, "/api/v1/payments/"+url.PathEscape(id), nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Create creates a new payment.
func (s *PaymentService) Create(ctx context.Context, req *CreatePaymentRequest) (*Payment, error) {
	var payment Payment
	if err := s.c.post(ctx, "/api/v1/payments", req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Update updates an existing payment by ID. Setting status to PAID stamps
// the paid date server-side if none is given.
func (s *PaymentService) Update(ctx context.Context, id string, req *UpdatePaymentRequest) (*Payment, error) {
	var payment Payment
	if err := s.c.put(ctx, "/api/v1/payments/"+url.PathEscape(id), req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Delete removes a payment by ID.
func (s *PaymentService) Delete(ctx context.Context, id string) error {
	return s.c.del(ctx, "/api/v1/payments/"+url.PathEscape(id), nil)
}
