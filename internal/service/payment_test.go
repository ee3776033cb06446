package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rentdesk/rentdesk/internal/models"
)

func TestCreatePaymentRequiresLease(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := NewPaymentService(st, testLogger())

	req := models.CreatePaymentRequest{
		LeaseID:  "ghost",
		TenantID: "t1",
		Amount:   500,
		Type:     models.PaymentRent,
		Status:   models.PaymentPending,
		DueDate:  models.NewDate(2025, time.July, 1),
	}

	if _, err := svc.CreatePayment(context.Background(), req); !errors.Is(err, models.ErrLeaseNotFound) {
		t.Errorf("expected ErrLeaseNotFound, got %v", err)
	}
}

func TestUpdatePaymentStampsPaidDate(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := NewPaymentService(st, testLogger())
	paidAt := time.Date(2025, time.July, 9, 14, 30, 0, 0, time.UTC)
	svc.now = fixedClock(paidAt)

	if err := st.SavePayments([]models.Payment{
		{ID: "pay1", LeaseID: "l1", Status: models.PaymentPending, DueDate: models.NewDate(2025, time.July, 1)},
	}); err != nil {
		t.Fatalf("save payments: %v", err)
	}

	paid := models.PaymentPaid
	payment, err := svc.UpdatePayment(context.Background(), "pay1", models.UpdatePaymentRequest{Status: &paid})
	if err != nil {
		t.Fatalf("update payment: %v", err)
	}

	if payment.PaidDate == nil {
		t.Fatal("expected paid date to be stamped")
	}

	if got := payment.PaidDate.String(); got != "2025-07-09" {
		t.Errorf("paid date = %s, want 2025-07-09", got)
	}
}

func TestUpdatePaymentKeepsExplicitPaidDate(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := NewPaymentService(st, testLogger())

	if err := st.SavePayments([]models.Payment{
		{ID: "pay1", LeaseID: "l1", Status: models.PaymentPending, DueDate: models.NewDate(2025, time.July, 1)},
	}); err != nil {
		t.Fatalf("save payments: %v", err)
	}

	paid := models.PaymentPaid
	explicit := models.NewDate(2025, time.July, 3)
	payment, err := svc.UpdatePayment(context.Background(), "pay1", models.UpdatePaymentRequest{
		Status:   &paid,
		PaidDate: &explicit,
	})
	if err != nil {
		t.Fatalf("update payment: %v", err)
	}

	if got := payment.PaidDate.String(); got != "2025-07-03" {
		t.Errorf("paid date = %s, want the explicit 2025-07-03", got)
	}
}

func TestDeletePayment(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := NewPaymentService(st, testLogger())

	if err := st.SavePayments([]models.Payment{
		{ID: "pay1", LeaseID: "l1"},
		{ID: "pay2", LeaseID: "l1"},
	}); err != nil {
		t.Fatalf("save payments: %v", err)
	}

	if err := svc.DeletePayment(context.Background(), "pay1"); err != nil {
		t.Fatalf("delete payment: %v", err)
	}

	payments := st.Payments()
	if len(payments) != 1 || payments[0].ID != "pay2" {
		t.Errorf("unexpected payments after delete: %+v", payments)
	}

	if err := svc.DeletePayment(context.Background(), "pay1"); !errors.Is(err, models.ErrPaymentNotFound) {
		t.Errorf("expected ErrPaymentNotFound on second delete, got %v", err)
	}
}
