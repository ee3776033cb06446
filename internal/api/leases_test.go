package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rentdesk/rentdesk/internal/api"
	"github.com/rentdesk/rentdesk/internal/models"
)

func TestLeaseCreate_Valid(t *testing.T) {
	t.Parallel()

	repo := &mockLeaseRepo{
		createFn: func(_ context.Context, req models.CreateLeaseRequest) (*models.Lease, error) {
			return &models.Lease{
				ID:           "lease-1",
				TenantID:     req.TenantID,
				PropertyID:   req.PropertyID,
				StartDate:    req.StartDate,
				EndDate:      req.EndDate,
				MonthlyRent:  req.MonthlyRent,
				Status:       req.Status,
				PaymentCount: 12,
			}, nil
		},
	}

	r := newTestRouter()
	h := api.NewLeaseHandler(repo, testLogger())
	r.POST("/leases", h.Create)

	body := `{"tenantId":"t1","propertyId":"p1","startDate":"2025-01-01","endDate":"2025-12-31","monthlyRent":1200}`
	w := doRequest(r, http.MethodPost, "/leases", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var lease models.Lease
	if err := json.Unmarshal(w.Body.Bytes(), &lease); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if lease.Status != models.LeaseActive {
		t.Errorf("expected defaulted status ACTIVE, got %q", lease.Status)
	}

	if lease.PaymentCount != 12 {
		t.Errorf("expected paymentCount 12, got %d", lease.PaymentCount)
	}
}

func TestLeaseCreate_EndBeforeStart(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewLeaseHandler(&mockLeaseRepo{}, testLogger())
	r.POST("/leases", h.Create)

	body := `{"tenantId":"t1","propertyId":"p1","startDate":"2025-12-31","endDate":"2025-01-01","monthlyRent":1200}`
	w := doRequest(r, http.MethodPost, "/leases", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLeaseCreate_UnknownTenantIsValidationError(t *testing.T) {
	t.Parallel()

	repo := &mockLeaseRepo{
		createFn: func(_ context.Context, _ models.CreateLeaseRequest) (*models.Lease, error) {
			return nil, models.ErrTenantNotFound
		},
	}

	r := newTestRouter()
	h := api.NewLeaseHandler(repo, testLogger())
	r.POST("/leases", h.Create)

	body := `{"tenantId":"ghost","propertyId":"p1","startDate":"2025-01-01","endDate":"2025-12-31","monthlyRent":1200}`
	w := doRequest(r, http.MethodPost, "/leases", body)

	// A dangling reference in the payload is the caller's fault, not a 404.
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLeaseGet_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockLeaseRepo{
		getFn: func(_ context.Context, _ string) (*models.Lease, error) {
			return nil, models.ErrLeaseNotFound
		},
	}

	r := newTestRouter()
	h := api.NewLeaseHandler(repo, testLogger())
	r.GET("/leases/:id", h.Get)

	w := doRequest(r, http.MethodGet, "/leases/missing", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLeaseDelete_OK(t *testing.T) {
	t.Parallel()

	deleted := ""
	repo := &mockLeaseRepo{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id

			return nil
		},
	}

	r := newTestRouter()
	h := api.NewLeaseHandler(repo, testLogger())
	r.DELETE("/leases/:id", h.Delete)

	w := doRequest(r, http.MethodDelete, "/leases/l1", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if deleted != "l1" {
		t.Errorf("expected delete of l1, got %q", deleted)
	}
}
