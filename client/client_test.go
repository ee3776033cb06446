package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestServer creates a test server that routes to the given handler map.
// Keys are "METHOD /path", values are handler funcs.
func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	// Dispatch on "METHOD /path" keys directly; ServeMux only understands
	// method-prefixed patterns on Go 1.22+.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := routes[r.Method+" "+r.URL.Path]; ok {
			handler(w, r)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	c := New(srv.URL, WithToken("test-token"))
	return srv, c
}

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func TestHealth(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/health": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, HealthResponse{Status: "healthy", Version: "1.0.0"})
		},
	})
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("got status %q, want healthy", resp.Status)
	}
}

func TestPropertiesCRUD(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/properties": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, []Property{{ID: "p1", Name: "Unit 1"}})
		},
		"POST /api/v1/properties": func(w http.ResponseWriter, r *http.Request) {
			var req CreatePropertyRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			jsonResponse(w, 201, Property{ID: "p2", Name: req.Name, Status: "AVAILABLE"})
		},
		"GET /api/v1/properties/p1": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, Property{ID: "p1", Name: "Unit 1"})
		},
		"PUT /api/v1/properties/p1": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, Property{ID: "p1", Status: "MAINTENANCE"})
		},
		"DELETE /api/v1/properties/p1": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, map[string]bool{"deleted": true})
		},
	})

	ctx := context.Background()

	properties, err := c.Properties.List(ctx)
	if err != nil || len(properties) != 1 {
		t.Fatalf("List: err=%v, len=%d", err, len(properties))
	}

	property, err := c.Properties.Create(ctx, &CreatePropertyRequest{Name: "Unit 2", Address: "2 Main St"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if property.Name != "Unit 2" {
		t.Errorf("Create: got name %q", property.Name)
	}

	property, err = c.Properties.Get(ctx, "p1")
	if err != nil || property.ID != "p1" {
		t.Fatalf("Get: err=%v", err)
	}

	status := "MAINTENANCE"
	property, err = c.Properties.Update(ctx, "p1", &UpdatePropertyRequest{Status: &status})
	if err != nil || property.Status != "MAINTENANCE" {
		t.Fatalf("Update: err=%v", err)
	}

	if err := c.Properties.Delete(ctx, "p1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestLeaseCreateAndDashboard(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/leases": func(w http.ResponseWriter, r *http.Request) {
			var req CreateLeaseRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			jsonResponse(w, 201, Lease{ID: "l1", TenantID: req.TenantID, PropertyID: req.PropertyID, PaymentCount: 12})
		},
		"GET /api/v1/dashboard": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, Dashboard{
				Metrics:          DashboardMetrics{TotalProperties: 3, OccupancyRate: 67},
				RecentPayments:   []EnrichedPayment{},
				UpcomingPayments: []EnrichedPayment{},
			})
		},
		"POST /api/v1/sync-properties": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, SyncResponse{Success: true, Changed: 2})
		},
	})

	ctx := context.Background()

	lease, err := c.Leases.Create(ctx, &CreateLeaseRequest{
		TenantID: "t1", PropertyID: "p1",
		StartDate: "2025-01-01", EndDate: "2025-12-31", MonthlyRent: 1200,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if lease.PaymentCount != 12 {
		t.Errorf("Create: got paymentCount %d", lease.PaymentCount)
	}

	d, err := c.Dashboard(ctx)
	if err != nil || d.Metrics.OccupancyRate != 67 {
		t.Fatalf("Dashboard: err=%v", err)
	}

	sync, err := c.SyncProperties(ctx)
	if err != nil || sync.Changed != 2 {
		t.Fatalf("SyncProperties: err=%v", err)
	}
}

func TestLoginStoresToken(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/auth/login": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, LoginResponse{User: User{ID: "user-1"}, Token: "fresh-token"})
		},
	})

	resp, err := c.Auth.Login(context.Background(), "admin@propertymanager.com", "admin123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.Token != "fresh-token" {
		t.Errorf("got token %q", resp.Token)
	}
	if c.token != "fresh-token" {
		t.Errorf("client token not updated, got %q", c.token)
	}
}

func TestAPIError(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/tenants/missing": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 404, map[string]string{"code": "not_found", "message": "tenant not found"})
		},
		"POST /api/v1/auth/login": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 401, map[string]string{"code": "unauthorized", "message": "invalid email or password"})
		},
	})

	ctx := context.Background()

	_, err := c.Tenants.Get(ctx, "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("expected not found, got: %v", err)
	}

	_, err = c.Auth.Login(ctx, "x@y.z", "wrong")
	if !IsUnauthorized(err) {
		t.Errorf("expected unauthorized, got: %v", err)
	}
}

func TestAuthHeader(t *testing.T) {
	var gotAuth string
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/health": func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			jsonResponse(w, 200, HealthResponse{Status: "healthy"})
		},
	})

	c.Health(context.Background()) //nolint:errcheck
	if gotAuth != "Bearer test-token" {
		t.Errorf("auth header: got %q, want %q", gotAuth, "Bearer test-token")
	}
}
