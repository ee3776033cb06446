package service

import (
	"context"
	"testing"
	"time"

	"github.com/rentdesk/rentdesk/internal/models"
	"github.com/rentdesk/rentdesk/internal/store"
)

func newTestDashboard(t *testing.T, now time.Time) (*DashboardService, *storeFixture) {
	t.Helper()

	st := newTestStore(t)
	svc := NewDashboardService(st, testLogger())
	svc.now = fixedClock(now)

	return svc, &storeFixture{t: t, st: svc.store}
}

func TestAggregateEmptyStore(t *testing.T) {
	t.Parallel()

	svc, _ := newTestDashboard(t, time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC))

	d, err := svc.Aggregate(context.Background())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	if d.Metrics.TotalProperties != 0 || d.Metrics.OccupancyRate != 0 {
		t.Errorf("expected zero metrics, got %+v", d.Metrics)
	}

	if d.RecentPayments == nil || d.UpcomingPayments == nil {
		t.Error("payment lists must be empty slices, not nil")
	}
}

func TestAggregateMetrics(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	svc, fix := newTestDashboard(t, now)

	fix.properties(
		models.Property{ID: "p1", Name: "Unit 1", Status: models.PropertyAvailable},
		models.Property{ID: "p2", Name: "Unit 2", Status: models.PropertyAvailable},
		models.Property{ID: "p3", Name: "Unit 3", Status: models.PropertyMaintenance},
	)
	fix.tenants(
		models.Tenant{ID: "t1", FirstName: "Ada", LastName: "Lovelace"},
	)
	fix.leases(
		models.Lease{ID: "l1", PropertyID: "p1", TenantID: "t1", Status: models.LeaseActive, MonthlyRent: 1200},
		models.Lease{ID: "l2", PropertyID: "p2", TenantID: "t1", Status: models.LeaseExpired, MonthlyRent: 900},
		// Dangling property reference; counted as active income but not occupancy.
		models.Lease{ID: "l3", PropertyID: "ghost", TenantID: "t1", Status: models.LeaseActive, MonthlyRent: 800},
	)
	fix.payments(
		models.Payment{ID: "pay1", LeaseID: "l1", TenantID: "t1", Status: models.PaymentPending, DueDate: models.NewDate(2025, time.May, 1)},
		models.Payment{ID: "pay2", LeaseID: "l1", TenantID: "t1", Status: models.PaymentPending, DueDate: models.NewDate(2025, time.June, 1)},
	)
	fix.maintenance(
		models.MaintenanceRequest{ID: "m1", PropertyID: "p3", Status: models.MaintenanceOpen},
		models.MaintenanceRequest{ID: "m2", PropertyID: "p3", Status: models.MaintenanceCompleted},
	)

	d, err := svc.Aggregate(context.Background())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	m := d.Metrics
	if m.TotalProperties != 3 {
		t.Errorf("totalProperties = %d, want 3", m.TotalProperties)
	}
	if m.OccupiedProperties != 1 {
		t.Errorf("occupiedProperties = %d, want 1", m.OccupiedProperties)
	}
	if m.ActiveLeases != 2 {
		t.Errorf("activeLeases = %d, want 2", m.ActiveLeases)
	}
	if m.TotalMonthlyIncome != 2000 {
		t.Errorf("totalMonthlyIncome = %v, want 2000", m.TotalMonthlyIncome)
	}
	if m.OccupancyRate != 33 {
		t.Errorf("occupancyRate = %d, want 33", m.OccupancyRate)
	}
	if m.PendingPayments != 1 {
		t.Errorf("pendingPayments = %d, want 1 (only May is this month)", m.PendingPayments)
	}
	if m.OpenMaintenanceRequests != 1 {
		t.Errorf("openMaintenanceRequests = %d, want 1", m.OpenMaintenanceRequests)
	}
}

func TestAggregatePaymentLists(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	svc, fix := newTestDashboard(t, now)

	fix.properties(models.Property{ID: "p1", Name: "Unit 1"})
	fix.tenants(models.Tenant{ID: "t1", FirstName: "Ada", LastName: "Lovelace"})
	fix.leases(models.Lease{ID: "l1", PropertyID: "p1", TenantID: "t1", Status: models.LeaseActive})

	paid := func(d models.Date) *models.Date { return &d }

	// Seven pending payments so the upcoming list gets truncated to five.
	payments := []models.Payment{}
	for month := time.June; month <= time.December; month++ {
		payments = append(payments, models.Payment{
			ID: "pend-" + month.String(), LeaseID: "l1", TenantID: "t1",
			Status: models.PaymentPending, DueDate: models.NewDate(2025, month, 1),
		})
	}
	payments = append(payments,
		models.Payment{
			ID: "paid-old", LeaseID: "l1", TenantID: "t1", Status: models.PaymentPaid,
			DueDate: models.NewDate(2025, time.March, 1), PaidDate: paid(models.NewDate(2025, time.March, 3)),
		},
		models.Payment{
			ID: "paid-new", LeaseID: "l1", TenantID: "t1", Status: models.PaymentPaid,
			DueDate: models.NewDate(2025, time.April, 1), PaidDate: paid(models.NewDate(2025, time.April, 2)),
		},
		// PAID without a paid date never shows in recents.
		models.Payment{
			ID: "paid-undated", LeaseID: "l1", TenantID: "t1", Status: models.PaymentPaid,
			DueDate: models.NewDate(2025, time.April, 15),
		},
	)
	fix.payments(payments...)

	d, err := svc.Aggregate(context.Background())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	if len(d.UpcomingPayments) != 5 {
		t.Fatalf("expected 5 upcoming payments, got %d", len(d.UpcomingPayments))
	}

	if d.UpcomingPayments[0].ID != "pend-June" {
		t.Errorf("upcoming not sorted by due date asc: first is %s", d.UpcomingPayments[0].ID)
	}

	if len(d.RecentPayments) != 2 {
		t.Fatalf("expected 2 recent payments, got %d", len(d.RecentPayments))
	}

	if d.RecentPayments[0].ID != "paid-new" {
		t.Errorf("recent not sorted by paid date desc: first is %s", d.RecentPayments[0].ID)
	}

	if d.RecentPayments[0].Tenant == nil || d.RecentPayments[0].Tenant.FirstName != "Ada" {
		t.Errorf("expected tenant fragment, got %+v", d.RecentPayments[0].Tenant)
	}

	if d.RecentPayments[0].Property == nil || d.RecentPayments[0].Property.Name != "Unit 1" {
		t.Errorf("expected property fragment, got %+v", d.RecentPayments[0].Property)
	}
}

func TestAggregateDanglingReferences(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	svc, fix := newTestDashboard(t, now)

	fix.payments(models.Payment{
		ID: "pay1", LeaseID: "missing-lease", TenantID: "missing-tenant",
		Status: models.PaymentPending, DueDate: models.NewDate(2025, time.May, 1),
	})

	d, err := svc.Aggregate(context.Background())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	if len(d.UpcomingPayments) != 1 {
		t.Fatalf("expected 1 upcoming payment, got %d", len(d.UpcomingPayments))
	}

	p := d.UpcomingPayments[0]
	if p.Tenant != nil || p.Property != nil {
		t.Errorf("dangling references must yield nil fragments, got tenant=%+v property=%+v", p.Tenant, p.Property)
	}
}

// storeFixture seeds collections with fatal-on-error helpers.
type storeFixture struct {
	t  *testing.T
	st *store.Store
}

func (f *storeFixture) properties(records ...models.Property) {
	f.t.Helper()
	if err := f.st.SaveProperties(records); err != nil {
		f.t.Fatalf("save properties: %v", err)
	}
}

func (f *storeFixture) tenants(records ...models.Tenant) {
	f.t.Helper()
	if err := f.st.SaveTenants(records); err != nil {
		f.t.Fatalf("save tenants: %v", err)
	}
}

func (f *storeFixture) leases(records ...models.Lease) {
	f.t.Helper()
	if err := f.st.SaveLeases(records); err != nil {
		f.t.Fatalf("save leases: %v", err)
	}
}

func (f *storeFixture) payments(records ...models.Payment) {
	f.t.Helper()
	if err := f.st.SavePayments(records); err != nil {
		f.t.Fatalf("save payments: %v", err)
	}
}

func (f *storeFixture) maintenance(records ...models.MaintenanceRequest) {
	f.t.Helper()
	if err := f.st.SaveMaintenance(records); err != nil {
		f.t.Fatalf("save maintenance: %v", err)
	}
}
