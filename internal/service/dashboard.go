package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/rentdesk/rentdesk/internal/models"
	"github.com/rentdesk/rentdesk/internal/store"
)

// dashboardListLimit caps the recent/upcoming payment lists.
const dashboardListLimit = 5

// DashboardService builds the read-only dashboard view by joining all five
// collections in memory on every call. No caching; collections are small.
type DashboardService struct {
	store *store.Store
	log   *logrus.Logger
	now   func() time.Time
	group singleflight.Group
}

// NewDashboardService creates a DashboardService using the wall clock.
func NewDashboardService(st *store.Store, log *logrus.Logger) *DashboardService {
	return &DashboardService{store: st, now: time.Now, log: log}
}

// Aggregate computes the dashboard. Concurrent callers share a single
// aggregation pass via singleflight; the result is never cached beyond that.
func (s *DashboardService) Aggregate(_ context.Context) (*models.Dashboard, error) {
	v, err, _ := s.group.Do("dashboard", func() (any, error) {
		return s.aggregate(s.now()), nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*models.Dashboard), nil
}

// aggregate joins the collections at the given reference time. The time is
// a parameter so the "pending this month" metric is deterministic in tests.
func (s *DashboardService) aggregate(now time.Time) *models.Dashboard {
	properties := s.store.Properties()
	tenants := s.store.Tenants()
	leases := s.store.Leases()
	payments := s.store.Payments()
	maintenance := s.store.Maintenance()

	propertyByID := make(map[string]*models.Property, len(properties))
	for i := range properties {
		propertyByID[properties[i].ID] = &properties[i]
	}

	tenantByID := make(map[string]*models.Tenant, len(tenants))
	for i := range tenants {
		tenantByID[tenants[i].ID] = &tenants[i]
	}

	leaseByID := make(map[string]*models.Lease, len(leases))
	for i := range leases {
		leaseByID[leases[i].ID] = &leases[i]
	}

	metrics := models.DashboardMetrics{
		TotalProperties: len(properties),
		TotalTenants:    len(tenants),
	}

	// Occupancy counts only distinct propertyIds of active leases that
	// resolve to a real property; dangling references are not occupied.
	occupiedIDs := make(map[string]struct{})

	for i := range leases {
		lease := &leases[i]
		if lease.Status != models.LeaseActive {
			continue
		}

		metrics.ActiveLeases++
		metrics.TotalMonthlyIncome += lease.MonthlyRent

		if _, ok := propertyByID[lease.PropertyID]; ok {
			occupiedIDs[lease.PropertyID] = struct{}{}
		}
	}

	metrics.OccupiedProperties = len(occupiedIDs)

	if metrics.TotalProperties > 0 {
		metrics.OccupancyRate = int(math.Round(float64(metrics.OccupiedProperties) / float64(metrics.TotalProperties) * 100))
	}

	var recent, upcoming []models.EnrichedPayment

	for i := range payments {
		p := &payments[i]

		switch p.Status {
		case models.PaymentPending:
			if p.DueDate.SameMonth(now) {
				metrics.PendingPayments++
			}

			upcoming = append(upcoming, enrichPayment(p, tenantByID, leaseByID, propertyByID))
		case models.PaymentPaid:
			if p.PaidDate != nil {
				recent = append(recent, enrichPayment(p, tenantByID, leaseByID, propertyByID))
			}
		}
	}

	for _, m := range maintenance {
		if m.Status == models.MaintenanceOpen {
			metrics.OpenMaintenanceRequests++
		}
	}

	sort.Slice(recent, func(i, j int) bool {
		return recent[i].PaidDate.After(recent[j].PaidDate.Time)
	})
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate.Time)
	})

	return &models.Dashboard{
		Metrics:          metrics,
		RecentPayments:   topN(recent, dashboardListLimit),
		UpcomingPayments: topN(upcoming, dashboardListLimit),
	}
}

// enrichPayment joins a payment with its tenant name and, via the lease,
// its property name. A dangling foreign key yields a nil fragment.
func enrichPayment(
	p *models.Payment,
	tenantByID map[string]*models.Tenant,
	leaseByID map[string]*models.Lease,
	propertyByID map[string]*models.Property,
) models.EnrichedPayment {
	enriched := models.EnrichedPayment{Payment: *p}

	if t, ok := tenantByID[p.TenantID]; ok {
		enriched.Tenant = &models.PaymentTenant{FirstName: t.FirstName, LastName: t.LastName}
	}

	if lease, ok := leaseByID[p.LeaseID]; ok {
		if prop, ok := propertyByID[lease.PropertyID]; ok {
			enriched.Property = &models.PaymentProperty{Name: prop.Name}
		}
	}

	return enriched
}

func topN(list []models.EnrichedPayment, n int) []models.EnrichedPayment {
	if list == nil {
		return []models.EnrichedPayment{}
	}

	if len(list) > n {
		return list[:n]
	}

	return list
}
