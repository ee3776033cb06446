package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/metrics"
	"github.com/rentdesk/rentdesk/internal/models"
	"github.com/rentdesk/rentdesk/internal/store"
)

// Reconciler keeps each property's status consistent with the set of active
// leases. A property is OCCUPIED iff at least one ACTIVE lease references
// it; otherwise it reverts to AVAILABLE. MAINTENANCE and UNAVAILABLE are
// user-set and never changed here.
type Reconciler struct {
	store *store.Store
	log   *logrus.Logger
	now   func() time.Time
}

// NewReconciler creates a Reconciler using the wall clock.
func NewReconciler(st *store.Store, log *logrus.Logger) *Reconciler {
	return &Reconciler{store: st, now: time.Now, log: log}
}

// SyncPropertyStatuses recomputes occupancy from the lease collection and
// persists only properties whose status flipped. It is idempotent: a second
// run with unchanged input writes nothing. Returns the number of flips.
func (r *Reconciler) SyncPropertyStatuses(_ context.Context) (int, error) {
	leases := r.store.Leases()
	properties := r.store.Properties()

	occupied := make(map[string]struct{})
	for _, lease := range leases {
		if lease.Status == models.LeaseActive {
			occupied[lease.PropertyID] = struct{}{}
		}
	}

	changed := 0

	for i := range properties {
		p := &properties[i]
		_, hasActiveLease := occupied[p.ID]

		switch {
		case hasActiveLease && p.Status == models.PropertyAvailable:
			p.Status = models.PropertyOccupied
		case !hasActiveLease && p.Status == models.PropertyOccupied:
			p.Status = models.PropertyAvailable
		default:
			continue
		}

		p.UpdatedAt = r.now()
		changed++
		r.log.WithFields(logrus.Fields{"property_id": p.ID, "status": p.Status}).Info("property status reconciled")
	}

	if changed == 0 {
		return 0, nil
	}

	if err := r.store.SaveProperties(properties); err != nil {
		return 0, err
	}

	metrics.ReconcileFlips.Add(float64(changed))

	return changed, nil
}

// syncBestEffort runs reconciliation after a lease mutation. Failures are
// logged, never propagated: the triggering operation already succeeded and
// a stale property status beats failing it.
func (r *Reconciler) syncBestEffort(ctx context.Context) {
	if _, err := r.SyncPropertyStatuses(ctx); err != nil {
		r.log.WithError(err).Error("property status reconciliation failed")
	}
}
