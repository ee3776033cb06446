package service

import (
	"context"
	"testing"
	"time"

	"github.com/rentdesk/rentdesk/internal/models"
	"github.com/rentdesk/rentdesk/internal/store"
)

func TestSyncFlipsAvailableToOccupied(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	mustSaveProperties(t, st, []models.Property{
		{ID: "p1", Name: "Unit 1", Status: models.PropertyAvailable},
	})
	mustSaveLeases(t, st, []models.Lease{
		{ID: "l1", PropertyID: "p1", Status: models.LeaseActive},
	})

	r := NewReconciler(st, testLogger())

	changed, err := r.SyncPropertyStatuses(context.Background())
	if err != nil {
		t.Fatalf("sync: %v", err)
	}

	if changed != 1 {
		t.Fatalf("expected 1 flip, got %d", changed)
	}

	props := st.Properties()
	if props[0].Status != models.PropertyOccupied {
		t.Errorf("expected OCCUPIED, got %s", props[0].Status)
	}
}

func TestSyncFlipsOccupiedBackToAvailable(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	mustSaveProperties(t, st, []models.Property{
		{ID: "p1", Name: "Unit 1", Status: models.PropertyOccupied},
	})
	mustSaveLeases(t, st, []models.Lease{
		{ID: "l1", PropertyID: "p1", Status: models.LeaseTerminated},
	})

	r := NewReconciler(st, testLogger())

	changed, err := r.SyncPropertyStatuses(context.Background())
	if err != nil {
		t.Fatalf("sync: %v", err)
	}

	if changed != 1 {
		t.Fatalf("expected 1 flip, got %d", changed)
	}

	props := st.Properties()
	if props[0].Status != models.PropertyAvailable {
		t.Errorf("expected AVAILABLE, got %s", props[0].Status)
	}
}

func TestSyncLeavesUserSetStatusesAlone(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	mustSaveProperties(t, st, []models.Property{
		{ID: "p1", Name: "Unit 1", Status: models.PropertyMaintenance},
		{ID: "p2", Name: "Unit 2", Status: models.PropertyUnavailable},
	})
	mustSaveLeases(t, st, []models.Lease{
		{ID: "l1", PropertyID: "p1", Status: models.LeaseActive},
	})

	r := NewReconciler(st, testLogger())

	changed, err := r.SyncPropertyStatuses(context.Background())
	if err != nil {
		t.Fatalf("sync: %v", err)
	}

	if changed != 0 {
		t.Fatalf("expected no flips, got %d", changed)
	}

	props := st.Properties()
	if props[0].Status != models.PropertyMaintenance || props[1].Status != models.PropertyUnavailable {
		t.Errorf("user-set statuses changed: %+v", props)
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	mustSaveProperties(t, st, []models.Property{
		{ID: "p1", Name: "Unit 1", Status: models.PropertyAvailable},
	})
	mustSaveLeases(t, st, []models.Lease{
		{ID: "l1", PropertyID: "p1", Status: models.LeaseActive},
	})

	r := NewReconciler(st, testLogger())

	if _, err := r.SyncPropertyStatuses(context.Background()); err != nil {
		t.Fatalf("first sync: %v", err)
	}

	changed, err := r.SyncPropertyStatuses(context.Background())
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}

	if changed != 0 {
		t.Errorf("second run should change nothing, got %d", changed)
	}
}

func TestSyncStampsUpdatedAt(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	stale := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	mustSaveProperties(t, st, []models.Property{
		{ID: "p1", Name: "Unit 1", Status: models.PropertyAvailable, UpdatedAt: stale},
	})
	mustSaveLeases(t, st, []models.Lease{
		{ID: "l1", PropertyID: "p1", Status: models.LeaseActive},
	})

	syncTime := time.Date(2025, time.July, 4, 12, 0, 0, 0, time.UTC)
	r := NewReconciler(st, testLogger())
	r.now = fixedClock(syncTime)

	if _, err := r.SyncPropertyStatuses(context.Background()); err != nil {
		t.Fatalf("sync: %v", err)
	}

	props := st.Properties()
	if !props[0].UpdatedAt.Equal(syncTime) {
		t.Errorf("expected updatedAt %v, got %v", syncTime, props[0].UpdatedAt)
	}
}

func mustSaveProperties(t *testing.T, st *store.Store, records []models.Property) {
	t.Helper()

	if err := st.SaveProperties(records); err != nil {
		t.Fatalf("save properties: %v", err)
	}
}

func mustSaveLeases(t *testing.T, st *store.Store, records []models.Lease) {
	t.Helper()

	if err := st.SaveLeases(records); err != nil {
		t.Fatalf("save leases: %v", err)
	}
}
