package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/rentdesk/rentdesk/internal/api"
	"github.com/rentdesk/rentdesk/internal/models"
)

func TestDashboardGet_OK(t *testing.T) {
	t.Parallel()

	agg := &mockAggregator{
		aggregateFn: func(_ context.Context) (*models.Dashboard, error) {
			return &models.Dashboard{
				Metrics: models.DashboardMetrics{
					TotalProperties: 4,
					OccupancyRate:   75,
				},
				RecentPayments:   []models.EnrichedPayment{},
				UpcomingPayments: []models.EnrichedPayment{},
			}, nil
		},
	}

	r := newTestRouter()
	h := api.NewDashboardHandler(agg, testLogger())
	r.GET("/dashboard", h.Get)

	w := doRequest(r, http.MethodGet, "/dashboard", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var d models.Dashboard
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if d.Metrics.OccupancyRate != 75 {
		t.Errorf("occupancyRate = %d, want 75", d.Metrics.OccupancyRate)
	}

	if d.RecentPayments == nil || d.UpcomingPayments == nil {
		t.Error("payment lists must serialize as arrays, not null")
	}
}

func TestDashboardGet_AggregatorError(t *testing.T) {
	t.Parallel()

	agg := &mockAggregator{
		aggregateFn: func(_ context.Context) (*models.Dashboard, error) {
			return nil, errors.New("boom")
		},
	}

	r := newTestRouter()
	h := api.NewDashboardHandler(agg, testLogger())
	r.GET("/dashboard", h.Get)

	w := doRequest(r, http.MethodGet, "/dashboard", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSync_OK(t *testing.T) {
	t.Parallel()

	syncer := &mockSyncer{
		syncFn: func(_ context.Context) (int, error) {
			return 3, nil
		},
	}

	r := newTestRouter()
	h := api.NewSyncHandler(syncer, testLogger())
	r.POST("/sync-properties", h.Sync)

	w := doRequest(r, http.MethodPost, "/sync-properties", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Changed int  `json:"changed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if !resp.Success || resp.Changed != 3 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestSync_Error(t *testing.T) {
	t.Parallel()

	syncer := &mockSyncer{
		syncFn: func(_ context.Context) (int, error) {
			return 0, errors.New("disk full")
		},
	}

	r := newTestRouter()
	h := api.NewSyncHandler(syncer, testLogger())
	r.POST("/sync-properties", h.Sync)

	w := doRequest(r, http.MethodPost, "/sync-properties", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}
