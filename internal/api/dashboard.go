package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/metrics"
)

// DashboardHandler serves the aggregate dashboard endpoint.
type DashboardHandler struct {
	agg DashboardAggregator
	log *logrus.Logger
}

// NewDashboardHandler creates a DashboardHandler with the given aggregator and logger.
func NewDashboardHandler(agg DashboardAggregator, log *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{agg: agg, log: log}
}

// Get handles GET /api/v1/dashboard — a pure read that re-joins every
// collection on each call.
func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.agg.Aggregate(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("aggregating dashboard")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	// Refresh the domain gauges with the freshly computed counts.
	metrics.PropertyCount.Set(float64(dashboard.Metrics.TotalProperties))
	metrics.TenantCount.Set(float64(dashboard.Metrics.TotalTenants))
	metrics.ActiveLeaseCount.Set(float64(dashboard.Metrics.ActiveLeases))

	c.JSON(http.StatusOK, dashboard)
}
