package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Properties  PropertyRepository
	Tenants     TenantRepository
	Leases      LeaseRepository
	Payments    PaymentRepository
	Maintenance MaintenanceRepository
	Dashboard   DashboardAggregator
	Syncer      StatusSyncer
	Auth        AuthProvider
	CORSOrigins []string
	Version     string
	DataDir     string
}

// Router-level limits.
const (
	maxBodySize = 1 << 20 // 1 MB; records are small
	rateLimit   = 50      // requests per second per IP
	rateBurst   = 100     // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID())
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.Prometheus())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(log, deps.Version, deps.DataDir)
	auth := NewAuthHandler(deps.Auth, log)
	properties := NewPropertyHandler(deps.Properties, log)
	tenants := NewTenantHandler(deps.Tenants, log)
	leases := NewLeaseHandler(deps.Leases, log)
	payments := NewPaymentHandler(deps.Payments, log)
	maintenance := NewMaintenanceHandler(deps.Maintenance, log)
	dashboard := NewDashboardHandler(deps.Dashboard, log)
	sync := NewSyncHandler(deps.Syncer, log)

	// Health and login are unauthenticated.
	api.GET("/health", health.Health)
	api.POST("/auth/login", auth.Login)

	// Everything else requires a session token.
	api.Use(middleware.Auth(deps.Auth, log))

	api.POST("/auth/logout", auth.Logout)
	api.GET("/auth/profile", auth.Profile)

	// Properties.
	api.GET("/properties", properties.List)
	api.POST("/properties", properties.Create)
	api.GET("/properties/:id", properties.Get)
	api.PUT("/properties/:id", properties.Update)
	api.DELETE("/properties/:id", properties.Delete)

	// Tenants.
	api.GET("/tenants", tenants.List)
	api.POST("/tenants", tenants.Create)
	api.GET("/tenants/:id", tenants.Get)
	api.PUT("/tenants/:id", tenants.Update)
	api.DELETE("/tenants/:id", tenants.Delete)

	// Leases.
	api.GET("/leases", leases.List)
	api.POST("/leases", leases.Create)
	api.GET("/leases/:id", leases.Get)
	api.PUT("/leases/:id", leases.Update)
	api.DELETE("/leases/:id", leases.Delete)

	// Payments.
	api.GET("/payments", payments.List)
	api.POST("/payments", payments.Create)
	api.GET("/payments/:id", payments.Get)
	api.PUT("/payments/:id", payments.Update)
	api.DELETE("/payments/:id", payments.Delete)

	// Maintenance requests.
	api.GET("/maintenance", maintenance.List)
	api.POST("/maintenance", maintenance.Create)
	api.GET("/maintenance/:id", maintenance.Get)
	api.PUT("/maintenance/:id", maintenance.Update)
	api.DELETE("/maintenance/:id", maintenance.Delete)

	// Dashboard and reconciliation.
	api.GET("/dashboard", dashboard.Get)
	api.POST("/sync-properties", sync.Sync)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(r.Group("/api/v1"), deps)

	return r
}
