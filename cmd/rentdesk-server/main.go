package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/rentdesk/rentdesk/internal/api"
	"github.com/rentdesk/rentdesk/internal/config"
	"github.com/rentdesk/rentdesk/internal/service"
	"github.com/rentdesk/rentdesk/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := store.New(cfg.DataDir, log)

	if cfg.SeedDemoData && st.Empty() {
		if err := st.SeedDemoData(); err != nil {
			return fmt.Errorf("seeding demo data: %w", err)
		}
		log.WithField("dir", cfg.DataDir).Info("seeded demo data")
	}

	reconciler := service.NewReconciler(st, log)

	deps := &api.RouterDeps{
		Log:         log,
		Properties:  service.NewPropertyService(st, log),
		Tenants:     service.NewTenantService(st, log),
		Leases:      service.NewLeaseService(st, reconciler, log),
		Payments:    service.NewPaymentService(st, log),
		Maintenance: service.NewMaintenanceService(st, log),
		Dashboard:   service.NewDashboardService(st, log),
		Syncer:      reconciler,
		Auth:        service.NewAuthService(log),
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
		DataDir:     cfg.DataDir,
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(ctx, deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":    cfg.Addr(),
			"version": config.Version,
			"dataDir": cfg.DataDir,
		}).Info("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
	}

	return nil
}
