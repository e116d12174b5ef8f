package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/pos_monedas/internal/core/services"
	"github.com/SscSPs/pos_monedas/internal/handlers"
	"github.com/SscSPs/pos_monedas/internal/middleware"
	"github.com/SscSPs/pos_monedas/internal/platform/config"
	"github.com/SscSPs/pos_monedas/internal/repositories/database/pgsql"
	"github.com/SscSPs/pos_monedas/migrations"
	"github.com/SscSPs/pos_monedas/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title POS Monedas API
// @version 1.0
// @description Currency (moneda) catalogue for the point-of-sale platform.

// @host localhost:8080
// @BasePath /v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger.Info("Configuration loaded", slog.String("environment", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, logger); err != nil {
			return err
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns: cfg.DBMaxConns,
		Ping:     cfg.EnableDBCheck,
	})
	if err != nil {
		return err
	}
	// Closed only after the server has drained.
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := middleware.NewMetrics()
	global := []gin.HandlerFunc{
		middleware.StructuredLoggingMiddleware(logger),
		middleware.CORS(),
		middleware.Recovery(),
		metrics.Middleware(),
	}
	if cfg.RateLimit != "" {
		limiterInstance, err := middleware.NewLimiter(cfg.RateLimit)
		if err != nil {
			return err
		}
		global = append(global, middleware.RateLimit(limiterInstance))
	}

	r := handlers.NewRouter(cfg, serviceContainer, handlers.RouterDeps{Metrics: metrics}, global...)
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}
