package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"savingsbook/internal/config"
	"savingsbook/internal/database"
	"savingsbook/internal/handlers"
	"savingsbook/internal/middleware"
	"savingsbook/internal/repositories"
	"savingsbook/internal/repositories/memory"
	"savingsbook/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 30 * time.Second

// stores groups the persistence adapters selected by DB_DRIVER
type stores struct {
	ledger      repositories.LedgerStore
	types       repositories.SavingsTypeRepositoryInterface
	regulations repositories.RegulationRepositoryInterface
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	clock := services.SystemClock{Location: cfg.Business.Location}

	st, err := openStores(ctx, cfg, clock, logger)
	if err != nil {
		return err
	}

	// Runtime collectors and api_errors_total live on the default registry
	registry := prometheus.NewRegistry()

	audit := services.NewAuditLogger(logger)
	metrics := services.NewPrometheusMetrics(registry)

	regulations := services.NewRegulationStore(st.regulations, clock, services.RegulationDefaults{
		MinimumDepositAmount: cfg.Business.DefaultMinimumDeposit,
		MinimumTermDays:      cfg.Business.DefaultMinimumTermDays,
	}, audit, metrics, logger)

	savingsTypes := services.NewSavingsTypeService(st.types, regulations, logger)

	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if cfg.Business.SeedSavingsTypes {
		if err := savingsTypes.SeedDefaults(startupCtx); err != nil {
			return fmt.Errorf("failed to seed savings types: %w", err)
		}
	}
	if err := regulations.Reload(startupCtx); err != nil {
		return fmt.Errorf("failed to load regulation: %w", err)
	}

	ledger := services.NewAccountLedger(st.ledger, services.NewInterestCalculator(), clock, audit, logger)
	savings := services.NewSavingsService(regulations, st.types, ledger, services.NewTransactionRulesEngine(), clock, audit, metrics, logger)
	reports := services.NewReportAggregator(st.ledger, st.types, cfg.Business.Location, metrics)

	e := newServer(ctx, cfg, logger, routeDeps{
		tokens:       services.NewTokenService(&cfg.JWT),
		savings:      savings,
		regulations:  regulations,
		reports:      reports,
		savingsTypes: savingsTypes,
		location:     cfg.Business.Location,
		registry:     registry,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"driver", cfg.Database.Driver,
			"regulation_version", regulations.Current().Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func openStores(ctx context.Context, cfg *config.Config, clock services.Clock, logger *slog.Logger) (*stores, error) {
	if cfg.Database.Driver == config.DriverMemory {
		logger.Warn("using in-memory store, data is lost on restart")
		types := memory.NewSavingsTypes()
		return &stores{
			ledger:      memory.NewLedgerStore(),
			types:       types,
			regulations: memory.NewRegulations(types),
		}, nil
	}

	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &stores{
		ledger: services.NewGuardedLedgerStore(
			repositories.NewAccountRepository(db),
			services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig(), clock),
		),
		types:       repositories.NewSavingsTypeRepository(db),
		regulations: repositories.NewRegulationRepository(db),
	}, nil
}

func newServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, deps routeDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))
	e.Use(middleware.RateLimiterWithConfig(ctx, cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	registerRoutes(e, deps)
	return e
}
