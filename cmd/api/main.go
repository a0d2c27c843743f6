package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/payment-engine/internal/app"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open storage and wire the engine
	stores, err := app.OpenStores(ctx, cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to open stores", map[string]any{
			"driver": cfg.Database.Driver,
			"error":  err.Error(),
		})
		os.Exit(1)
	}
	engine := app.New(cfg, stores, appLogger, tp)

	probes := make(map[string]handler.HealthProbe, len(stores.Probes))
	for name, probe := range stores.Probes {
		probes[name] = probe
	}
	health := handler.NewHealthHandler(probes, appLogger)
	for name, detail := range stores.Details {
		health.WithDetail(name, detail)
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, routes.Handlers{
		Payments:       handler.NewPaymentHandler(engine.Payments, engine.Controlled, stores.Accounts, tp, appLogger),
		PaymentMethods: handler.NewPaymentMethodHandler(engine.Methods, appLogger),
		Attempts:       handler.NewAttemptHandler(engine.Controlled, engine.Retryable, tp, appLogger),
		Health:         health,
	})

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": cfg.Database.Driver,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error { return engine.Poller.Run(gctx) })
	g.Go(func() error { return engine.Janitor.Run(gctx) })

	// Wait for interrupt signal to gracefully shut down the server
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Server forced to shutdown", map[string]any{
				"error": err.Error(),
			})
		}
		return nil
	})

	exitCode := 0
	if err := g.Wait(); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{"error": err.Error()})
		exitCode = 1
	}

	// In-flight plugin calls are drained before the stores close
	if err := engine.Shutdown(); err != nil {
		appLogger.Error("Failed to release stores", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
	if exitCode != 0 {
		_ = appLogger.Flush()
		os.Exit(exitCode)
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Database settings only matter for the postgres driver
	if cfg.Database.Driver == config.DriverPostgres {
		required := []struct {
			name   string
			value  string
			envVar string
		}{
			{"database.host", cfg.Database.Host, "PE_DB_HOST"},
			{"database.port", cfg.Database.Port, "PE_DB_PORT"},
			{"database.username", cfg.Database.Username, "PE_DB_USERNAME"},
			{"database.password", cfg.Database.Password, "PE_DB_PASSWORD"},
			{"database.database", cfg.Database.Database, "PE_DB_NAME"},
		}
		for _, r := range required {
			if r.value != "" || os.Getenv(r.envVar) != "" {
				continue
			}
			if cfg.Environment == config.Production {
				missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", r.name, r.envVar))
			} else {
				missingConfigs = append(missingConfigs, r.name)
			}
		}

		if cfg.Database.QueryTimeout == 0 {
			missingConfigs = append(missingConfigs, "database.queryTimeout")
		}
	}

	if cfg.Redis.Enabled && cfg.Redis.Addr == "" {
		missingConfigs = append(missingConfigs, "redis.addr")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.Driver == config.DriverMemory {
			warnings = append(warnings, "database.driver 'memory' loses every payment on restart")
		}

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == config.DriverPostgres &&
			sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Plugins.EnableScripted {
			warnings = append(warnings, "plugins.enableScripted registers a test gateway in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
