package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/payment-engine/internal/app"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/config"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "paymentctl",
		Short:         "Operator commands for the payment engine",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(retryCmd())
	rootCmd.AddCommand(notificationsCmd())
	rootCmd.AddCommand(locksCmd())
	rootCmd.AddCommand(janitorCmd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// session is an engine opened for the duration of one command
type session struct {
	engine *app.Engine
	logger coreport.Logger
	clock  coreport.TimeProvider
}

func (s *session) Close() {
	if err := s.engine.Shutdown(); err != nil {
		s.logger.Warn("Failed to release stores", map[string]any{"error": err.Error()})
	}
	_ = s.logger.Flush()
}

// openSession loads the configuration and wires the engine on the shared store
func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	if cfg.Database.Driver == config.DriverMemory {
		return nil, fmt.Errorf("paymentctl needs a shared store, database.driver is %q", cfg.Database.Driver)
	}

	log := logger.NewZapLogger(cfg.Environment == config.Production)
	log.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	clock := timeProvider.NewRealTimeProvider()

	stores, err := app.OpenStores(ctx, cfg, log, clock)
	if err != nil {
		_ = log.Flush()
		return nil, err
	}
	return &session{engine: app.New(cfg, stores, log, clock), logger: log, clock: clock}, nil
}
