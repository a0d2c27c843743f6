package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/external"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/invoicepolicy"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/lock"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/notification"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/payment"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/retry"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/memory"
	pluginadapter "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/plugin"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/config"
)

// AccountStore is the account collaborator the engine runs against
type AccountStore interface {
	external.AccountLookup
	external.TagLookup
	external.InvoiceLookup
	migration.AccountSeeder
}

// Stores groups the persistence the engine is built on
type Stores struct {
	Payments      persistence.PaymentRepository
	Attempts      persistence.PaymentAttemptRepository
	Methods       persistence.PaymentMethodRepository
	Notifications persistence.NotificationQueue
	Locks         persistence.AccountLockRepository
	UnitOfWork    persistence.UnitOfWork
	Accounts      AccountStore

	// Probes are the dependency checks exposed on /health
	Probes map[string]func(ctx context.Context) error
	// Details are the diagnostics reported next to the probes
	Details map[string]func() any

	closers []func() error
}

// Close releases the connections held by the stores
func (s *Stores) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NotificationLister lists the queue entries of a state, for operators
type NotificationLister interface {
	ListByState(ctx context.Context, queueName string, state entity.NotificationState, limit int) ([]*entity.Notification, error)
}

// LockCleaner removes expired account locks
type LockCleaner interface {
	CleanupExpiredLocks(ctx context.Context) (int64, error)
}

// OpenStores connects the configured storage driver
func OpenStores(ctx context.Context, cfg *config.Config, logger core.Logger, timeProvider core.TimeProvider) (*Stores, error) {
	var stores *Stores
	switch cfg.Database.Driver {
	case config.DriverMemory:
		stores = memoryStores(timeProvider)
	case config.DriverPostgres:
		var err error
		stores, err = postgresStores(ctx, cfg, logger, timeProvider)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	if cfg.Redis.Enabled {
		client, err := repository.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			_ = stores.Close()
			return nil, err
		}
		stores.Locks = repository.NewRedisLockRepository(client, cfg.Redis.KeyPrefix, logger)
		stores.Probes["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		stores.closers = append(stores.closers, client.Close)

		logger.Info("Account locks held in Redis", map[string]any{"addr": cfg.Redis.Addr})
	}

	if cfg.Environment != config.Production {
		accounts, err := migration.CreateDefaultAccounts(ctx, stores.Accounts)
		if err != nil {
			logger.Error("Failed to create default accounts", map[string]any{"error": err.Error()})
		} else {
			logger.Info("Default accounts ready", map[string]any{"count": len(accounts)})
		}
	}

	return stores, nil
}

func memoryStores(timeProvider core.TimeProvider) *Stores {
	payments := memory.NewPaymentRepository()
	attempts := memory.NewAttemptRepository()
	notifications := memory.NewNotificationQueue()

	return &Stores{
		Payments:      payments,
		Attempts:      attempts,
		Methods:       memory.NewPaymentMethodRepository(),
		Notifications: notifications,
		Locks:         memory.NewAccountLockRepository(timeProvider),
		UnitOfWork:    memory.NewUnitOfWork(payments, attempts, notifications),
		Accounts:      memory.NewAccountStore(),
		Probes:        map[string]func(ctx context.Context) error{},
	}
}

func postgresStores(ctx context.Context, cfg *config.Config, logger core.Logger, timeProvider core.TimeProvider) (*Stores, error) {
	manager := database.NewManager(database.FromAppConfig(cfg), logger, timeProvider)
	if _, err := manager.Connect(ctx); err != nil {
		return nil, err
	}
	if err := manager.Migrate(ctx); err != nil {
		_ = manager.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repos := manager.Repositories()
	return &Stores{
		Payments:      repos.Payments,
		Attempts:      repos.Attempts,
		Methods:       repos.PaymentMethods,
		Notifications: repos.Notifications,
		Locks:         repos.Locks,
		UnitOfWork:    repos.UnitOfWork,
		Accounts:      repos.Accounts,
		Probes:        map[string]func(ctx context.Context) error{"database": manager.Ping},
		Details:       map[string]func() any{"databasePool": func() any { return manager.PoolMetrics() }},
		closers:       []func() error{manager.Close},
	}, nil
}

// Engine holds the wired payment and retry services
type Engine struct {
	Stores     *Stores
	Dispatcher *payment.PluginDispatcher
	Payments   *payment.DirectProcessor
	Methods    *payment.PaymentMethodService
	Janitor    *payment.Janitor
	Controlled *retry.PluginControlledProcessor
	Retryable  *retry.RetryableProcessor
	Poller     *notification.Poller
}

// New wires the engine services over stores
func New(cfg *config.Config, stores *Stores, logger core.Logger, timeProvider core.TimeProvider) *Engine {
	paymentPlugins := pluginadapter.NewPaymentPluginRegistry()
	paymentPlugins.Register(pluginadapter.ExternalPaymentPluginName, pluginadapter.NewExternalPaymentPlugin())
	if cfg.Plugins.EnableScripted {
		paymentPlugins.Register(pluginadapter.ScriptedPluginName,
			pluginadapter.NewScriptedPlugin(entity.PluginStatus(cfg.Plugins.ScriptedDefaultStatus)))
	}

	retryPlugins := pluginadapter.NewRetryPluginRegistry()
	retryPlugins.Register(invoicepolicy.PluginName, invoicepolicy.NewPlugin(
		stores.Payments,
		stores.Accounts,
		timeProvider,
		logger,
		invoicepolicy.Config{
			PluginFailureSeed:        cfg.Retry.PluginFailureSeed(),
			PluginFailureMultiplier:  cfg.Retry.PluginFailureMultiplier,
			PluginFailureMaxAttempts: cfg.Retry.PluginFailureMaxAttempts,
			PaymentFailureRetryDays:  cfg.Retry.PaymentFailureRetryDays,
		},
	))

	locker := lock.NewLocker(stores.Locks, timeProvider, logger, lock.Config{
		Timeout:       cfg.Lock.Timeout(),
		Tries:         cfg.Lock.Tries,
		RetryInterval: cfg.Lock.RetryInterval(),
		MaxInterval:   cfg.Lock.MaxInterval(),
		RenewInterval: cfg.Lock.RenewInterval(),
	})
	dispatcher := payment.NewPluginDispatcher(logger, timeProvider, cfg.Payment.DispatchPoolSize, cfg.Payment.DispatchTimeout())

	paymentRunner := payment.NewAutomatonRunner(
		stores.Payments, stores.Methods, stores.Accounts, paymentPlugins, locker, dispatcher, timeProvider, logger)
	pending := payment.NewPendingTransactionResolver(stores.Payments, locker, timeProvider, logger)

	retryRunner := retry.NewAutomatonRunner(
		paymentRunner,
		stores.Payments,
		stores.Attempts,
		stores.UnitOfWork,
		stores.Accounts,
		stores.Accounts,
		retryPlugins,
		locker,
		timeProvider,
		logger,
	)
	retryable := retry.NewRetryableProcessor(retryRunner, stores.Attempts, stores.Accounts, timeProvider, logger)

	poller := notification.NewPoller(stores.Notifications, timeProvider, logger, notification.PollerConfig{
		PollInterval: cfg.Notification.PollInterval(),
		BatchSize:    cfg.Notification.BatchSize,
		Lease:        cfg.Notification.Lease(),
		MaxErrors:    cfg.Notification.MaxErrors,
		RetryBackoff: cfg.Notification.RetryBackoff(),
		Workers:      cfg.Notification.Workers,
	})
	poller.Register(retry.QueueName, retryable)

	return &Engine{
		Stores:     stores,
		Dispatcher: dispatcher,
		Payments: payment.NewDirectProcessor(
			paymentRunner, stores.Payments, stores.Attempts, stores.Methods, paymentPlugins, pending, logger),
		Methods: payment.NewPaymentMethodService(stores.Methods, stores.Accounts, paymentPlugins, timeProvider, logger),
		Janitor: payment.NewJanitor(stores.Payments, stores.Methods, paymentPlugins, locker, timeProvider, logger,
			payment.JanitorConfig{
				Interval:  cfg.Payment.JanitorInterval(),
				Threshold: cfg.Payment.JanitorThreshold(),
				BatchSize: cfg.Payment.JanitorBatchSize,
			}),
		Controlled: retry.NewPluginControlledProcessor(retryRunner, stores.Attempts, logger),
		Retryable:  retryable,
		Poller:     poller,
	}
}

// Shutdown stops the plugin dispatcher and closes the stores
func (e *Engine) Shutdown() error {
	e.Dispatcher.Shutdown()
	return e.Stores.Close()
}
