package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/repository"
)

const poolMonitorInterval = 30 * time.Second

// ErrNotConnected is returned when the manager is used before Connect
var ErrNotConnected = errors.New("database is not connected")

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	timeProvider      coreport.TimeProvider
	connectionMonitor *ConnectionPoolMonitor
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Connect establishes a database connection, retrying connection failures
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"host": m.config.Host,
		"port": m.config.Port,
		"name": m.config.Database,
	})

	classifier := repository.NewErrorClassifier()
	retryConfig := RetryConfig{
		MaxRetries:    m.config.RetryAttempts,
		RetryInterval: m.config.RetryDelay,
		MaxInterval:   m.config.RetryDelay * 4,
	}

	var db *gorm.DB
	err := RetryOnError(ctx, retryConfig, m.timeProvider, m.logger, classifier.IsConnectionError, func(ctx context.Context) error {
		var openErr error
		db, openErr = Open(ctx, m.config, m.logger, m.timeProvider)
		return openErr
	})
	if err != nil {
		m.logger.Error("Failed to connect to database", map[string]any{
			"error":    err.Error(),
			"attempts": m.config.RetryAttempts,
		})
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", m.config.RetryAttempts, err)
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"host":           m.config.Host,
		"port":           m.config.Port,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	m.db = db

	monitor := NewConnectionPoolMonitor(db, m.logger, m.timeProvider)
	if err := monitor.Start(poolMonitorInterval); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
	} else {
		m.connectionMonitor = monitor
	}

	if m.config.AutoMigrate {
		if err := m.Migrate(ctx); err != nil {
			return nil, err
		}
	}

	return m.db, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	if m.db == nil {
		return ErrNotConnected
	}
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}

	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return ErrNotConnected
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	pingCtx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return m.timeProvider.WithTimeout(ctx, m.config.QueryTimeout)
}

// PoolMetrics returns the last sample of the connection pool
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}
	}
	return m.connectionMonitor.GetMetrics()
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() *UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider)
}

// Repositories groups the stores the engine runs on
type Repositories struct {
	Payments       *repository.PaymentRepository
	Attempts       *repository.AttemptRepository
	PaymentMethods *repository.PaymentMethodRepository
	Notifications  *repository.NotificationQueue
	Accounts       *repository.AccountRepository
	Locks          *repository.AccountLockRepository
	UnitOfWork     *UnitOfWork
}

// Repositories builds the repositories on the managed connection
func (m *Manager) Repositories() *Repositories {
	return &Repositories{
		Payments:       repository.NewPaymentRepository(m.db, m.logger),
		Attempts:       repository.NewAttemptRepository(m.db, m.logger),
		PaymentMethods: repository.NewPaymentMethodRepository(m.db, m.logger, m.timeProvider),
		Notifications:  repository.NewNotificationQueue(m.db, m.timeProvider, m.logger),
		Accounts:       repository.NewAccountRepository(m.db, m.timeProvider, m.logger),
		Locks:          repository.NewAccountLockRepository(m.db, m.timeProvider, m.logger),
		UnitOfWork:     m.CreateUnitOfWork(),
	}
}
