package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

var advancedIndexes = []indexStatement{
	{
		// Janitor sweep over stale UNKNOWN and PENDING transactions
		name: "idx_payment_transactions_status_created",
		sql: `CREATE INDEX IF NOT EXISTS idx_payment_transactions_status_created
			ON payment_transactions (status, created_at)
			WHERE status IN ('UNKNOWN', 'PENDING')`,
	},
	{
		name: "idx_payment_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_payment_transactions_created_at_brin
			ON payment_transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_payments_account_number",
		sql: `CREATE INDEX IF NOT EXISTS idx_payments_account_number
			ON payments (account_id, payment_number)`,
	},
	{
		// Poller claims only touch rows that can still be delivered
		name: "idx_notifications_pending",
		sql: `CREATE INDEX IF NOT EXISTS idx_notifications_pending
			ON notifications (queue_name, effective_date)
			WHERE state IN ('AVAILABLE', 'IN_PROCESSING')`,
	},
	{
		name: "idx_notifications_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_notifications_created_at_brin
			ON notifications USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_invoices_unpaid",
		sql: `CREATE INDEX IF NOT EXISTS idx_invoices_unpaid
			ON invoices (account_id, created_at)
			WHERE balance > 0`,
	},
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, index := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(index.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": index.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks
// Failures are logged and ignored
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	tweaks := []indexStatement{
		// Completion updates rewrite transaction rows in place
		{name: "payment_transactions fillfactor", sql: `ALTER TABLE payment_transactions SET (fillfactor = 90)`},
		{name: "notifications fillfactor", sql: `ALTER TABLE notifications SET (fillfactor = 80)`},
		{name: "account_locks fillfactor", sql: `ALTER TABLE account_locks SET (fillfactor = 70)`},
		{name: "payment_transactions statistics", sql: `ALTER TABLE payment_transactions ALTER COLUMN external_key SET STATISTICS 1000`},
	}

	for _, tweak := range tweaks {
		if err := m.db.WithContext(ctx).Exec(tweak.sql).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"tweak": tweak.name,
				"error": err.Error(),
			})
		}
	}

	m.logger.Info("PostgreSQL performance tweaks applied", nil)
}
