package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
)

// legacyLockOwner marks leases taken before locks carried an owner
const legacyLockOwner = "legacy"

// AddOwnerToAccountLocks is a migration adding the owner column to the account_locks table
type AddOwnerToAccountLocks struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddOwnerToAccountLocks creates a new migration instance
func NewAddOwnerToAccountLocks(db *gorm.DB, logger coreport.Logger) *AddOwnerToAccountLocks {
	return &AddOwnerToAccountLocks{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *AddOwnerToAccountLocks) Run(ctx context.Context) error {
	m.logger.Info("Adding owner column to account_locks table", nil)

	exists, err := m.columnExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		m.logger.Info("Owner column already present on account_locks", nil)
		return nil
	}

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`ALTER TABLE account_locks ADD COLUMN owner VARCHAR(64)`).Error; err != nil {
			m.logger.Error("Failed to add owner column", map[string]any{"error": err.Error()})
			return err
		}
		if err := tx.Exec(`UPDATE account_locks SET owner = ? WHERE owner IS NULL`, legacyLockOwner).Error; err != nil {
			m.logger.Error("Failed to backfill owner column", map[string]any{"error": err.Error()})
			return err
		}
		if err := tx.Exec(`ALTER TABLE account_locks ALTER COLUMN owner SET NOT NULL`).Error; err != nil {
			m.logger.Error("Failed to set owner column not null", map[string]any{"error": err.Error()})
			return err
		}

		m.logger.Info("Successfully added owner column to account_locks table", nil)
		return nil
	})
}

// columnExists checks if the owner column is already in the table
func (m *AddOwnerToAccountLocks) columnExists(ctx context.Context) (bool, error) {
	var count int64
	err := m.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM information_schema.columns
		WHERE table_name = 'account_locks' AND column_name = 'owner'
	`).Scan(&count).Error
	if err != nil {
		m.logger.Error("Failed to check column existence", map[string]any{"error": err.Error()})
		return false, err
	}
	return count > 0, nil
}
