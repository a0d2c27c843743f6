package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/model"
)

// AccountLockRepository implements account locking on a lease table using GORM
type AccountLockRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ persistence.AccountLockRepository = (*AccountLockRepository)(nil)

// NewAccountLockRepository creates a new AccountLockRepository instance
func NewAccountLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountLockRepository {
	return &AccountLockRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AcquireLock takes the lease on the account unless another owner holds an unexpired one
// The owner holding the lease may extend it
func (r *AccountLockRepository) AcquireLock(ctx context.Context, accountID uuid.UUID, owner string, duration time.Duration) error {
	now := r.timeProvider.Now()
	expiresAt := now.Add(duration)

	// Insert or take over an expired lease in a single statement
	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO account_locks (account_id, owner, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (account_id) DO UPDATE
		SET owner = EXCLUDED.owner,
		    locked_at = EXCLUDED.locked_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at
		WHERE account_locks.expires_at <= ? OR account_locks.owner = ?`,
		accountID, owner, now, expiresAt, now, now,
		now, owner,
	)

	if result.Error != nil {
		if isContextError(result.Error) {
			r.logger.Warn("Context timeout acquiring lock", map[string]any{
				"account_id": accountID,
				"error":      result.Error.Error(),
			})
			return fmt.Errorf("lock acquisition timeout: %w", result.Error)
		}

		r.logger.Error("Database error acquiring lock", map[string]any{
			"account_id": accountID,
			"error":      result.Error.Error(),
		})
		return dbError("acquire lock", result.Error)
	}

	// The conflict update was filtered out: someone else holds the lease
	if result.RowsAffected == 0 {
		r.logger.Debug("Account is already locked", map[string]any{
			"account_id": accountID,
		})
		return errs.ErrAccountLocked
	}

	r.logger.Debug("Lock acquired", map[string]any{
		"account_id": accountID,
		"owner":      owner,
		"expires_at": expiresAt,
	})
	return nil
}

// ReleaseLock deletes the lease if the owner still holds it
func (r *AccountLockRepository) ReleaseLock(ctx context.Context, accountID uuid.UUID, owner string) error {
	result := r.db.WithContext(ctx).
		Where("account_id = ? AND owner = ?", accountID, owner).
		Delete(&model.AccountLock{})

	// The lease expires on its own
	if result.Error != nil && isContextError(result.Error) {
		r.logger.Warn("Context timeout when releasing lock, lock will expire automatically", map[string]any{
			"account_id": accountID,
			"error":      result.Error.Error(),
		})
		return nil
	}

	if result.Error != nil {
		r.logger.Error("Failed to release lock", map[string]any{
			"account_id": accountID,
			"error":      result.Error.Error(),
		})
		return dbError("release lock", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("No lock found to release - may have already expired", map[string]any{
			"account_id": accountID,
		})
	}
	return nil
}

// CleanupExpiredLocks removes all expired leases
func (r *AccountLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.AccountLock{})
	if result.Error != nil {
		r.logger.Error("Failed to clean up expired locks", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, dbError("cleanup expired locks", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired locks cleanup completed", map[string]any{
			"locks_removed": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
