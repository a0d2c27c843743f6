package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccountLockRepository defines methods for the global per-account lock
type AccountLockRepository interface {
	// AcquireLock attempts to lock the account for the given owner
	// The lock expires after the given duration so a crashed owner cannot hold it forever
	//
	// Possible errors:
	// - ErrAccountLocked: If the account is already locked by another owner
	// - ErrDatabaseConnection: If the lock store is unreachable
	AcquireLock(ctx context.Context, accountID uuid.UUID, owner string, duration time.Duration) error

	// ReleaseLock releases a lock held by the owner
	// Releasing a lock owned by someone else, or an expired lock, is a no-op
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the lock store is unreachable
	ReleaseLock(ctx context.Context, accountID uuid.UUID, owner string) error
}
