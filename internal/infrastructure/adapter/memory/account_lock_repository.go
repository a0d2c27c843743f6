package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
)

type accountLock struct {
	owner     string
	expiresAt time.Time
}

// AccountLockRepository is a process-local account lock with lease expiry
type AccountLockRepository struct {
	mu           sync.Mutex
	locks        map[uuid.UUID]accountLock
	timeProvider core.TimeProvider
}

var _ persistence.AccountLockRepository = (*AccountLockRepository)(nil)

// NewAccountLockRepository creates an in-memory account lock
func NewAccountLockRepository(timeProvider core.TimeProvider) *AccountLockRepository {
	return &AccountLockRepository{
		locks:        make(map[uuid.UUID]accountLock),
		timeProvider: timeProvider,
	}
}

// AcquireLock takes the lock unless another owner holds an unexpired lease
func (r *AccountLockRepository) AcquireLock(ctx context.Context, accountID uuid.UUID, owner string, duration time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	if held, ok := r.locks[accountID]; ok && held.owner != owner && now.Before(held.expiresAt) {
		return errs.ErrAccountLocked
	}
	r.locks[accountID] = accountLock{owner: owner, expiresAt: now.Add(duration)}
	return nil
}

// ReleaseLock drops the lock if the owner still holds it
func (r *AccountLockRepository) ReleaseLock(ctx context.Context, accountID uuid.UUID, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if held, ok := r.locks[accountID]; ok && held.owner == owner {
		delete(r.locks, accountID)
	}
	return nil
}
