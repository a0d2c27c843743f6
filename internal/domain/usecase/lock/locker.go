package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
)

// Config holds the account lock settings
type Config struct {
	Timeout       time.Duration // lock lease
	Tries         int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	RenewInterval time.Duration // lease renewal period while held, Timeout/3 when zero
}

// DefaultConfig returns the default lock configuration
func DefaultConfig() Config {
	return Config{
		Timeout:       30 * time.Second,
		Tries:         10,
		RetryInterval: 50 * time.Millisecond,
		MaxInterval:   time.Second,
	}
}

// Locker serializes work per account through the global account lock
type Locker struct {
	repo         persistence.AccountLockRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

// NewLocker creates a new Locker
func NewLocker(
	repo persistence.AccountLockRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Locker {
	if config.Tries <= 0 {
		config.Tries = 1
	}
	if config.RenewInterval <= 0 {
		config.RenewInterval = config.Timeout / 3
	}
	return &Locker{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// WithAccountLock runs fn while holding the lock of the account
//
// The lease is renewed every RenewInterval until fn returns. If another owner takes
// the lock over, the context passed to fn is canceled and its failure is reported
// as ErrAccountLocked.
// The lock is released even when ctx is canceled while fn runs.
func (l *Locker) WithAccountLock(ctx context.Context, accountID uuid.UUID, fn func(ctx context.Context) error) error {
	owner := uuid.NewString()
	if err := l.acquire(ctx, accountID, owner); err != nil {
		return err
	}

	lockCtx, cancel := context.WithCancelCause(ctx)
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		l.renew(lockCtx, accountID, owner, done, cancel)
	}()

	defer func() {
		close(done)
		<-stopped
		cancel(nil)
		if err := l.repo.ReleaseLock(context.WithoutCancel(ctx), accountID, owner); err != nil {
			l.logger.Error("Failed to release account lock", map[string]any{
				"account_id": accountID.String(),
				"owner":      owner,
				"error":      err.Error(),
			})
		}
	}()

	err := fn(lockCtx)
	if err != nil && ctx.Err() == nil {
		if cause := context.Cause(lockCtx); errors.Is(cause, errs.ErrAccountLocked) {
			return cause
		}
	}
	return err
}

// renew extends the lease of owner until done is closed
//
// A failed renewal is retried on the next tick unless the lock was taken by another owner.
func (l *Locker) renew(ctx context.Context, accountID uuid.UUID, owner string, done <-chan struct{}, cancel context.CancelCauseFunc) {
	if l.config.RenewInterval <= 0 {
		return
	}

	ticker := time.NewTicker(l.config.RenewInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		err := l.repo.AcquireLock(context.WithoutCancel(ctx), accountID, owner, l.config.Timeout)
		if err == nil {
			continue
		}
		l.logger.Error("Failed to renew account lock", map[string]any{
			"account_id": accountID.String(),
			"owner":      owner,
			"error":      err.Error(),
		})
		if errors.Is(err, errs.ErrAccountLocked) {
			cancel(fmt.Errorf("lease of account %s lost: %w", accountID, errs.ErrAccountLocked))
			return
		}
	}
}

func (l *Locker) acquire(ctx context.Context, accountID uuid.UUID, owner string) error {
	var err error
	for attempt := 0; attempt < l.config.Tries; attempt++ {
		err = l.repo.AcquireLock(ctx, accountID, owner, l.config.Timeout)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrAccountLocked) {
			return fmt.Errorf("failed to acquire lock for account %s: %w", accountID, err)
		}

		if attempt == l.config.Tries-1 {
			break
		}

		backoff := l.backoff(attempt)
		l.logger.Debug("Account is locked, waiting before retry", map[string]any{
			"account_id":  accountID.String(),
			"attempt":     attempt + 1,
			"max_tries":   l.config.Tries,
			"retry_after": backoff.String(),
		})
		if sleepErr := l.timeProvider.Sleep(ctx, backoff); sleepErr != nil {
			return sleepErr
		}
	}

	l.logger.Warn("Giving up on account lock", map[string]any{
		"account_id": accountID.String(),
		"tries":      l.config.Tries,
	})
	return fmt.Errorf("account %s after %d tries: %w", accountID, l.config.Tries, err)
}

// backoff doubles the retry interval per attempt, capped at MaxInterval
func (l *Locker) backoff(attempt int) time.Duration {
	d := l.config.RetryInterval * (1 << uint(attempt))
	if l.config.MaxInterval > 0 && d > l.config.MaxInterval {
		d = l.config.MaxInterval
	}
	return d
}
