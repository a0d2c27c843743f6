package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetPaymentRepository returns a payment repository bound to the current transaction
	GetPaymentRepository(ctx context.Context) PaymentRepository

	// GetAttemptRepository returns an attempt repository bound to the current transaction
	GetAttemptRepository(ctx context.Context) PaymentAttemptRepository

	// GetNotificationQueue returns a notification queue bound to the current transaction
	GetNotificationQueue(ctx context.Context) NotificationQueue
}

// WithinTransaction runs fn inside a unit of work, committing on success and rolling back on error
func WithinTransaction(ctx context.Context, uow UnitOfWork, fn func(txCtx context.Context) error) error {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(txCtx); err != nil {
		_ = uow.Rollback(txCtx)
		return err
	}

	return uow.Commit(txCtx)
}
