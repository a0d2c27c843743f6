package memory

import (
	"context"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
)

// UnitOfWork hands out the shared in-memory stores
//
// Writes are applied immediately, so Rollback cannot undo them.
type UnitOfWork struct {
	payments      *PaymentRepository
	attempts      *AttemptRepository
	notifications *NotificationQueue
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a unit of work over the given stores
func NewUnitOfWork(payments *PaymentRepository, attempts *AttemptRepository, notifications *NotificationQueue) *UnitOfWork {
	return &UnitOfWork{payments: payments, attempts: attempts, notifications: notifications}
}

// Begin returns ctx unchanged
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	return ctx, ctx.Err()
}

// Commit is a no-op
func (u *UnitOfWork) Commit(ctx context.Context) error {
	return nil
}

// Rollback is a no-op
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	return nil
}

// GetPaymentRepository returns the payment store
func (u *UnitOfWork) GetPaymentRepository(ctx context.Context) persistence.PaymentRepository {
	return u.payments
}

// GetAttemptRepository returns the attempt store
func (u *UnitOfWork) GetAttemptRepository(ctx context.Context) persistence.PaymentAttemptRepository {
	return u.attempts
}

// GetNotificationQueue returns the notification queue
func (u *UnitOfWork) GetNotificationQueue(ctx context.Context) persistence.NotificationQueue {
	return u.notifications
}
