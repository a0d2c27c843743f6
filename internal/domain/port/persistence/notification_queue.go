package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
)

// NotificationQueue is the durable store of future notifications
type NotificationQueue interface {
	// RecordFutureNotification enqueues an event to be delivered once effectiveDate has passed
	// The event is stored as JSON
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	RecordFutureNotification(
		ctx context.Context,
		queueName string,
		effectiveDate time.Time,
		event any,
		userToken uuid.UUID,
		accountRecordID int64,
		tenantRecordID int64,
	) error

	// GetFutureNotifications lists the notifications of an account that have not been processed yet
	GetFutureNotifications(ctx context.Context, queueName string, accountRecordID int64) ([]*entity.Notification, error)

	// ClaimReady leases up to limit due notifications to the caller
	// Notifications whose lease expired are claimed again
	ClaimReady(ctx context.Context, queueName string, now time.Time, limit int, lease time.Duration) ([]*entity.Notification, error)

	// MarkProcessed records a successful delivery
	MarkProcessed(ctx context.Context, id uuid.UUID, now time.Time) error

	// MarkFailed records a failed delivery
	// A nil retryAt moves the notification to FAILED, otherwise it becomes available again at retryAt
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string, retryAt *time.Time, now time.Time) error
}
