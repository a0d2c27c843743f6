package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationState is the delivery state of a queued notification
type NotificationState string

// NotificationState constants
const (
	NotificationAvailable    NotificationState = "AVAILABLE"
	NotificationInProcessing NotificationState = "IN_PROCESSING"
	NotificationProcessed    NotificationState = "PROCESSED"
	NotificationFailed       NotificationState = "FAILED"
)

// Notification is an event scheduled for delivery at a future date
type Notification struct {
	ID              uuid.UUID
	QueueName       string
	EffectiveDate   time.Time
	Event           []byte // JSON
	State           NotificationState
	UserToken       uuid.UUID
	AccountRecordID int64
	TenantRecordID  int64
	ErrorCount      int
	LastError       string
	LeaseExpiresAt  *time.Time
	ProcessedDate   *time.Time
	CreatedDate     time.Time
	UpdatedDate     time.Time
}
