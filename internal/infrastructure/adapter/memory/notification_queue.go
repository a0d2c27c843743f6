package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
)

// NotificationQueue keeps future notifications in memory
type NotificationQueue struct {
	mu            sync.Mutex
	notifications []*entity.Notification
}

var _ persistence.NotificationQueue = (*NotificationQueue)(nil)

// NewNotificationQueue creates an empty in-memory queue
func NewNotificationQueue() *NotificationQueue {
	return &NotificationQueue{}
}

// RecordFutureNotification enqueues an event for delivery at effectiveDate
func (q *NotificationQueue) RecordFutureNotification(
	ctx context.Context,
	queueName string,
	effectiveDate time.Time,
	event any,
	userToken uuid.UUID,
	accountRecordID int64,
	tenantRecordID int64,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode notification event: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.notifications = append(q.notifications, &entity.Notification{
		ID:              uuid.New(),
		QueueName:       queueName,
		EffectiveDate:   effectiveDate,
		Event:           payload,
		State:           entity.NotificationAvailable,
		UserToken:       userToken,
		AccountRecordID: accountRecordID,
		TenantRecordID:  tenantRecordID,
		CreatedDate:     effectiveDate,
		UpdatedDate:     effectiveDate,
	})
	return nil
}

// GetFutureNotifications lists the unprocessed notifications of an account
func (q *NotificationQueue) GetFutureNotifications(ctx context.Context, queueName string, accountRecordID int64) ([]*entity.Notification, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var out []*entity.Notification
	for _, n := range q.notifications {
		if n.QueueName == queueName && n.AccountRecordID == accountRecordID &&
			(n.State == entity.NotificationAvailable || n.State == entity.NotificationInProcessing) {
			out = append(out, copyNotification(n))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EffectiveDate.Before(out[j].EffectiveDate) })
	return out, nil
}

// ClaimReady leases due notifications
func (q *NotificationQueue) ClaimReady(ctx context.Context, queueName string, now time.Time, limit int, lease time.Duration) ([]*entity.Notification, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var due []*entity.Notification
	for _, n := range q.notifications {
		if n.QueueName != queueName || n.EffectiveDate.After(now) {
			continue
		}
		available := n.State == entity.NotificationAvailable
		expired := n.State == entity.NotificationInProcessing && n.LeaseExpiresAt != nil && !n.LeaseExpiresAt.After(now)
		if available || expired {
			due = append(due, n)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].EffectiveDate.Before(due[j].EffectiveDate) })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	out := make([]*entity.Notification, 0, len(due))
	expires := now.Add(lease)
	for _, n := range due {
		n.State = entity.NotificationInProcessing
		n.LeaseExpiresAt = &expires
		n.UpdatedDate = now
		out = append(out, copyNotification(n))
	}
	return out, nil
}

// MarkProcessed records a successful delivery
func (q *NotificationQueue) MarkProcessed(ctx context.Context, id uuid.UUID, now time.Time) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := q.findLocked(id)
	if n == nil {
		return fmt.Errorf("notification %s: %w", id, errs.ErrNotFound)
	}
	n.State = entity.NotificationProcessed
	n.ProcessedDate = &now
	n.LeaseExpiresAt = nil
	n.UpdatedDate = now
	return nil
}

// MarkFailed records a failed delivery
func (q *NotificationQueue) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string, retryAt *time.Time, now time.Time) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := q.findLocked(id)
	if n == nil {
		return fmt.Errorf("notification %s: %w", id, errs.ErrNotFound)
	}
	n.ErrorCount++
	n.LastError = errMsg
	n.LeaseExpiresAt = nil
	n.UpdatedDate = now
	if retryAt == nil {
		n.State = entity.NotificationFailed
		return nil
	}
	n.State = entity.NotificationAvailable
	n.EffectiveDate = *retryAt
	return nil
}

// ListByState returns the notifications of a queue in a state, oldest effective date first
func (q *NotificationQueue) ListByState(ctx context.Context, queueName string, state entity.NotificationState, limit int) ([]*entity.Notification, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var out []*entity.Notification
	for _, n := range q.notifications {
		if n.QueueName == queueName && n.State == state {
			out = append(out, copyNotification(n))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EffectiveDate.Before(out[j].EffectiveDate) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// All returns a snapshot of every notification, for inspection in tests
func (q *NotificationQueue) All() []*entity.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]*entity.Notification, 0, len(q.notifications))
	for _, n := range q.notifications {
		out = append(out, copyNotification(n))
	}
	return out
}

func (q *NotificationQueue) findLocked(id uuid.UUID) *entity.Notification {
	for _, n := range q.notifications {
		if n.ID == id {
			return n
		}
	}
	return nil
}

func copyNotification(n *entity.Notification) *entity.Notification {
	c := *n
	c.Event = append([]byte(nil), n.Event...)
	return &c
}
