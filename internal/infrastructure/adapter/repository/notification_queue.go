package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/model"
)

// NotificationQueue implements persistence.NotificationQueue on the notifications table
type NotificationQueue struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ persistence.NotificationQueue = (*NotificationQueue)(nil)

// NewNotificationQueue creates a new NotificationQueue instance
func NewNotificationQueue(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *NotificationQueue {
	return &NotificationQueue{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// RecordFutureNotification stores the JSON encoded event for delivery at effectiveDate
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

	now := q.timeProvider.Now()
	notification := model.Notification{
		ID:              uuid.New(),
		QueueName:       queueName,
		State:           string(entity.NotificationAvailable),
		EffectiveDate:   effectiveDate,
		Event:           datatypes.JSON(payload),
		UserToken:       userToken,
		AccountRecordID: accountRecordID,
		TenantRecordID:  tenantRecordID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := q.db.WithContext(ctx).Create(&notification).Error; err != nil {
		q.logger.Error("Failed to record notification", map[string]any{
			"queue": queueName,
			"error": err.Error(),
		})
		return dbError("record notification", err)
	}

	q.logger.Debug("Notification recorded", map[string]any{
		"notification_id": notification.ID,
		"queue":           queueName,
		"effective_date":  effectiveDate,
	})
	return nil
}

// GetFutureNotifications lists the unprocessed notifications of an account by effective date
func (q *NotificationQueue) GetFutureNotifications(ctx context.Context, queueName string, accountRecordID int64) ([]*entity.Notification, error) {
	var models []model.Notification
	err := q.db.WithContext(ctx).
		Where("queue_name = ? AND account_record_id = ? AND state IN ?", queueName, accountRecordID,
			[]string{string(entity.NotificationAvailable), string(entity.NotificationInProcessing)}).
		Order("effective_date, created_at").
		Find(&models).Error
	if err != nil {
		return nil, dbError("get future notifications", err)
	}
	return notificationsToEntities(models), nil
}

// ClaimReady leases due notifications, skipping rows another poller is claiming
func (q *NotificationQueue) ClaimReady(ctx context.Context, queueName string, now time.Time, limit int, lease time.Duration) ([]*entity.Notification, error) {
	expires := now.Add(lease)
	var claimed []model.Notification

	err := q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("queue_name = ? AND effective_date <= ?", queueName, now).
			Where(tx.Where("state = ?", string(entity.NotificationAvailable)).
				Or("state = ? AND lease_expires_at <= ?", string(entity.NotificationInProcessing), now)).
			Order("effective_date, created_at")
		if limit > 0 {
			query = query.Limit(limit)
		}
		if err := query.Find(&claimed).Error; err != nil {
			return err
		}
		if len(claimed) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(claimed))
		for i := range claimed {
			ids = append(ids, claimed[i].ID)
			claimed[i].State = string(entity.NotificationInProcessing)
			claimed[i].LeaseExpiresAt = &expires
			claimed[i].UpdatedAt = now
		}

		return tx.Model(&model.Notification{}).
			Where("id IN ?", ids).
			Updates(map[string]any{
				"state":            string(entity.NotificationInProcessing),
				"lease_expires_at": expires,
				"updated_at":       now,
			}).Error
	})
	if err != nil {
		q.logger.Error("Failed to claim notifications", map[string]any{
			"queue": queueName,
			"error": err.Error(),
		})
		return nil, dbError("claim notifications", err)
	}

	return notificationsToEntities(claimed), nil
}

// MarkProcessed records a successful delivery
func (q *NotificationQueue) MarkProcessed(ctx context.Context, id uuid.UUID, now time.Time) error {
	result := q.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"state":            string(entity.NotificationProcessed),
			"processed_date":   now,
			"lease_expires_at": nil,
			"updated_at":       now,
		})
	if result.Error != nil {
		return dbError("mark notification processed", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification %s: %w", id, errs.ErrNotFound)
	}
	return nil
}

// MarkFailed records a failed delivery, rescheduling it when retryAt is set
func (q *NotificationQueue) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string, retryAt *time.Time, now time.Time) error {
	updates := map[string]any{
		"error_count":      gorm.Expr("error_count + 1"),
		"last_error":       errMsg,
		"lease_expires_at": nil,
		"updated_at":       now,
	}
	if retryAt == nil {
		updates["state"] = string(entity.NotificationFailed)
	} else {
		updates["state"] = string(entity.NotificationAvailable)
		updates["effective_date"] = *retryAt
	}

	result := q.db.WithContext(ctx).Model(&model.Notification{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return dbError("mark notification failed", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification %s: %w", id, errs.ErrNotFound)
	}
	return nil
}

// ListByState returns the notifications of a queue in a state, oldest effective date first
func (q *NotificationQueue) ListByState(ctx context.Context, queueName string, state entity.NotificationState, limit int) ([]*entity.Notification, error) {
	query := q.db.WithContext(ctx).
		Where("queue_name = ? AND state = ?", queueName, string(state)).
		Order("effective_date")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []model.Notification
	if err := query.Find(&models).Error; err != nil {
		return nil, dbError("list notifications", err)
	}
	return notificationsToEntities(models), nil
}

func notificationToEntity(m *model.Notification) *entity.Notification {
	return &entity.Notification{
		ID:              m.ID,
		QueueName:       m.QueueName,
		EffectiveDate:   m.EffectiveDate,
		Event:           []byte(m.Event),
		State:           entity.NotificationState(m.State),
		UserToken:       m.UserToken,
		AccountRecordID: m.AccountRecordID,
		TenantRecordID:  m.TenantRecordID,
		ErrorCount:      m.ErrorCount,
		LastError:       m.LastError,
		LeaseExpiresAt:  m.LeaseExpiresAt,
		ProcessedDate:   m.ProcessedDate,
		CreatedDate:     m.CreatedAt,
		UpdatedDate:     m.UpdatedAt,
	}
}

func notificationsToEntities(models []model.Notification) []*entity.Notification {
	out := make([]*entity.Notification, 0, len(models))
	for i := range models {
		out = append(out, notificationToEntity(&models[i]))
	}
	return out
}
