package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification represents a queued future notification
type Notification struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	QueueName       string         `gorm:"size:128;not null;index:idx_notifications_ready,priority:1"`
	State           string         `gorm:"size:32;not null;index:idx_notifications_ready,priority:2"`
	EffectiveDate   time.Time      `gorm:"not null;index:idx_notifications_ready,priority:3"`
	Event           datatypes.JSON `gorm:"type:jsonb;not null"`
	UserToken       uuid.UUID      `gorm:"type:uuid"`
	AccountRecordID int64          `gorm:"not null;index"`
	TenantRecordID  int64          `gorm:"not null"`
	ErrorCount      int            `gorm:"not null;default:0"`
	LastError       string         `gorm:"type:text"`
	LeaseExpiresAt  *time.Time
	ProcessedDate   *time.Time
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
