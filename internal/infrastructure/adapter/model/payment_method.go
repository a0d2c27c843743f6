package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentMethod represents the database model for payment methods
// External keys are unique among the active methods of an account, see the migration indexes
type PaymentMethod struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	AccountID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	ExternalKey     string            `gorm:"size:255;not null"`
	PluginName      string            `gorm:"size:128;not null"`
	IsActive        bool              `gorm:"not null"`
	Properties      datatypes.JSONMap `gorm:"type:jsonb"`
	AccountRecordID int64             `gorm:"not null"`
	TenantRecordID  int64             `gorm:"not null"`
	CreatedAt       time.Time         `gorm:"not null"`
	UpdatedAt       time.Time         `gorm:"not null"`
}

// TableName specifies the table name for PaymentMethod
func (PaymentMethod) TableName() string {
	return "payment_methods"
}
