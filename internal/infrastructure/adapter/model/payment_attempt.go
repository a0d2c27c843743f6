package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PaymentAttempt represents the resumable record of a retry-driven payment
type PaymentAttempt struct {
	ID                     uuid.UUID         `gorm:"type:uuid;primaryKey"`
	AccountID              uuid.UUID         `gorm:"type:uuid;not null;index"`
	PaymentMethodID        uuid.UUID         `gorm:"type:uuid;not null"`
	PaymentExternalKey     string            `gorm:"size:255;not null;index:idx_payment_attempts_payment_key,priority:2"`
	TransactionExternalKey string            `gorm:"size:255;not null;uniqueIndex:idx_payment_attempts_tx_key,priority:2"`
	TransactionID          *uuid.UUID        `gorm:"type:uuid"`
	StateName              string            `gorm:"size:32;not null"`
	TransactionType        string            `gorm:"size:32;not null"`
	PluginNames            pq.StringArray    `gorm:"type:text[]"`
	Amount                 decimal.Decimal   `gorm:"type:numeric(20,9);not null"`
	Currency               string            `gorm:"size:3"`
	Properties             datatypes.JSONMap `gorm:"type:jsonb"`
	AccountRecordID        int64             `gorm:"not null"`
	TenantRecordID         int64             `gorm:"not null;uniqueIndex:idx_payment_attempts_tx_key,priority:1;index:idx_payment_attempts_payment_key,priority:1"`
	CreatedAt              time.Time         `gorm:"not null"`
	UpdatedAt              time.Time         `gorm:"not null"`
}

// TableName specifies the table name for PaymentAttempt
func (PaymentAttempt) TableName() string {
	return "payment_attempts"
}
