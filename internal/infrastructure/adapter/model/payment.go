package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment represents the database model for payments
type Payment struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID            uuid.UUID `gorm:"type:uuid;not null;index"`
	PaymentMethodID      uuid.UUID `gorm:"type:uuid;not null"`
	ExternalKey          string    `gorm:"size:255;not null;uniqueIndex:idx_payments_tenant_external_key,priority:2"`
	PaymentNumber        int64     `gorm:"autoIncrement;not null;uniqueIndex"`
	StateName            string    `gorm:"size:64;not null"`
	LastSuccessStateName string    `gorm:"size:64"`
	AccountRecordID      int64     `gorm:"not null"`
	TenantRecordID       int64     `gorm:"not null;uniqueIndex:idx_payments_tenant_external_key,priority:1"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`

	Transactions []PaymentTransaction `gorm:"foreignKey:PaymentID;references:ID"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// PaymentTransaction represents one gateway operation on a payment
// Seq keeps the insertion order for transactions sharing an effective date
type PaymentTransaction struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Seq               int64           `gorm:"autoIncrement;not null"`
	PaymentID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ExternalKey       string          `gorm:"size:255;not null;index:idx_payment_transactions_tenant_key,priority:2"`
	TransactionType   string          `gorm:"size:32;not null"`
	EffectiveDate     time.Time       `gorm:"not null"`
	Status            string          `gorm:"size:32;not null"`
	Amount            decimal.Decimal `gorm:"type:numeric(20,9);not null"`
	Currency          string          `gorm:"size:3;not null"`
	ProcessedAmount   decimal.Decimal `gorm:"type:numeric(20,9);not null;default:0"`
	ProcessedCurrency string          `gorm:"size:3"`
	GatewayErrorCode  string          `gorm:"size:255"`
	GatewayErrorMsg   string          `gorm:"type:text"`
	FirstReferenceID  string          `gorm:"size:255"`
	SecondReferenceID string          `gorm:"size:255"`
	AttemptID         *uuid.UUID      `gorm:"type:uuid"`
	AccountRecordID   int64           `gorm:"not null"`
	TenantRecordID    int64           `gorm:"not null;index:idx_payment_transactions_tenant_key,priority:1"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName specifies the table name for PaymentTransaction
func (PaymentTransaction) TableName() string {
	return "payment_transactions"
}
