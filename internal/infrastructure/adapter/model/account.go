package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents the local copy of an account served to the engine
type Account struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RecordID        int64           `gorm:"autoIncrement;not null;uniqueIndex"`
	ExternalKey     string          `gorm:"size:255;not null;uniqueIndex:idx_accounts_tenant_external_key,priority:2"`
	Currency        string          `gorm:"size:3;not null"`
	PaymentMethodID *uuid.UUID      `gorm:"type:uuid"`
	CreditBalance   decimal.Decimal `gorm:"type:numeric(20,9);not null;default:0"`
	TenantRecordID  int64           `gorm:"not null;uniqueIndex:idx_accounts_tenant_external_key,priority:1"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// AccountTag is a control tag set on an account
type AccountTag struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:64;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for AccountTag
func (AccountTag) TableName() string {
	return "account_tags"
}

// Invoice holds the amount still owed on an invoice
type Invoice struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Balance   decimal.Decimal `gorm:"type:numeric(20,9);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}
