package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountLock represents the lease on an account held while a payment operation runs
type AccountLock struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Owner     string    `gorm:"size:64;not null"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for AccountLock
func (AccountLock) TableName() string {
	return "account_locks"
}
