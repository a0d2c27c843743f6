package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod binds an account to the plugin that charges it
type PaymentMethod struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	ExternalKey     string
	PluginName      string
	IsActive        bool
	Properties      map[string]any
	CreatedDate     time.Time
	UpdatedDate     time.Time
	AccountRecordID int64
	TenantRecordID  int64
}

// NewPaymentMethod creates an active payment method
func NewPaymentMethod(accountID uuid.UUID, externalKey, pluginName string, properties map[string]any, now time.Time) *PaymentMethod {
	id := uuid.New()
	if externalKey == "" {
		externalKey = id.String()
	}
	return &PaymentMethod{
		ID:          id,
		AccountID:   accountID,
		ExternalKey: externalKey,
		PluginName:  pluginName,
		IsActive:    true,
		Properties:  properties,
		CreatedDate: now,
		UpdatedDate: now,
	}
}
