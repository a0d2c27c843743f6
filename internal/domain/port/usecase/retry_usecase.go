package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
)

// PluginControlledPaymentProcessor runs payment transactions under retry policy plugins
type PluginControlledPaymentProcessor interface {
	CreateAuthorization(ctx context.Context, req PaymentRequest, pluginNames []string, cc entity.CallContext) (*entity.Payment, error)
	CreateCapture(ctx context.Context, req PaymentRequest, pluginNames []string, cc entity.CallContext) (*entity.Payment, error)
	CreatePurchase(ctx context.Context, req PaymentRequest, pluginNames []string, cc entity.CallContext) (*entity.Payment, error)
	CreateVoid(ctx context.Context, req PaymentRequest, pluginNames []string, cc entity.CallContext) (*entity.Payment, error)
	CreateRefund(ctx context.Context, req PaymentRequest, pluginNames []string, cc entity.CallContext) (*entity.Payment, error)
	CreateCredit(ctx context.Context, req PaymentRequest, pluginNames []string, cc entity.CallContext) (*entity.Payment, error)

	// GetAttempts lists the retry attempts recorded for a payment external key
	GetAttempts(ctx context.Context, paymentExternalKey string, tenantRecordID int64) ([]*entity.PaymentAttempt, error)
}

// RetryableProcessor re-drives a payment attempt scheduled for retry
type RetryableProcessor interface {
	RetryPaymentTransaction(ctx context.Context, attemptID uuid.UUID, pluginNames []string, cc entity.CallContext) error
}

// NotificationHandler receives notifications whose effective date has passed
//
// Delivery is at least once; handlers must tolerate duplicates.
type NotificationHandler interface {
	HandleReadyNotification(
		ctx context.Context,
		event []byte,
		eventDateTime time.Time,
		userToken uuid.UUID,
		accountRecordID int64,
		tenantRecordID int64,
	) error
}
