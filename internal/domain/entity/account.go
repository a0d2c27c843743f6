package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Account is the read-only view of a customer account consumed by the engine
type Account struct {
	ID              uuid.UUID
	ExternalKey     string
	Currency        string
	PaymentMethodID *uuid.UUID // default payment method
	RecordID        int64
	TenantRecordID  int64
	CreatedDate     time.Time
	UpdatedDate     time.Time
}

// HasDefaultPaymentMethod reports whether a default payment method is set
func (a *Account) HasDefaultPaymentMethod() bool {
	return a.PaymentMethodID != nil && *a.PaymentMethodID != uuid.Nil
}

// CallContext carries the caller identity through every operation
type CallContext struct {
	UserToken       uuid.UUID
	UserName        string
	Reason          string
	AccountRecordID int64
	TenantRecordID  int64
	CreatedDate     time.Time
}

// NewCallContext creates a call context scoped to an account
func NewCallContext(userName, reason string, account *Account, now time.Time) CallContext {
	cc := CallContext{
		UserToken:   uuid.New(),
		UserName:    userName,
		Reason:      reason,
		CreatedDate: now,
	}
	if account != nil {
		cc.AccountRecordID = account.RecordID
		cc.TenantRecordID = account.TenantRecordID
	}
	return cc
}

type callContextKey struct{}

// ContextWithCallContext returns a context carrying the call context
func ContextWithCallContext(ctx context.Context, cc CallContext) context.Context {
	return context.WithValue(ctx, callContextKey{}, cc)
}

// CallContextFromContext returns the call context stored by ContextWithCallContext
func CallContextFromContext(ctx context.Context) (CallContext, bool) {
	cc, ok := ctx.Value(callContextKey{}).(CallContext)
	return cc, ok
}
