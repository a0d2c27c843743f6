package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Retry automaton state names persisted on a payment attempt
const (
	AttemptStateInit    = "INIT"
	AttemptStateSuccess = "SUCCESS"
	AttemptStateRetried = "RETRIED"
	AttemptStateAborted = "ABORTED"
)

// PaymentAttempt is the resumable record of a payment driven by retry policy plugins
type PaymentAttempt struct {
	ID                     uuid.UUID
	AccountID              uuid.UUID
	PaymentMethodID        uuid.UUID
	PaymentExternalKey     string
	TransactionExternalKey string
	TransactionID          *uuid.UUID // last transaction attempted
	StateName              string
	TransactionType        TransactionType
	PluginNames            []string
	Amount                 decimal.Decimal
	Currency               string
	Properties             map[string]any
	CreatedDate            time.Time
	UpdatedDate            time.Time
	AccountRecordID        int64
	TenantRecordID         int64
}

// NewPaymentAttempt creates an attempt in the INIT state
func NewPaymentAttempt(
	accountID uuid.UUID,
	paymentMethodID uuid.UUID,
	paymentExternalKey string,
	transactionExternalKey string,
	transactionType TransactionType,
	amount decimal.Decimal,
	currency string,
	pluginNames []string,
	properties map[string]any,
	now time.Time,
) *PaymentAttempt {
	names := make([]string, len(pluginNames))
	copy(names, pluginNames)

	return &PaymentAttempt{
		ID:                     uuid.New(),
		AccountID:              accountID,
		PaymentMethodID:        paymentMethodID,
		PaymentExternalKey:     paymentExternalKey,
		TransactionExternalKey: transactionExternalKey,
		StateName:              AttemptStateInit,
		TransactionType:        transactionType,
		PluginNames:            names,
		Amount:                 amount,
		Currency:               NormalizeCurrency(currency),
		Properties:             properties,
		CreatedDate:            now,
		UpdatedDate:            now,
	}
}

// IsFinal reports whether the attempt can no longer be retried
func (a *PaymentAttempt) IsFinal() bool {
	return a.StateName == AttemptStateSuccess || a.StateName == AttemptStateAborted
}
