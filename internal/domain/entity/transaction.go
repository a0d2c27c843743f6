package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
)

// TransactionType is the kind of operation a payment transaction performs against the gateway
type TransactionType string

// Transaction types
const (
	TransactionAuthorize TransactionType = "AUTHORIZE"
	TransactionCapture   TransactionType = "CAPTURE"
	TransactionPurchase  TransactionType = "PURCHASE"
	TransactionVoid      TransactionType = "VOID"
	TransactionRefund    TransactionType = "REFUND"
	TransactionCredit    TransactionType = "CREDIT"
)

// TransactionTypes lists every transaction type in declaration order
var TransactionTypes = []TransactionType{
	TransactionAuthorize,
	TransactionCapture,
	TransactionPurchase,
	TransactionVoid,
	TransactionRefund,
	TransactionCredit,
}

// ParseTransactionType validates a transaction type name
func ParseTransactionType(s string) (TransactionType, error) {
	for _, t := range TransactionTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown transaction type %q", errs.ErrInvalidRequest, s)
}

// TransactionStatus is the status persisted on a payment transaction row
type TransactionStatus string

// TransactionStatus constants
const (
	TransactionStatusSuccess        TransactionStatus = "SUCCESS"
	TransactionStatusPending        TransactionStatus = "PENDING"
	TransactionStatusPaymentFailure TransactionStatus = "PAYMENT_FAILURE"
	TransactionStatusPluginFailure  TransactionStatus = "PLUGIN_FAILURE"
	TransactionStatusUnknown        TransactionStatus = "UNKNOWN"
)

// IsLive reports whether the status still reserves its transaction external key
func (s TransactionStatus) IsLive() bool {
	return s == TransactionStatusSuccess || s == TransactionStatusPending || s == TransactionStatusUnknown
}

// IsTerminal reports whether no further gateway outcome is expected for the status
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusSuccess || s == TransactionStatusPaymentFailure || s == TransactionStatusPluginFailure
}

// PaymentStatus is the outcome reported for one processed transaction
type PaymentStatus string

// PaymentStatus constants
const (
	PaymentStatusSuccess               PaymentStatus = "SUCCESS"
	PaymentStatusPending               PaymentStatus = "PENDING"
	PaymentStatusPaymentFailure        PaymentStatus = "PAYMENT_FAILURE"
	PaymentStatusPaymentFailureAborted PaymentStatus = "PAYMENT_FAILURE_ABORTED"
	PaymentStatusPluginFailure         PaymentStatus = "PLUGIN_FAILURE"
	PaymentStatusPluginFailureAborted  PaymentStatus = "PLUGIN_FAILURE_ABORTED"
	PaymentStatusUnknown               PaymentStatus = "UNKNOWN"
	PaymentStatusAutoPayOff            PaymentStatus = "AUTO_PAY_OFF"
)

// ToTransactionStatus collapses the aborted variants onto the status stored on the row
func (s PaymentStatus) ToTransactionStatus() TransactionStatus {
	switch s {
	case PaymentStatusSuccess:
		return TransactionStatusSuccess
	case PaymentStatusPending:
		return TransactionStatusPending
	case PaymentStatusPaymentFailure, PaymentStatusPaymentFailureAborted, PaymentStatusAutoPayOff:
		return TransactionStatusPaymentFailure
	case PaymentStatusPluginFailure, PaymentStatusPluginFailureAborted:
		return TransactionStatusPluginFailure
	default:
		return TransactionStatusUnknown
	}
}

// PaymentTransaction is one gateway call made on behalf of a payment
type PaymentTransaction struct {
	ID                uuid.UUID
	PaymentID         uuid.UUID
	ExternalKey       string
	TransactionType   TransactionType
	EffectiveDate     time.Time
	Status            TransactionStatus
	Amount            decimal.Decimal // requested amount, zero for VOID
	Currency          string
	ProcessedAmount   decimal.Decimal
	ProcessedCurrency string
	GatewayErrorCode  string
	GatewayErrorMsg   string
	FirstReferenceID  string
	SecondReferenceID string
	AttemptID         *uuid.UUID
	CreatedDate       time.Time
	UpdatedDate       time.Time
	AccountRecordID   int64
	TenantRecordID    int64
	PaymentInfoPlugin *PluginResult // not persisted, filled when plugin info is requested
}

// NewUnknownTransaction builds the write-ahead row recorded before the gateway is called
func NewUnknownTransaction(
	paymentID uuid.UUID,
	externalKey string,
	transactionType TransactionType,
	amount decimal.Decimal,
	currency string,
	effectiveDate time.Time,
	now time.Time,
) (*PaymentTransaction, error) {
	if externalKey == "" {
		return nil, errs.ErrInvalidTransactionExternalKey
	}
	if transactionType != TransactionVoid && !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s amount must be greater than zero", errs.ErrInvalidAmount, transactionType)
	}

	return &PaymentTransaction{
		ID:              uuid.New(),
		PaymentID:       paymentID,
		ExternalKey:     externalKey,
		TransactionType: transactionType,
		EffectiveDate:   effectiveDate,
		Status:          TransactionStatusUnknown,
		Amount:          amount,
		Currency:        NormalizeCurrency(currency),
		CreatedDate:     now,
		UpdatedDate:     now,
	}, nil
}

// ApplyResult records the gateway outcome on the transaction
func (t *PaymentTransaction) ApplyResult(status PaymentStatus, result *PluginResult, now time.Time) {
	t.Status = status.ToTransactionStatus()
	t.UpdatedDate = now
	if result == nil {
		t.ProcessedAmount = decimal.Zero
		t.ProcessedCurrency = t.Currency
		return
	}

	t.ProcessedAmount = result.ProcessedAmount
	t.ProcessedCurrency = result.ProcessedCurrency
	if t.ProcessedCurrency == "" {
		t.ProcessedCurrency = t.Currency
	}
	t.GatewayErrorCode = result.GatewayErrorCode
	t.GatewayErrorMsg = result.GatewayError
	t.FirstReferenceID = result.FirstReferenceID
	t.SecondReferenceID = result.SecondReferenceID
}

// IsSuccess reports whether the gateway accepted the transaction
func (t *PaymentTransaction) IsSuccess() bool {
	return t.Status == TransactionStatusSuccess
}
