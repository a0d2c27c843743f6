package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount            = 4001
	CodeInvalidRequest           = 4002
	CodeNoDefaultPaymentMethod   = 4003
	CodeDuplicateTransaction     = 4004
	CodeRefundAmountExceeded     = 4005
	CodeCaptureAmountExceeded    = 4006
	CodeCurrencyMismatch         = 4007
	CodeOperationNotAllowed      = 4008
	CodeInvoiceAlreadyPaid       = 4009
	CodeAutoPayOff               = 4010
	CodeInvalidPaymentMethod     = 4011
	CodeAbortedByControlPlugin   = 4012
	CodePaymentNotFound          = 4040
	CodeTransactionNotFound      = 4041
	CodeAccountNotFound          = 4042
	CodePaymentMethodNotFound    = 4043
	CodeAttemptNotFound          = 4044
	CodeAccountLocked            = 4230
	CodeTransactionNotPending    = 4231

	// 5xxx - Server errors
	CodeInternalServer  = 5000
	CodeUnknownPlugin   = 5001
	CodePluginFailure   = 5002
	CodePluginTimeout   = 5003
	CodeConfiguration   = 5004
	CodeDatabaseFailure = 5005
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is missing, negative or malformed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidTransactionExternalKey is returned when the transaction external key is empty
	ErrInvalidTransactionExternalKey = errors.New("transaction external key cannot be empty")

	// ErrNoDefaultPaymentMethod is returned when the account has no default payment method
	ErrNoDefaultPaymentMethod = errors.New("account has no default payment method")

	// ErrInvalidPaymentMethod is returned when a payment method is inactive or owned by another account
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrDuplicateTransaction is returned when a live transaction already uses the external key
	ErrDuplicateTransaction = errors.New("transaction with this external key already exists")

	// ErrDuplicatePayment is returned when a payment external key is already used
	ErrDuplicatePayment = errors.New("payment with this external key already exists")

	// ErrRefundAmountExceeded is returned when a refund exceeds what was collected
	ErrRefundAmountExceeded = errors.New("refund amount exceeds collected amount")

	// ErrCaptureAmountExceeded is returned when captures exceed the authorized amount
	ErrCaptureAmountExceeded = errors.New("capture amount exceeds authorized amount")

	// ErrCurrencyMismatch is returned when a follow-up transaction uses a different currency
	ErrCurrencyMismatch = errors.New("currency does not match payment currency")

	// ErrOperationNotAllowed is returned when the payment state does not permit the operation
	ErrOperationNotAllowed = errors.New("operation not allowed in current payment state")

	// ErrInvoiceAlreadyPaid is returned when an invoice payment targets a paid invoice
	ErrInvoiceAlreadyPaid = errors.New("invoice is already paid")

	// ErrAutoPayOff is returned when the account is tagged AUTO_PAY_OFF
	ErrAutoPayOff = errors.New("account has auto pay off")

	// ErrAbortedByControlPlugin is returned when a control plugin aborts the payment before the call
	ErrAbortedByControlPlugin = errors.New("payment aborted by control plugin")

	// ErrPaymentNotFound is returned when the requested payment doesn't exist
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("payment transaction not found")

	// ErrTransactionNotPending is returned when a pending resolution targets a non-pending transaction
	ErrTransactionNotPending = errors.New("payment transaction is not pending")

	// ErrAttemptNotFound is returned when the requested payment attempt doesn't exist
	ErrAttemptNotFound = errors.New("payment attempt not found")

	// ErrAccountNotFound is returned when the account lookup fails
	ErrAccountNotFound = errors.New("account not found")

	// ErrPaymentMethodNotFound is returned when the payment method doesn't exist
	ErrPaymentMethodNotFound = errors.New("payment method not found")

	// ErrInvoiceNotFound is returned when the invoice lookup fails
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrAccountLocked is returned when the account lock could not be acquired
	ErrAccountLocked = errors.New("account is locked by another operation")

	// ErrUnknownPlugin is returned when no plugin is registered under a name
	ErrUnknownPlugin = errors.New("unknown plugin")

	// ErrPluginTimeout is returned when the plugin did not answer within the dispatch timeout
	ErrPluginTimeout = errors.New("plugin call timed out")

	// ErrPluginUnavailable is returned by retry plugins that cannot answer right now
	ErrPluginUnavailable = errors.New("plugin unavailable")

	// ErrDispatcherClosed is returned when work is submitted after shutdown
	ErrDispatcherClosed = errors.New("plugin dispatcher is shut down")

	// ErrConfiguration is returned for invalid static configuration
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidTransactionExternalKey):
		return CodeInvalidRequest
	case errors.Is(err, ErrNoDefaultPaymentMethod):
		return CodeNoDefaultPaymentMethod
	case errors.Is(err, ErrInvalidPaymentMethod):
		return CodeInvalidPaymentMethod
	case errors.Is(err, ErrDuplicateTransaction), errors.Is(err, ErrDuplicatePayment):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrRefundAmountExceeded):
		return CodeRefundAmountExceeded
	case errors.Is(err, ErrCaptureAmountExceeded):
		return CodeCaptureAmountExceeded
	case errors.Is(err, ErrCurrencyMismatch):
		return CodeCurrencyMismatch
	case errors.Is(err, ErrOperationNotAllowed):
		return CodeOperationNotAllowed
	case errors.Is(err, ErrInvoiceAlreadyPaid):
		return CodeInvoiceAlreadyPaid
	case errors.Is(err, ErrAutoPayOff):
		return CodeAutoPayOff
	case errors.Is(err, ErrAbortedByControlPlugin):
		return CodeAbortedByControlPlugin
	case errors.Is(err, ErrPaymentNotFound):
		return CodePaymentNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrTransactionNotPending):
		return CodeTransactionNotPending
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrPaymentMethodNotFound):
		return CodePaymentMethodNotFound
	case errors.Is(err, ErrAttemptNotFound):
		return CodeAttemptNotFound
	case errors.Is(err, ErrAccountLocked):
		return CodeAccountLocked
	case errors.Is(err, ErrUnknownPlugin):
		return CodeUnknownPlugin
	case errors.Is(err, ErrPluginTimeout):
		return CodePluginTimeout
	case errors.Is(err, ErrConfiguration):
		return CodeConfiguration
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseFailure
	default:
		var pluginErr *PluginError
		if errors.As(err, &pluginErr) {
			return CodePluginFailure
		}
		return CodeInternalServer
	}
}

// IsBusinessError reports whether err is a typed error that may be shown to API callers as is
func IsBusinessError(err error) bool {
	code := ErrorCode(err)
	return code != CodeInternalServer && code != CodeDatabaseFailure
}

// PaymentError represents a failure while processing one payment transaction
type PaymentError struct {
	AccountID              string
	PaymentID              string
	TransactionExternalKey string
	TransactionType        string
	Reason                 string
	Err                    error
}

// Error implements the error interface for PaymentError
func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment error for account %s (payment: %s, transaction key: %s, type: %s): %s - %v",
		e.AccountID, e.PaymentID, e.TransactionExternalKey, e.TransactionType, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PaymentError) LogFields() map[string]any {
	return map[string]any{
		"error_type":               "payment_error",
		"account_id":               e.AccountID,
		"payment_id":               e.PaymentID,
		"transaction_external_key": e.TransactionExternalKey,
		"transaction_type":         e.TransactionType,
		"reason":                   e.Reason,
		"error":                    e.Err.Error(),
		"error_code":               ErrorCode(e.Err),
	}
}

// NewPaymentError creates a detailed payment error
func NewPaymentError(accountID, paymentID, transactionExternalKey, transactionType, reason string, err error) error {
	return &PaymentError{
		AccountID:              accountID,
		PaymentID:              paymentID,
		TransactionExternalKey: transactionExternalKey,
		TransactionType:        transactionType,
		Reason:                 reason,
		Err:                    err,
	}
}

// PluginError wraps an error raised by a payment plugin call
type PluginError struct {
	PluginName string
	Operation  string
	Err        error
}

// Error implements the error interface
func (e *PluginError) Error() string {
	return fmt.Sprintf("plugin %s failed during %s: %v", e.PluginName, e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *PluginError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PluginError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "plugin_error",
		"plugin_name": e.PluginName,
		"operation":   e.Operation,
		"error":       e.Err.Error(),
		"error_code":  CodePluginFailure,
	}
}

// NewPluginError creates a new plugin error
func NewPluginError(pluginName, operation string, err error) error {
	return &PluginError{
		PluginName: pluginName,
		Operation:  operation,
		Err:        err,
	}
}

// DuplicateTransactionError provides detailed information about duplicate transaction attempts
type DuplicateTransactionError struct {
	TransactionExternalKey string
	PaymentID              string
}

// Error implements the error interface
func (e *DuplicateTransactionError) Error() string {
	return fmt.Sprintf("duplicate transaction detected: externalKey=%s on payment %s",
		e.TransactionExternalKey, e.PaymentID)
}

// Is checks if the target error is an ErrDuplicateTransaction
func (e *DuplicateTransactionError) Is(target error) bool {
	return target == ErrDuplicateTransaction
}

// NewDuplicateTransactionError creates a new detailed duplicate transaction error
func NewDuplicateTransactionError(transactionExternalKey, paymentID string) error {
	return &DuplicateTransactionError{
		TransactionExternalKey: transactionExternalKey,
		PaymentID:              paymentID,
	}
}

// AmountExceededError describes a follow-up amount over its ceiling
type AmountExceededError struct {
	Requested string
	Available string
	Err       error
}

// Error implements the error interface
func (e *AmountExceededError) Error() string {
	return fmt.Sprintf("%v: requested %s, available %s", e.Err, e.Requested, e.Available)
}

// Unwrap returns the underlying sentinel
func (e *AmountExceededError) Unwrap() error {
	return e.Err
}

// NewAmountExceededError creates an AmountExceededError for the given sentinel
func NewAmountExceededError(sentinel error, requested, available string) error {
	return &AmountExceededError{Requested: requested, Available: available, Err: sentinel}
}

// IsDuplicateTransactionError checks if the error is a duplicate transaction error
func IsDuplicateTransactionError(err error) bool {
	return errors.Is(err, ErrDuplicateTransaction)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrPaymentNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrAttemptNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrPaymentMethodNotFound) ||
		errors.Is(err, ErrInvoiceNotFound)
}

// IsAccountLockedError checks if the error is related to a locked account
func IsAccountLockedError(err error) bool {
	return errors.Is(err, ErrAccountLocked)
}
