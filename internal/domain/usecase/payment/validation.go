package payment

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
)

// TransactionValidator checks a transaction request before anything is written
type TransactionValidator struct{}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{}
}

// ValidateRequest checks the fields of a request that do not depend on stored state
func (v *TransactionValidator) ValidateRequest(req RunRequest) error {
	if req.AccountID == uuid.Nil {
		return fmt.Errorf("%w: account id is required", errs.ErrInvalidRequest)
	}
	if _, ok := pluginCalls[req.TransactionType]; !ok {
		return fmt.Errorf("%w: unknown transaction type %q", errs.ErrInvalidRequest, req.TransactionType)
	}
	if req.TransactionType != entity.TransactionAuthorize &&
		req.TransactionType != entity.TransactionPurchase &&
		req.TransactionType != entity.TransactionCredit &&
		req.PaymentID == nil && req.PaymentExternalKey == "" {
		return fmt.Errorf("%w: %s requires an existing payment", errs.ErrInvalidRequest, req.TransactionType)
	}
	return nil
}

// ResolveAmount returns the amount to charge for the transaction
// VOID ignores any requested amount; every other type needs a positive amount
// with no more digits than the currency allows
func (v *TransactionValidator) ResolveAmount(transactionType entity.TransactionType, amount *decimal.Decimal, currency string) (decimal.Decimal, error) {
	if transactionType == entity.TransactionVoid {
		return decimal.Zero, nil
	}
	if amount == nil {
		return decimal.Zero, fmt.Errorf("%w: %s requires an amount", errs.ErrInvalidAmount, transactionType)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s amount must be greater than zero", errs.ErrInvalidAmount, transactionType)
	}
	if !amount.Equal(entity.RoundToCurrency(*amount, currency)) {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed for %s",
			errs.ErrInvalidAmount, entity.CurrencyDigits(currency), currency)
	}
	return *amount, nil
}

// ValidateAgainstPayment checks follow-up amounts against what the payment already holds
func (v *TransactionValidator) ValidateAgainstPayment(transactionType entity.TransactionType, amount decimal.Decimal, payment *entity.Payment) error {
	if payment == nil {
		return nil
	}

	amounts := payment.Amounts()
	switch transactionType {
	case entity.TransactionCapture:
		requested := payment.ReservedAmount(entity.TransactionCapture).Add(amount)
		if requested.GreaterThan(amounts.AuthAmount) {
			return errs.NewAmountExceededError(errs.ErrCaptureAmountExceeded,
				requested.String(), amounts.AuthAmount.String())
		}
	case entity.TransactionRefund:
		available := amounts.CapturedAmount.Add(amounts.PurchasedAmount)
		requested := payment.ReservedAmount(entity.TransactionRefund).Add(amount)
		if requested.GreaterThan(available) {
			return errs.NewAmountExceededError(errs.ErrRefundAmountExceeded,
				requested.String(), available.String())
		}
	}
	return nil
}

// ValidateCurrency checks that a follow-up transaction uses the payment currency
func (v *TransactionValidator) ValidateCurrency(requested string, payment *entity.Payment) error {
	if payment == nil || requested == "" || payment.Currency() == "" {
		return nil
	}
	if entity.NormalizeCurrency(requested) != payment.Currency() {
		return fmt.Errorf("%w: payment is in %s, got %s", errs.ErrCurrencyMismatch,
			payment.Currency(), entity.NormalizeCurrency(requested))
	}
	return nil
}
