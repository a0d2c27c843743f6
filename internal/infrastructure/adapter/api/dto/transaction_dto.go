package dto

import (
	"time"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
)

// PaymentTransactionRequest represents the API request for one payment transaction
//
// AUTHORIZE, PURCHASE and CREDIT open a payment unless PaymentID names an existing one.
// CAPTURE, VOID and REFUND require PaymentID or PaymentExternalKey.
type PaymentTransactionRequest struct {
	TransactionType        string         `json:"transactionType" binding:"required,oneof=AUTHORIZE CAPTURE PURCHASE VOID REFUND CREDIT"`
	PaymentID              string         `json:"paymentId,omitempty" binding:"omitempty,uuid"`
	PaymentMethodID        string         `json:"paymentMethodId,omitempty" binding:"omitempty,uuid"`
	PaymentExternalKey     string         `json:"paymentExternalKey,omitempty"`
	TransactionExternalKey string         `json:"transactionExternalKey,omitempty"`
	Amount                 string         `json:"amount,omitempty"`
	Currency               string         `json:"currency,omitempty"`
	Properties             map[string]any `json:"properties,omitempty"`
	ControlPluginNames     []string       `json:"controlPluginNames,omitempty"`
	PropagatePluginFailure bool           `json:"propagatePluginFailure,omitempty"`
}

// PendingTransactionRequest reports the final gateway outcome of a PENDING transaction
type PendingTransactionRequest struct {
	Success *bool `json:"success" binding:"required"`
}

// TransactionResponse represents one payment transaction in API responses
type TransactionResponse struct {
	TransactionID          string              `json:"transactionId"`
	TransactionExternalKey string              `json:"transactionExternalKey"`
	TransactionType        string              `json:"transactionType"`
	EffectiveDate          time.Time           `json:"effectiveDate"`
	Status                 string              `json:"status"`
	Amount                 string              `json:"amount"`
	Currency               string              `json:"currency"`
	ProcessedAmount        string              `json:"processedAmount"`
	ProcessedCurrency      string              `json:"processedCurrency,omitempty"`
	GatewayErrorCode       string              `json:"gatewayErrorCode,omitempty"`
	GatewayErrorMsg        string              `json:"gatewayErrorMsg,omitempty"`
	FirstReferenceID       string              `json:"firstPaymentReferenceId,omitempty"`
	SecondReferenceID      string              `json:"secondPaymentReferenceId,omitempty"`
	PluginInfo             *PluginInfoResponse `json:"pluginInfo,omitempty"`
}

// PluginInfoResponse is the live gateway view of a transaction
type PluginInfoResponse struct {
	Status            string         `json:"status"`
	GatewayErrorCode  string         `json:"gatewayErrorCode,omitempty"`
	GatewayError      string         `json:"gatewayError,omitempty"`
	FirstReferenceID  string         `json:"firstPaymentReferenceId,omitempty"`
	SecondReferenceID string         `json:"secondPaymentReferenceId,omitempty"`
	Properties        map[string]any `json:"properties,omitempty"`
}

// NewTransactionResponse maps a payment transaction to its API representation
func NewTransactionResponse(tx *entity.PaymentTransaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:          tx.ID.String(),
		TransactionExternalKey: tx.ExternalKey,
		TransactionType:        string(tx.TransactionType),
		EffectiveDate:          tx.EffectiveDate,
		Status:                 string(tx.Status),
		Amount:                 entity.FormatAmount(tx.Amount, tx.Currency),
		Currency:               tx.Currency,
		ProcessedAmount:        entity.FormatAmount(tx.ProcessedAmount, tx.ProcessedCurrency),
		ProcessedCurrency:      tx.ProcessedCurrency,
		GatewayErrorCode:       tx.GatewayErrorCode,
		GatewayErrorMsg:        tx.GatewayErrorMsg,
		FirstReferenceID:       tx.FirstReferenceID,
		SecondReferenceID:      tx.SecondReferenceID,
	}
	if info := tx.PaymentInfoPlugin; info != nil {
		resp.PluginInfo = &PluginInfoResponse{
			Status:            string(info.Status),
			GatewayErrorCode:  info.GatewayErrorCode,
			GatewayError:      info.GatewayError,
			FirstReferenceID:  info.FirstReferenceID,
			SecondReferenceID: info.SecondReferenceID,
			Properties:        info.Properties,
		}
	}
	return resp
}
