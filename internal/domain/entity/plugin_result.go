package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PluginStatus is the status a payment plugin reports for a gateway call
type PluginStatus string

// PluginStatus constants
const (
	PluginStatusSuccess PluginStatus = "SUCCESS"
	PluginStatusPending PluginStatus = "PENDING"
	PluginStatusFailure PluginStatus = "FAILURE"
	PluginStatusError   PluginStatus = "ERROR"
)

// PluginResult is the answer of a payment plugin to one gateway call
type PluginResult struct {
	TransactionID     uuid.UUID // set when returned by GetPaymentInfo
	Status            PluginStatus
	GatewayErrorCode  string
	GatewayError      string
	FirstReferenceID  string
	SecondReferenceID string
	ProcessedAmount   decimal.Decimal
	ProcessedCurrency string
	Properties        map[string]any
}

// ToPaymentStatus maps the plugin status onto the status recorded for the transaction
//
// FAILURE is a gateway decline. ERROR and any unrecognized status mean the plugin
// could not complete the call.
func (r *PluginResult) ToPaymentStatus() PaymentStatus {
	if r == nil {
		return PaymentStatusPluginFailureAborted
	}
	switch r.Status {
	case PluginStatusSuccess:
		return PaymentStatusSuccess
	case PluginStatusPending:
		return PaymentStatusPending
	case PluginStatusFailure:
		return PaymentStatusPaymentFailureAborted
	default:
		return PaymentStatusPluginFailureAborted
	}
}
