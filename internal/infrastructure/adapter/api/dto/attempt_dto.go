package dto

import (
	"time"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
)

// RetryAttemptRequest re-drives a RETRIED attempt; empty plugin names keep the ones recorded on it
type RetryAttemptRequest struct {
	PluginNames []string `json:"pluginNames,omitempty"`
}

// AttemptResponse represents a retry attempt in API responses
type AttemptResponse struct {
	AttemptID              string         `json:"attemptId"`
	AccountID              string         `json:"accountId"`
	PaymentMethodID        string         `json:"paymentMethodId"`
	PaymentExternalKey     string         `json:"paymentExternalKey"`
	TransactionExternalKey string         `json:"transactionExternalKey"`
	TransactionID          string         `json:"transactionId,omitempty"`
	StateName              string         `json:"stateName"`
	TransactionType        string         `json:"transactionType"`
	PluginNames            []string       `json:"pluginNames"`
	Amount                 string         `json:"amount"`
	Currency               string         `json:"currency"`
	Properties             map[string]any `json:"properties,omitempty"`
	CreatedDate            time.Time      `json:"createdDate"`
	UpdatedDate            time.Time      `json:"updatedDate"`
}

// NewAttemptResponse maps a payment attempt to its API representation
func NewAttemptResponse(attempt *entity.PaymentAttempt) AttemptResponse {
	resp := AttemptResponse{
		AttemptID:              attempt.ID.String(),
		AccountID:              attempt.AccountID.String(),
		PaymentMethodID:        attempt.PaymentMethodID.String(),
		PaymentExternalKey:     attempt.PaymentExternalKey,
		TransactionExternalKey: attempt.TransactionExternalKey,
		StateName:              attempt.StateName,
		TransactionType:        string(attempt.TransactionType),
		PluginNames:            attempt.PluginNames,
		Amount:                 entity.FormatAmount(attempt.Amount, attempt.Currency),
		Currency:               attempt.Currency,
		Properties:             attempt.Properties,
		CreatedDate:            attempt.CreatedDate,
		UpdatedDate:            attempt.UpdatedDate,
	}
	if attempt.TransactionID != nil {
		resp.TransactionID = attempt.TransactionID.String()
	}
	return resp
}

// NewAttemptListResponse maps a list of attempts
func NewAttemptListResponse(attempts []*entity.PaymentAttempt) []AttemptResponse {
	out := make([]AttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, NewAttemptResponse(a))
	}
	return out
}
