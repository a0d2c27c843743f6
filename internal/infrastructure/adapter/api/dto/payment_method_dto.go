package dto

import (
	"time"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
)

// PaymentMethodRequest represents the API request for adding a payment method
type PaymentMethodRequest struct {
	ExternalKey string         `json:"externalKey,omitempty"`
	PluginName  string         `json:"pluginName" binding:"required"`
	Properties  map[string]any `json:"properties,omitempty"`
	IsDefault   bool           `json:"isDefault,omitempty"`
}

// PaymentMethodResponse represents a payment method in API responses
type PaymentMethodResponse struct {
	PaymentMethodID string         `json:"paymentMethodId"`
	AccountID       string         `json:"accountId"`
	ExternalKey     string         `json:"externalKey"`
	PluginName      string         `json:"pluginName"`
	IsActive        bool           `json:"isActive"`
	Properties      map[string]any `json:"properties,omitempty"`
	CreatedDate     time.Time      `json:"createdDate"`
}

// NewPaymentMethodResponse maps a payment method to its API representation
func NewPaymentMethodResponse(method *entity.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		PaymentMethodID: method.ID.String(),
		AccountID:       method.AccountID.String(),
		ExternalKey:     method.ExternalKey,
		PluginName:      method.PluginName,
		IsActive:        method.IsActive,
		Properties:      method.Properties,
		CreatedDate:     method.CreatedDate,
	}
}
