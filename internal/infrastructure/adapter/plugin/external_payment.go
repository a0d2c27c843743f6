package plugin

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	pluginport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/plugin"
)

// ExternalPaymentPluginName is the plugin recording payments made outside any gateway
const ExternalPaymentPluginName = "__EXTERNAL_PAYMENT__"

// ExternalPaymentPlugin accepts every call; the money moved outside the system
type ExternalPaymentPlugin struct {
	recorder *resultRecorder
}

var _ pluginport.PaymentPlugin = (*ExternalPaymentPlugin)(nil)

// NewExternalPaymentPlugin creates the external payment plugin
func NewExternalPaymentPlugin() *ExternalPaymentPlugin {
	return &ExternalPaymentPlugin{recorder: newResultRecorder()}
}

func (p *ExternalPaymentPlugin) succeed(req pluginport.PaymentRequest) (*entity.PluginResult, error) {
	result := &entity.PluginResult{
		TransactionID:     req.TransactionID,
		Status:            entity.PluginStatusSuccess,
		ProcessedAmount:   req.Amount,
		ProcessedCurrency: req.Currency,
	}
	p.recorder.record(req.PaymentID, result)
	return result, nil
}

// AuthorizePayment implements PaymentPlugin
func (p *ExternalPaymentPlugin) AuthorizePayment(ctx context.Context, req pluginport.PaymentRequest) (*entity.PluginResult, error) {
	return p.succeed(req)
}

// CapturePayment implements PaymentPlugin
func (p *ExternalPaymentPlugin) CapturePayment(ctx context.Context, req pluginport.PaymentRequest) (*entity.PluginResult, error) {
	return p.succeed(req)
}

// PurchasePayment implements PaymentPlugin
func (p *ExternalPaymentPlugin) PurchasePayment(ctx context.Context, req pluginport.PaymentRequest) (*entity.PluginResult, error) {
	return p.succeed(req)
}

// VoidPayment implements PaymentPlugin
func (p *ExternalPaymentPlugin) VoidPayment(ctx context.Context, req pluginport.PaymentRequest) (*entity.PluginResult, error) {
	return p.succeed(req)
}

// RefundPayment implements PaymentPlugin
func (p *ExternalPaymentPlugin) RefundPayment(ctx context.Context, req pluginport.PaymentRequest) (*entity.PluginResult, error) {
	return p.succeed(req)
}

// CreditPayment implements PaymentPlugin
func (p *ExternalPaymentPlugin) CreditPayment(ctx context.Context, req pluginport.PaymentRequest) (*entity.PluginResult, error) {
	return p.succeed(req)
}

// GetPaymentInfo returns the answers given for the payment
func (p *ExternalPaymentPlugin) GetPaymentInfo(ctx context.Context, accountID, paymentID uuid.UUID, properties map[string]any) ([]*entity.PluginResult, error) {
	return p.recorder.forPayment(paymentID), nil
}
