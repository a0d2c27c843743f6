package plugin

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	pluginport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/plugin"
)

// ScriptedPluginName is the registry name of the configurable plugin
const ScriptedPluginName = "__SCRIPTED_PAYMENT__"

// Step is one scripted answer of the ScriptedPlugin
type Step struct {
	Status entity.PluginStatus
	Err    error
	Delay  time.Duration
}

// ScriptedPlugin answers gateway calls from a script, falling back to a default status
//
// It backs the sandbox environment and the tests.
type ScriptedPlugin struct {
	mu            sync.Mutex
	script        []Step
	defaultStatus entity.PluginStatus
	calls         map[entity.TransactionType]int
	recorder      *resultRecorder
}

var _ pluginport.PaymentPlugin = (*ScriptedPlugin)(nil)

// NewScriptedPlugin creates a plugin answering defaultStatus once its script is exhausted
func NewScriptedPlugin(defaultStatus entity.PluginStatus) *ScriptedPlugin {
	if defaultStatus == "" {
		defaultStatus = entity.PluginStatusSuccess
	}
	return &ScriptedPlugin{
		defaultStatus: defaultStatus,
		calls:         make(map[entity.TransactionType]int),
		recorder:      newResultRecorder(),
	}
}

// Enqueue appends steps to the script
func (p *ScriptedPlugin) Enqueue(steps ...Step) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.script = append(p.script, steps...)
}

// SetDefaultStatus changes the answer given once the script is exhausted
func (p *ScriptedPlugin) SetDefaultStatus(status entity.PluginStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.defaultStatus = status
}

// Calls returns how many calls of a transaction type were made
func (p *ScriptedPlugin) Calls(transactionType entity.TransactionType) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[transactionType]
}

// TotalCalls returns how many gateway calls were made
func (p *ScriptedPlugin) TotalCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := 0
	for _, n := range p.calls {
		total += n
	}
	return total
}

func (p *ScriptedPlugin) next(transactionType entity.TransactionType) Step {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls[transactionType]++
	if len(p.script) == 0 {
		return Step{Status: p.defaultStatus}
	}
	step := p.script[0]
	p.script = p.script[1:]
	return step
}

func (p *ScriptedPlugin) answer(ctx context.Context, transactionType entity.TransactionType, req pluginport.PaymentRequest) (*entity.PluginResult, error) {
	step := p.next(transactionType)

	if step.Delay > 0 {
		timer := time.NewTimer(step.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if step.Err != nil {
		return nil, step.Err
	}

	result := &entity.PluginResult{
		TransactionID:     req.TransactionID,
		Status:            step.Status,
		ProcessedCurrency: req.Currency,
	}
	switch step.Status {
	case entity.PluginStatusSuccess, entity.PluginStatusPending:
		result.ProcessedAmount = req.Amount
		result.FirstReferenceID = fmt.Sprintf("scripted-%d", entity.ToMinorUnits(req.Amount, req.Currency))
	case entity.PluginStatusFailure:
		result.GatewayErrorCode = "DECLINED"
		result.GatewayError = "scripted decline"
	}
	p.recorder.record(req.PaymentID, result)
	return result, nil
}

// AuthorizePayment implements PaymentPlugin
func (p *ScriptedPlugin) AuthorizePayment(ctx context.Context, req pluginport.PaymentRequest) (*entity.PluginResult, error) {
	return p.answer(ctx, entity.TransactionAuthorize, req)
}

// CapturePayment implements PaymentPlugin
func (p *ScriptedPlugin) CapturePayment(ctx context.Context, req pluginport.PaymentRequest) (*entity.PluginResult, error) {
	return p.answer(ctx, entity.TransactionCapture, req)
}

// PurchasePayment implements PaymentPlugin
func (p *ScriptedPlugin) PurchasePayment(ctx context.Context, req pluginport.PaymentRequest) (*entity.PluginResult, error) {
	return p.answer(ctx, entity.TransactionPurchase, req)
}

// VoidPayment implements PaymentPlugin
func (p *ScriptedPlugin) VoidPayment(ctx context.Context, req pluginport.PaymentRequest) (*entity.PluginResult, error) {
	return p.answer(ctx, entity.TransactionVoid, req)
}

// RefundPayment implements PaymentPlugin
func (p *ScriptedPlugin) RefundPayment(ctx context.Context, req pluginport.PaymentRequest) (*entity.PluginResult, error) {
	return p.answer(ctx, entity.TransactionRefund, req)
}

// CreditPayment implements PaymentPlugin
func (p *ScriptedPlugin) CreditPayment(ctx context.Context, req pluginport.PaymentRequest) (*entity.PluginResult, error) {
	return p.answer(ctx, entity.TransactionCredit, req)
}

// GetPaymentInfo returns the answers given for the payment
func (p *ScriptedPlugin) GetPaymentInfo(ctx context.Context, accountID, paymentID uuid.UUID, properties map[string]any) ([]*entity.PluginResult, error) {
	return p.recorder.forPayment(paymentID), nil
}
