package invoicepolicy

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/external"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/plugin"
)

// PluginName is the registry name of the invoice payment control plugin
const PluginName = "__INVOICE_PAYMENT_CONTROL_PLUGIN__"

// PropertyInvoiceID is the payment property naming the invoice being paid
const PropertyInvoiceID = "IPCD_INVOICE_ID"

// Config holds the retry schedules of the invoice policy
type Config struct {
	PluginFailureSeed        time.Duration
	PluginFailureMultiplier  int
	PluginFailureMaxAttempts int
	PaymentFailureRetryDays  []int
}

// DefaultConfig returns the default retry schedules
func DefaultConfig() Config {
	return Config{
		PluginFailureSeed:        5 * time.Minute,
		PluginFailureMultiplier:  2,
		PluginFailureMaxAttempts: 3,
		PaymentFailureRetryDays:  []int{8, 8, 8},
	}
}

// Plugin retries invoice payments and keeps them within the invoice balance
type Plugin struct {
	payments     persistence.PaymentRepository
	invoices     external.InvoiceLookup
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

var (
	_ plugin.RetryPolicyPlugin = (*Plugin)(nil)
	_ plugin.PriorCallPlugin   = (*Plugin)(nil)
)

// NewPlugin creates a new invoice payment control plugin
func NewPlugin(
	payments persistence.PaymentRepository,
	invoices external.InvoiceLookup,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Plugin {
	if config.PluginFailureMultiplier < 1 {
		config.PluginFailureMultiplier = 1
	}
	return &Plugin{
		payments:     payments,
		invoices:     invoices,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// IsRetryAborted reports whether the retry schedule is exhausted for the transaction
func (p *Plugin) IsRetryAborted(ctx context.Context, transactionExternalKey string) (bool, error) {
	next, err := p.GetNextRetryDate(ctx, transactionExternalKey)
	if err != nil {
		return false, err
	}
	return next == nil, nil
}

// GetNextRetryDate returns the next slot of the schedule matching the last failure
//
// Plugin failures back off exponentially from the seed delay; payment failures
// follow the per-day table. Nil means the schedule is exhausted.
func (p *Plugin) GetNextRetryDate(ctx context.Context, transactionExternalKey string) (*time.Time, error) {
	cc, ok := entity.CallContextFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no call context for %s", errs.ErrPluginUnavailable, transactionExternalKey)
	}

	txs, err := p.payments.GetTransactionsByExternalKey(ctx, transactionExternalKey, cc.TenantRecordID)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, nil
	}

	last := txs[len(txs)-1]
	failures := 0
	for _, tx := range txs {
		if tx.Status == last.Status {
			failures++
		}
	}

	now := p.timeProvider.Now()
	switch last.Status {
	case entity.TransactionStatusPaymentFailure:
		if failures > len(p.config.PaymentFailureRetryDays) {
			return nil, nil
		}
		next := now.AddDate(0, 0, p.config.PaymentFailureRetryDays[failures-1])
		return &next, nil

	case entity.TransactionStatusPluginFailure:
		if failures > p.config.PluginFailureMaxAttempts {
			return nil, nil
		}
		factor := math.Pow(float64(p.config.PluginFailureMultiplier), float64(failures-1))
		next := now.Add(time.Duration(float64(p.config.PluginFailureSeed) * factor))
		return &next, nil

	default:
		return nil, nil
	}
}

// PriorCall applies existing credit and keeps the payment within the invoice balance
//
// A paid invoice aborts the payment with a zero amount.
func (p *Plugin) PriorCall(ctx context.Context, pc plugin.PriorCallContext) (*plugin.PriorCallResult, error) {
	if pc.TransactionType != entity.TransactionPurchase && pc.TransactionType != entity.TransactionAuthorize {
		return nil, nil
	}
	invoiceID, ok := invoiceIDFrom(pc.Properties)
	if !ok {
		return nil, nil
	}

	if err := p.invoices.ConsumeExistingCredit(ctx, pc.AccountID); err != nil {
		return nil, err
	}

	balance, err := p.invoices.GetInvoiceBalance(ctx, invoiceID)
	if errors.Is(err, errs.ErrInvoiceNotFound) {
		return &plugin.PriorCallResult{
			Aborted: true,
			Reason:  fmt.Errorf("%w: invoice %s not found", errs.ErrAbortedByControlPlugin, invoiceID),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	if !balance.IsPositive() {
		zero := decimal.Zero
		p.logger.Info("Invoice already paid, aborting payment", map[string]any{
			"invoice_id":               invoiceID.String(),
			"transaction_external_key": pc.TransactionExternalKey,
		})
		return &plugin.PriorCallResult{
			Aborted:        true,
			AdjustedAmount: &zero,
			Reason:         fmt.Errorf("%w: invoice %s", errs.ErrInvoiceAlreadyPaid, invoiceID),
		}, nil
	}

	if pc.Amount.IsZero() || pc.Amount.GreaterThan(balance) {
		p.logger.Debug("Payment amount set to invoice balance", map[string]any{
			"invoice_id": invoiceID.String(),
			"requested":  pc.Amount.String(),
			"balance":    balance.String(),
		})
		return &plugin.PriorCallResult{AdjustedAmount: &balance}, nil
	}
	return &plugin.PriorCallResult{}, nil
}

func invoiceIDFrom(properties map[string]any) (uuid.UUID, bool) {
	switch v := properties[PropertyInvoiceID].(type) {
	case uuid.UUID:
		return v, true
	case string:
		id, err := uuid.Parse(v)
		return id, err == nil
	default:
		return uuid.Nil, false
	}
}
