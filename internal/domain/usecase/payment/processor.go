package payment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/plugin"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/statemachine"
)

// DirectProcessor runs payment transactions straight through the payment automaton
type DirectProcessor struct {
	runner   *AutomatonRunner
	payments persistence.PaymentRepository
	attempts persistence.PaymentAttemptRepository
	methods  persistence.PaymentMethodRepository
	plugins  plugin.PaymentPluginRegistry
	pending  *PendingTransactionResolver
	logger   coreport.Logger
}

var _ usecase.PaymentProcessor = (*DirectProcessor)(nil)

// NewDirectProcessor creates a new DirectProcessor
func NewDirectProcessor(
	runner *AutomatonRunner,
	payments persistence.PaymentRepository,
	attempts persistence.PaymentAttemptRepository,
	methods persistence.PaymentMethodRepository,
	plugins plugin.PaymentPluginRegistry,
	pending *PendingTransactionResolver,
	logger coreport.Logger,
) *DirectProcessor {
	return &DirectProcessor{
		runner:   runner,
		payments: payments,
		attempts: attempts,
		methods:  methods,
		plugins:  plugins,
		pending:  pending,
		logger:   logger,
	}
}

// CreateAuthorization authorizes an amount on a new or failed payment
func (p *DirectProcessor) CreateAuthorization(ctx context.Context, req usecase.PaymentRequest, cc entity.CallContext) (*entity.Payment, error) {
	return p.process(ctx, entity.TransactionAuthorize, req, cc)
}

// CreateCapture captures part or all of an authorization
func (p *DirectProcessor) CreateCapture(ctx context.Context, req usecase.PaymentRequest, cc entity.CallContext) (*entity.Payment, error) {
	return p.process(ctx, entity.TransactionCapture, req, cc)
}

// CreatePurchase authorizes and captures in one call
func (p *DirectProcessor) CreatePurchase(ctx context.Context, req usecase.PaymentRequest, cc entity.CallContext) (*entity.Payment, error) {
	return p.process(ctx, entity.TransactionPurchase, req, cc)
}

// CreateVoid cancels an authorization
func (p *DirectProcessor) CreateVoid(ctx context.Context, req usecase.PaymentRequest, cc entity.CallContext) (*entity.Payment, error) {
	return p.process(ctx, entity.TransactionVoid, req, cc)
}

// CreateRefund returns captured or purchased funds
func (p *DirectProcessor) CreateRefund(ctx context.Context, req usecase.PaymentRequest, cc entity.CallContext) (*entity.Payment, error) {
	return p.process(ctx, entity.TransactionRefund, req, cc)
}

// CreateCredit pays funds out to the account
func (p *DirectProcessor) CreateCredit(ctx context.Context, req usecase.PaymentRequest, cc entity.CallContext) (*entity.Payment, error) {
	return p.process(ctx, entity.TransactionCredit, req, cc)
}

func (p *DirectProcessor) process(
	ctx context.Context,
	transactionType entity.TransactionType,
	req usecase.PaymentRequest,
	cc entity.CallContext,
) (*entity.Payment, error) {
	result, err := p.runner.Run(ctx, RunRequest{
		TransactionType:        transactionType,
		AccountID:              req.AccountID,
		PaymentID:              req.PaymentID,
		PaymentMethodID:        req.PaymentMethodID,
		PaymentExternalKey:     req.PaymentExternalKey,
		TransactionExternalKey: req.TransactionExternalKey,
		Amount:                 req.Amount,
		Currency:               req.Currency,
		Properties:             req.Properties,
		CallContext:            cc,
		LockAccount:            true,
		Dispatch:               true,
		PropagatePluginFailure: req.PropagatePluginFailure,
	})
	if err != nil {
		var payment *entity.Payment
		if result != nil {
			payment = result.Payment
		}
		return payment, UnwrapProcessorError(err, p.logger, map[string]any{
			"account_id":               req.AccountID.String(),
			"transaction_type":         string(transactionType),
			"transaction_external_key": req.TransactionExternalKey,
		})
	}
	return result.Payment, nil
}

// NotifyPendingTransactionOfStateChanged resolves a PENDING transaction
func (p *DirectProcessor) NotifyPendingTransactionOfStateChanged(
	ctx context.Context,
	accountID, transactionID uuid.UUID,
	success bool,
	cc entity.CallContext,
) (*entity.Payment, error) {
	payment, err := p.pending.Resolve(ctx, accountID, transactionID, success)
	if err != nil {
		return nil, UnwrapProcessorError(err, p.logger, map[string]any{
			"account_id":     accountID.String(),
			"transaction_id": transactionID.String(),
		})
	}
	return payment, nil
}

// GetPayment returns a payment with the requested optional parts
func (p *DirectProcessor) GetPayment(ctx context.Context, id uuid.UUID, opts usecase.PaymentQueryOptions) (*usecase.PaymentView, error) {
	payment, err := p.payments.GetPayment(ctx, id)
	if err != nil {
		return nil, UnwrapProcessorError(err, p.logger, map[string]any{"payment_id": id.String()})
	}
	return p.view(ctx, payment, opts)
}

// GetPaymentByExternalKey returns a payment looked up by its external key
func (p *DirectProcessor) GetPaymentByExternalKey(
	ctx context.Context,
	externalKey string,
	tenantRecordID int64,
	opts usecase.PaymentQueryOptions,
) (*usecase.PaymentView, error) {
	payment, err := p.payments.GetPaymentByExternalKey(ctx, externalKey, tenantRecordID)
	if err != nil {
		return nil, UnwrapProcessorError(err, p.logger, map[string]any{"payment_external_key": externalKey})
	}
	return p.view(ctx, payment, opts)
}

// GetAccountPayments lists the payments of an account
func (p *DirectProcessor) GetAccountPayments(ctx context.Context, accountID uuid.UUID) ([]*entity.Payment, error) {
	payments, err := p.payments.GetAccountPayments(ctx, accountID)
	if err != nil {
		return nil, UnwrapProcessorError(err, p.logger, map[string]any{"account_id": accountID.String()})
	}
	for _, payment := range payments {
		entity.SortTransactions(payment.Transactions)
	}
	return payments, nil
}

func (p *DirectProcessor) view(ctx context.Context, payment *entity.Payment, opts usecase.PaymentQueryOptions) (*usecase.PaymentView, error) {
	entity.SortTransactions(payment.Transactions)

	if opts.WithPluginInfo {
		if err := p.mergePluginInfo(ctx, payment); err != nil {
			return nil, UnwrapProcessorError(err, p.logger, map[string]any{"payment_id": payment.ID.String()})
		}
	}

	view := &usecase.PaymentView{Payment: payment, Amounts: payment.Amounts()}
	if opts.WithAttempts && p.attempts != nil {
		attempts, err := p.attempts.GetByPaymentExternalKey(ctx, payment.ExternalKey, payment.TenantRecordID)
		if err != nil {
			return nil, UnwrapProcessorError(err, p.logger, map[string]any{"payment_id": payment.ID.String()})
		}
		view.Attempts = attempts
	}
	return view, nil
}

// mergePluginInfo attaches what the gateway reports to each transaction
func (p *DirectProcessor) mergePluginInfo(ctx context.Context, payment *entity.Payment) error {
	method, err := p.methods.GetByID(ctx, payment.PaymentMethodID, true)
	if err != nil {
		return err
	}
	gateway, err := p.plugins.Get(method.PluginName)
	if err != nil {
		return err
	}

	infos, err := gateway.GetPaymentInfo(ctx, payment.AccountID, payment.ID, nil)
	if err != nil {
		return errs.NewPluginError(method.PluginName, "get_payment_info", err)
	}

	byTransaction := make(map[uuid.UUID]*entity.PluginResult, len(infos))
	for _, info := range infos {
		byTransaction[info.TransactionID] = info
	}
	for _, tx := range payment.Transactions {
		tx.PaymentInfoPlugin = byTransaction[tx.ID]
	}
	return nil
}

// UnwrapProcessorError strips automaton wrappers so callers see the business error
//
// Errors without a business meaning are logged and replaced by ErrInternalServer.
func UnwrapProcessorError(err error, logger coreport.Logger, fields map[string]any) error {
	if err == nil {
		return nil
	}

	for {
		var runnerErr *statemachine.RunnerError
		if !errors.As(err, &runnerErr) {
			break
		}
		err = runnerErr.Err
	}

	var missing *statemachine.MissingEntryError
	if errors.As(err, &missing) {
		logFields := mergeFields(fields, map[string]any{"error": err.Error()})
		logger.Error("Payment graph is missing a transition", logFields)
		return errs.ErrConfiguration
	}

	if errs.IsBusinessError(err) {
		return err
	}

	logger.Error("Unexpected payment processing error", mergeFields(fields, map[string]any{"error": err.Error()}))
	return errs.ErrInternalServer
}

func mergeFields(base, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
