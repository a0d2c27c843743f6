package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/external"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/plugin"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/lock"
)

// AutomatonRunner drives payment transactions through the payment graph
type AutomatonRunner struct {
	dao          *daoHelper
	methods      persistence.PaymentMethodRepository
	accounts     external.AccountLookup
	plugins      plugin.PaymentPluginRegistry
	locker       *lock.Locker
	dispatcher   *PluginDispatcher
	validator    *TransactionValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAutomatonRunner creates a new AutomatonRunner
func NewAutomatonRunner(
	payments persistence.PaymentRepository,
	methods persistence.PaymentMethodRepository,
	accounts external.AccountLookup,
	plugins plugin.PaymentPluginRegistry,
	locker *lock.Locker,
	dispatcher *PluginDispatcher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AutomatonRunner {
	return &AutomatonRunner{
		dao:          newDaoHelper(payments, logger),
		methods:      methods,
		accounts:     accounts,
		plugins:      plugins,
		locker:       locker,
		dispatcher:   dispatcher,
		validator:    NewTransactionValidator(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Run executes one transaction
//
// When the run reaches the plugin, the result carries the payment even if an
// error is returned for a propagated plugin failure.
func (r *AutomatonRunner) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	if err := r.validator.ValidateRequest(req); err != nil {
		return nil, err
	}
	if req.TransactionExternalKey == "" {
		req.TransactionExternalKey = uuid.NewString()
	}

	account, err := r.accounts.GetAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	if !req.LockAccount {
		return r.run(ctx, account, req)
	}

	var result *RunResult
	err = r.locker.WithAccountLock(ctx, account.ID, func(ctx context.Context) error {
		var runErr error
		result, runErr = r.run(ctx, account, req)
		return runErr
	})
	return result, err
}

func (r *AutomatonRunner) run(ctx context.Context, account *entity.Account, req RunRequest) (*RunResult, error) {
	payment, err := r.resolvePayment(ctx, account, req)
	if err != nil {
		return nil, err
	}

	replay, payment, err := r.checkIdempotency(ctx, account, payment, req)
	if err != nil || replay != nil {
		return replay, err
	}

	sc := &stateContext{
		request: req,
		account: account,
		payment: payment,
	}
	if err := r.prepare(ctx, sc); err != nil {
		return nil, err
	}

	from := sourceState(payment, req.TransactionType)
	r.logger.Info("Running payment transaction", map[string]any{
		"account_id":               account.ID.String(),
		"transaction_type":         string(req.TransactionType),
		"transaction_external_key": req.TransactionExternalKey,
		"from_state":               from,
		"is_retry":                 req.IsRetry,
	})

	target, _, err := stateMachineConfig.RunOperation(ctx, from, string(req.TransactionType),
		&operationCallback{runner: r, sc: sc},
		&enteringCallback{runner: r, sc: sc},
		&leavingCallback{runner: r, sc: sc},
	)
	if err != nil {
		return nil, err
	}

	stored, err := r.dao.getPayment(ctx, sc.payment.ID)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Payment transaction completed", map[string]any{
		"payment_id":     stored.ID.String(),
		"transaction_id": sc.transaction.ID.String(),
		"state":          target,
		"status":         string(sc.paymentStatus),
	})

	result := &RunResult{
		Payment:     stored,
		Transaction: stored.FindTransaction(sc.transaction.ID),
		Status:      sc.paymentStatus,
	}

	if req.PropagatePluginFailure && sc.pluginErr != nil {
		return result, sc.pluginErr
	}
	return result, nil
}

// resolvePayment loads the payment targeted by the request, or nil for a new payment
func (r *AutomatonRunner) resolvePayment(ctx context.Context, account *entity.Account, req RunRequest) (*entity.Payment, error) {
	if req.PaymentID != nil {
		payment, err := r.dao.getPayment(ctx, *req.PaymentID)
		if err != nil {
			return nil, err
		}
		if payment.AccountID != account.ID {
			return nil, fmt.Errorf("%w: payment %s does not belong to account %s",
				errs.ErrPaymentNotFound, payment.ID, account.ID)
		}
		return payment, nil
	}

	if req.PaymentExternalKey == "" {
		return nil, nil
	}

	payment, err := r.dao.findPaymentByExternalKey(ctx, req.PaymentExternalKey, account.TenantRecordID)
	if err != nil || payment == nil {
		return nil, err
	}
	if payment.AccountID != account.ID {
		return nil, fmt.Errorf("%w: external key %s is used by another account",
			errs.ErrDuplicatePayment, req.PaymentExternalKey)
	}
	return payment, nil
}

// checkIdempotency returns a replayed result when the transaction external key was already used
//
// Outside the retry path any earlier transaction replays. On the retry path only a
// live transaction replays; failed ones let a new transaction be appended to
// the same payment.
func (r *AutomatonRunner) checkIdempotency(
	ctx context.Context,
	account *entity.Account,
	payment *entity.Payment,
	req RunRequest,
) (*RunResult, *entity.Payment, error) {
	existing, err := r.dao.checkIdempotency(ctx, req.TransactionExternalKey, account.TenantRecordID)
	if err != nil {
		return nil, nil, err
	}
	if len(existing) == 0 {
		return nil, payment, nil
	}

	owner, err := r.dao.getPayment(ctx, existing[0].PaymentID)
	if err != nil {
		return nil, nil, err
	}
	if owner.AccountID != account.ID || (payment != nil && payment.ID != owner.ID) {
		return nil, nil, errs.NewDuplicateTransactionError(req.TransactionExternalKey, owner.ID.String())
	}

	if req.IsRetry {
		live := false
		for _, tx := range existing {
			live = live || tx.Status.IsLive()
		}
		if !live {
			return nil, owner, nil
		}
	}

	last := existing[len(existing)-1]
	r.logger.Info("Duplicate transaction external key, returning recorded payment", map[string]any{
		"payment_id":               owner.ID.String(),
		"transaction_external_key": req.TransactionExternalKey,
		"status":                   string(last.Status),
	})

	return &RunResult{
		Payment:     owner,
		Transaction: owner.FindTransaction(last.ID),
		Status:      entity.PaymentStatus(last.Status),
		Replayed:    true,
	}, owner, nil
}

// prepare resolves the payment method, plugin, currency and amount, and validates them
func (r *AutomatonRunner) prepare(ctx context.Context, sc *stateContext) error {
	req := sc.request

	method, err := r.resolvePaymentMethod(ctx, sc.account, sc.payment, req.PaymentMethodID)
	if err != nil {
		return err
	}
	sc.paymentMethod = method

	p, err := r.plugins.Get(method.PluginName)
	if err != nil {
		return err
	}
	sc.plugin = p

	if err := r.validator.ValidateCurrency(req.Currency, sc.payment); err != nil {
		return err
	}
	switch {
	case sc.payment != nil && sc.payment.Currency() != "":
		sc.currency = sc.payment.Currency()
	case req.Currency != "":
		sc.currency = entity.NormalizeCurrency(req.Currency)
	default:
		sc.currency = entity.NormalizeCurrency(sc.account.Currency)
	}

	amount, err := r.validator.ResolveAmount(req.TransactionType, req.Amount, sc.currency)
	if err != nil {
		return err
	}
	sc.amount = amount

	return r.validator.ValidateAgainstPayment(req.TransactionType, amount, sc.payment)
}

func (r *AutomatonRunner) resolvePaymentMethod(
	ctx context.Context,
	account *entity.Account,
	payment *entity.Payment,
	requested *uuid.UUID,
) (*entity.PaymentMethod, error) {
	if payment != nil {
		// payments keep their method even after it is deleted
		return r.methods.GetByID(ctx, payment.PaymentMethodID, true)
	}

	var id uuid.UUID
	switch {
	case requested != nil:
		id = *requested
	case account.HasDefaultPaymentMethod():
		id = *account.PaymentMethodID
	default:
		return nil, errs.ErrNoDefaultPaymentMethod
	}

	method, err := r.methods.GetByID(ctx, id, false)
	if errors.Is(err, errs.ErrPaymentMethodNotFound) && requested == nil {
		return nil, errs.ErrNoDefaultPaymentMethod
	}
	if err != nil {
		return nil, err
	}
	if method.AccountID != account.ID {
		return nil, fmt.Errorf("%w: payment method %s does not belong to account %s",
			errs.ErrInvalidPaymentMethod, method.ID, account.ID)
	}
	return method, nil
}
