package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/external"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/plugin"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/statemachine"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/lock"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/payment"
)

// RunRequest is the input of one retry automaton run
type RunRequest struct {
	TransactionType        entity.TransactionType
	AccountID              uuid.UUID
	PaymentID              *uuid.UUID
	PaymentMethodID        *uuid.UUID
	PaymentExternalKey     string
	TransactionExternalKey string
	Amount                 *decimal.Decimal
	Currency               string
	Properties             map[string]any
	PluginNames            []string
	CallContext            entity.CallContext

	// Attempt is set when a scheduled retry is redelivered
	Attempt *entity.PaymentAttempt
}

// RunResult is the output of one retry automaton run
type RunResult struct {
	Attempt       *entity.PaymentAttempt
	Payment       *entity.Payment // nil when the run stopped before the payment automaton
	State         string
	NextRetryDate *time.Time
}

// AutomatonRunner drives payments through the retry graph on top of the payment automaton
type AutomatonRunner struct {
	payments     *payment.AutomatonRunner
	paymentRepo  persistence.PaymentRepository
	attempts     persistence.PaymentAttemptRepository
	uow          persistence.UnitOfWork
	accounts     external.AccountLookup
	tags         external.TagLookup
	retryPlugins plugin.RetryPluginRegistry
	decider      *Decider
	locker       *lock.Locker
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAutomatonRunner creates a new AutomatonRunner
func NewAutomatonRunner(
	payments *payment.AutomatonRunner,
	paymentRepo persistence.PaymentRepository,
	attempts persistence.PaymentAttemptRepository,
	uow persistence.UnitOfWork,
	accounts external.AccountLookup,
	tags external.TagLookup,
	retryPlugins plugin.RetryPluginRegistry,
	locker *lock.Locker,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AutomatonRunner {
	return &AutomatonRunner{
		payments:     payments,
		paymentRepo:  paymentRepo,
		attempts:     attempts,
		uow:          uow,
		accounts:     accounts,
		tags:         tags,
		retryPlugins: retryPlugins,
		decider:      NewDecider(retryPlugins, logger),
		locker:       locker,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// retryContext holds everything one run shares between its callbacks
type retryContext struct {
	request       RunRequest
	account       *entity.Account
	attempt       *entity.PaymentAttempt
	amount        decimal.Decimal
	paymentResult *payment.RunResult
	nextRetryDate *time.Time
}

// Run executes one retry automaton run under the account lock
//
// Possible errors:
// - ErrAutoPayOff: If automatic payments are disabled on the account
// - ErrAbortedByControlPlugin, ErrInvoiceAlreadyPaid: If a policy vetoed the call
// - any business error raised by the payment automaton
func (r *AutomatonRunner) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	account, err := r.accounts.GetAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	autoPayOff, err := r.tags.IsAutoPayOff(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	if autoPayOff {
		r.logger.Info("Skipping payment, account has auto pay off", map[string]any{
			"account_id": account.ID.String(),
		})
		if req.Attempt != nil {
			req.Attempt.StateName = entity.AttemptStateAborted
			req.Attempt.UpdatedDate = r.timeProvider.Now()
			if err := r.attempts.Update(ctx, req.Attempt); err != nil {
				return nil, err
			}
		}
		return nil, errs.ErrAutoPayOff
	}

	ctx = entity.ContextWithCallContext(ctx, req.CallContext)

	var result *RunResult
	err = r.locker.WithAccountLock(ctx, account.ID, func(ctx context.Context) error {
		var runErr error
		result, runErr = r.run(ctx, account, req)
		return runErr
	})
	return result, err
}

func (r *AutomatonRunner) run(ctx context.Context, account *entity.Account, req RunRequest) (*RunResult, error) {
	attempt := req.Attempt
	if attempt == nil {
		replayed, err := r.replayAttempt(ctx, account, req)
		if err != nil || replayed != nil {
			return replayed, err
		}
		if attempt, err = r.newAttempt(ctx, account, req); err != nil {
			return nil, err
		}
	}

	rc := &retryContext{
		request: req,
		account: account,
		attempt: attempt,
		amount:  attempt.Amount,
	}

	target, outcome, err := stateMachineConfig.RunOperation(ctx, entity.AttemptStateInit, OperationRetry,
		statemachine.OperationFunc(func(ctx context.Context) (statemachine.Outcome, error) {
			return r.doOperation(ctx, rc)
		}),
		statemachine.EnteringFunc(func(ctx context.Context, newState, _ string, outcome statemachine.Outcome) error {
			return r.enteringState(ctx, rc, newState, outcome)
		}),
		statemachine.LeavingFunc(func(ctx context.Context, _ string) error {
			return r.leavingInit(ctx, rc)
		}),
	)
	if err != nil {
		return nil, err
	}

	result := &RunResult{
		Attempt:       rc.attempt,
		State:         target,
		NextRetryDate: rc.nextRetryDate,
	}
	if rc.paymentResult != nil {
		result.Payment = rc.paymentResult.Payment
	}

	r.logger.Info("Retry automaton completed", map[string]any{
		"attempt_id":               rc.attempt.ID.String(),
		"transaction_external_key": rc.attempt.TransactionExternalKey,
		"state":                    target,
	})

	if outcome.Kind() == statemachine.OutcomeException && outcome.Reason() != nil {
		return result, outcome.Reason()
	}
	return result, nil
}

// replayAttempt returns the recorded result when the transaction external key already has an attempt
//
// The stored attempt is left in its state: no plugin is called and nothing is scheduled.
func (r *AutomatonRunner) replayAttempt(ctx context.Context, account *entity.Account, req RunRequest) (*RunResult, error) {
	if req.TransactionExternalKey == "" {
		return nil, nil
	}

	stored, err := r.attempts.GetByTransactionExternalKey(ctx, req.TransactionExternalKey, account.TenantRecordID)
	if errors.Is(err, errs.ErrAttemptNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if stored.AccountID != account.ID {
		return nil, fmt.Errorf("%w: transaction external key %s is used by another account",
			errs.ErrDuplicateTransaction, req.TransactionExternalKey)
	}

	result := &RunResult{Attempt: stored, State: stored.StateName}
	paid, err := r.paymentRepo.GetPaymentByExternalKey(ctx, stored.PaymentExternalKey, account.TenantRecordID)
	switch {
	case err == nil:
		result.Payment = paid
	case !errors.Is(err, errs.ErrPaymentNotFound):
		return nil, err
	}

	r.logger.Info("Duplicate transaction external key, returning recorded attempt", map[string]any{
		"attempt_id":               stored.ID.String(),
		"transaction_external_key": stored.TransactionExternalKey,
		"state":                    stored.StateName,
	})
	return result, nil
}

// newAttempt builds the attempt of a first run
//
// Keys are generated here so a redelivery finds the same payment and transaction.
func (r *AutomatonRunner) newAttempt(ctx context.Context, account *entity.Account, req RunRequest) (*entity.PaymentAttempt, error) {
	existing, err := r.resolvePayment(ctx, account, req)
	if err != nil {
		return nil, err
	}

	paymentKey := req.PaymentExternalKey
	methodID := uuid.Nil
	currency := req.Currency
	switch {
	case existing != nil:
		paymentKey = existing.ExternalKey
		methodID = existing.PaymentMethodID
		if currency == "" {
			currency = existing.Currency()
		}
	case req.PaymentMethodID != nil:
		methodID = *req.PaymentMethodID
	case account.HasDefaultPaymentMethod():
		methodID = *account.PaymentMethodID
	}
	if paymentKey == "" {
		paymentKey = uuid.NewString()
	}
	if currency == "" {
		currency = account.Currency
	}

	transactionKey := req.TransactionExternalKey
	if transactionKey == "" {
		transactionKey = uuid.NewString()
	}

	amount := decimal.Zero
	if req.Amount != nil {
		amount = *req.Amount
	}

	attempt := entity.NewPaymentAttempt(account.ID, methodID, paymentKey, transactionKey,
		req.TransactionType, amount, currency, req.PluginNames, req.Properties, r.timeProvider.Now())
	attempt.AccountRecordID = account.RecordID
	attempt.TenantRecordID = account.TenantRecordID
	return attempt, nil
}

func (r *AutomatonRunner) resolvePayment(ctx context.Context, account *entity.Account, req RunRequest) (*entity.Payment, error) {
	if req.PaymentID != nil {
		p, err := r.paymentRepo.GetPayment(ctx, *req.PaymentID)
		if err != nil {
			return nil, err
		}
		if p.AccountID != account.ID {
			return nil, fmt.Errorf("%w: payment %s does not belong to account %s", errs.ErrPaymentNotFound, p.ID, account.ID)
		}
		return p, nil
	}
	if req.PaymentExternalKey == "" {
		return nil, nil
	}
	p, err := r.paymentRepo.GetPaymentByExternalKey(ctx, req.PaymentExternalKey, account.TenantRecordID)
	if errors.Is(err, errs.ErrPaymentNotFound) {
		return nil, nil
	}
	return p, err
}

func (r *AutomatonRunner) leavingInit(ctx context.Context, rc *retryContext) error {
	stored, created, err := r.attempts.CreateIfAbsent(ctx, rc.attempt)
	if err != nil {
		return err
	}
	if !created && rc.request.Attempt == nil {
		// another account recorded the key first
		return fmt.Errorf("%w: transaction external key %s already has attempt %s",
			errs.ErrDuplicateTransaction, stored.TransactionExternalKey, stored.ID)
	}
	rc.attempt = stored
	rc.amount = stored.Amount
	return nil
}

func (r *AutomatonRunner) doOperation(ctx context.Context, rc *retryContext) (statemachine.Outcome, error) {
	if outcome, stop, err := r.priorCall(ctx, rc); stop || err != nil {
		return outcome, err
	}

	attempt := rc.attempt
	req := payment.RunRequest{
		TransactionType:        attempt.TransactionType,
		AccountID:              attempt.AccountID,
		PaymentExternalKey:     attempt.PaymentExternalKey,
		TransactionExternalKey: attempt.TransactionExternalKey,
		Currency:               attempt.Currency,
		Properties:             attempt.Properties,
		CallContext:            rc.request.CallContext,
		Dispatch:               true,
		IsRetry:                true,
		AttemptID:              &attempt.ID,
	}
	if attempt.PaymentMethodID != uuid.Nil {
		methodID := attempt.PaymentMethodID
		req.PaymentMethodID = &methodID
	}
	if attempt.TransactionType != entity.TransactionVoid {
		amount := rc.amount
		req.Amount = &amount
	}

	result, err := r.payments.Run(ctx, req)
	if err != nil {
		return classify(err)
	}
	rc.paymentResult = result

	switch {
	case result.Status == entity.PaymentStatusSuccess:
		return statemachine.Success(), nil
	case result.Status == entity.PaymentStatusPending || result.Status == entity.PaymentStatusUnknown:
		return statemachine.Pending(), nil
	}

	next := r.decider.NextRetryDate(ctx, attempt.PluginNames, attempt.TransactionExternalKey)
	if next == nil {
		return statemachine.Aborted(nil), nil
	}
	rc.nextRetryDate = next
	return statemachine.Failure(nil), nil
}

// priorCall lets the policies adjust or veto the upcoming payment
func (r *AutomatonRunner) priorCall(ctx context.Context, rc *retryContext) (statemachine.Outcome, bool, error) {
	names := rc.attempt.PluginNames
	if len(names) == 0 {
		names = r.retryPlugins.Names()
	}

	for _, name := range names {
		policy, err := r.retryPlugins.Get(name)
		if err != nil {
			continue
		}
		control, ok := policy.(plugin.PriorCallPlugin)
		if !ok {
			continue
		}

		res, err := control.PriorCall(ctx, plugin.PriorCallContext{
			AttemptID:              rc.attempt.ID,
			AccountID:              rc.attempt.AccountID,
			PaymentMethodID:        rc.attempt.PaymentMethodID,
			PaymentExternalKey:     rc.attempt.PaymentExternalKey,
			TransactionExternalKey: rc.attempt.TransactionExternalKey,
			TransactionType:        rc.attempt.TransactionType,
			Amount:                 rc.amount,
			Currency:               rc.attempt.Currency,
			Properties:             rc.attempt.Properties,
			CallContext:            rc.request.CallContext,
		})
		if err != nil {
			outcome, err := classify(err)
			return outcome, true, err
		}
		if res == nil {
			continue
		}
		if res.AdjustedAmount != nil {
			rc.amount = *res.AdjustedAmount
		}
		if res.Aborted {
			reason := res.Reason
			if reason == nil {
				reason = errs.ErrAbortedByControlPlugin
			}
			r.logger.Info("Payment aborted by control plugin", map[string]any{
				"plugin_name":              name,
				"attempt_id":               rc.attempt.ID.String(),
				"transaction_external_key": rc.attempt.TransactionExternalKey,
				"reason":                   reason.Error(),
			})
			return statemachine.Aborted(reason), true, nil
		}
	}
	return statemachine.Outcome{}, false, nil
}

func (r *AutomatonRunner) enteringState(ctx context.Context, rc *retryContext, newState string, _ statemachine.Outcome) error {
	attempt := rc.attempt
	attempt.StateName = newState
	attempt.Amount = rc.amount
	attempt.UpdatedDate = r.timeProvider.Now()
	if rc.paymentResult != nil && rc.paymentResult.Transaction != nil {
		id := rc.paymentResult.Transaction.ID
		attempt.TransactionID = &id
	}

	if newState != entity.AttemptStateRetried {
		return r.attempts.Update(ctx, attempt)
	}

	return persistence.WithinTransaction(ctx, r.uow, func(txCtx context.Context) error {
		if err := r.uow.GetAttemptRepository(txCtx).Update(txCtx, attempt); err != nil {
			return err
		}
		event := Event{AttemptID: attempt.ID.String(), PluginNames: attempt.PluginNames}
		return r.uow.GetNotificationQueue(txCtx).RecordFutureNotification(
			txCtx,
			QueueName,
			*rc.nextRetryDate,
			event,
			rc.request.CallContext.UserToken,
			rc.account.RecordID,
			rc.account.TenantRecordID,
		)
	})
}

// classify turns a business error into an ABORTED outcome and keeps everything else a hard failure
func classify(err error) (statemachine.Outcome, error) {
	var missing *statemachine.MissingEntryError
	if errors.As(err, &missing) || !errs.IsBusinessError(err) || errs.IsAccountLockedError(err) {
		return statemachine.Outcome{}, err
	}
	return statemachine.Aborted(err), nil
}
