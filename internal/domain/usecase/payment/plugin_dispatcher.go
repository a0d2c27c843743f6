package payment

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
)

// PluginCallFunc is one gateway call executed on the dispatch pool
type PluginCallFunc func(ctx context.Context) (*entity.PluginResult, error)

// PluginDispatcher runs plugin calls on a bounded pool of workers
//
// Callers wait for the result up to the dispatch timeout. A result arriving
// after the timeout is dropped.
type PluginDispatcher struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	timeout      time.Duration

	jobs      chan *dispatchJob
	workersWG sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// dispatchJob represents a queued plugin call
type dispatchJob struct {
	ctx        context.Context
	pluginName string
	call       PluginCallFunc
	resultChan chan dispatchResult // buffered so a late worker never blocks
}

// dispatchResult represents the outcome of a plugin call
type dispatchResult struct {
	result *entity.PluginResult
	err    error
}

// NewPluginDispatcher creates a dispatcher and starts its workers
func NewPluginDispatcher(
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	poolSize int,
	timeout time.Duration,
) *PluginDispatcher {
	if poolSize <= 0 {
		panic("plugin dispatcher pool size must be positive")
	}

	d := &PluginDispatcher{
		logger:       logger,
		timeProvider: timeProvider,
		timeout:      timeout,
		jobs:         make(chan *dispatchJob, poolSize),
	}

	d.workersWG.Add(poolSize)
	for i := 0; i < poolSize; i++ {
		go d.worker(i)
	}

	logger.Info("Plugin dispatcher started", map[string]any{
		"pool_size": poolSize,
		"timeout":   timeout.String(),
	})
	return d
}

// Dispatch submits a plugin call and waits for its result
//
// Possible errors:
// - ErrPluginTimeout: If the call did not finish within the dispatch timeout
// - ErrDispatcherClosed: If the dispatcher was shut down
// - the error of ctx when the caller gave up first
func (d *PluginDispatcher) Dispatch(ctx context.Context, pluginName string, call PluginCallFunc) (*entity.PluginResult, error) {
	callCtx, cancel := d.timeProvider.WithTimeout(ctx, d.timeout)
	defer cancel()

	job := &dispatchJob{
		ctx:        callCtx,
		pluginName: pluginName,
		call:       call,
		resultChan: make(chan dispatchResult, 1),
	}

	if err := d.enqueue(callCtx, job); err != nil {
		return nil, d.translate(ctx, pluginName, err)
	}

	select {
	case res := <-job.resultChan:
		return res.result, res.err
	case <-callCtx.Done():
		return nil, d.translate(ctx, pluginName, callCtx.Err())
	}
}

func (d *PluginDispatcher) enqueue(ctx context.Context, job *dispatchJob) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return errs.ErrDispatcherClosed
	}

	select {
	case d.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// translate turns an expired dispatch deadline into ErrPluginTimeout
func (d *PluginDispatcher) translate(parent context.Context, pluginName string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) && parent.Err() == nil {
		d.logger.Warn("Plugin call timed out", map[string]any{
			"plugin_name": pluginName,
			"timeout":     d.timeout.String(),
		})
		return errs.ErrPluginTimeout
	}
	return err
}

func (d *PluginDispatcher) worker(id int) {
	defer d.workersWG.Done()

	for job := range d.jobs {
		if job.ctx.Err() != nil {
			// caller already gave up
			continue
		}

		start := d.timeProvider.Now()
		result, err := job.call(job.ctx)
		job.resultChan <- dispatchResult{result: result, err: err}

		d.logger.Debug("Plugin call finished", map[string]any{
			"worker":      id,
			"plugin_name": job.pluginName,
			"duration":    d.timeProvider.Since(start).String(),
			"failed":      err != nil,
		})
	}
}

// Shutdown stops accepting calls and waits for running calls to finish
func (d *PluginDispatcher) Shutdown() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.jobs)
	d.mu.Unlock()

	d.workersWG.Wait()
	d.logger.Info("Plugin dispatcher shut down successfully", nil)
}
