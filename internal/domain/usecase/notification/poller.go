package notification

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/usecase"
)

// PollerConfig holds the delivery settings of the notification poller
type PollerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	Lease        time.Duration // how long a claimed notification stays invisible to other pollers
	MaxErrors    int           // failed deliveries before a notification is given up
	RetryBackoff time.Duration // first redelivery delay, doubled on each further error
	Workers      int
}

// DefaultPollerConfig returns the default delivery settings
func DefaultPollerConfig() PollerConfig {
	return PollerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    50,
		Lease:        5 * time.Minute,
		MaxErrors:    5,
		RetryBackoff: time.Minute,
		Workers:      4,
	}
}

// Poller delivers due notifications to the handler registered for their queue
//
// Handlers must be registered before Run is called.
type Poller struct {
	queue        persistence.NotificationQueue
	handlers     map[string]usecase.NotificationHandler
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       PollerConfig
}

// NewPoller creates a new Poller
func NewPoller(
	queue persistence.NotificationQueue,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config PollerConfig,
) *Poller {
	defaults := DefaultPollerConfig()
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	if config.Lease <= 0 {
		config.Lease = defaults.Lease
	}
	if config.MaxErrors <= 0 {
		config.MaxErrors = defaults.MaxErrors
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	return &Poller{
		queue:        queue,
		handlers:     make(map[string]usecase.NotificationHandler),
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// Register routes the notifications of a queue to a handler
func (p *Poller) Register(queueName string, handler usecase.NotificationHandler) {
	p.handlers[queueName] = handler
}

// Run polls every interval until ctx is canceled
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("Notification poller started", map[string]any{
		"queues":        p.queueNames(),
		"poll_interval": p.config.PollInterval.String(),
	})

	for {
		if _, err := p.PollOnce(ctx); err != nil && ctx.Err() == nil {
			p.logger.Error("Notification poll failed", map[string]any{"error": err.Error()})
		}
		if err := p.timeProvider.Sleep(ctx, p.config.PollInterval); err != nil {
			p.logger.Info("Notification poller stopped", nil)
			return nil
		}
	}
}

// PollOnce claims and delivers one batch per queue and returns how many deliveries succeeded
func (p *Poller) PollOnce(ctx context.Context) (int, error) {
	var delivered int64
	var errs []error

	for _, queueName := range p.queueNames() {
		handler := p.handlers[queueName]

		claimed, err := p.queue.ClaimReady(ctx, queueName, p.timeProvider.Now(), p.config.BatchSize, p.config.Lease)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		var g errgroup.Group
		g.SetLimit(p.config.Workers)
		for _, n := range claimed {
			n := n
			g.Go(func() error {
				if p.deliver(ctx, handler, n) {
					atomic.AddInt64(&delivered, 1)
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	return int(delivered), errors.Join(errs...)
}

func (p *Poller) deliver(ctx context.Context, handler usecase.NotificationHandler, n *entity.Notification) bool {
	err := handler.HandleReadyNotification(ctx, n.Event, n.EffectiveDate, n.UserToken, n.AccountRecordID, n.TenantRecordID)
	now := p.timeProvider.Now()

	if err == nil {
		if markErr := p.queue.MarkProcessed(ctx, n.ID, now); markErr != nil {
			p.logger.Error("Failed to mark notification processed", map[string]any{
				"notification_id": n.ID.String(),
				"error":           markErr.Error(),
			})
		}
		return true
	}

	errorCount := n.ErrorCount + 1
	var retryAt *time.Time
	if errorCount < p.config.MaxErrors {
		next := now.Add(p.backoff(errorCount))
		retryAt = &next
	}

	fields := map[string]any{
		"notification_id": n.ID.String(),
		"queue_name":      n.QueueName,
		"error_count":     errorCount,
		"error":           err.Error(),
	}
	if retryAt == nil {
		p.logger.Error("Notification delivery given up", fields)
	} else {
		fields["retry_at"] = retryAt.Format(time.RFC3339)
		p.logger.Warn("Notification delivery failed", fields)
	}

	if markErr := p.queue.MarkFailed(ctx, n.ID, err.Error(), retryAt, now); markErr != nil {
		p.logger.Error("Failed to record notification failure", map[string]any{
			"notification_id": n.ID.String(),
			"error":           markErr.Error(),
		})
	}
	return false
}

func (p *Poller) backoff(errorCount int) time.Duration {
	d := p.config.RetryBackoff
	for i := 1; i < errorCount; i++ {
		d *= 2
	}
	return d
}

func (p *Poller) queueNames() []string {
	names := make([]string, 0, len(p.handlers))
	for name := range p.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
