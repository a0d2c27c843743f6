package time

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
)

// FakeTimeProvider is a settable clock for tests
//
// Sleep and After advance the clock instead of blocking. Timeouts still use the
// wall clock so dispatch deadlines behave as in production.
type FakeTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

var _ core.TimeProvider = (*FakeTimeProvider)(nil)

// NewFakeTimeProvider creates a fake clock set to now
func NewFakeTimeProvider(now time.Time) *FakeTimeProvider {
	return &FakeTimeProvider{now: now.UTC()}
}

// Now returns the fake current time
func (p *FakeTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// Set moves the clock to t
func (p *FakeTimeProvider) Set(t time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = t.UTC()
}

// Advance moves the clock forward by d
func (p *FakeTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = p.now.Add(d)
}

// Since returns the fake time elapsed since t
func (p *FakeTimeProvider) Since(t time.Time) time.Duration {
	return p.Now().Sub(t)
}

// Sleep advances the clock and returns at once
func (p *FakeTimeProvider) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.Advance(d)
	return nil
}

// After advances the clock and returns a channel that already holds the new time
func (p *FakeTimeProvider) After(d time.Duration) <-chan time.Time {
	p.Advance(d)
	ch := make(chan time.Time, 1)
	ch <- p.Now()
	return ch
}

// WithTimeout returns a context canceled after the timeout on the wall clock
func (p *FakeTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
