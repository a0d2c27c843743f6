package core

import (
	"context"
	"time"
)

// TimeProvider abstracts clock operations so the automatons, the retry
// scheduler and the queue poller can be driven deterministically in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Sleep(ctx context.Context, d time.Duration) error
	After(d time.Duration) <-chan time.Time
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
