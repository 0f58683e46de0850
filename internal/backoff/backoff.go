// Package backoff provides a bounded retry controller for one round of peer requests.
package backoff

import (
	"context"
	"math"
	"time"

	cbackoff "github.com/cenkalti/backoff/v4"

	"github.com/goodnatureofminers/chainsync/internal/clock"
)

// BackOff counts attempts and sleeps base·multiplier^attempts between them. A multiplier of
// 1 gives a fixed schedule. It is owned by a single goroutine.
type BackOff struct {
	attempts    int
	maxAttempts int
	stopped     bool
	schedule    *cbackoff.ExponentialBackOff
	sleep       func(context.Context, time.Duration) error
}

type Option func(*BackOff)

// WithMaxDelay caps a single delay.
func WithMaxDelay(d time.Duration) Option {
	return func(b *BackOff) {
		b.schedule.MaxInterval = d
	}
}

// WithSleep replaces the sleep function, mostly for tests.
func WithSleep(sleep func(context.Context, time.Duration) error) Option {
	return func(b *BackOff) {
		b.sleep = sleep
	}
}

func New(maxAttempts int, baseDelay time.Duration, multiplier float64, opts ...Option) *BackOff {
	schedule := cbackoff.NewExponentialBackOff()
	schedule.InitialInterval = baseDelay
	schedule.Multiplier = multiplier
	schedule.RandomizationFactor = 0
	schedule.MaxInterval = time.Duration(math.MaxInt64)
	schedule.MaxElapsedTime = 0

	b := &BackOff{
		maxAttempts: maxAttempts,
		schedule:    schedule,
		sleep:       clock.SleepWithContext,
	}
	for _, opt := range opts {
		opt(b)
	}
	schedule.Reset()
	return b
}

func (b *BackOff) Attempts() int {
	return b.attempts
}

func (b *BackOff) MaxAttempts() int {
	return b.maxAttempts
}

// Wait sleeps for the next delay and counts the attempt. It does nothing once the controller
// is finished or stopped. A cancelled wait is not counted.
func (b *BackOff) Wait(ctx context.Context) error {
	if b.stopped || b.attempts >= b.maxAttempts {
		return nil
	}
	if err := b.sleep(ctx, b.schedule.NextBackOff()); err != nil {
		return err
	}
	b.attempts++
	return nil
}

// IsFinished reports whether every attempt was used without an explicit Stop.
func (b *BackOff) IsFinished() bool {
	return !b.stopped && b.attempts >= b.maxAttempts
}

// Stop marks the round as successful.
func (b *BackOff) Stop() {
	b.stopped = true
}

func (b *BackOff) IsStopped() bool {
	return b.stopped
}
