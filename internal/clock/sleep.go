// Package clock provides cancellable sleeps on top of an injectable clock.
package clock

import (
	"context"
	"time"

	lndclock "github.com/lightningnetwork/lnd/clock"
)

var defaultClock = lndclock.NewDefaultClock()

// SleepWithContext waits for d on the wall clock or returns early if ctx is done.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	return SleepWithClock(ctx, defaultClock, d)
}

// SleepWithClock waits until clk has advanced by d or ctx is done. A non-positive d only
// checks ctx.
func SleepWithClock(ctx context.Context, clk lndclock.Clock, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-clk.TickAfter(d):
		return nil
	}
}
