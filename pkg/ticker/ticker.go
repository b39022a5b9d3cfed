// Package ticker holds the planner's periodic timers: a context-driven tick
// loop and the countdown used between sport sets.
package ticker

import (
	"context"
	"fmt"
	"time"
)

// Run calls fn with the tick time every interval until ctx is done, then
// returns ctx.Err(). fn runs on the calling goroutine.
func Run(ctx context.Context, interval time.Duration, fn func(time.Time)) error {
	if interval <= 0 {
		return fmt.Errorf("ticker: interval must be positive, got %v", interval)
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			fn(now)
		}
	}
}

// Clock streams the time every interval until ctx is done. The first value
// is sent immediately. Slow readers miss ticks rather than queue them.
func Clock(ctx context.Context, interval time.Duration, now func() time.Time) <-chan time.Time {
	out := make(chan time.Time, 1)
	if now == nil {
		now = time.Now
	}
	out <- now()
	go func() {
		defer close(out)
		_ = Run(ctx, interval, func(time.Time) {
			select {
			case out <- now():
			default:
			}
		})
	}()
	return out
}
