// Package clock abstracts the time source used by components that read the
// current time or sleep. Production code uses the system clock; tests inject
// a fake to drive time deterministically.
package clock

import (
	"context"
	"time"
)

// Clock is a time source. Implementations must be safe for concurrent use.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Sleep blocks for d or until ctx is cancelled, whichever comes first.
	// It returns nil after a full sleep and ctx.Err() on cancellation.
	// Non-positive durations return immediately.
	Sleep(ctx context.Context, d time.Duration) error
}

// System returns the wall-clock implementation backed by the time package.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		// Even a zero-length sleep observes cancellation, so callers get a
		// consistent cancellation point regardless of the configured delay.
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
