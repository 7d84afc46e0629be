package retry

import (
	"context"
	"log/slog"
	"time"
)

// Listener observes the retry loop. It is notified after every attempt,
// before the engine decides whether to accept, stop or wait. Listeners are
// purely observational: their return has no effect on the loop, and a
// panicking listener is contained by the engine.
type Listener[T any] interface {
	// OnAttempt is called with the attempt's outcome, its 1-based number,
	// and the time elapsed since the first attempt started.
	OnAttempt(ctx context.Context, attempt Attempt[T], number int, elapsed time.Duration)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc[T any] func(ctx context.Context, attempt Attempt[T], number int, elapsed time.Duration)

func (f ListenerFunc[T]) OnAttempt(ctx context.Context, attempt Attempt[T], number int, elapsed time.Duration) {
	f(ctx, attempt, number, elapsed)
}

// NewSlogListener returns a listener that logs every attempt through logger:
// failures at Warn with the error attached, successes at Debug. A nil logger
// uses slog.Default.
func NewSlogListener[T any](logger *slog.Logger) Listener[T] {
	if logger == nil {
		logger = slog.Default()
	}

	return ListenerFunc[T](func(ctx context.Context, attempt Attempt[T], number int, elapsed time.Duration) {
		if attempt.HasFailure() {
			logger.WarnContext(ctx, "retry attempt failed",
				"attempt", number,
				"elapsed", elapsed,
				"error", attempt.Failure())

			return
		}

		logger.DebugContext(ctx, "retry attempt succeeded",
			"attempt", number,
			"elapsed", elapsed)
	})
}
