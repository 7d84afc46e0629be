package retry

import (
	"fmt"
	"time"
)

// StopStrategy decides when to give up retrying. Implementations must be
// pure functions of their inputs: stateless and safe to share across
// concurrent Retryer instances.
type StopStrategy interface {
	// ShouldStop reports whether retrying should stop, given the number of
	// attempts already completed (1-based) and the time elapsed since the
	// first attempt started.
	ShouldStop(failedAttempts int, elapsed time.Duration) bool
}

// stopFunc adapts a function to the StopStrategy interface.
type stopFunc func(failedAttempts int, elapsed time.Duration) bool

func (f stopFunc) ShouldStop(failedAttempts int, elapsed time.Duration) bool {
	return f(failedAttempts, elapsed)
}

// NeverStop returns a strategy that never gives up. Combined with a retry
// condition, the loop runs until it succeeds or the context is cancelled.
// This is the builder's default.
func NeverStop() StopStrategy {
	return stopFunc(func(int, time.Duration) bool {
		return false
	})
}

// StopAfterAttempts returns a strategy that stops once maxAttempts attempts
// have completed. Panics if maxAttempts < 1.
func StopAfterAttempts(maxAttempts int) StopStrategy {
	if maxAttempts < 1 {
		panic(fmt.Sprintf("retry: StopAfterAttempts requires maxAttempts >= 1, got %d", maxAttempts))
	}

	return stopFunc(func(failedAttempts int, _ time.Duration) bool {
		return failedAttempts >= maxAttempts
	})
}

// StopAfterDelay returns a strategy that stops once the elapsed time since
// the first attempt reaches maxDelay. Panics if maxDelay is negative.
func StopAfterDelay(maxDelay time.Duration) StopStrategy {
	if maxDelay < 0 {
		panic(fmt.Sprintf("retry: StopAfterDelay requires a non-negative delay, got %v", maxDelay))
	}

	return stopFunc(func(_ int, elapsed time.Duration) bool {
		return elapsed >= maxDelay
	})
}
