package retry

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// WaitStrategy computes the delay before the next attempt. Implementations
// must be stateless and safe to share across concurrent Retryer instances;
// RandomWait draws from the goroutine-safe shared source in math/rand/v2.
type WaitStrategy interface {
	// ComputeSleepTime returns a non-negative delay, given the number of
	// attempts already completed (1-based) and the time elapsed since the
	// first attempt started.
	ComputeSleepTime(failedAttempts int, elapsed time.Duration) time.Duration
}

// waitFunc adapts a function to the WaitStrategy interface.
type waitFunc func(failedAttempts int, elapsed time.Duration) time.Duration

func (f waitFunc) ComputeSleepTime(failedAttempts int, elapsed time.Duration) time.Duration {
	return f(failedAttempts, elapsed)
}

// NoWait returns a strategy that retries immediately, with no delay between
// attempts. This is the builder's default.
func NoWait() WaitStrategy {
	return waitFunc(func(int, time.Duration) time.Duration {
		return 0
	})
}

// FixedWait returns a strategy that always waits the same duration.
// Panics if sleepTime is negative.
func FixedWait(sleepTime time.Duration) WaitStrategy {
	if sleepTime < 0 {
		panic(fmt.Sprintf("retry: FixedWait requires a non-negative duration, got %v", sleepTime))
	}

	return waitFunc(func(int, time.Duration) time.Duration {
		return sleepTime
	})
}

// RandomWait returns a strategy that waits a duration drawn uniformly from
// [minTime, maxTime). Panics unless maxTime > minTime >= 0.
func RandomWait(minTime, maxTime time.Duration) WaitStrategy {
	if minTime < 0 {
		panic(fmt.Sprintf("retry: RandomWait requires a non-negative minimum, got %v", minTime))
	}

	if maxTime <= minTime {
		panic(fmt.Sprintf("retry: RandomWait requires max > min, got min %v, max %v", minTime, maxTime))
	}

	return waitFunc(func(int, time.Duration) time.Duration {
		return minTime + rand.N(maxTime-minTime) //nolint:gosec // G404: jitter, not crypto
	})
}

// IncrementingWait returns a strategy whose delay grows by increment after
// each completed attempt: initial + increment*(failedAttempts-1), clamped at
// zero. A negative increment produces shrinking delays. Panics if initial is
// negative.
func IncrementingWait(initial, increment time.Duration) WaitStrategy {
	if initial < 0 {
		panic(fmt.Sprintf("retry: IncrementingWait requires a non-negative initial duration, got %v", initial))
	}

	return waitFunc(func(failedAttempts int, _ time.Duration) time.Duration {
		d := initial + increment*time.Duration(failedAttempts-1)
		if d < 0 {
			return 0
		}

		return d
	})
}
