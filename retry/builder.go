package retry

import (
	"errors"

	"github.com/Ninja-Squad/ninja-core-sub000/clock"
	"github.com/Ninja-Squad/ninja-core-sub000/optional"
)

// condition decides whether an attempt's outcome should trigger a retry.
type condition[T any] func(Attempt[T]) bool

// Builder assembles an immutable Retryer. Retry conditions accumulate and
// are OR-composed; the stop strategy, wait strategy and clock can each be
// set at most once per builder. A builder is not safe for concurrent use;
// the Retryer it builds is.
//
// Example:
//
//	retryer := retry.NewBuilder[string]().
//	    RetryIfError().
//	    WithStopStrategy(retry.StopAfterAttempts(3)).
//	    WithWaitStrategy(retry.FixedWait(100 * time.Millisecond)).
//	    Build()
type Builder[T any] struct {
	stop       optional.Value[StopStrategy]
	wait       optional.Value[WaitStrategy]
	clk        optional.Value[clock.Clock]
	conditions []condition[T]
	listeners  []Listener[T]
}

// NewBuilder creates an empty builder. Without further configuration the
// built Retryer accepts the first outcome as final, whether it succeeded or
// failed: retrying is strictly opt-in through the RetryIf methods.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// WithStopStrategy sets the strategy deciding when to give up. Default:
// NeverStop. Panics if a stop strategy was already set on this builder.
func (b *Builder[T]) WithStopStrategy(s StopStrategy) *Builder[T] {
	if b.stop.NonEmpty() {
		panic("retry: a stop strategy has already been set on this builder")
	}

	b.stop = optional.Some(s)

	return b
}

// WithWaitStrategy sets the strategy computing the delay between attempts.
// Default: NoWait. Panics if a wait strategy was already set on this builder.
func (b *Builder[T]) WithWaitStrategy(w WaitStrategy) *Builder[T] {
	if b.wait.NonEmpty() {
		panic("retry: a wait strategy has already been set on this builder")
	}

	b.wait = optional.Some(w)

	return b
}

// WithClock sets the time source used for elapsed-time bookkeeping and the
// inter-attempt sleep. Default: the system clock. Primarily for tests.
// Panics if a clock was already set on this builder.
func (b *Builder[T]) WithClock(c clock.Clock) *Builder[T] {
	if b.clk.NonEmpty() {
		panic("retry: a clock has already been set on this builder")
	}

	b.clk = optional.Some(c)

	return b
}

// WithListener registers a listener notified after every attempt. Listeners
// accumulate; each registered listener sees each attempt.
func (b *Builder[T]) WithListener(l Listener[T]) *Builder[T] {
	b.listeners = append(b.listeners, l)

	return b
}

// RetryIfError retries any failed attempt, including panics captured from
// the unit of work.
func (b *Builder[T]) RetryIfError() *Builder[T] {
	return b.retryIf(func(a Attempt[T]) bool {
		return a.HasFailure()
	})
}

// RetryIfPanic retries attempts whose failure was a panic recovered from the
// unit of work, and nothing else.
func (b *Builder[T]) RetryIfPanic() *Builder[T] {
	return b.retryIf(func(a Attempt[T]) bool {
		if !a.HasFailure() {
			return false
		}

		var p *PanicError

		return errors.As(a.Failure(), &p)
	})
}

// RetryIfErrorIs retries attempts whose failure matches target according to
// errors.Is, anywhere in its unwrap chain.
func (b *Builder[T]) RetryIfErrorIs(target error) *Builder[T] {
	return b.retryIf(func(a Attempt[T]) bool {
		return a.HasFailure() && errors.Is(a.Failure(), target)
	})
}

// RetryIfErrorMatches retries attempts whose failure satisfies pred.
func (b *Builder[T]) RetryIfErrorMatches(pred func(error) bool) *Builder[T] {
	return b.retryIf(func(a Attempt[T]) bool {
		return a.HasFailure() && pred(a.Failure())
	})
}

// RetryIfResult retries attempts whose successful result satisfies pred,
// e.g. RetryIfResult(zero.IsZero[string]) to retry empty results.
func (b *Builder[T]) RetryIfResult(pred func(T) bool) *Builder[T] {
	return b.retryIf(func(a Attempt[T]) bool {
		return a.HasResult() && pred(a.Result())
	})
}

func (b *Builder[T]) retryIf(c condition[T]) *Builder[T] {
	b.conditions = append(b.conditions, c)

	return b
}

// Build materializes the immutable Retryer. The builder can keep being used
// afterwards, but conditions and listeners registered later do not affect
// already-built Retryers.
func (b *Builder[T]) Build() *Retryer[T] {
	return &Retryer[T]{
		stop:       b.stop.GetOrElse(NeverStop()),
		wait:       b.wait.GetOrElse(NoWait()),
		clk:        b.clk.GetOrElseFunc(clock.System),
		conditions: append([]condition[T](nil), b.conditions...),
		listeners:  append([]Listener[T](nil), b.listeners...),
	}
}
