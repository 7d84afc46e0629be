// Package retry provides a configurable engine that repeatedly invokes a
// unit of work until it succeeds, a stop condition is reached, or the
// context is cancelled.
//
// A Retryer is assembled from three policies: retry conditions deciding
// which outcomes should be retried (OR-composed, none by default), a
// StopStrategy deciding when to give up (never, by default), and a
// WaitStrategy computing the delay between attempts (none, by default).
//
// Basic usage:
//
//	retryer := retry.NewBuilder[bool]().
//	    RetryIfError().
//	    WithStopStrategy(retry.StopAfterAttempts(5)).
//	    WithWaitStrategy(retry.FixedWait(100 * time.Millisecond)).
//	    Build()
//
//	ok, err := retryer.Call(ctx, func(ctx context.Context) (bool, error) {
//	    return flakyOperation(ctx)
//	})
//
// Note that a Retryer built without any RetryIf condition retries nothing:
// the first outcome, success or failure, is final. Retrying failures is an
// explicit opt-in.
package retry

import (
	"context"
	"time"

	"github.com/Ninja-Squad/ninja-core-sub000/clock"
	"github.com/Ninja-Squad/ninja-core-sub000/zero"
)

// Retryer is an immutable retry configuration. It holds no per-call state,
// so a single Retryer may be shared freely: concurrent Call invocations each
// drive their own independent loop.
type Retryer[T any] struct {
	stop       StopStrategy
	wait       WaitStrategy
	conditions []condition[T]
	clk        clock.Clock
	listeners  []Listener[T]
}

// Call invokes work until an outcome is accepted, the stop strategy gives
// up, or ctx is cancelled during the wait between attempts. It runs entirely
// on the calling goroutine; the only blocking point the engine owns is that
// wait, which is also its only cancellation point. A cancellation delivered
// while work itself runs is work's own responsibility to observe through its
// context.
//
// Call has exactly three exits:
//   - the accepted result, when the attempt succeeded and no condition
//     rejected it;
//   - a *FailedAttemptError wrapping the failure, when the attempt failed
//     and no condition rejected it (with no conditions registered this is
//     the immediate fate of any failure);
//   - a *ExhaustedError, when a rejected attempt met the stop strategy or
//     the wait was cancelled. On cancellation its CancelCause carries
//     ctx.Err(), which stays observable on the context afterwards.
func (r *Retryer[T]) Call(ctx context.Context, work func(context.Context) (T, error)) (T, error) {
	start := r.clk.Now()

	for attempts := 1; ; attempts++ {
		attempt := capture(ctx, work)
		elapsed := r.clk.Now().Sub(start)

		r.notify(ctx, attempt, attempts, elapsed)

		if !r.rejected(attempt) {
			return attempt.Get()
		}

		if r.stop.ShouldStop(attempts, elapsed) {
			return zero.Value[T](), &ExhaustedError[T]{
				Attempts:    attempts,
				LastAttempt: attempt,
			}
		}

		sleepTime := r.wait.ComputeSleepTime(attempts, elapsed)

		if err := r.clk.Sleep(ctx, sleepTime); err != nil {
			return zero.Value[T](), &ExhaustedError[T]{
				Attempts:    attempts,
				LastAttempt: attempt,
				CancelCause: err,
			}
		}
	}
}

// Wrap binds work to this Retryer's policy and returns a callable that runs
// Call when invoked. This lets a retry configuration be attached once and
// handed to other scheduling machinery.
func (r *Retryer[T]) Wrap(work func(context.Context) (T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		return r.Call(ctx, work)
	}
}

// rejected evaluates the OR of all registered conditions against the
// attempt. With no conditions it returns false, so the first outcome is
// accepted as final.
func (r *Retryer[T]) rejected(a Attempt[T]) bool {
	for _, cond := range r.conditions {
		if cond(a) {
			return true
		}
	}

	return false
}

// notify runs each listener. A panicking listener is contained so that
// observation can never change the outcome of the loop.
func (r *Retryer[T]) notify(ctx context.Context, a Attempt[T], number int, elapsed time.Duration) {
	for _, l := range r.listeners {
		func() {
			defer func() {
				_ = recover()
			}()

			l.OnAttempt(ctx, a, number, elapsed)
		}()
	}
}

// capture invokes work and folds its outcome into an Attempt. It cannot
// fail: errors become the failure variant, a panic is recovered into a
// *PanicError failure, and anything else is a result.
func capture[T any](ctx context.Context, work func(context.Context) (T, error)) (a Attempt[T]) {
	defer func() {
		if p := recover(); p != nil {
			a = failureAttempt[T](&PanicError{Value: p})
		}
	}()

	result, err := work(ctx)
	if err != nil {
		return failureAttempt[T](err)
	}

	return resultAttempt(result)
}
