package retry

import "fmt"

// FailedAttemptError wraps the failure captured by an attempt that was
// accepted as final (either through Attempt.Get or because no retry
// condition matched it in Retryer.Call). The wrapper distinguishes "the unit
// of work failed" from failures of the surrounding machinery; Unwrap exposes
// the cause to errors.Is and errors.As.
type FailedAttemptError struct {
	// Cause is the failure returned or raised by the unit of work.
	Cause error
}

func (e *FailedAttemptError) Error() string {
	return "retry: attempt failed: " + e.Cause.Error()
}

func (e *FailedAttemptError) Unwrap() error {
	return e.Cause
}

// PanicError is the failure recorded when the unit of work panics instead of
// returning. The engine recovers the panic and threads it through the
// attempt like any other failure, so a panicking operation can be retried
// with RetryIfPanic (or RetryIfError) rather than unwinding the caller.
type PanicError struct {
	// Value is the value the unit of work panicked with.
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("retry: unit of work panicked: %v", e.Value)
}

// ExhaustedError is the terminal failure of a Call that gave up without a
// successful result: either the stop strategy decided to stop, or the
// context was cancelled during the wait between attempts.
type ExhaustedError[T any] struct {
	// Attempts is the number of attempts completed when the engine gave up.
	// Always >= 1.
	Attempts int

	// LastAttempt is the attempt whose rejection led to giving up.
	LastAttempt Attempt[T]

	// CancelCause is set only when the wait between attempts was cut short
	// by context cancellation; it holds the context's error.
	CancelCause error
}

func (e *ExhaustedError[T]) Error() string {
	if e.CancelCause != nil {
		return fmt.Sprintf("retry: cancelled while waiting to retry after %d attempts: %v",
			e.Attempts, e.CancelCause)
	}

	return fmt.Sprintf("retry: retries exhausted after %d attempts", e.Attempts)
}

// Unwrap exposes the cancellation cause when the loop was cancelled, and the
// last attempt's failure otherwise. A rejection based on the result rather
// than a failure has no underlying error, in which case Unwrap returns nil.
func (e *ExhaustedError[T]) Unwrap() error {
	if e.CancelCause != nil {
		return e.CancelCause
	}

	if e.LastAttempt.HasFailure() {
		return e.LastAttempt.Failure()
	}

	return nil
}
