package retry

// Attempt is the immutable outcome of one invocation of the retried unit of
// work: either a produced result or a captured failure, never both. The
// engine creates one Attempt per invocation and hands it to the configured
// retry conditions and listeners; when retries are exhausted, the last
// Attempt travels inside the ExhaustedError for diagnostics.
type Attempt[T any] struct {
	result    T
	failure   error
	hasResult bool
}

// resultAttempt wraps a successful result.
func resultAttempt[T any](result T) Attempt[T] {
	return Attempt[T]{result: result, hasResult: true}
}

// failureAttempt wraps a captured failure.
func failureAttempt[T any](err error) Attempt[T] {
	return Attempt[T]{failure: err}
}

// HasResult returns true if the attempt produced a result.
func (a Attempt[T]) HasResult() bool {
	return a.hasResult
}

// HasFailure returns true if the attempt captured a failure.
func (a Attempt[T]) HasFailure() bool {
	return !a.hasResult
}

// Get returns the result when the attempt succeeded. When the attempt
// captured a failure, it returns that failure wrapped in a
// *FailedAttemptError, so that callers use one unwrapping idiom for "the
// operation itself failed" across Get and Retryer.Call.
func (a Attempt[T]) Get() (T, error) {
	if a.hasResult {
		return a.result, nil
	}

	return a.result, &FailedAttemptError{Cause: a.failure}
}

// Result returns the produced result. Calling it on a failed attempt is a
// caller bug and panics; use HasResult or Get to branch safely.
func (a Attempt[T]) Result() T {
	if !a.hasResult {
		panic("retry: called Result on a failed attempt")
	}

	return a.result
}

// Failure returns the captured failure. Calling it on a successful attempt
// is a caller bug and panics; use HasFailure or Get to branch safely.
func (a Attempt[T]) Failure() error {
	if a.hasResult {
		panic("retry: called Failure on a successful attempt")
	}

	return a.failure
}
