//nolint:err113 // test errors
package retry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailedAttemptError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := &FailedAttemptError{Cause: cause}

	assert.Equal(t, "retry: attempt failed: boom", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestPanicError(t *testing.T) {
	t.Parallel()

	err := &PanicError{Value: "oh no"}

	assert.Equal(t, "retry: unit of work panicked: oh no", err.Error())
}

func TestExhaustedError_Message(t *testing.T) {
	t.Parallel()

	t.Run("exhausted by stop strategy", func(t *testing.T) {
		t.Parallel()

		err := &ExhaustedError[int]{
			Attempts:    3,
			LastAttempt: failureAttempt[int](errors.New("boom")),
		}

		assert.Equal(t, "retry: retries exhausted after 3 attempts", err.Error())
	})

	t.Run("cancelled during wait", func(t *testing.T) {
		t.Parallel()

		err := &ExhaustedError[int]{
			Attempts:    2,
			LastAttempt: failureAttempt[int](errors.New("boom")),
			CancelCause: context.Canceled,
		}

		assert.Equal(t,
			"retry: cancelled while waiting to retry after 2 attempts: context canceled",
			err.Error())
	})
}

func TestExhaustedError_Unwrap(t *testing.T) {
	t.Parallel()

	t.Run("unwraps to the last failure", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("boom")
		err := &ExhaustedError[int]{
			Attempts:    3,
			LastAttempt: failureAttempt[int](cause),
		}

		require.ErrorIs(t, err, cause)
	})

	t.Run("cancellation cause wins", func(t *testing.T) {
		t.Parallel()

		err := &ExhaustedError[int]{
			Attempts:    3,
			LastAttempt: failureAttempt[int](errors.New("boom")),
			CancelCause: context.Canceled,
		}

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("result rejection has no underlying error", func(t *testing.T) {
		t.Parallel()

		err := &ExhaustedError[int]{
			Attempts:    3,
			LastAttempt: resultAttempt(0),
		}

		assert.NoError(t, err.Unwrap()) //nolint:testifylint // Unwrap returning nil is the point
	})
}
