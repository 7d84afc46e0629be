package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoWait(t *testing.T) {
	t.Parallel()

	w := NoWait()

	for _, attempts := range []int{1, 5, 1000} {
		assert.Equal(t, time.Duration(0), w.ComputeSleepTime(attempts, time.Minute))
	}
}

func TestFixedWait(t *testing.T) {
	t.Parallel()

	w := FixedWait(250 * time.Millisecond)

	for _, attempts := range []int{1, 2, 100} {
		assert.Equal(t, 250*time.Millisecond, w.ComputeSleepTime(attempts, 0))
		assert.Equal(t, 250*time.Millisecond, w.ComputeSleepTime(attempts, time.Hour))
	}

	t.Run("zero is allowed", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, time.Duration(0), FixedWait(0).ComputeSleepTime(1, 0))
	})

	t.Run("rejects negative durations", func(t *testing.T) {
		t.Parallel()

		require.Panics(t, func() { FixedWait(-time.Millisecond) })
	})
}

func TestRandomWait(t *testing.T) {
	t.Parallel()

	t.Run("stays within the half-open interval", func(t *testing.T) {
		t.Parallel()

		minTime := 10 * time.Millisecond
		maxTime := 50 * time.Millisecond
		w := RandomWait(minTime, maxTime)

		for range 1000 {
			d := w.ComputeSleepTime(1, 0)
			assert.GreaterOrEqual(t, d, minTime)
			assert.Less(t, d, maxTime)
		}
	})

	t.Run("is not degenerate", func(t *testing.T) {
		t.Parallel()

		w := RandomWait(0, time.Second)

		seen := make(map[time.Duration]struct{})
		for range 100 {
			seen[w.ComputeSleepTime(1, 0)] = struct{}{}
		}

		assert.Greater(t, len(seen), 1, "repeated draws must produce more than one distinct value")
	})

	t.Run("rejects invalid bounds", func(t *testing.T) {
		t.Parallel()

		require.Panics(t, func() { RandomWait(-time.Millisecond, time.Second) })
		require.Panics(t, func() { RandomWait(time.Second, time.Second) })
		require.Panics(t, func() { RandomWait(time.Second, time.Millisecond) })
	})
}

func TestIncrementingWait(t *testing.T) {
	t.Parallel()

	t.Run("grows linearly with completed attempts", func(t *testing.T) {
		t.Parallel()

		w := IncrementingWait(100*time.Millisecond, 50*time.Millisecond)

		assert.Equal(t, 100*time.Millisecond, w.ComputeSleepTime(1, 0))
		assert.Equal(t, 150*time.Millisecond, w.ComputeSleepTime(2, 0))
		assert.Equal(t, 200*time.Millisecond, w.ComputeSleepTime(3, 0))
		assert.Equal(t, 550*time.Millisecond, w.ComputeSleepTime(10, 0))
	})

	t.Run("negative increments clamp at zero", func(t *testing.T) {
		t.Parallel()

		w := IncrementingWait(100*time.Millisecond, -60*time.Millisecond)

		assert.Equal(t, 100*time.Millisecond, w.ComputeSleepTime(1, 0))
		assert.Equal(t, 40*time.Millisecond, w.ComputeSleepTime(2, 0))
		assert.Equal(t, time.Duration(0), w.ComputeSleepTime(3, 0))
		assert.Equal(t, time.Duration(0), w.ComputeSleepTime(50, 0))
	})

	t.Run("rejects a negative initial duration", func(t *testing.T) {
		t.Parallel()

		require.Panics(t, func() { IncrementingWait(-time.Millisecond, time.Millisecond) })
	})
}
