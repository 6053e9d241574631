package app

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalAboveMinimum(t *testing.T) {
	assert.Equal(t, 5*time.Millisecond, NewExecutionLoop(200).Interval())
}

func TestIntervalFallsBackToMinimumFPS(t *testing.T) {
	want := time.Second / MinimumFPS
	assert.Equal(t, want, NewExecutionLoop(MinimumFPS-10).Interval())
	assert.Equal(t, want, NewExecutionLoop(0).Interval())
}

func TestLoopExitsWhenTickQuits(t *testing.T) {
	iterations := 0
	err := NewExecutionLoop(200).Run(context.Background(), func(time.Duration) Flow {
		iterations++
		return Quit
	})
	require.NoError(t, err)
	assert.Equal(t, 1, iterations)
}

func TestLoopIteratesUntilQuit(t *testing.T) {
	var deltas []time.Duration
	err := NewExecutionLoop(200).Run(context.Background(), func(delta time.Duration) Flow {
		deltas = append(deltas, delta)
		if len(deltas) > 1 {
			return Quit
		}
		return Continue
	})
	require.NoError(t, err)
	require.Len(t, deltas, 2)
	for _, d := range deltas {
		assert.Positive(t, d)
	}
}

func TestLoopStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	iterations := 0
	err := NewExecutionLoop(200).Run(ctx, func(time.Duration) Flow {
		iterations++
		if iterations == 3 {
			cancel()
		}
		return Continue
	})
	require.Error(t, err)
	assert.True(t, eris.Is(err, context.Canceled))
	assert.Equal(t, 3, iterations)
}
