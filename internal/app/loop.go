package app

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
)

// MinimumFPS is the lowest frame rate an ExecutionLoop will run at.
const MinimumFPS = 24

// Flow is returned by a tick callback to continue or stop the loop.
type Flow uint8

const (
	Continue Flow = iota
	Quit
)

// ExecutionLoop calls a tick callback at a fixed frame rate.
type ExecutionLoop struct {
	interval time.Duration
}

// NewExecutionLoop creates a loop targeting fps frames per second. Rates
// below MinimumFPS are raised to it.
func NewExecutionLoop(fps int) *ExecutionLoop {
	return &ExecutionLoop{interval: time.Second / time.Duration(max(fps, MinimumFPS))}
}

// Interval is the time between ticks.
func (l *ExecutionLoop) Interval() time.Duration { return l.interval }

// Run calls tick once per interval with the time elapsed since the previous
// tick, until tick returns Quit or ctx is done.
func (l *ExecutionLoop) Run(ctx context.Context, tick func(delta time.Duration) Flow) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	prev := time.Now()
	for {
		if err := ctx.Err(); err != nil {
			return eris.Wrap(err, "execution loop stopped")
		}
		select {
		case <-ctx.Done():
			return eris.Wrap(ctx.Err(), "execution loop stopped")
		case now := <-ticker.C:
			if tick(now.Sub(prev)) == Quit {
				return nil
			}
			prev = now
		}
	}
}
