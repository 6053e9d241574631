package system

import (
	"time"

	"ecsim/internal/component"
)

// Movement advances a Position by its entity's Velocity scaled by the tick
// delta in seconds.
type Movement struct{}

func (Movement) Update(dependent *component.Component, independent component.Component, delta time.Duration) {
	if dependent.Type() != component.CPosition || independent.Type() != component.CVelocity {
		return
	}
	secs := delta.Seconds()
	dependent.X += independent.X * secs
	dependent.Y += independent.Y * secs
}
