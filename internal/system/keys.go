package system

import (
	"time"

	"ecsim/internal/component"
	"ecsim/internal/input"
)

// Keys steers a Velocity from the entity's KeysPressed: W and S change Y by
// one unit, A and D change X.
type Keys struct{}

func (Keys) Update(dependent *component.Component, independent component.Component, _ time.Duration) {
	if dependent.Type() != component.CVelocity || independent.Type() != component.CKeysPressed {
		return
	}
	held := independent.Flags
	if held.IsSet(input.KeyW) {
		dependent.Y++
	}
	if held.IsSet(input.KeyS) {
		dependent.Y--
	}
	if held.IsSet(input.KeyA) {
		dependent.X--
	}
	if held.IsSet(input.KeyD) {
		dependent.X++
	}
}
