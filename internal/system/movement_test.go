package system

import (
	"testing"
	"time"

	"ecsim/internal/component"
	"ecsim/internal/ecs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementUpdatesPosition(t *testing.T) {
	pos := component.Position(2, 2)
	Movement{}.Update(&pos, component.Velocity(1, 1), 3*time.Second)
	assert.Equal(t, component.Position(5, 5), pos)
}

func TestMovementUsesFractionalSeconds(t *testing.T) {
	pos := component.Position(0, 0)
	Movement{}.Update(&pos, component.Velocity(4, -2), 250*time.Millisecond)
	assert.InDelta(t, 1.0, pos.X, 1e-9)
	assert.InDelta(t, -0.5, pos.Y, 1e-9)
}

func TestMovementZeroDeltaIsStill(t *testing.T) {
	pos := component.Position(7, 3)
	Movement{}.Update(&pos, component.Velocity(100, 100), 0)
	assert.Equal(t, component.Position(7, 3), pos)
}

func TestMovementIgnoresMismatchedVariants(t *testing.T) {
	cases := []struct {
		name        string
		dependent   component.Component
		independent component.Component
	}{
		{"velocity as dependent", component.Velocity(1, 1), component.Velocity(1, 1)},
		{"position as independent", component.Position(1, 1), component.Position(1, 1)},
		{"keys as independent", component.Position(1, 1), component.KeysPressed(0xff)},
		{"empty dependent", component.Empty, component.Velocity(1, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dep := tc.dependent
			Movement{}.Update(&dep, tc.independent, time.Second)
			assert.Equal(t, tc.dependent, dep)
		})
	}
}

func TestMovementThroughRun(t *testing.T) {
	w := ecs.NewWorld()
	_, err := w.CreateEntity().With(component.Position(2, 2)).With(component.Velocity(1, 1)).Build()
	require.NoError(t, err)
	_, err = w.CreateEntity().With(component.Position(0, 0)).Build()
	require.NoError(t, err)

	n, err := ecs.Run(Movement{}, w.Positions(), w.Velocities(), 3*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	p, _ := w.Positions().Get(0)
	assert.Equal(t, component.Position(5, 5), p)
	p, _ = w.Positions().Get(1)
	assert.Equal(t, component.Position(0, 0), p)
}
