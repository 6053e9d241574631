package factory

import (
	"math/rand"

	"ecsim/internal/bitvec"
	"ecsim/internal/component"
	"ecsim/internal/ecs"

	"github.com/rotisserie/eris"
)

// NewPlayer creates the player entity at (x, y) moving at (vx, vy), with
// empty KeysPressed and Commands so it can be steered and told to quit.
func NewPlayer(w *ecs.World, x, y, vx, vy float64) (ecs.EntityID, error) {
	id, err := w.CreateEntity().
		With(component.Position(x, y)).
		With(component.Velocity(vx, vy)).
		With(component.KeysPressed(bitvec.New())).
		With(component.Commands(bitvec.New())).
		MakePlayer().
		Build()
	if err != nil {
		return 0, eris.Wrap(err, "create player")
	}
	return id, nil
}

// NewDrifter creates an uncontrolled entity moving at a constant velocity.
func NewDrifter(w *ecs.World, x, y, vx, vy float64) (ecs.EntityID, error) {
	id, err := w.CreateEntity().
		With(component.Position(x, y)).
		With(component.Velocity(vx, vy)).
		Build()
	if err != nil {
		return 0, eris.Wrap(err, "create drifter")
	}
	return id, nil
}

// NewMarker creates a stationary entity with only a Position.
func NewMarker(w *ecs.World, x, y float64) (ecs.EntityID, error) {
	id, err := w.CreateEntity().With(component.Position(x, y)).Build()
	if err != nil {
		return 0, eris.Wrap(err, "create marker")
	}
	return id, nil
}

// Populate scatters n drifters and n markers within radius of (cx, cy).
// Drifter speeds are at most maxSpeed on each axis.
func Populate(w *ecs.World, rng *rand.Rand, n int, cx, cy, radius, maxSpeed float64) error {
	spread := func(c float64) float64 { return c + (rng.Float64()*2-1)*radius }
	speed := func() float64 { return (rng.Float64()*2 - 1) * maxSpeed }
	for range n {
		if _, err := NewDrifter(w, spread(cx), spread(cy), speed(), speed()); err != nil {
			return err
		}
		if _, err := NewMarker(w, spread(cx), spread(cy)); err != nil {
			return err
		}
	}
	return nil
}
