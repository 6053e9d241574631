package factory

import (
	"math/rand"
	"testing"

	"ecsim/internal/component"
	"ecsim/internal/ecs"
)

func TestNewPlayerComponents(t *testing.T) {
	w := ecs.NewWorld()
	id, err := NewPlayer(w, 10, 10, 5, 1)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	player, ok := w.PlayerID()
	if !ok || player != id {
		t.Fatalf("PlayerID() = %d, %v; want %d, true", player, ok, id)
	}
	if p, _ := w.Positions().Get(id); p != component.Position(10, 10) {
		t.Errorf("position = %v; want position(10, 10)", p)
	}
	if v, _ := w.Velocities().Get(id); v != component.Velocity(5, 1) {
		t.Errorf("velocity = %v; want velocity(5, 1)", v)
	}
	if k, ok := w.Keys().Get(id); !ok || k.Type() != component.CKeysPressed || k.Flags != 0 {
		t.Errorf("keys = %v, %v; want empty keys_pressed", k, ok)
	}
	if c, ok := w.Commands().Get(id); !ok || c.Type() != component.CCommands || c.Flags != 0 {
		t.Errorf("commands = %v, %v; want empty commands", c, ok)
	}
}

func TestNewDrifterIsNotPlayer(t *testing.T) {
	w := ecs.NewWorld()
	id, err := NewDrifter(w, 1, 2, 3, 4)
	if err != nil {
		t.Fatalf("NewDrifter: %v", err)
	}
	if _, ok := w.PlayerID(); ok {
		t.Error("drifter must not become the player")
	}
	if _, ok := w.Keys().Get(id); ok {
		t.Error("drifter must not have keys")
	}
	if v, _ := w.Velocities().Get(id); v != component.Velocity(3, 4) {
		t.Errorf("velocity = %v; want velocity(3, 4)", v)
	}
}

func TestMarkerThenPlayerStayAligned(t *testing.T) {
	w := ecs.NewWorld()
	marker, err := NewMarker(w, 0, 0)
	if err != nil {
		t.Fatalf("NewMarker: %v", err)
	}
	player, err := NewPlayer(w, 1, 1, 0, 0)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if marker != 0 || player != 1 {
		t.Fatalf("ids = %d, %d; want 0, 1", marker, player)
	}
	// The marker has no velocity; its slot is back-filled.
	if v, ok := w.Velocities().Get(marker); !ok || !v.IsEmpty() {
		t.Errorf("velocity[%d] = %v, %v; want Empty, true", marker, v, ok)
	}
	if v, _ := w.Velocities().Get(player); v != component.Velocity(0, 0) {
		t.Errorf("velocity[%d] = %v; want velocity(0, 0)", player, v)
	}
}

func TestPopulate(t *testing.T) {
	w := ecs.NewWorld()
	rng := rand.New(rand.NewSource(42))
	if err := Populate(w, rng, 4, 50, 20, 10, 2); err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if got := w.Positions().Size(); got != 8 {
		t.Errorf("positions = %d; want 8", got)
	}

	drifters := 0
	for id, v := range w.Velocities().All() {
		if v.IsEmpty() {
			continue
		}
		drifters++
		if v.X < -2 || v.X > 2 || v.Y < -2 || v.Y > 2 {
			t.Errorf("velocity[%d] = %v exceeds max speed", id, v)
		}
	}
	if drifters != 4 {
		t.Errorf("drifters = %d; want 4", drifters)
	}
	for id, p := range w.Positions().All() {
		if p.X < 40 || p.X > 60 || p.Y < 10 || p.Y > 30 {
			t.Errorf("position[%d] = %v outside radius", id, p)
		}
	}
}
