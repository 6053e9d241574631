package ecs

import "ecsim/internal/component"

// World owns one storage per component kind and the optional player index.
// Positions and velocities are dense; keys and commands are sparse.
type World struct {
	positions  *Dense
	velocities *Dense
	keys       *Sparse
	commands   *Sparse

	playerID  EntityID
	hasPlayer bool
}

// NewWorld creates a World with empty storages and no player.
func NewWorld() *World {
	return &World{
		positions:  NewDense(),
		velocities: NewDense(),
		keys:       NewSparse(),
		commands:   NewSparse(),
	}
}

// Positions returns the dense Position storage.
func (w *World) Positions() *Dense { return w.positions }

// Velocities returns the dense Velocity storage.
func (w *World) Velocities() *Dense { return w.velocities }

// Keys returns the sparse KeysPressed storage.
func (w *World) Keys() *Sparse { return w.keys }

// Commands returns the sparse Commands storage.
func (w *World) Commands() *Sparse { return w.commands }

// Storage returns the storage holding components of type t, or nil for
// component.CEmpty and unknown types.
func (w *World) Storage(t component.Type) Storage {
	switch t {
	case component.CPosition:
		return w.positions
	case component.CVelocity:
		return w.velocities
	case component.CKeysPressed:
		return w.keys
	case component.CCommands:
		return w.commands
	}
	return nil
}

// PlayerID reports the player entity, if one has been built.
func (w *World) PlayerID() (EntityID, bool) {
	return w.playerID, w.hasPlayer
}

// dense returns the dense storage for t, or nil if t is not a dense kind.
func (w *World) dense(t component.Type) *Dense {
	switch t {
	case component.CPosition:
		return w.positions
	case component.CVelocity:
		return w.velocities
	}
	return nil
}
