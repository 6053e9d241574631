package ecs

import (
	"ecsim/internal/component"

	"github.com/rotisserie/eris"
)

// ErrBuilderConsumed is returned by Build on a builder that already built.
var ErrBuilderConsumed = eris.New("entity builder already consumed")

// EntityBuilder accumulates components for one entity and commits them to
// its World on Build. The entity index is the largest current size among the
// dense storages the entity touches, so those components land at or past the
// end of each of them. Storages the entity does not touch are left as they
// are and may end up shorter.
type EntityBuilder struct {
	world   *World
	pending []component.Component
	index   EntityID
	player  bool
	built   bool
}

// CreateEntity starts building an entity in w.
func (w *World) CreateEntity() *EntityBuilder {
	return &EntityBuilder{world: w}
}

// With records c. Dense kinds raise the entity index; sparse kinds do not.
func (b *EntityBuilder) With(c component.Component) *EntityBuilder {
	b.raise(c.Type())
	b.pending = append(b.pending, c)
	return b
}

// MakePlayer marks the entity as the World's player.
func (b *EntityBuilder) MakePlayer() *EntityBuilder {
	b.player = true
	return b
}

// Build writes every recorded non-Empty component at the entity index and
// returns that index. Nothing is written if the index is out of range.
func (b *EntityBuilder) Build() (EntityID, error) {
	if b.built {
		return 0, eris.Wrap(ErrBuilderConsumed, "build entity")
	}
	// Dense storages may have grown since With; re-raise so the entity still
	// lands at or past their ends.
	for _, c := range b.pending {
		b.raise(c.Type())
	}
	if err := checkIndex(b.index); err != nil {
		return 0, eris.Wrap(err, "build entity")
	}
	b.built = true

	for _, c := range b.pending {
		if c.IsEmpty() {
			continue
		}
		if err := b.world.Storage(c.Type()).Add(b.index, c); err != nil {
			return 0, eris.Wrapf(err, "add %s", c.Type())
		}
	}
	if b.player {
		b.world.playerID = b.index
		b.world.hasPlayer = true
	}
	b.pending = nil
	return b.index, nil
}

func (b *EntityBuilder) raise(t component.Type) {
	if d := b.world.dense(t); d != nil {
		b.index = max(b.index, EntityID(d.Size()))
	}
}
