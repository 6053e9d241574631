package ecs

import (
	"iter"

	"ecsim/internal/component"

	"github.com/rotisserie/eris"
)

// ErrOutOfRange is returned when an index or delta falls outside its domain.
var ErrOutOfRange = eris.New("out of range")

// Reader is read-only indexed access to a storage. The bool result is false
// when the storage holds nothing at the index.
type Reader interface {
	Get(id EntityID) (component.Component, bool)
	Size() int
}

// Storage associates entity indices with components of one kind.
type Storage interface {
	Reader
	// Add stores c at id.
	Add(id EntityID, c component.Component) error
	// All yields every stored index with a pointer to its component.
	All() iter.Seq2[EntityID, *component.Component]
}

var (
	_ Storage = (*Dense)(nil)
	_ Storage = (*Sparse)(nil)
)

func checkIndex(id EntityID) error {
	if id >= MaxEntities {
		return eris.Wrapf(ErrOutOfRange, "entity index %d exceeds limit %d", id, MaxEntities)
	}
	return nil
}
