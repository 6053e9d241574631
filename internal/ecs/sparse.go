package ecs

import (
	"iter"

	"ecsim/internal/component"
)

// Sparse is map-backed storage for kinds carried by few entities. Unset
// indices are absent rather than Empty. Iteration order is unspecified.
type Sparse struct {
	items map[EntityID]*component.Component
}

// NewSparse creates an empty sparse storage.
func NewSparse() *Sparse {
	return &Sparse{items: make(map[EntityID]*component.Component)}
}

// Size returns the number of indices holding a component.
func (s *Sparse) Size() int { return len(s.items) }

// Add upserts c at id.
func (s *Sparse) Add(id EntityID, c component.Component) error {
	if err := checkIndex(id); err != nil {
		return err
	}
	if p, ok := s.items[id]; ok {
		*p = c
		return nil
	}
	s.items[id] = &c
	return nil
}

// Get returns the component at id, if one was added.
func (s *Sparse) Get(id EntityID) (component.Component, bool) {
	p, ok := s.items[id]
	if !ok {
		return component.Empty, false
	}
	return *p, true
}

// All yields every stored component.
func (s *Sparse) All() iter.Seq2[EntityID, *component.Component] {
	return func(yield func(EntityID, *component.Component) bool) {
		for id, p := range s.items {
			if !yield(id, p) {
				return
			}
		}
	}
}
