package ecs

import (
	"iter"

	"ecsim/internal/component"
)

// Dense is slice-backed storage. Every slot below Size holds a component,
// with gaps filled by component.Empty, and iteration is in ascending order.
type Dense struct {
	items []component.Component
}

// NewDense creates an empty dense storage.
func NewDense() *Dense {
	return &Dense{}
}

// Size returns one past the highest index ever added.
func (d *Dense) Size() int { return len(d.items) }

// Add stores c at id, back-filling any gap with Empty. The storage never
// shrinks and existing slots never move.
func (d *Dense) Add(id EntityID, c component.Component) error {
	if err := checkIndex(id); err != nil {
		return err
	}
	i := int(id)
	if i >= len(d.items) {
		d.items = append(d.items, make([]component.Component, i+1-len(d.items))...)
	}
	d.items[i] = c
	return nil
}

// Get returns the component at id. Slots below Size are always present,
// possibly as Empty.
func (d *Dense) Get(id EntityID) (component.Component, bool) {
	if id >= EntityID(len(d.items)) {
		return component.Empty, false
	}
	return d.items[id], true
}

// All yields every slot in ascending index order, Empty ones included.
func (d *Dense) All() iter.Seq2[EntityID, *component.Component] {
	return func(yield func(EntityID, *component.Component) bool) {
		for i := range d.items {
			if !yield(EntityID(i), &d.items[i]) {
				return
			}
		}
	}
}
