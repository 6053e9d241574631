package ecs

import (
	"time"

	"ecsim/internal/component"

	"github.com/rotisserie/eris"
)

// System transforms one dependent component using an independent component
// of the same entity. Update must be a no-op for variant pairs it does not
// handle.
type System interface {
	Update(dependent *component.Component, independent component.Component, delta time.Duration)
}

// Run joins dependents against independents by index and calls sys.Update
// for every index where the dependent is non-Empty and the independent is
// present and non-Empty. Only dependents is handed out mutably. It returns
// the number of updates performed.
func Run(sys System, dependents Storage, independents Reader, delta time.Duration) (int, error) {
	if delta < 0 {
		return 0, eris.Wrapf(ErrOutOfRange, "negative delta %s", delta)
	}
	updates := 0
	for id, dep := range dependents.All() {
		if dep.IsEmpty() {
			continue
		}
		ind, ok := independents.Get(id)
		if !ok || ind.IsEmpty() {
			continue
		}
		sys.Update(dep, ind, delta)
		updates++
	}
	return updates, nil
}
