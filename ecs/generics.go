package ecs

import (
	"errors"

	"github.com/milk9111/speeed/ecs/component"
)

var (
	ErrNoEntity         = errors.New("ecs: no entity with component")
	ErrMultipleEntities = errors.New("ecs: more than one entity with component")
)

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).set(e, value)
	return nil
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).has(e)
}

// Get returns a pointer to the stored component; mutations are visible to
// every later reader without calling Add again.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).get(e).(*T)
	return v, ok
}

// First returns any live entity carrying the component.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := w.store(kind.ID(), false)
	for _, e := range entitiesOf(s) {
		if w.IsAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Single returns the only entity carrying the component. It fails with
// ErrNoEntity or ErrMultipleEntities otherwise.
func Single[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, error) {
	var (
		found Entity
		value *T
		n     int
	)
	ForEach(w, kind, func(e Entity, v *T) {
		n++
		found, value = e, v
	})
	switch n {
	case 0:
		return 0, nil, ErrNoEntity
	case 1:
		return found, value, nil
	default:
		return 0, nil, ErrMultipleEntities
	}
}

// Count returns how many live entities carry the component.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return w.store(kind.ID(), false).len()
}

// ForEach visits every entity with the component. The entity list is
// snapshotted, so fn may add, remove or destroy entities.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := w.store(kind.ID(), false)
	for _, e := range snapshot(s) {
		v, ok := Get(w, e, kind)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := w.store(ka.ID(), false), w.store(kb.ID(), false)
	if sa == nil || sb == nil {
		return
	}
	for _, e := range snapshot(smallest(sa, sb)) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

func entitiesOf(s *sparseSet) []Entity {
	if s == nil {
		return nil
	}
	return s.denseEntities
}

func snapshot(s *sparseSet) []Entity {
	src := entitiesOf(s)
	if len(src) == 0 {
		return nil
	}
	return append([]Entity(nil), src...)
}

// smallest picks the store with the fewest entries to drive an intersection.
func smallest(sets ...*sparseSet) *sparseSet {
	best := sets[0]
	for _, s := range sets[1:] {
		if s.len() < best.len() {
			best = s
		}
	}
	return best
}
