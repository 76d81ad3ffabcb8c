package sketch

import (
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"
)

// Handle is an opaque, stable reference to a shape held by a Registry.
// Handles stay valid until the shape is removed; a removed handle is
// detectably stale rather than dangling.
type Handle uuid.UUID

// NilHandle refers to no shape.
var NilHandle Handle

// IsNil reports whether h is the zero handle.
func (h Handle) IsNil() bool { return h == NilHandle }

func (h Handle) String() string { return uuid.UUID(h).String() }

type entry struct {
	h Handle
	s Shape
}

// Registry owns every shape on the canvas, grouped by kind. Kinds are
// visited in their declared order and shapes within a kind in insertion
// order; that order decides hit-testing priority.
//
// Registry is not safe for concurrent use.
type Registry struct {
	lists [kindEnd][]entry
	index map[Handle]Kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[Handle]Kind)}
}

// Append takes ownership of s and files it under kind.
func (r *Registry) Append(kind Kind, s Shape) (Handle, error) {
	if !kind.Valid() {
		return NilHandle, fmt.Errorf("%w: %v", ErrInvalidShapeKind, kind)
	}
	if s.Kind() != kind {
		return NilHandle, fmt.Errorf("%w: %v shape filed as %v", ErrKindMismatch, s.Kind(), kind)
	}
	h := Handle(uuid.New())
	r.lists[kind] = append(r.lists[kind], entry{h: h, s: s})
	r.index[h] = kind
	return h, nil
}

// Remove deletes the shape named by h and returns it. It reports false if
// h is not in the registry.
func (r *Registry) Remove(h Handle) (Shape, bool) {
	kind, ok := r.index[h]
	if !ok {
		return nil, false
	}
	list := r.lists[kind]
	i := slices.IndexFunc(list, func(e entry) bool { return e.h == h })
	s := list[i].s
	r.lists[kind] = slices.Delete(list, i, i+1)
	delete(r.index, h)
	return s, true
}

// Get returns the shape named by h.
func (r *Registry) Get(h Handle) (Shape, bool) {
	kind, ok := r.index[h]
	if !ok {
		return nil, false
	}
	for _, e := range r.lists[kind] {
		if e.h == h {
			return e.s, true
		}
	}
	return nil, false
}

// Has reports whether h names a shape in the registry.
func (r *Registry) Has(h Handle) bool {
	_, ok := r.index[h]
	return ok
}

// Last returns the most recently appended shape of kind.
func (r *Registry) Last(kind Kind) (Handle, Shape, bool) {
	if !kind.Valid() || len(r.lists[kind]) == 0 {
		return NilHandle, nil, false
	}
	e := r.lists[kind][len(r.lists[kind])-1]
	return e.h, e.s, true
}

// All iterates over every shape in kind order, then insertion order.
// The registry must not be modified during iteration.
func (r *Registry) All() iter.Seq2[Handle, Shape] {
	return func(yield func(Handle, Shape) bool) {
		for k := KindPoint; k < kindEnd; k++ {
			for _, e := range r.lists[k] {
				if !yield(e.h, e.s) {
					return
				}
			}
		}
	}
}

// HitTest returns the first complete shape, in iteration order, that
// contains p. Shapes still under construction are never hit.
func (r *Registry) HitTest(p Point) (Handle, Shape, bool) {
	for h, s := range r.All() {
		if s.Complete() && s.Contains(p) {
			return h, s, true
		}
	}
	return NilHandle, nil, false
}

// Len returns the number of shapes held.
func (r *Registry) Len() int {
	return len(r.index)
}

// LenKind returns the number of shapes of kind held.
func (r *Registry) LenKind(kind Kind) int {
	if !kind.Valid() {
		return 0
	}
	return len(r.lists[kind])
}

// Clear removes every shape.
func (r *Registry) Clear() {
	for k := range r.lists {
		r.lists[k] = nil
	}
	clear(r.index)
}
