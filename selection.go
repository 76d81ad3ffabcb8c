package sketch

import (
	"errors"
	"fmt"
	"slices"
)

// Selection is the ordered set of selected shapes. It stores handles only;
// the shapes themselves belong to the Registry.
type Selection struct {
	handles []Handle
}

// Len returns the number of selected shapes.
func (s *Selection) Len() int { return len(s.handles) }

// Handles returns the selected handles in selection order.
func (s *Selection) Handles() []Handle {
	return slices.Clone(s.handles)
}

// Has reports whether h is selected.
func (s *Selection) Has(h Handle) bool {
	return slices.Contains(s.handles, h)
}

// Add appends h if it is not already selected and reports whether it was
// added.
func (s *Selection) Add(h Handle) bool {
	if h.IsNil() || s.Has(h) {
		return false
	}
	s.handles = append(s.handles, h)
	return true
}

// Remove drops h and reports whether it was selected.
func (s *Selection) Remove(h Handle) bool {
	i := slices.Index(s.handles, h)
	if i < 0 {
		return false
	}
	s.handles = slices.Delete(s.handles, i, i+1)
	return true
}

// Toggle flips membership of h and reports whether it is now selected.
func (s *Selection) Toggle(h Handle) bool {
	if s.Remove(h) {
		return false
	}
	return s.Add(h)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.handles = s.handles[:0]
}

// Validate checks that every selected handle is held by r. A failure is a
// programming defect in the code maintaining the selection.
func (s *Selection) Validate(r *Registry) error {
	var errs []error
	for _, h := range s.handles {
		if !r.Has(h) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrStaleReference, h))
		}
	}
	return errors.Join(errs...)
}
