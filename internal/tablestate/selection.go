package tablestate

import "slices"

// Selection tracks which record identifiers are selected, in the
// order they were selected. It survives sort, filter and page
// changes; only a reload or an explicit clear empties it.
type Selection[K comparable] struct {
	ids []K
}

// Toggle adds id when absent and removes it when present.
func (s *Selection[K]) Toggle(id K) {
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		return
	}
	s.ids = append(s.ids, id)
}

// SelectAll replaces the selection with the given identifiers.
func (s *Selection[K]) SelectAll(ids []K) {
	s.ids = slices.Clone(ids)
}

// Clear empties the selection.
func (s *Selection[K]) Clear() {
	s.ids = nil
}

// IsSelected reports membership.
func (s *Selection[K]) IsSelected(id K) bool {
	return slices.Contains(s.ids, id)
}

// IDs returns the selected identifiers in selection order.
func (s *Selection[K]) IDs() []K {
	return slices.Clone(s.ids)
}

func (s *Selection[K]) Count() int {
	return len(s.ids)
}

// Expand is the single open row detail. It is deliberately separate
// state from the selection even though the same row action drives
// both: selecting a row also toggles its detail view.
type Expand[K comparable] struct {
	open bool
	id   K
}

// Toggle opens the detail for id, closing any other. Toggling the
// already-open id closes it.
func (e *Expand[K]) Toggle(id K) {
	if e.open && e.id == id {
		e.open = false
		return
	}
	e.open = true
	e.id = id
}

// Open returns the expanded identifier, if any.
func (e *Expand[K]) Open() (K, bool) {
	return e.id, e.open
}

func (e *Expand[K]) Clear() {
	e.open = false
}
