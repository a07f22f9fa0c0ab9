package tablestate

import (
	"fmt"

	"github.com/urepair/console/internal/model"
)

// FieldValue reports a record's value for one filterable field: its
// canonical string form and whether the field is literally absent.
// String forms make the equality loose: a filter value of "1"
// matches a numeric field holding 1.
type FieldValue[T any] func(record T) (value string, absent bool)

// Field builds a FieldValue for a plain field. Pointer fields that
// can be absent use FieldPtr instead.
func Field[T any, V any](key func(T) V) FieldValue[T] {
	return func(record T) (string, bool) {
		return fmt.Sprint(key(record)), false
	}
}

// FieldPtr builds a FieldValue for a nullable field.
func FieldPtr[T any, V any](key func(T) *V) FieldValue[T] {
	return func(record T) (string, bool) {
		v := key(record)
		if v == nil {
			return "", true
		}
		return fmt.Sprint(*v), false
	}
}

// Store holds the authoritative record list and, while a filter is
// active, the derived subset. Filtering always recomputes from the
// full list, never from a previous filter's output.
type Store[T any] struct {
	fields map[string]FieldValue[T]

	all  []T
	rows []T

	filterKey   string
	filterValue string
}

func NewStore[T any](fields map[string]FieldValue[T]) *Store[T] {
	return &Store[T]{fields: fields}
}

// Load replaces the full list. Any active filter is reapplied against
// the new records.
func (s *Store[T]) Load(records []T) {
	s.all = records
	s.refilter()
}

// ApplyFilter keeps records whose field matches value. An empty value
// clears the filter; the model.NullValue sentinel matches records
// whose field is literally absent.
func (s *Store[T]) ApplyFilter(fieldKey, value string) {
	s.filterKey = fieldKey
	s.filterValue = value
	s.refilter()
}

// ClearFilter restores the full unfiltered list.
func (s *Store[T]) ClearFilter() {
	s.filterKey = ""
	s.filterValue = ""
	s.refilter()
}

// Rows returns the filtered list, or the full list when no filter is
// active.
func (s *Store[T]) Rows() []T {
	return s.rows
}

// All returns the full unfiltered list.
func (s *Store[T]) All() []T {
	return s.all
}

func (s *Store[T]) Len() int {
	return len(s.rows)
}

func (s *Store[T]) refilter() {
	if s.filterValue == "" {
		s.rows = s.all
		return
	}
	field, ok := s.fields[s.filterKey]
	if !ok {
		s.rows = s.all
		return
	}
	rows := make([]T, 0, len(s.all))
	for _, record := range s.all {
		value, absent := field(record)
		if s.filterValue == model.NullValue {
			if absent {
				rows = append(rows, record)
			}
			continue
		}
		if !absent && value == s.filterValue {
			rows = append(rows, record)
		}
	}
	s.rows = rows
}
