// Package tablestate implements the sort/paginate/select/filter
// state machine shared by every entity table in the console. A table
// is parameterized by its record type, an identifier accessor and a
// comparator table, so each entity only declares its columns.
package tablestate

import (
	"strings"

	"github.com/urepair/console/internal/model"
)

// Rule compares two records on a single field in ascending order:
// negative when a sorts before b, zero on ties. The view flips the
// sign for descending, so a rule must return 0 for equal keys
// regardless of direction to keep the sort stable.
type Rule[T any] func(a, b T) int

// NullOrder states where records with an absent date land relative
// to concrete dates, in the ascending base order.
type NullOrder int

const (
	// NullsFirst sorts an absent date before any concrete date.
	NullsFirst NullOrder = iota
	// NullsLast sorts an absent date after any concrete date.
	NullsLast
)

// Numeric compares by an integer field.
func Numeric[T any](key func(T) int) Rule[T] {
	return func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	}
}

// Alphabetic compares by a string field, case-insensitively. Only
// name-like fields are declared alphabetic; free text that is not
// gets no rule at all and compares equal.
func Alphabetic[T any](key func(T) string) Rule[T] {
	return func(a, b T) int {
		ka, kb := strings.ToLower(key(a)), strings.ToLower(key(b))
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	}
}

// Enum compares by rank in a declared ordering, never by the string
// value itself. Undeclared values rank below all declared ones.
func Enum[T any, E ~string](key func(T) E, order []E) Rule[T] {
	return func(a, b T) int {
		ra, rb := model.Rank(order, key(a)), model.Rank(order, key(b))
		switch {
		case ra < rb:
			return -1
		case ra > rb:
			return 1
		}
		return 0
	}
}

// Chronological compares by a composite date field, most-significant
// component first. The caller picks where absent dates sort.
func Chronological[T any](key func(T) *model.Date, nulls NullOrder) Rule[T] {
	return func(a, b T) int {
		da, db := key(a), key(b)
		if da == nil && db == nil {
			return 0
		}
		if da == nil {
			if nulls == NullsFirst {
				return -1
			}
			return 1
		}
		if db == nil {
			if nulls == NullsFirst {
				return 1
			}
			return -1
		}
		return da.Compare(*db)
	}
}
