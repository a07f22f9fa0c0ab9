package tablestate

import "slices"

// Direction of the active sort.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// PageSizes is the allowed set of rows-per-page values.
var PageSizes = []int{10, 25, 50, 100}

// DefaultPageSize is used until a caller picks another allowed size.
const DefaultPageSize = 10

// View derives the visible page of rows from the filtered record
// list given the current sort field, direction, page index and page
// size. Exactly one field is active at a time.
type View[T any] struct {
	rules map[string]Rule[T]

	field    string
	dir      Direction
	page     int
	pageSize int
}

func NewView[T any](rules map[string]Rule[T], defaultField string, defaultDir Direction) *View[T] {
	return &View[T]{
		rules:    rules,
		field:    defaultField,
		dir:      defaultDir,
		pageSize: DefaultPageSize,
	}
}

// SortField returns the active sort field.
func (v *View[T]) SortField() string { return v.field }

// SortDirection returns the active sort direction.
func (v *View[T]) SortDirection() Direction { return v.dir }

func (v *View[T]) Page() int     { return v.page }
func (v *View[T]) PageSize() int { return v.pageSize }

// RequestSort handles a header interaction. A new field starts
// descending; re-requesting the active field toggles the direction.
// The page index stays pinned when it is already the last page of
// the total-row count, otherwise it resets to 0 so a resort never
// lands on an empty page.
func (v *View[T]) RequestSort(fieldKey string, total int) {
	if v.field == fieldKey {
		if v.dir == Ascending {
			v.dir = Descending
		} else {
			v.dir = Ascending
		}
	} else {
		v.field = fieldKey
		v.dir = Descending
	}

	if v.page != v.lastPage(total) {
		v.page = 0
	}
}

// SetPage moves to the given page index. Negative indexes clamp to 0.
func (v *View[T]) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	v.page = page
}

// SetPageSize switches rows-per-page and always resets to page 0.
// Sizes outside PageSizes are ignored.
func (v *View[T]) SetPageSize(size int) {
	if !slices.Contains(PageSizes, size) {
		return
	}
	v.pageSize = size
	v.page = 0
}

// Sort returns a stably sorted copy of records by the active field
// and direction. Records whose field has no declared rule keep their
// original relative order.
func (v *View[T]) Sort(records []T) []T {
	sorted := slices.Clone(records)
	rule, ok := v.rules[v.field]
	if !ok {
		return sorted
	}
	slices.SortStableFunc(sorted, func(a, b T) int {
		c := rule(a, b)
		if v.dir == Descending {
			return -c
		}
		return c
	})
	return sorted
}

// Paginate slices the visible page out of the sorted list.
func (v *View[T]) Paginate(sorted []T) []T {
	start := v.page * v.pageSize
	if start >= len(sorted) {
		return nil
	}
	end := start + v.pageSize
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[start:end]
}

// PageCount returns the number of pages for total rows; an empty
// list still has one page.
func (v *View[T]) PageCount(total int) int {
	return v.lastPage(total) + 1
}

// PaddingRows returns the number of filler rows needed to keep a
// partially filled last page at a fixed height. It only affects
// layout, never data, and the first page is never padded.
func (v *View[T]) PaddingRows(total int) int {
	if v.page == 0 {
		return 0
	}
	padding := (v.page+1)*v.pageSize - total
	if padding < 0 {
		return 0
	}
	return padding
}

func (v *View[T]) lastPage(total int) int {
	if total <= 0 {
		return 0
	}
	return (total - 1) / v.pageSize
}
