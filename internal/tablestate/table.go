package tablestate

// Config declares everything entity-specific about a table: how to
// identify a record, how to compare each sortable field, how to read
// each filterable field, and the default sort.
type Config[T any, K comparable] struct {
	ID               func(T) K
	Rules            map[string]Rule[T]
	Fields           map[string]FieldValue[T]
	DefaultSortField string
	DefaultSortDir   Direction
}

// Table composes the record store, view, selection and expand state
// for one entity. All mutation of table state happens on the caller's
// single event loop; Table itself is not safe for concurrent use.
type Table[T any, K comparable] struct {
	id        func(T) K
	store     *Store[T]
	view      *View[T]
	selection Selection[K]
	expand    Expand[K]
}

func New[T any, K comparable](cfg Config[T, K]) *Table[T, K] {
	return &Table[T, K]{
		id:    cfg.ID,
		store: NewStore(cfg.Fields),
		view:  NewView(cfg.Rules, cfg.DefaultSortField, cfg.DefaultSortDir),
	}
}

// Load replaces the record list after an initial fetch or a
// mutation's reload. The selection and expanded row are cleared so no
// identifier from a previous load survives, and pagination returns
// to the first page.
func (t *Table[T, K]) Load(records []T) {
	t.store.Load(records)
	t.selection.Clear()
	t.expand.Clear()
	t.view.SetPage(0)
}

// VisibleRows returns the current page: a contiguous slice of the
// sorted, filtered record list.
func (t *Table[T, K]) VisibleRows() []T {
	return t.view.Paginate(t.view.Sort(t.store.Rows()))
}

// ToggleRow records a row interaction: it flips both the row's
// selection membership and its detail view, which are independent
// pieces of state updated by the same action.
func (t *Table[T, K]) ToggleRow(record T) {
	id := t.id(record)
	t.selection.Toggle(id)
	t.expand.Toggle(id)
}

// SelectAll selects every row of the filtered list, across pages.
func (t *Table[T, K]) SelectAll() {
	ids := make([]K, 0, t.store.Len())
	for _, record := range t.store.Rows() {
		ids = append(ids, t.id(record))
	}
	t.selection.SelectAll(ids)
}

// ClearSelection empties the selection without touching records.
func (t *Table[T, K]) ClearSelection() {
	t.selection.Clear()
}

func (t *Table[T, K]) IsSelected(record T) bool {
	return t.selection.IsSelected(t.id(record))
}

// SelectedIDs returns the selection in selection order.
func (t *Table[T, K]) SelectedIDs() []K {
	return t.selection.IDs()
}

func (t *Table[T, K]) SelectedCount() int {
	return t.selection.Count()
}

// Selected returns the selected records, in selection order, looked
// up from the current store.
func (t *Table[T, K]) Selected() []T {
	byID := make(map[K]T, t.store.Len())
	for _, record := range t.store.All() {
		byID[t.id(record)] = record
	}
	records := make([]T, 0, t.selection.Count())
	for _, id := range t.selection.IDs() {
		if record, ok := byID[id]; ok {
			records = append(records, record)
		}
	}
	return records
}

// Expanded returns the open detail row's identifier, if any.
func (t *Table[T, K]) Expanded() (K, bool) {
	return t.expand.Open()
}

// IsExpanded reports whether the record's detail view is open.
func (t *Table[T, K]) IsExpanded(record T) bool {
	id, ok := t.expand.Open()
	return ok && id == t.id(record)
}

func (t *Table[T, K]) RequestSort(fieldKey string) {
	t.view.RequestSort(fieldKey, t.store.Len())
}

func (t *Table[T, K]) ApplyFilter(fieldKey, value string) {
	t.store.ApplyFilter(fieldKey, value)
}

func (t *Table[T, K]) ClearFilter() {
	t.store.ClearFilter()
}

func (t *Table[T, K]) SetPage(page int) {
	last := t.view.PageCount(t.store.Len()) - 1
	if page > last {
		page = last
	}
	t.view.SetPage(page)
}

func (t *Table[T, K]) SetPageSize(size int) {
	t.view.SetPageSize(size)
}

func (t *Table[T, K]) Page() int { return t.view.Page() }

func (t *Table[T, K]) PageSize() int { return t.view.PageSize() }

func (t *Table[T, K]) PageCount() int { return t.view.PageCount(t.store.Len()) }

func (t *Table[T, K]) PaddingRows() int { return t.view.PaddingRows(t.store.Len()) }

func (t *Table[T, K]) SortField() string { return t.view.SortField() }

func (t *Table[T, K]) SortDirection() Direction { return t.view.SortDirection() }

func (t *Table[T, K]) Len() int { return t.store.Len() }

func (t *Table[T, K]) TotalLen() int { return len(t.store.All()) }

func (t *Table[T, K]) Rows() []T { return t.store.Rows() }
