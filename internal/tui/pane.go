package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/urepair/console/internal/tablestate"
)

// Column describes one rendered table column. Field is the sort and
// filter key; columns with an empty Field are display-only. Color, if
// set, picks a per-record cell color.
type Column[T any] struct {
	Title  string
	Width  int
	Field  string
	Render func(T) string
	Color  func(Theme, T) lipgloss.Color
}

// pane is the tab-agnostic surface the event loop drives. Each tab is
// a TablePane specialized to its entity; mutations stay outside, on
// the typed panes.
type pane interface {
	View(theme Theme, width int) string
	StatusLine() string
	MoveCursor(delta int)
	ToggleCursor()
	SelectAll()
	ClearSelection()
	CycleSort()
	FlipSort()
	NextPage()
	PrevPage()
	CyclePageSize()
	ApplyFilter(field, value string)
	ClearFilter()
	FilterFields() []string
	SelectedCount() int
}

// TablePane binds a tablestate.Table to columns and a detail renderer.
// The cursor indexes into the visible page.
type TablePane[T any, K comparable] struct {
	table   *tablestate.Table[T, K]
	columns []Column[T]
	detail  func(T) []string
	cursor  int
}

func NewTablePane[T any, K comparable](table *tablestate.Table[T, K], columns []Column[T], detail func(T) []string) *TablePane[T, K] {
	return &TablePane[T, K]{table: table, columns: columns, detail: detail}
}

// Table exposes the underlying table for the typed mutation handlers.
func (p *TablePane[T, K]) Table() *tablestate.Table[T, K] {
	return p.table
}

// Load replaces the record list and homes the cursor.
func (p *TablePane[T, K]) Load(records []T) {
	p.table.Load(records)
	p.cursor = 0
}

// CursorRecord returns the record under the cursor, if the page has
// one.
func (p *TablePane[T, K]) CursorRecord() (T, bool) {
	rows := p.table.VisibleRows()
	if p.cursor < 0 || p.cursor >= len(rows) {
		var zero T
		return zero, false
	}
	return rows[p.cursor], true
}

func (p *TablePane[T, K]) MoveCursor(delta int) {
	rows := len(p.table.VisibleRows())
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= rows {
		p.cursor = rows - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *TablePane[T, K]) ToggleCursor() {
	if record, ok := p.CursorRecord(); ok {
		p.table.ToggleRow(record)
	}
}

func (p *TablePane[T, K]) SelectAll() {
	p.table.SelectAll()
}

func (p *TablePane[T, K]) ClearSelection() {
	p.table.ClearSelection()
}

func (p *TablePane[T, K]) SelectedCount() int {
	return p.table.SelectedCount()
}

// CycleSort moves the sort to the next sortable column, wrapping
// around. A fresh column starts descending; revisiting the current
// column is done with FlipSort instead.
func (p *TablePane[T, K]) CycleSort() {
	fields := p.sortFields()
	if len(fields) == 0 {
		return
	}
	current := p.table.SortField()
	next := fields[0]
	for i, field := range fields {
		if field == current {
			next = fields[(i+1)%len(fields)]
			break
		}
	}
	p.table.RequestSort(next)
	p.clampCursor()
}

// FlipSort toggles the direction of the current sort column.
func (p *TablePane[T, K]) FlipSort() {
	if field := p.table.SortField(); field != "" {
		p.table.RequestSort(field)
		p.clampCursor()
	}
}

func (p *TablePane[T, K]) NextPage() {
	p.table.SetPage(p.table.Page() + 1)
	p.cursor = 0
}

func (p *TablePane[T, K]) PrevPage() {
	p.table.SetPage(p.table.Page() - 1)
	p.cursor = 0
}

// CyclePageSize steps to the next allowed page size, wrapping around.
func (p *TablePane[T, K]) CyclePageSize() {
	sizes := tablestate.PageSizes
	next := sizes[0]
	for i, size := range sizes {
		if size == p.table.PageSize() {
			next = sizes[(i+1)%len(sizes)]
			break
		}
	}
	p.table.SetPageSize(next)
	p.cursor = 0
}

func (p *TablePane[T, K]) ApplyFilter(field, value string) {
	p.table.ApplyFilter(field, value)
	p.table.SetPage(0)
	p.cursor = 0
}

func (p *TablePane[T, K]) ClearFilter() {
	p.table.ClearFilter()
	p.cursor = 0
}

// FilterFields lists the column keys a filter prompt may target.
func (p *TablePane[T, K]) FilterFields() []string {
	return p.sortFields()
}

// StatusLine summarizes pagination, sort and selection for the footer.
func (p *TablePane[T, K]) StatusLine() string {
	arrow := "↓"
	if p.table.SortDirection() == tablestate.Ascending {
		arrow = "↑"
	}
	return fmt.Sprintf("page %d/%d · size %d · sort %s%s · %d/%d rows · %d selected",
		p.table.Page()+1, p.table.PageCount(), p.table.PageSize(),
		p.table.SortField(), arrow,
		p.table.Len(), p.table.TotalLen(), p.table.SelectedCount())
}

// View renders the header, the current page with selection markers and
// the expanded detail, and the trailing padding rows.
func (p *TablePane[T, K]) View(theme Theme, width int) string {
	headerStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	selected := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	var b strings.Builder

	cells := make([]string, 0, len(p.columns)+1)
	cells = append(cells, clip("", 4))
	for _, column := range p.columns {
		title := column.Title
		if column.Field != "" && column.Field == p.table.SortField() {
			if p.table.SortDirection() == tablestate.Ascending {
				title += " ↑"
			} else {
				title += " ↓"
			}
		}
		cells = append(cells, clip(title, column.Width))
	}
	b.WriteString(headerStyle.Render(strings.Join(cells, " ")))
	b.WriteString("\n")

	for i, record := range p.table.VisibleRows() {
		marker := "[ ]"
		if p.table.IsSelected(record) {
			marker = "[x]"
		}

		cells = cells[:0]
		cells = append(cells, clip(marker, 4))
		for _, column := range p.columns {
			cell := clip(column.Render(record), column.Width)
			if column.Color != nil && i != p.cursor {
				cell = lipgloss.NewStyle().Foreground(column.Color(theme, record)).Render(cell)
			}
			cells = append(cells, cell)
		}
		row := strings.Join(cells, " ")
		if i == p.cursor {
			row = selected.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")

		if p.table.IsExpanded(record) {
			for _, line := range p.detail(record) {
				b.WriteString(faint.Render("      " + line))
				b.WriteString("\n")
			}
		}
	}

	for i := 0; i < p.table.PaddingRows(); i++ {
		b.WriteString(faint.Render("~"))
		b.WriteString("\n")
	}

	return b.String()
}

func (p *TablePane[T, K]) sortFields() []string {
	fields := make([]string, 0, len(p.columns))
	for _, column := range p.columns {
		if column.Field != "" {
			fields = append(fields, column.Field)
		}
	}
	return fields
}

func (p *TablePane[T, K]) clampCursor() {
	if rows := len(p.table.VisibleRows()); p.cursor >= rows {
		p.cursor = 0
	}
}

// clip pads or truncates a cell to the column width.
func clip(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width > 1 {
			return string(runes[:width-1]) + "…"
		}
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
