package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the staff console.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	TabIssues    key.Binding
	TabEquipment key.Binding
	TabUsers     key.Binding

	Select    key.Binding // Toggle the cursor row's selection and detail view.
	SelectAll key.Binding
	ClearSel  key.Binding

	Sort     key.Binding // Move the sort to the next sortable column.
	SortFlip key.Binding // Toggle the current sort direction.

	NextPage key.Binding
	PrevPage key.Binding
	PageSize key.Binding // Cycle through the allowed page sizes.

	Filter      key.Binding
	ClearFilter key.Binding

	Add     key.Binding
	Edit    key.Binding
	Resolve key.Binding // Issues tab only.
	Merge   key.Binding // Issues tab only.
	Delete  key.Binding
	Reload  key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// alongside arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	TabIssues: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "issues"),
	),
	TabEquipment: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "equipment"),
	),
	TabUsers: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "users"),
	),
	Select: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "select"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select all"),
	),
	ClearSel: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("A", "clear selection"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort next column"),
	),
	SortFlip: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "flip sort"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "n"),
		key.WithHelp("→/n", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "p"),
		key.WithHelp("←/p", "prev page"),
	),
	PageSize: key.NewBinding(
		key.WithKeys("z"),
		key.WithHelp("z", "page size"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("\\"),
		key.WithHelp("\\", "clear filter"),
	),
	Add: key.NewBinding(
		key.WithKeys("+"),
		key.WithHelp("+", "add"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Resolve: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "resolve"),
	),
	Merge: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "merge"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete"),
	),
	Reload: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
