package tablestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urepair/console/internal/model"
)

func issueTable() *Table[model.Issue, int] {
	return New(Config[model.Issue, int]{
		ID:               func(i model.Issue) int { return i.ID },
		Rules:            priorityRules(),
		Fields:           issueFields(),
		DefaultSortField: "id",
		DefaultSortDir:   Ascending,
	})
}

func TestLoadClearsSelectionAndExpand(t *testing.T) {
	tbl := issueTable()
	tbl.Load(storeIssues())

	tbl.ToggleRow(storeIssues()[0])
	tbl.ToggleRow(storeIssues()[1])
	require.Equal(t, 2, tbl.SelectedCount())

	// The reload after any mutation replaces records wholesale; no
	// identifier from the previous load may survive.
	tbl.Load(storeIssues())
	assert.Zero(t, tbl.SelectedCount())
	_, open := tbl.Expanded()
	assert.False(t, open)
	assert.Zero(t, tbl.Page())
}

func TestToggleRowUpdatesSelectionAndExpandTogether(t *testing.T) {
	tbl := issueTable()
	tbl.Load(storeIssues())
	row := storeIssues()[0]

	tbl.ToggleRow(row)
	assert.True(t, tbl.IsSelected(row))
	id, open := tbl.Expanded()
	require.True(t, open)
	assert.Equal(t, 1, id)

	// The same action drives both, but they are independent state:
	// toggling again deselects and collapses.
	tbl.ToggleRow(row)
	assert.False(t, tbl.IsSelected(row))
	_, open = tbl.Expanded()
	assert.False(t, open)
}

func TestSelectionSurvivesSortFilterAndPaging(t *testing.T) {
	tbl := issueTable()
	tbl.Load(storeIssues())
	row := storeIssues()[3]

	tbl.ToggleRow(row)
	tbl.RequestSort("priority")
	tbl.ApplyFilter("equipmentId", "1")
	tbl.SetPage(1)

	assert.True(t, tbl.IsSelected(row))
}

func TestSelectAllCoversFilteredRows(t *testing.T) {
	tbl := issueTable()
	tbl.Load(storeIssues())

	tbl.ApplyFilter("equipmentId", "1")
	tbl.SelectAll()
	assert.Equal(t, []int{1, 3}, tbl.SelectedIDs())
}

func TestSelectedReturnsRecordsInSelectionOrder(t *testing.T) {
	tbl := issueTable()
	issues := storeIssues()
	tbl.Load(issues)

	tbl.ToggleRow(issues[2])
	tbl.ToggleRow(issues[0])

	selected := tbl.Selected()
	require.Len(t, selected, 2)
	assert.Equal(t, 3, selected[0].ID)
	assert.Equal(t, 1, selected[1].ID)
}

func TestVisibleRowsAreSliceOfSortedFilteredList(t *testing.T) {
	tbl := issueTable()

	issues := make([]model.Issue, 0, 30)
	for i := 1; i <= 30; i++ {
		eq := 1
		if i%3 == 0 {
			eq = 2
		}
		issues = append(issues, model.Issue{ID: i, EquipmentID: eq})
	}
	tbl.Load(issues)

	tbl.ApplyFilter("equipmentId", "2")
	require.Equal(t, 10, tbl.Len())

	rows := tbl.VisibleRows()
	require.Len(t, rows, 10)
	for _, row := range rows {
		assert.Equal(t, 2, row.EquipmentID)
	}
}
