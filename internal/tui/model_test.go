package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urepair/console/internal/apitest"
	"github.com/urepair/console/internal/client"
	"github.com/urepair/console/internal/config"
	"github.com/urepair/console/internal/model"
	"github.com/urepair/console/internal/service/auth"
	"github.com/urepair/console/internal/service/directory"
	"github.com/urepair/console/internal/service/equipment"
	"github.com/urepair/console/internal/service/issue"
	"github.com/urepair/console/internal/service/user"
	"github.com/urepair/console/pkg/logger"
	"github.com/urepair/console/pkg/metrics"
)

func newTestModel(t *testing.T) (Model, *apitest.Server) {
	t.Helper()
	server := apitest.New()
	t.Cleanup(server.Close)

	c, err := client.New(config.APIConfig{
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
		RateLimit:      1000,
		RateBurst:      100,
	}, logger.Discard(), metrics.New("test"))
	require.NoError(t, err)

	log := logger.Discard()
	return New(Deps{
		Issues:    issue.NewService(c, log),
		Equipment: equipment.NewService(c, log),
		Users:     user.NewService(c, log),
		Directory: directory.NewService(c, config.DirectoryConfig{}, log),
		Auth:      auth.NewService(c, log),
		Logger:    log,
	}), server
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func sampleIssues() []model.Issue {
	return []model.Issue{
		{ID: 1, EquipmentID: 5, Status: model.StatusNew, Priority: model.PriorityLow, Description: "a",
			DateReported: &model.Date{Year: 2026, Month: 1, Day: 1}},
		{ID: 2, EquipmentID: 5, Status: model.StatusResolved, Priority: model.PriorityHigh, Description: "b",
			DateReported: &model.Date{Year: 2026, Month: 2, Day: 1}},
		{ID: 3, EquipmentID: 7, Status: model.StatusNew, Priority: model.PriorityUrgent, Description: "c",
			DateReported: &model.Date{Year: 2026, Month: 3, Day: 1}},
	}
}

func TestTabSwitching(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, keyPress('2'))
	assert.Equal(t, TabEquipment, m.activeTab)

	m = update(t, m, keyPress('3'))
	assert.Equal(t, TabUsers, m.activeTab)

	m = update(t, m, keyPress('1'))
	assert.Equal(t, TabIssues, m.activeTab)
}

func TestLoadedIssuesAreVisibleNewestFirst(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, issuesMsg{issues: sampleIssues()})

	rows := m.issues.Table().VisibleRows()
	require.Len(t, rows, 3)
	assert.Equal(t, 3, rows[0].ID)
	assert.Equal(t, 1, rows[2].ID)
}

func TestSpaceTogglesSelectionAndDetail(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, issuesMsg{issues: sampleIssues()})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	assert.Equal(t, 1, m.issues.SelectedCount())

	cursor, ok := m.issues.CursorRecord()
	require.True(t, ok)
	assert.True(t, m.issues.Table().IsExpanded(cursor))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	assert.Equal(t, 0, m.issues.SelectedCount())
}

func TestReloadClearsSelection(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, issuesMsg{issues: sampleIssues()})
	m = update(t, m, keyPress('a'))
	assert.Equal(t, 3, m.issues.SelectedCount())

	m = update(t, m, issuesMsg{issues: sampleIssues()})
	assert.Equal(t, 0, m.issues.SelectedCount())
}

func TestFilterDialogRoundTrip(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, issuesMsg{issues: sampleIssues()})

	m = update(t, m, keyPress('/'))
	require.NotNil(t, m.dialog)
	m.dialog.inputs[0].SetValue("status")
	m.dialog.inputs[1].SetValue("NEW")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, m.dialog)
	assert.Equal(t, 2, m.issues.Table().Len())

	m = update(t, m, keyPress('\\'))
	assert.Equal(t, 3, m.issues.Table().Len())
}

func TestMergeNeedsTwoSelections(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, issuesMsg{issues: sampleIssues()})

	m = update(t, m, keyPress('m'))
	assert.Nil(t, m.dialog)
	assert.NotEmpty(t, m.status)
}

func TestEscapeDismissesDialog(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, keyPress('+'))
	require.NotNil(t, m.dialog)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.dialog)
}

func TestViewRendersWithoutData(t *testing.T) {
	m, _ := newTestModel(t)
	assert.NotEmpty(t, m.View())

	m = update(t, m, issuesMsg{issues: sampleIssues()})
	view := m.View()
	assert.Contains(t, view, "Issues")
}
