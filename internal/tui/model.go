// Package tui is the staff console: three entity tabs over the
// table-state engine, with modal dialogs for every mutation. Service
// calls run asynchronously as bubbletea commands; each mutation
// message carries the reloaded record list, which replaces the tab's
// data and thereby clears its selection.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/urepair/console/internal/model"
	"github.com/urepair/console/internal/service/auth"
	"github.com/urepair/console/internal/service/directory"
	"github.com/urepair/console/internal/service/equipment"
	"github.com/urepair/console/internal/service/issue"
	"github.com/urepair/console/internal/service/user"
	"github.com/urepair/console/pkg/logger"
)

// Tab identifies which entity table is active.
type Tab int

const (
	TabIssues Tab = iota
	TabEquipment
	TabUsers
)

// Deps carries the services the console drives.
type Deps struct {
	Issues    *issue.Service
	Equipment *equipment.Service
	Users     *user.Service
	Directory *directory.Service
	Auth      *auth.Service
	Logger    *logger.Logger
}

// issuesMsg delivers a fresh issue list, with any mutation error that
// occurred alongside the reload.
type issuesMsg struct {
	issues []model.Issue
	err    error
}

type equipmentMsg struct {
	units []model.Equipment
	err   error
}

type usersMsg struct {
	users []model.User
	err   error
}

// optionsMsg delivers the assignee directory for the issue edit
// dialog.
type optionsMsg struct {
	options []directory.Option
	err     error
}

// Model is the top-level bubbletea model for the console.
type Model struct {
	deps Deps

	theme Theme
	keys  KeyMap

	width  int
	height int

	activeTab Tab
	issues    *TablePane[model.Issue, int]
	equipment *TablePane[model.Equipment, int]
	users     *TablePane[model.User, string]

	dialog *Dialog
	// Identifier captured when an edit dialog opens; the cursor may
	// move before the dialog completes.
	editIssueID     int
	editEquipmentID int
	editUserEmail   string

	// busy disables mutations while one is in flight. In-flight
	// requests are never cancelled.
	busy bool

	status  string
	isError bool

	assignees []directory.Option
}

func New(deps Deps) Model {
	return Model{
		deps:      deps,
		theme:     DefaultTheme,
		keys:      DefaultKeyMap,
		issues:    IssuePane(),
		equipment: EquipmentPane(),
		users:     UserPane(),
	}
}

// Init implements tea.Model: fetch all three tables up front.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadIssues(), m.loadEquipment(), m.loadUsers(), m.loadOptions())
}

func (m Model) activePane() pane {
	switch m.activeTab {
	case TabEquipment:
		return m.equipment
	case TabUsers:
		return m.users
	default:
		return m.issues
	}
}

// Update implements tea.Model.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		return m, nil

	case issuesMsg:
		m.busy = false
		if message.issues != nil {
			m.issues.Load(message.issues)
		}
		m.setResult(message.err, fmt.Sprintf("%d issues", len(message.issues)))
		return m, nil

	case equipmentMsg:
		m.busy = false
		if message.units != nil {
			m.equipment.Load(message.units)
		}
		m.setResult(message.err, fmt.Sprintf("%d equipment", len(message.units)))
		return m, nil

	case usersMsg:
		m.busy = false
		if message.users != nil {
			m.users.Load(message.users)
		}
		m.setResult(message.err, fmt.Sprintf("%d users", len(message.users)))
		return m, nil

	case optionsMsg:
		if message.err == nil {
			m.assignees = message.options
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(message)
	}

	return m, nil
}

func (m Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialog != nil {
		done, canceled, cmd := m.dialog.Update(message)
		if canceled {
			m.dialog = nil
			return m, nil
		}
		if done {
			return m.completeDialog()
		}
		return m, cmd
	}

	switch {
	case key.Matches(message, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(message, m.keys.TabIssues):
		m.activeTab = TabIssues
	case key.Matches(message, m.keys.TabEquipment):
		m.activeTab = TabEquipment
	case key.Matches(message, m.keys.TabUsers):
		m.activeTab = TabUsers

	case key.Matches(message, m.keys.Up):
		m.activePane().MoveCursor(-1)
	case key.Matches(message, m.keys.Down):
		m.activePane().MoveCursor(1)

	case key.Matches(message, m.keys.Select):
		m.activePane().ToggleCursor()
	case key.Matches(message, m.keys.SelectAll):
		m.activePane().SelectAll()
	case key.Matches(message, m.keys.ClearSel):
		m.activePane().ClearSelection()

	case key.Matches(message, m.keys.Sort):
		m.activePane().CycleSort()
	case key.Matches(message, m.keys.SortFlip):
		m.activePane().FlipSort()

	case key.Matches(message, m.keys.NextPage):
		m.activePane().NextPage()
	case key.Matches(message, m.keys.PrevPage):
		m.activePane().PrevPage()
	case key.Matches(message, m.keys.PageSize):
		m.activePane().CyclePageSize()

	case key.Matches(message, m.keys.Filter):
		fields := strings.Join(m.activePane().FilterFields(), ", ")
		m.dialog = newDialog(dialogFilter, "Filter", []fieldSpec{
			{label: "field", placeholder: fields},
			{label: "value", placeholder: model.NullValue + " matches absent"},
		})
	case key.Matches(message, m.keys.ClearFilter):
		m.activePane().ClearFilter()

	case key.Matches(message, m.keys.Reload):
		return m, m.reloadActive()

	case key.Matches(message, m.keys.Add),
		key.Matches(message, m.keys.Edit),
		key.Matches(message, m.keys.Resolve),
		key.Matches(message, m.keys.Merge),
		key.Matches(message, m.keys.Delete):
		if m.busy {
			m.note("busy, hang on")
			return m, nil
		}
		return m.openMutationDialog(message)
	}

	return m, nil
}

func (m Model) openMutationDialog(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, m.keys.Add):
		switch m.activeTab {
		case TabIssues:
			m.dialog = newDialog(dialogSubmitIssue, "New ticket", []fieldSpec{
				{label: "equipment id", placeholder: "numeric id"},
				{label: "priority", placeholder: "LOW MEDIUM HIGH URGENT", initial: string(model.PriorityMedium)},
				{label: "description", placeholder: "what is broken"},
			})
		case TabEquipment:
			m.dialog = newDialog(dialogAddEquipment, "New equipment", []fieldSpec{
				{label: "name"},
				{label: "type", placeholder: "WASHER, DRYER, ..."},
				{label: "manufacturer"},
				{label: "model"},
				{label: "serial"},
				{label: "location"},
				{label: "installed", placeholder: "M/D/YYYY"},
			})
		case TabUsers:
			m.dialog = newDialog(dialogAddUser, "New user", []fieldSpec{
				{label: "first name"},
				{label: "last name"},
				{label: "email"},
				{label: "role", placeholder: "STAFF or STUDENT", initial: string(model.RoleStudent)},
			})
		}

	case key.Matches(message, m.keys.Edit):
		switch m.activeTab {
		case TabIssues:
			record, ok := m.issues.CursorRecord()
			if !ok {
				m.note("no row under cursor")
				return m, nil
			}
			m.editIssueID = record.ID
			m.dialog = newDialog(dialogEditIssue, fmt.Sprintf("Edit issue %d", record.ID), []fieldSpec{
				{label: "assignee", placeholder: m.assigneeHint(), initial: deref(record.AssignedTo)},
				{label: "notes", initial: deref(record.Notes)},
				{label: "status", placeholder: "NEW IN_PROGRESS RESOLVED CLOSED", initial: string(record.Status)},
				{label: "priority", placeholder: "LOW MEDIUM HIGH URGENT", initial: string(record.Priority)},
			})
			return m, m.loadOptions()
		case TabEquipment:
			record, ok := m.equipment.CursorRecord()
			if !ok {
				m.note("no row under cursor")
				return m, nil
			}
			m.editEquipmentID = record.ID
			m.dialog = newDialog(dialogEditEquipment, fmt.Sprintf("Edit %s", record.Name), []fieldSpec{
				{label: "name", initial: record.Name},
				{label: "location", initial: record.Location},
				{label: "maintained", placeholder: "M/D/YYYY", initial: record.LastMaintenanceDate.Display()},
			})
		case TabUsers:
			record, ok := m.users.CursorRecord()
			if !ok {
				m.note("no row under cursor")
				return m, nil
			}
			m.editUserEmail = record.Email
			m.dialog = newDialog(dialogEditUser, "Edit "+record.Email, []fieldSpec{
				{label: "first name", initial: record.FirstName},
				{label: "last name", initial: record.LastName},
				{label: "role", placeholder: "STAFF or STUDENT", initial: string(record.Role)},
			})
		}

	case key.Matches(message, m.keys.Resolve):
		if m.activeTab != TabIssues {
			return m, nil
		}
		if m.issues.SelectedCount() == 0 {
			m.note("select issues to resolve")
			return m, nil
		}
		m.dialog = newDialog(dialogResolve, fmt.Sprintf("Resolve %d issues", m.issues.SelectedCount()), []fieldSpec{
			{label: "details", placeholder: "what was done"},
		})

	case key.Matches(message, m.keys.Merge):
		if m.activeTab != TabIssues {
			return m, nil
		}
		count := m.issues.SelectedCount()
		if count < 2 {
			m.note("select at least 2 issues to merge")
			return m, nil
		}
		m.dialog = newConfirm(dialogMergeConfirm, "Merge",
			fmt.Sprintf("Merge %d issues into one? The sources are deleted.", count))

	case key.Matches(message, m.keys.Delete):
		count := m.activePane().SelectedCount()
		if count == 0 {
			m.note("nothing selected")
			return m, nil
		}
		m.dialog = newConfirm(dialogDeleteConfirm, "Delete",
			fmt.Sprintf("Delete %d selected rows?", count))
	}

	return m, nil
}

// completeDialog turns a submitted dialog into a service call.
func (m Model) completeDialog() (tea.Model, tea.Cmd) {
	dialog := m.dialog
	m.dialog = nil
	values := dialog.Values()

	switch dialog.kind {
	case dialogFilter:
		if values[1] == "" {
			m.activePane().ClearFilter()
		} else {
			m.activePane().ApplyFilter(values[0], values[1])
		}
		return m, nil

	case dialogSubmitIssue:
		equipmentID, err := strconv.Atoi(values[0])
		if err != nil {
			m.fail("equipment id must be a number")
			return m, nil
		}
		req := issue.SubmitRequest{
			EquipmentID: equipmentID,
			Priority:    model.Priority(strings.ToUpper(values[1])),
			Description: values[2],
		}
		m.busy = true
		return m, func() tea.Msg {
			issues, err := m.deps.Issues.Submit(context.Background(), req)
			return issuesMsg{issues, err}
		}

	case dialogEditIssue:
		id := m.editIssueID
		req := issue.EditRequest{
			AssignedTo: values[0],
			Notes:      values[1],
			Status:     model.Status(strings.ToUpper(values[2])),
			Priority:   model.Priority(strings.ToUpper(values[3])),
		}
		m.busy = true
		return m, func() tea.Msg {
			issues, err := m.deps.Issues.Edit(context.Background(), id, req)
			return issuesMsg{issues, err}
		}

	case dialogResolve:
		ids := m.issues.Table().SelectedIDs()
		details := values[0]
		m.busy = true
		return m, func() tea.Msg {
			issues, err := m.deps.Issues.Resolve(context.Background(), ids, details)
			return issuesMsg{issues, err}
		}

	case dialogMergeConfirm:
		ids := m.issues.Table().SelectedIDs()
		m.busy = true
		return m, func() tea.Msg {
			issues, err := m.deps.Issues.Merge(context.Background(), ids)
			return issuesMsg{issues, err}
		}

	case dialogDeleteConfirm:
		return m.dispatchDelete()

	case dialogAddEquipment:
		installed, err := parseDate(values[6])
		if err != nil {
			m.fail(err.Error())
			return m, nil
		}
		req := equipment.CreateRequest{
			Name:          values[0],
			EquipmentType: values[1],
			Manufacturer:  values[2],
			Model:         values[3],
			SerialNumber:  values[4],
			Location:      values[5],
			DateInstalled: installed,
		}
		m.busy = true
		return m, func() tea.Msg {
			units, err := m.deps.Equipment.Create(context.Background(), req)
			return equipmentMsg{units, err}
		}

	case dialogEditEquipment:
		id := m.editEquipmentID
		maintained, err := parseDate(values[2])
		if err != nil {
			m.fail(err.Error())
			return m, nil
		}
		req := equipment.EditRequest{
			Name:                values[0],
			Location:            values[1],
			LastMaintenanceDate: maintained,
		}
		m.busy = true
		return m, func() tea.Msg {
			units, err := m.deps.Equipment.Edit(context.Background(), id, req)
			return equipmentMsg{units, err}
		}

	case dialogAddUser:
		req := user.CreateRequest{
			FirstName: values[0],
			LastName:  values[1],
			Email:     values[2],
			Role:      model.Role(strings.ToUpper(values[3])),
		}
		m.busy = true
		return m, func() tea.Msg {
			users, err := m.deps.Users.Create(context.Background(), req)
			m.deps.Directory.Invalidate()
			return usersMsg{users, err}
		}

	case dialogEditUser:
		email := m.editUserEmail
		req := user.EditRequest{
			FirstName: values[0],
			LastName:  values[1],
			Role:      model.Role(strings.ToUpper(values[2])),
		}
		m.busy = true
		return m, func() tea.Msg {
			users, err := m.deps.Users.Edit(context.Background(), email, req)
			m.deps.Directory.Invalidate()
			return usersMsg{users, err}
		}
	}

	return m, nil
}

func (m Model) dispatchDelete() (tea.Model, tea.Cmd) {
	m.busy = true
	switch m.activeTab {
	case TabIssues:
		ids := m.issues.Table().SelectedIDs()
		return m, func() tea.Msg {
			issues, err := m.deps.Issues.Delete(context.Background(), ids)
			return issuesMsg{issues, err}
		}
	case TabEquipment:
		ids := m.equipment.Table().SelectedIDs()
		return m, func() tea.Msg {
			units, err := m.deps.Equipment.Delete(context.Background(), ids)
			return equipmentMsg{units, err}
		}
	default:
		emails := m.users.Table().SelectedIDs()
		return m, func() tea.Msg {
			users, err := m.deps.Users.Delete(context.Background(), emails)
			m.deps.Directory.Invalidate()
			return usersMsg{users, err}
		}
	}
}

func (m Model) loadIssues() tea.Cmd {
	return func() tea.Msg {
		issues, err := m.deps.Issues.List(context.Background())
		return issuesMsg{issues, err}
	}
}

func (m Model) loadEquipment() tea.Cmd {
	return func() tea.Msg {
		units, err := m.deps.Equipment.List(context.Background())
		return equipmentMsg{units, err}
	}
}

func (m Model) loadUsers() tea.Cmd {
	return func() tea.Msg {
		users, err := m.deps.Users.List(context.Background())
		return usersMsg{users, err}
	}
}

func (m Model) loadOptions() tea.Cmd {
	return func() tea.Msg {
		options, err := m.deps.Directory.Options(context.Background())
		return optionsMsg{options, err}
	}
}

func (m Model) reloadActive() tea.Cmd {
	switch m.activeTab {
	case TabEquipment:
		return m.loadEquipment()
	case TabUsers:
		return m.loadUsers()
	default:
		return m.loadIssues()
	}
}

func (m *Model) assigneeHint() string {
	if len(m.assignees) == 0 {
		return model.NullValue + " unassigns"
	}
	names := make([]string, 0, len(m.assignees))
	for _, option := range m.assignees {
		names = append(names, option.Email)
	}
	if len(names) > 4 {
		names = names[:4]
	}
	return strings.Join(names, " ")
}

func (m *Model) setResult(err error, okNote string) {
	if err != nil {
		m.fail(err.Error())
		return
	}
	m.note(okNote)
}

func (m *Model) note(text string) {
	m.status = text
	m.isError = false
}

func (m *Model) fail(text string) {
	m.status = text
	m.isError = true
}

// View implements tea.Model.
func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = 120
	}

	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")
	b.WriteString(m.activePane().View(m.theme, width))
	b.WriteString("\n")

	if m.dialog != nil {
		b.WriteString(m.dialog.View(m.theme, width))
		b.WriteString("\n")
	}

	b.WriteString(m.statusBar(width))
	return b.String()
}

func (m Model) tabBar() string {
	active := lipgloss.NewStyle().Foreground(m.theme.TabActive).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(m.theme.TabInactive)

	labels := []string{"1 Issues", "2 Equipment", "3 Users"}
	parts := make([]string, len(labels))
	for i, label := range labels {
		if Tab(i) == m.activeTab {
			parts[i] = active.Render("[" + label + "]")
		} else {
			parts[i] = inactive.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) statusBar(width int) string {
	line := m.activePane().StatusLine()
	if m.busy {
		line += " · working…"
	}
	if m.status != "" {
		style := lipgloss.NewStyle().Foreground(m.theme.FaintText)
		if m.isError {
			style = lipgloss.NewStyle().Foreground(m.theme.ErrorText)
		}
		line += " · " + style.Render(m.status)
	}
	help := lipgloss.NewStyle().Foreground(m.theme.HelpText).Render(
		"space select · a all · s/o sort · ←/→ page · z size · / filter · + add · e edit · r resolve · m merge · x delete · q quit")
	return clipLine(line, width) + "\n" + help
}

// clipLine truncates a status line without padding it.
func clipLine(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return s[:width]
}

// parseDate reads an M/D/YYYY form field. Empty input means no date.
func parseDate(s string) (*model.Date, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return nil, fmt.Errorf("date must be M/D/YYYY, got %q", s)
	}
	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, fmt.Errorf("date must be M/D/YYYY, got %q", s)
	}
	return &model.Date{Year: year, Month: month, Day: day}, nil
}
