package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dialogKind identifies which action a completed dialog feeds.
type dialogKind int

const (
	dialogSubmitIssue dialogKind = iota
	dialogEditIssue
	dialogResolve
	dialogMergeConfirm
	dialogDeleteConfirm
	dialogAddEquipment
	dialogEditEquipment
	dialogAddUser
	dialogEditUser
	dialogFilter
)

// fieldSpec declares one input line of a form dialog.
type fieldSpec struct {
	label       string
	placeholder string
	initial     string
}

// Dialog is a modal form over the active tab. Confirm-style dialogs
// carry no inputs; enter confirms, escape cancels. Form dialogs cycle
// focus with tab and enter, and submit on enter from the last field.
type Dialog struct {
	kind   dialogKind
	title  string
	prompt string
	labels []string
	inputs []textinput.Model
	focus  int
}

func newDialog(kind dialogKind, title string, fields []fieldSpec) *Dialog {
	d := &Dialog{kind: kind, title: title}
	for i, field := range fields {
		input := textinput.New()
		input.Placeholder = field.placeholder
		input.SetValue(field.initial)
		input.CharLimit = 200
		if i == 0 {
			input.Focus()
		}
		d.labels = append(d.labels, field.label)
		d.inputs = append(d.inputs, input)
	}
	return d
}

func newConfirm(kind dialogKind, title, prompt string) *Dialog {
	return &Dialog{kind: kind, title: title, prompt: prompt}
}

// Values returns the entered field values in declaration order.
func (d *Dialog) Values() []string {
	values := make([]string, len(d.inputs))
	for i, input := range d.inputs {
		values[i] = strings.TrimSpace(input.Value())
	}
	return values
}

// Update routes one key event into the dialog. done reports that the
// dialog was submitted; canceled that it was dismissed.
func (d *Dialog) Update(message tea.KeyMsg) (done, canceled bool, cmd tea.Cmd) {
	switch message.Type {
	case tea.KeyEsc:
		return false, true, nil
	case tea.KeyEnter:
		if len(d.inputs) == 0 || d.focus == len(d.inputs)-1 {
			return true, false, nil
		}
		d.setFocus(d.focus + 1)
		return false, false, nil
	case tea.KeyTab:
		if len(d.inputs) > 0 {
			d.setFocus((d.focus + 1) % len(d.inputs))
		}
		return false, false, nil
	case tea.KeyShiftTab:
		if len(d.inputs) > 0 {
			d.setFocus((d.focus - 1 + len(d.inputs)) % len(d.inputs))
		}
		return false, false, nil
	}

	if len(d.inputs) > 0 {
		d.inputs[d.focus], cmd = d.inputs[d.focus].Update(message)
	}
	return false, false, cmd
}

func (d *Dialog) setFocus(index int) {
	d.inputs[d.focus].Blur()
	d.focus = index
	d.inputs[d.focus].Focus()
}

// View renders the dialog in a bordered box.
func (d *Dialog) View(theme Theme, width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render(d.title))
	b.WriteString("\n")
	if d.prompt != "" {
		b.WriteString(d.prompt)
		b.WriteString("\n")
	}
	for i, input := range d.inputs {
		b.WriteString(labelStyle.Render(clip(d.labels[i], 14)))
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	hint := "enter confirm · esc cancel"
	if len(d.inputs) > 1 {
		hint = "tab next field · enter confirm · esc cancel"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).Render(hint))

	return box.MaxWidth(width).Render(b.String())
}
