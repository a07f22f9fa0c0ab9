package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/urepair/console/internal/model"
	"github.com/urepair/console/internal/tablestate"
)

// IssuePane builds the ticket tab: newest reports first, selection
// keyed by issue id.
func IssuePane() *TablePane[model.Issue, int] {
	table := tablestate.New(tablestate.Config[model.Issue, int]{
		ID: func(i model.Issue) int { return i.ID },
		Rules: map[string]tablestate.Rule[model.Issue]{
			"id":           tablestate.Numeric(func(i model.Issue) int { return i.ID }),
			"equipmentId":  tablestate.Numeric(func(i model.Issue) int { return i.EquipmentID }),
			"status":       tablestate.Enum(func(i model.Issue) model.Status { return i.Status }, model.StatusOrder),
			"priority":     tablestate.Enum(func(i model.Issue) model.Priority { return i.Priority }, model.PriorityOrder),
			"dateReported": tablestate.Chronological(func(i model.Issue) *model.Date { return i.DateReported }, tablestate.NullsFirst),
			"dateResolved": tablestate.Chronological(func(i model.Issue) *model.Date { return i.DateResolved }, tablestate.NullsFirst),
			"assignedTo":   tablestate.Alphabetic(func(i model.Issue) string { return deref(i.AssignedTo) }),
		},
		Fields: map[string]tablestate.FieldValue[model.Issue]{
			"id":           tablestate.Field(func(i model.Issue) int { return i.ID }),
			"equipmentId":  tablestate.Field(func(i model.Issue) int { return i.EquipmentID }),
			"status":       tablestate.Field(func(i model.Issue) model.Status { return i.Status }),
			"priority":     tablestate.Field(func(i model.Issue) model.Priority { return i.Priority }),
			"assignedTo":   tablestate.FieldPtr(func(i model.Issue) *string { return i.AssignedTo }),
			"dateResolved": tablestate.FieldPtr(func(i model.Issue) *model.Date { return i.DateResolved }),
		},
		DefaultSortField: "dateReported",
		DefaultSortDir:   tablestate.Descending,
	})

	columns := []Column[model.Issue]{
		{Title: "ID", Width: 5, Field: "id",
			Render: func(i model.Issue) string { return fmt.Sprint(i.ID) }},
		{Title: "Equip", Width: 6, Field: "equipmentId",
			Render: func(i model.Issue) string { return fmt.Sprint(i.EquipmentID) }},
		{Title: "Status", Width: 12, Field: "status",
			Render: func(i model.Issue) string { return string(i.Status) },
			Color:  func(t Theme, i model.Issue) lipgloss.Color { return t.StatusColor(i.Status) }},
		{Title: "Priority", Width: 9, Field: "priority",
			Render: func(i model.Issue) string { return string(i.Priority) },
			Color:  func(t Theme, i model.Issue) lipgloss.Color { return t.PriorityColor(i.Priority) }},
		{Title: "Reported", Width: 11, Field: "dateReported",
			Render: func(i model.Issue) string { return i.DateReported.Display() }},
		{Title: "Assignee", Width: 22, Field: "assignedTo",
			Render: func(i model.Issue) string { return deref(i.AssignedTo) }},
		{Title: "Description", Width: 36,
			Render: func(i model.Issue) string { return i.Description }},
	}

	detail := func(i model.Issue) []string {
		lines := []string{"description: " + i.Description}
		if i.Notes != nil {
			lines = append(lines, "notes: "+*i.Notes)
		}
		if i.DateResolved != nil {
			lines = append(lines, "resolved: "+i.DateResolved.Display())
		}
		if i.ResolutionDetails != nil {
			lines = append(lines, "resolution: "+*i.ResolutionDetails)
		}
		return lines
	}

	return NewTablePane(table, columns, detail)
}

// EquipmentPane builds the equipment tab, sorted by id ascending.
func EquipmentPane() *TablePane[model.Equipment, int] {
	table := tablestate.New(tablestate.Config[model.Equipment, int]{
		ID: func(e model.Equipment) int { return e.ID },
		Rules: map[string]tablestate.Rule[model.Equipment]{
			"id":                  tablestate.Numeric(func(e model.Equipment) int { return e.ID }),
			"name":                tablestate.Alphabetic(func(e model.Equipment) string { return e.Name }),
			"equipmentType":       tablestate.Alphabetic(func(e model.Equipment) string { return e.EquipmentType }),
			"location":            tablestate.Alphabetic(func(e model.Equipment) string { return e.Location }),
			"dateInstalled":       tablestate.Chronological(func(e model.Equipment) *model.Date { return e.DateInstalled }, tablestate.NullsFirst),
			"lastMaintenanceDate": tablestate.Chronological(func(e model.Equipment) *model.Date { return e.LastMaintenanceDate }, tablestate.NullsFirst),
		},
		Fields: map[string]tablestate.FieldValue[model.Equipment]{
			"id":            tablestate.Field(func(e model.Equipment) int { return e.ID }),
			"name":          tablestate.Field(func(e model.Equipment) string { return e.Name }),
			"equipmentType": tablestate.Field(func(e model.Equipment) string { return e.EquipmentType }),
			"location":      tablestate.Field(func(e model.Equipment) string { return e.Location }),
		},
		DefaultSortField: "id",
		DefaultSortDir:   tablestate.Ascending,
	})

	columns := []Column[model.Equipment]{
		{Title: "ID", Width: 5, Field: "id",
			Render: func(e model.Equipment) string { return fmt.Sprint(e.ID) }},
		{Title: "Name", Width: 20, Field: "name",
			Render: func(e model.Equipment) string { return e.Name }},
		{Title: "Type", Width: 12, Field: "equipmentType",
			Render: func(e model.Equipment) string { return e.EquipmentType }},
		{Title: "Location", Width: 22, Field: "location",
			Render: func(e model.Equipment) string { return e.Location }},
		{Title: "Installed", Width: 11, Field: "dateInstalled",
			Render: func(e model.Equipment) string { return e.DateInstalled.Display() }},
		{Title: "Maintained", Width: 11, Field: "lastMaintenanceDate",
			Render: func(e model.Equipment) string { return e.LastMaintenanceDate.Display() }},
	}

	detail := func(e model.Equipment) []string {
		return []string{
			fmt.Sprintf("manufacturer: %s  model: %s  serial: %s",
				e.Manufacturer, e.Model, e.SerialNumber),
		}
	}

	return NewTablePane(table, columns, detail)
}

// UserPane builds the accounts tab, keyed and identified by email.
func UserPane() *TablePane[model.User, string] {
	table := tablestate.New(tablestate.Config[model.User, string]{
		ID: func(u model.User) string { return u.Email },
		Rules: map[string]tablestate.Rule[model.User]{
			"firstName": tablestate.Alphabetic(func(u model.User) string { return u.FirstName }),
			"lastName":  tablestate.Alphabetic(func(u model.User) string { return u.LastName }),
			"email":     tablestate.Alphabetic(func(u model.User) string { return u.Email }),
			"role":      tablestate.Enum(func(u model.User) model.Role { return u.Role }, model.RoleOrder),
		},
		Fields: map[string]tablestate.FieldValue[model.User]{
			"firstName": tablestate.Field(func(u model.User) string { return u.FirstName }),
			"lastName":  tablestate.Field(func(u model.User) string { return u.LastName }),
			"email":     tablestate.Field(func(u model.User) string { return u.Email }),
			"role":      tablestate.Field(func(u model.User) model.Role { return u.Role }),
		},
		DefaultSortField: "lastName",
		DefaultSortDir:   tablestate.Descending,
	})

	columns := []Column[model.User]{
		{Title: "Last", Width: 16, Field: "lastName",
			Render: func(u model.User) string { return u.LastName }},
		{Title: "First", Width: 14, Field: "firstName",
			Render: func(u model.User) string { return u.FirstName }},
		{Title: "Email", Width: 28, Field: "email",
			Render: func(u model.User) string { return u.Email }},
		{Title: "Role", Width: 8, Field: "role",
			Render: func(u model.User) string { return string(u.Role) }},
	}

	detail := func(u model.User) []string {
		return []string{fmt.Sprintf("%s %s <%s> %s", u.FirstName, u.LastName, u.Email, u.Role)}
	}

	return NewTablePane(table, columns, detail)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
