package model

// NullValue is the sentinel the UI sends for "field is absent". It is
// distinct from an empty string: filtering assignees by NullValue
// selects issues whose assignedTo is literally null.
const NullValue = "NULL"

// PlaceholderID is sent on create requests; the backend assigns the
// real identifier and ignores this one.
const PlaceholderID = 1

// Issue represents one repair ticket.
type Issue struct {
	ID                int      `json:"id"`
	EquipmentID       int      `json:"equipmentId"`
	Status            Status   `json:"status"`
	Priority          Priority `json:"priority"`
	Description       string   `json:"description"`
	DateReported      *Date    `json:"dateReported"`
	DateResolved      *Date    `json:"dateResolved"`
	ResolutionDetails *string  `json:"resolutionDetails"`
	Notes             *string  `json:"notes"`
	AssignedTo        *string  `json:"assignedTo"`
}

// IssueTable is the wrapper the list endpoint returns.
type IssueTable struct {
	Issues []Issue `json:"issue_table"`
}
