package model

// Issue status constants, least to greatest in sort rank.
type Status string

const (
	StatusClosed     Status = "CLOSED"
	StatusResolved   Status = "RESOLVED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusNew        Status = "NEW"
)

// Issue priority constants, least to greatest in sort rank.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// User role constants, least to greatest in sort rank.
type Role string

const (
	RoleStaff   Role = "STAFF"
	RoleStudent Role = "STUDENT"
)

// Declared orderings shared by every consumer. Sorting by an enum
// field compares positions in these slices, never the raw strings.
var (
	StatusOrder   = []Status{StatusClosed, StatusResolved, StatusInProgress, StatusNew}
	PriorityOrder = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
	RoleOrder     = []Role{RoleStaff, RoleStudent}
)

// Rank returns the position of value in order, or -1 when the value
// is not declared. Undeclared values rank below every declared one.
func Rank[E ~string](order []E, value E) int {
	for i, v := range order {
		if v == value {
			return i
		}
	}
	return -1
}

// MaxPriority returns the highest-ranked priority among values.
func MaxPriority(values []Priority) Priority {
	max := values[0]
	for _, v := range values[1:] {
		if Rank(PriorityOrder, v) > Rank(PriorityOrder, max) {
			max = v
		}
	}
	return max
}
