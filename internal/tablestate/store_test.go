package tablestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urepair/console/internal/model"
)

func issueFields() map[string]FieldValue[model.Issue] {
	return map[string]FieldValue[model.Issue]{
		"equipmentId": Field(func(i model.Issue) int { return i.EquipmentID }),
		"status":      Field(func(i model.Issue) model.Status { return i.Status }),
		"assignedTo":  FieldPtr(func(i model.Issue) *string { return i.AssignedTo }),
	}
}

func assignee(email string) *string { return &email }

func storeIssues() []model.Issue {
	return []model.Issue{
		{ID: 1, EquipmentID: 1, Status: model.StatusNew, AssignedTo: assignee("a@x.edu")},
		{ID: 2, EquipmentID: 2, Status: model.StatusNew},
		{ID: 3, EquipmentID: 1, Status: model.StatusClosed},
		{ID: 4, EquipmentID: 3, Status: model.StatusNew, AssignedTo: assignee("b@x.edu")},
	}
}

func TestFilterLooseEquality(t *testing.T) {
	s := NewStore(issueFields())
	s.Load(storeIssues())

	// The filter value arrives as a string; it must match the
	// numeric field value 1.
	s.ApplyFilter("equipmentId", "1")
	require.Len(t, s.Rows(), 2)
	assert.Equal(t, 1, s.Rows()[0].ID)
	assert.Equal(t, 3, s.Rows()[1].ID)
}

func TestFilterNullSentinel(t *testing.T) {
	s := NewStore(issueFields())
	s.Load(storeIssues())

	s.ApplyFilter("assignedTo", model.NullValue)
	require.Len(t, s.Rows(), 2)
	assert.Equal(t, 2, s.Rows()[0].ID)
	assert.Equal(t, 3, s.Rows()[1].ID)
}

func TestFilterRoundTrip(t *testing.T) {
	s := NewStore(issueFields())
	issues := storeIssues()
	s.Load(issues)

	s.ApplyFilter("assignedTo", model.NullValue)
	require.Len(t, s.Rows(), 2)

	s.ClearFilter()
	require.Len(t, s.Rows(), len(issues))
	for i, issue := range s.Rows() {
		assert.Equal(t, issues[i].ID, issue.ID)
	}
}

func TestFilterRecomputesFromFullList(t *testing.T) {
	s := NewStore(issueFields())
	s.Load(storeIssues())

	// A second filter must not be applied on top of the first
	// filter's output.
	s.ApplyFilter("equipmentId", "1")
	s.ApplyFilter("status", "NEW")
	require.Len(t, s.Rows(), 3)
}

func TestEmptyFilterValueMeansNoFilter(t *testing.T) {
	s := NewStore(issueFields())
	s.Load(storeIssues())

	s.ApplyFilter("status", "")
	assert.Len(t, s.Rows(), 4)
}

func TestLoadReappliesActiveFilter(t *testing.T) {
	s := NewStore(issueFields())
	s.Load(storeIssues())
	s.ApplyFilter("status", "NEW")
	require.Len(t, s.Rows(), 3)

	s.Load([]model.Issue{{ID: 9, Status: model.StatusClosed}})
	assert.Empty(t, s.Rows())
	assert.Len(t, s.All(), 1)
}
