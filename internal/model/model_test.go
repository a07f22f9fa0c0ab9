package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateCompare(t *testing.T) {
	a := Date{Year: 2023, Month: 1, Day: 1}
	b := Date{Year: 2023, Month: 2, Day: 1}
	c := Date{Year: 2024, Month: 1, Day: 1}

	assert.Negative(t, a.Compare(b))
	assert.Negative(t, b.Compare(c))
	assert.Positive(t, c.Compare(a))
	assert.Zero(t, a.Compare(a))

	// Hour and minute break the tie between same-day timestamps.
	morning := Date{Year: 2023, Month: 1, Day: 1, Hour: 8, Minute: 5}
	evening := Date{Year: 2023, Month: 1, Day: 1, Hour: 20, Minute: 0}
	assert.Negative(t, morning.Compare(evening))
}

func TestDateDisplay(t *testing.T) {
	d := &Date{Year: 2023, Month: 6, Day: 4}
	assert.Equal(t, "6/4/2023", d.Display())

	var nilDate *Date
	assert.Empty(t, nilDate.Display())
}

func TestRank(t *testing.T) {
	assert.Equal(t, 0, Rank(PriorityOrder, PriorityLow))
	assert.Equal(t, 3, Rank(PriorityOrder, PriorityUrgent))
	assert.Equal(t, -1, Rank(PriorityOrder, Priority("BOGUS")))
	assert.Equal(t, 1, Rank(RoleOrder, RoleStudent))
}

func TestMaxPriority(t *testing.T) {
	assert.Equal(t, PriorityUrgent,
		MaxPriority([]Priority{PriorityLow, PriorityUrgent, PriorityMedium}))
	assert.Equal(t, PriorityLow, MaxPriority([]Priority{PriorityLow}))
}

func TestIssueJSONFieldNames(t *testing.T) {
	assigned := "tech@x.edu"
	issue := Issue{
		ID:           7,
		EquipmentID:  3,
		Status:       StatusNew,
		Priority:     PriorityHigh,
		Description:  "projector flickers",
		DateReported: &Date{Year: 2023, Month: 5, Day: 1, Hour: 9, Minute: 30},
		AssignedTo:   &assigned,
	}

	payload, err := json.Marshal(issue)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(payload, &raw))

	// The backend field names are camelCase; nullable fields are
	// present with null values rather than omitted.
	for _, key := range []string{
		"id", "equipmentId", "status", "priority", "description",
		"dateReported", "dateResolved", "resolutionDetails", "notes", "assignedTo",
	} {
		assert.Contains(t, raw, key)
	}
	assert.Nil(t, raw["dateResolved"])
	assert.Equal(t, "tech@x.edu", raw["assignedTo"])
}
