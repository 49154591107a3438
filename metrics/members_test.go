package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
)

func TestAggregateByMember(t *testing.T) {
	ana := models.Member{ID: primitive.NewObjectID(), Name: "Ana Petrov"}
	marko := models.Member{ID: primitive.NewObjectID(), Name: "Marko Ilic"}
	outsider := models.Member{ID: primitive.NewObjectID(), Name: "Not On Roster"}

	tasks := []models.Task{
		{Status: models.StatusDone, Assignee: &ana},
		{Status: models.StatusInProgress, Assignee: &ana},
		{Status: models.StatusDone, Assignee: &marko},
		{Status: models.StatusDone, Assignee: &outsider}, // excluded
		{Status: models.StatusToDo},                      // unassigned, excluded
	}

	stats := AggregateByMember(tasks, []models.Member{ana, marko})

	assert.Len(t, stats, 2)

	assert.Equal(t, ana.ID, stats[0].MemberID)
	assert.Equal(t, 2, stats[0].Total)
	assert.Equal(t, 1, stats[0].Completed)
	assert.Equal(t, 50, stats[0].Percent)

	assert.Equal(t, marko.ID, stats[1].MemberID)
	assert.Equal(t, 1, stats[1].Total)
	assert.Equal(t, 1, stats[1].Completed)
	assert.Equal(t, 100, stats[1].Percent)
}

func TestAggregateByMember_PreservesRosterOrder(t *testing.T) {
	members := []models.Member{
		{ID: primitive.NewObjectID(), Name: "C"},
		{ID: primitive.NewObjectID(), Name: "A"},
		{ID: primitive.NewObjectID(), Name: "B"},
	}

	stats := AggregateByMember(nil, members)

	assert.Len(t, stats, 3)
	for i, m := range members {
		assert.Equal(t, m.ID, stats[i].MemberID)
		assert.Equal(t, 0, stats[i].Total)
		assert.Equal(t, 0, stats[i].Percent)
	}
}
