package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
)

func TestBuildProjectReport(t *testing.T) {
	clock := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	start := clock.AddDate(0, 0, -15)
	due := clock.AddDate(0, 0, -5)
	done := due.AddDate(0, 0, -1)

	member := models.Member{ID: primitive.NewObjectID(), Name: "Ana Petrov"}
	project := models.Project{
		Title:     "Brand refresh",
		StartDate: &start,
		Duration:  "1 month",
		// Duplicate roster entries come straight from the source data.
		TeamMembers: []models.Member{member, member},
	}
	tasks := []models.Task{
		{Status: models.StatusDone, Assignee: &member, DueDate: &due, CompletedAt: &done, CreatedAt: start},
		{Status: models.StatusInProgress, Assignee: &member, CreatedAt: start},
	}
	submissions := []models.Submission{
		{Rating: rating(5)},
		{Rating: rating(4)},
		{},
	}

	report := BuildProjectReport(project, tasks, submissions, clock)

	assert.Equal(t, 2, report.Tasks.Total)
	assert.Equal(t, 50, report.Tasks.CompletionPercent)
	assert.Equal(t, 100, report.Timeliness.TimelinessPercent)
	assert.Equal(t, 90, report.QualityPercent)

	// Roster is de-duplicated before attribution.
	assert.Len(t, report.Members, 1)
	assert.Equal(t, 2, report.Members[0].Total)

	assert.True(t, report.Timeline.Available)
	assert.False(t, report.Timeline.IsCompleted)

	// 50*0.7 + 100*0.3 = 65
	assert.Equal(t, 65, report.Performance.PerformancePercent)
}

func TestBuildProjectReport_Idempotent(t *testing.T) {
	clock := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	start := clock.AddDate(0, 0, -15)
	project := models.Project{StartDate: &start, Duration: "2 weeks"}
	tasks := []models.Task{{Status: models.StatusDone, CreatedAt: start}}

	first := BuildProjectReport(project, tasks, nil, clock)
	second := BuildProjectReport(project, tasks, nil, clock)

	assert.Equal(t, first, second)
}
