package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
)

func TestEvaluateTimeliness_OnTime(t *testing.T) {
	due := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	completed := due.AddDate(0, 0, -1)

	stats := EvaluateTimeliness([]models.Task{{
		Status:      models.StatusDone,
		DueDate:     &due,
		CompletedAt: &completed,
		CreatedAt:   due.AddDate(0, 0, -10),
	}})

	assert.Equal(t, 1, stats.OnTimeCount)
	assert.Equal(t, 1, stats.CompletedCount)
	assert.Equal(t, 100, stats.TimelinessPercent)
}

func TestEvaluateTimeliness_Late(t *testing.T) {
	due := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	completed := due.AddDate(0, 0, 3)

	stats := EvaluateTimeliness([]models.Task{{
		Status:      models.StatusDone,
		DueDate:     &due,
		CompletedAt: &completed,
		CreatedAt:   due.AddDate(0, 0, -10),
	}})

	assert.Equal(t, 0, stats.OnTimeCount)
	assert.Equal(t, 1, stats.CompletedCount)
	assert.Equal(t, 0, stats.TimelinessPercent)
}

func TestEvaluateTimeliness_NoDueDateExcluded(t *testing.T) {
	completed := time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC)

	stats := EvaluateTimeliness([]models.Task{{
		Status:      models.StatusDone,
		CompletedAt: &completed,
		CreatedAt:   completed.AddDate(0, 0, -10),
	}})

	assert.Equal(t, 0, stats.CompletedCount)
	assert.Equal(t, 0, stats.TimelinessPercent)
}

func TestEvaluateTimeliness_FallbackChain(t *testing.T) {
	due := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	created := due.AddDate(0, 0, -10)
	lateUpdate := due.AddDate(0, 0, 5)

	tests := []struct {
		name   string
		task   models.Task
		onTime int
	}{
		{
			// No completedAt: updatedAt is the completion timestamp.
			name: "updatedAt used when completedAt missing",
			task: models.Task{
				Status: models.StatusDone, DueDate: &due,
				UpdatedAt: &lateUpdate, CreatedAt: created,
			},
			onTime: 0,
		},
		{
			// Neither completedAt nor updatedAt: createdAt wins.
			name: "createdAt used as last resort",
			task: models.Task{
				Status: models.StatusDone, DueDate: &due,
				CreatedAt: created,
			},
			onTime: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := EvaluateTimeliness([]models.Task{tt.task})
			assert.Equal(t, tt.onTime, stats.OnTimeCount)
			assert.Equal(t, 1, stats.CompletedCount)
		})
	}
}

func TestEvaluateTimeliness_UnfinishedIgnored(t *testing.T) {
	due := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	stats := EvaluateTimeliness([]models.Task{{
		Status:    models.StatusInProgress,
		DueDate:   &due,
		CreatedAt: due.AddDate(0, 0, -10),
	}})

	assert.Equal(t, 0, stats.CompletedCount)
	assert.Equal(t, 0, stats.OnTimeCount)
}
