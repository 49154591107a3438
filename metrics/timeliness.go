package metrics

import (
	"github.com/DXD-Magante/dxd-magnate-sub008/models"
)

// TimelinessStats reports how many completed tasks finished by their due date.
type TimelinessStats struct {
	OnTimeCount       int `json:"onTimeCount"`
	CompletedCount    int `json:"completedCount"`
	TimelinessPercent int `json:"timelinessPercent"`
}

// EvaluateTimeliness judges each done task against its due date, using the
// task's effective completion timestamp (completedAt, else updatedAt, else
// createdAt). Done tasks without a due date cannot be judged and are
// excluded from both numerator and denominator.
func EvaluateTimeliness(tasks []models.Task) TimelinessStats {
	var stats TimelinessStats
	for _, t := range tasks {
		if t.Status != models.StatusDone || t.DueDate == nil {
			continue
		}
		stats.CompletedCount++
		if !t.CompletionTime().After(*t.DueDate) {
			stats.OnTimeCount++
		}
	}
	stats.TimelinessPercent = percent(stats.OnTimeCount, stats.CompletedCount)
	return stats
}
