package metrics

import (
	"math"
	"time"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
)

// TaskStats is the status/priority breakdown of a task set.
type TaskStats struct {
	Total             int                         `json:"total"`
	Completed         int                         `json:"completed"`
	InProgress        int                         `json:"inProgress"`
	Overdue           int                         `json:"overdue"`
	ByStatus          map[models.TaskStatus]int   `json:"byStatus"`
	ByPriority        map[models.TaskPriority]int `json:"byPriority"`
	CompletionPercent int                         `json:"completionPercent"`
}

// AggregateTasks classifies tasks by status and priority. Every enumerated
// status and priority appears in the maps even with a zero count, so charts
// always render the full category set. A task is overdue when its due date
// has passed and it is not done.
func AggregateTasks(tasks []models.Task, now time.Time) TaskStats {
	stats := TaskStats{
		ByStatus:   make(map[models.TaskStatus]int, len(models.AllStatuses)),
		ByPriority: make(map[models.TaskPriority]int, len(models.AllPriorities)),
	}
	for _, s := range models.AllStatuses {
		stats.ByStatus[s] = 0
	}
	for _, p := range models.AllPriorities {
		stats.ByPriority[p] = 0
	}

	for _, t := range tasks {
		stats.Total++
		stats.ByStatus[t.Status]++
		stats.ByPriority[t.Priority]++

		switch t.Status {
		case models.StatusDone:
			stats.Completed++
		case models.StatusInProgress:
			stats.InProgress++
		}

		if t.DueDate != nil && t.DueDate.Before(now) && t.Status != models.StatusDone {
			stats.Overdue++
		}
	}

	stats.CompletionPercent = percent(stats.Completed, stats.Total)
	return stats
}

// percent returns round(part/total*100), and 0 for an empty total so the
// caller never sees a division by zero.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
