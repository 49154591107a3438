package metrics

import (
	"time"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
)

// ProjectReport bundles every derived statistic for one project view.
type ProjectReport struct {
	Tasks          TaskStats        `json:"tasks"`
	Timeliness     TimelinessStats  `json:"timeliness"`
	Members        []MemberStats    `json:"members"`
	QualityPercent int              `json:"qualityPercent"`
	Timeline       TimelineProgress `json:"timeline"`
	Performance    Performance      `json:"performance"`
}

// BuildProjectReport runs the full engine over one project's snapshot. The
// task, member and submission passes are independent of each other; the
// performance score is computed last from their outputs.
func BuildProjectReport(project models.Project, tasks []models.Task, submissions []models.Submission, now time.Time) ProjectReport {
	start, end := ResolveRange(project.StartDate, project.EndDate, project.Duration)
	roster := models.DedupMembers(project.TeamMembers)

	report := ProjectReport{
		Tasks:          AggregateTasks(tasks, now),
		Timeliness:     EvaluateTimeliness(tasks),
		Members:        AggregateByMember(tasks, roster),
		QualityPercent: QualityScore(Ratings(submissions)),
		Timeline:       ComputeTimelineProgress(start, end, now),
	}
	report.Performance = ScorePerformance(
		report.Tasks.CompletionPercent,
		report.QualityPercent,
		report.Timeliness.TimelinessPercent,
	)
	return report
}
