package metrics

import "math"

// Performance label values, from best to worst.
const (
	LabelExcellent        = "Excellent"
	LabelGood             = "Good"
	LabelNeedsImprovement = "Needs improvement"
)

// Performance is the composite score shown on tracking and dashboard views.
type Performance struct {
	PerformancePercent int    `json:"performancePercent"`
	Label              string `json:"label"`
}

// ScorePerformance blends the three component percentages into one number
// and a qualitative label. The canonical numeric score weights completion
// 70% and timeliness 30%; quality contributes only to the label, which is
// picked by ordered threshold checks (first match wins).
func ScorePerformance(completionPercent, qualityPercent, timelinessPercent int) Performance {
	score := int(math.Round(float64(completionPercent)*0.7 + float64(timelinessPercent)*0.3))

	label := LabelNeedsImprovement
	switch {
	case completionPercent >= 80 && qualityPercent >= 80 && timelinessPercent >= 90:
		label = LabelExcellent
	case completionPercent >= 70 && qualityPercent >= 70 && timelinessPercent >= 80:
		label = LabelGood
	}

	return Performance{PerformancePercent: score, Label: label}
}
