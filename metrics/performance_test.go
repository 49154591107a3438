package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorePerformance_Weighting(t *testing.T) {
	// 80*0.7 + 90*0.3 = 83
	p := ScorePerformance(80, 0, 90)
	assert.Equal(t, 83, p.PerformancePercent)
}

func TestScorePerformance_Labels(t *testing.T) {
	tests := []struct {
		name                            string
		completion, quality, timeliness int
		want                            string
	}{
		{"all high", 85, 90, 95, LabelExcellent},
		{"excellent boundary", 80, 80, 90, LabelExcellent},
		{"good tier", 75, 72, 85, LabelGood},
		{"good boundary", 70, 70, 80, LabelGood},
		{"quality drags label down", 95, 60, 95, LabelNeedsImprovement},
		{"all low", 10, 20, 30, LabelNeedsImprovement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ScorePerformance(tt.completion, tt.quality, tt.timeliness)
			assert.Equal(t, tt.want, p.Label)
		})
	}
}
