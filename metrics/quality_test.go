package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
)

func rating(v float64) *float64 { return &v }

func TestRatings_SkipsUnrated(t *testing.T) {
	subs := []models.Submission{
		{Rating: rating(5)},
		{Rating: rating(4)},
		{}, // unrated, must not count as zero
		{Rating: rating(3)},
	}

	assert.Equal(t, []float64{5, 4, 3}, Ratings(subs))
}

func TestQualityScore(t *testing.T) {
	// round(12/15*100) = 80
	assert.Equal(t, 80, QualityScore([]float64{5, 4, 3}))
}

func TestQualityScore_Empty(t *testing.T) {
	assert.Equal(t, 0, QualityScore(nil))
	assert.Equal(t, 0, QualityScore([]float64{}))
	assert.Equal(t, 0, QualityScore())
}

func TestQualityScore_MergesSourcesBeforeScoring(t *testing.T) {
	// Two sources with different sizes: merge-then-score gives
	// round(11/15*100) = 73, not average(100, 20) = 60.
	got := QualityScore([]float64{5, 5}, []float64{1})
	assert.Equal(t, 73, got)
}
