package metrics

import (
	"math"

	"github.com/DXD-Magante/dxd-magnate-sub008/models"
)

// Ratings extracts the numeric ratings from a submission set, skipping
// unrated submissions so they never drag an average down.
func Ratings(submissions []models.Submission) []float64 {
	var out []float64
	for _, s := range submissions {
		if s.Rating != nil {
			out = append(out, *s.Rating)
		}
	}
	return out
}

// QualityScore normalizes 1-5 star ratings into a 0-100 score. Multiple
// rating sources are concatenated before scoring, so a source with more
// ratings carries proportionally more weight; scoring each source on its
// own and averaging the results would misweight them.
func QualityScore(sources ...[]float64) int {
	var sum float64
	var count int
	for _, ratings := range sources {
		for _, r := range ratings {
			sum += r
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(sum / (float64(count) * 5) * 100))
}
