package metrics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeTimelineProgress_Midway(t *testing.T) {
	clock := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	start := clock.AddDate(0, 0, -10)
	end := clock.AddDate(0, 0, 10)

	p := ComputeTimelineProgress(&start, &end, clock)

	assert.True(t, p.Available)
	assert.False(t, p.IsCompleted)
	assert.InDelta(t, 50, p.ProgressPercent, 0.01)
	assert.Equal(t, 10*24*time.Hour, p.Elapsed)
	assert.Equal(t, 10*24*time.Hour, p.Remaining)
}

func TestComputeTimelineProgress_PastEnd(t *testing.T) {
	clock := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	start := clock.AddDate(0, 0, -30)
	end := clock.AddDate(0, 0, -1)

	p := ComputeTimelineProgress(&start, &end, clock)

	assert.True(t, p.Available)
	assert.True(t, p.IsCompleted)
	assert.Equal(t, float64(100), p.ProgressPercent)
	assert.Equal(t, end.Sub(start), p.Elapsed)
	assert.Equal(t, time.Duration(0), p.Remaining)
}

func TestComputeTimelineProgress_BeforeStart(t *testing.T) {
	clock := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	start := clock.AddDate(0, 0, 5)
	end := clock.AddDate(0, 0, 25)

	p := ComputeTimelineProgress(&start, &end, clock)

	assert.True(t, p.Available)
	assert.False(t, p.IsCompleted)
	assert.Equal(t, float64(0), p.ProgressPercent)
	assert.Equal(t, time.Duration(0), p.Elapsed)
}

func TestComputeTimelineProgress_DegenerateRange(t *testing.T) {
	clock := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	start := clock
	end := clock.AddDate(0, 0, -5) // end before start

	p := ComputeTimelineProgress(&start, &end, clock)

	assert.True(t, p.Available)
	assert.True(t, p.IsCompleted)
	assert.Equal(t, float64(100), p.ProgressPercent)
	assert.Equal(t, time.Duration(0), p.Remaining)
}

func TestTimelineProgress_MarshalJSON_Milliseconds(t *testing.T) {
	p := TimelineProgress{
		Available:       true,
		Elapsed:         90 * time.Second,
		Remaining:       30 * time.Second,
		ProgressPercent: 75,
	}

	raw, err := json.Marshal(p)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(90000), decoded["elapsedMs"])
	assert.Equal(t, float64(30000), decoded["remainingMs"])
	assert.Equal(t, float64(75), decoded["progressPercent"])
	assert.Equal(t, true, decoded["available"])
}

func TestComputeTimelineProgress_Unavailable(t *testing.T) {
	clock := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	p := ComputeTimelineProgress(nil, nil, clock)

	assert.False(t, p.Available)
	assert.Equal(t, float64(0), p.ProgressPercent)
}
