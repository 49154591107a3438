package metrics

import (
	"encoding/json"
	"time"
)

// TimelineProgress reports elapsed and remaining time against a resolved
// project range. Available is false when the range could not be resolved;
// the other fields are meaningless in that case.
type TimelineProgress struct {
	Available       bool
	Elapsed         time.Duration
	Remaining       time.Duration
	IsCompleted     bool
	ProgressPercent float64
}

// MarshalJSON emits the durations in milliseconds; time.Duration would
// otherwise serialize as nanoseconds under millisecond field names.
func (p TimelineProgress) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Available       bool    `json:"available"`
		ElapsedMs       int64   `json:"elapsedMs"`
		RemainingMs     int64   `json:"remainingMs"`
		IsCompleted     bool    `json:"isCompleted"`
		ProgressPercent float64 `json:"progressPercent"`
	}{
		Available:       p.Available,
		ElapsedMs:       p.Elapsed.Milliseconds(),
		RemainingMs:     p.Remaining.Milliseconds(),
		IsCompleted:     p.IsCompleted,
		ProgressPercent: p.ProgressPercent,
	})
}

// ComputeTimelineProgress computes a clamped 0-100 progress percentage for
// now against [start, end]. A degenerate range (end not after start) and a
// range already passed both report 100% complete rather than failing.
func ComputeTimelineProgress(start, end *time.Time, now time.Time) TimelineProgress {
	if start == nil || end == nil {
		return TimelineProgress{}
	}

	total := end.Sub(*start)
	if total <= 0 {
		return TimelineProgress{
			Available:       true,
			IsCompleted:     true,
			ProgressPercent: 100,
		}
	}

	if now.After(*end) {
		return TimelineProgress{
			Available:       true,
			Elapsed:         total,
			IsCompleted:     true,
			ProgressPercent: 100,
		}
	}

	elapsed := now.Sub(*start)
	pct := float64(elapsed) / float64(total) * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	remaining := end.Sub(now)
	if elapsed < 0 {
		elapsed = 0
	}

	return TimelineProgress{
		Available:       true,
		Elapsed:         elapsed,
		Remaining:       remaining,
		IsCompleted:     false,
		ProgressPercent: pct,
	}
}
