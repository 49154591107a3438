// Package metrics computes every derived project statistic the dashboards
// surface: task aggregates, timeliness, per-member productivity, quality
// scores, timeline progress and the composite performance score. All
// functions are pure; callers pass the clock in explicitly.
package metrics

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var durationPattern = regexp.MustCompile(`^\s*(\d+)\s*(day|week|month|year)s?\s*$`)

// ResolveRange normalizes a project's start/end into a concrete date range.
// An explicit end date wins; otherwise a duration string like "3 months" is
// parsed; otherwise the range defaults to one calendar month from the start.
// Without a start date nothing is guessed and both results are nil.
func ResolveRange(start, explicitEnd *time.Time, durationText string) (*time.Time, *time.Time) {
	if start == nil {
		return nil, nil
	}
	if explicitEnd != nil {
		return start, explicitEnd
	}

	if m := durationPattern.FindStringSubmatch(strings.ToLower(durationText)); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err == nil {
			var end time.Time
			switch m[2] {
			case "day":
				end = start.AddDate(0, 0, amount)
			case "week":
				end = start.AddDate(0, 0, 7*amount)
			case "month":
				end = addCalendarMonths(*start, amount)
			case "year":
				end = addCalendarMonths(*start, 12*amount)
			}
			return start, &end
		}
	}

	// Unparseable or missing duration falls back to a one-month window.
	end := addCalendarMonths(*start, 1)
	return start, &end
}

// addCalendarMonths adds n calendar months with true calendar semantics:
// the day of month is clamped to the target month's length, so
// Jan 31 + 1 month is Feb 28 (or Feb 29 in a leap year). time.AddDate
// would normalize the overflow into March instead.
func addCalendarMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	totalMonths := int(month) - 1 + n
	year += totalMonths / 12
	month = time.Month(totalMonths%12 + 1)
	if totalMonths%12 < 0 {
		year--
		month = time.Month(totalMonths%12 + 13)
	}

	if max := daysIn(year, month); day > max {
		day = max
	}
	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
