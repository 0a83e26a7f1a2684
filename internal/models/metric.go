// ABOUTME: Metric kinds and the dated sample type consumed by the stats engine.
// ABOUTME: Steps and calories sum same-day rows; sleep is one row per day.
package models

import "time"

// MetricKind identifies a trackable daily metric.
type MetricKind string

const (
	KindSteps    MetricKind = "steps"
	KindCalories MetricKind = "calories"
	KindSleep    MetricKind = "sleep"
)

// AllMetricKinds lists every kind the trend window supports.
var AllMetricKinds = []MetricKind{KindSteps, KindCalories, KindSleep}

// IsValidMetricKind checks if a string names a supported metric kind.
func IsValidMetricKind(s string) bool {
	for _, k := range AllMetricKinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

// DayFormat is how calendar days are stored in SQLite.
const DayFormat = "2006-01-02"

// LabelFormat is the short day label used on chart axes.
const LabelFormat = "01/02"

// Sample is a single dated metric value. Same-day raw rows are already
// combined (summed, or the day's single row) by the time a Sample exists.
type Sample struct {
	Day   time.Time
	Value float64
}

// Today returns the current date truncated to midnight local time.
func Today() time.Time {
	return Midnight(time.Now())
}

// Midnight truncates a timestamp to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
