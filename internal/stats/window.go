// ABOUTME: Trend window building: dense, gap-filled 7-day series per metric.
// ABOUTME: A day without data is 0; a logged 0 looks identical (known limitation).
package stats

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"rehealth/internal/models"
)

// DefaultWindowDays is the trailing range used for trend charts.
const DefaultWindowDays = 7

// SampleSource supplies dated samples for one metric kind over a date range,
// ascending by day. Steps and calories arrive pre-summed per day; sleep is
// the day's single row.
type SampleSource interface {
	SampleRange(userID uuid.UUID, kind models.MetricKind, from, to time.Time) ([]models.Sample, error)
}

// Window is a dense series of exactly one value per calendar day, ascending.
// Labels hold MM/DD day strings aligned index-for-index with Values.
type Window struct {
	Kind   models.MetricKind
	Labels []string
	Values []float64
}

// Indices returns 1..len(Values), the numeric x-axis companion to Labels.
func (w *Window) Indices() []int {
	idx := make([]int, len(w.Values))
	for i := range idx {
		idx[i] = i + 1
	}
	return idx
}

// windowAxes maps each metric kind to its chart presentation.
var windowAxes = map[models.MetricKind]struct {
	Title string
	Unit  string
}{
	models.KindSteps:    {Title: "Steps", Unit: "steps"},
	models.KindCalories: {Title: "Calories In", Unit: "kcal"},
	models.KindSleep:    {Title: "Sleep", Unit: "hours"},
}

// AxisTitle returns the chart title for a metric kind.
func AxisTitle(kind models.MetricKind) string {
	return windowAxes[kind].Title
}

// AxisUnit returns the y-axis unit for a metric kind.
func AxisUnit(kind models.MetricKind) string {
	return windowAxes[kind].Unit
}

// BuildWindow produces the dense trailing window of length days ending on
// refDate. Every calendar day in the range gets exactly one value; days with
// no samples are 0. A user with zero history yields an all-zero window.
func BuildWindow(src SampleSource, userID uuid.UUID, kind models.MetricKind, days int, refDate time.Time) (*Window, error) {
	if days <= 0 {
		days = DefaultWindowDays
	}
	ref := models.Midnight(refDate)
	start := ref.AddDate(0, 0, -(days - 1))

	samples, err := src.SampleRange(userID, kind, start, ref)
	if err != nil {
		return nil, fmt.Errorf("build %s window: %w", kind, err)
	}

	// Keyed by day string so location differences between store and caller
	// cannot split a day into two buckets.
	byDay := make(map[string]float64, len(samples))
	for _, s := range samples {
		key := s.Day.Format(models.DayFormat)
		if kind == models.KindSleep {
			// One row per day; a later row for the same day replaces it.
			byDay[key] = s.Value
		} else {
			byDay[key] += s.Value
		}
	}

	w := &Window{
		Kind:   kind,
		Labels: make([]string, 0, days),
		Values: make([]float64, 0, days),
	}
	for d := 0; d < days; d++ {
		day := start.AddDate(0, 0, d)
		w.Labels = append(w.Labels, day.Format(models.LabelFormat))
		w.Values = append(w.Values, byDay[day.Format(models.DayFormat)])
	}
	return w, nil
}
