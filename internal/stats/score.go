// ABOUTME: Achievement score: weighted reduction of lifetime totals to one integer.
// ABOUTME: Weights are 0.45 steps / 0.45 sleep / 0.10 lifted; calories excluded.
package stats

import (
	"fmt"
	"math"
)

// Units-per-point conversion ratios.
const (
	stepsPerPoint      = 10000.0
	sleepHoursPerPoint = 8.0
	kgLiftedPerPoint   = 1000.0
)

// Component weights. Steps and sleep dominate; lifted weight is a small bonus.
const (
	weightSteps  = 0.45
	weightSleep  = 0.45
	weightLifted = 0.10
)

// Score converts lifetime totals into the achievement score.
// Totals must be non-negative.
func Score(t LifetimeTotals) (int, error) {
	if t.Steps < 0 || t.SleepHours < 0 || t.WeightLiftedKg < 0 {
		return 0, fmt.Errorf("score: negative lifetime totals %+v: %w", t, ErrInvalidMeasurement)
	}

	raw := float64(t.Steps)/stepsPerPoint*weightSteps +
		t.SleepHours/sleepHoursPerPoint*weightSleep +
		t.WeightLiftedKg/kgLiftedPerPoint*weightLifted

	return int(math.Round(raw * 100)), nil
}
