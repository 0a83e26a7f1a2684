// ABOUTME: Lifetime totals: all-time reductions of a user's logged history.
// ABOUTME: Empty history degrades to zeros, never an error.
package stats

import (
	"fmt"

	"github.com/google/uuid"
)

// TotalsSource supplies all-time aggregates for one user. Implementations
// may fold the reduction into SQL (SUM) as long as the result equals summing
// the raw rows.
type TotalsSource interface {
	TotalSteps(userID uuid.UUID) (int64, error)
	TotalCalories(userID uuid.UUID) (int64, error)
	TotalSleepHours(userID uuid.UUID) (float64, error)
	TotalWeightLifted(userID uuid.UUID) (float64, error)
}

// LifetimeTotals are the all-time sums of a user's logged metrics.
// WeightLiftedKg is derived per session (weight x sets x reps) and summed;
// no stored volume column exists upstream. Calories are tracked for display
// only and never enter the achievement score.
type LifetimeTotals struct {
	Steps          int64
	SleepHours     float64
	WeightLiftedKg float64
	Calories       int64
}

// Lifetime reduces a user's entire history into scalar totals. The four
// totals are independent; each is 0 for a user with no rows.
func Lifetime(src TotalsSource, userID uuid.UUID) (LifetimeTotals, error) {
	var t LifetimeTotals
	var err error

	if t.Steps, err = src.TotalSteps(userID); err != nil {
		return LifetimeTotals{}, fmt.Errorf("lifetime steps: %w", err)
	}
	if t.SleepHours, err = src.TotalSleepHours(userID); err != nil {
		return LifetimeTotals{}, fmt.Errorf("lifetime sleep: %w", err)
	}
	if t.WeightLiftedKg, err = src.TotalWeightLifted(userID); err != nil {
		return LifetimeTotals{}, fmt.Errorf("lifetime weight lifted: %w", err)
	}
	if t.Calories, err = src.TotalCalories(userID); err != nil {
		return LifetimeTotals{}, fmt.Errorf("lifetime calories: %w", err)
	}
	return t, nil
}
