// ABOUTME: Read models for the presentation layer: dashboard, trend, achievements.
// ABOUTME: Composes storage reads with the stats engine; holds no state of its own.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rehealth/internal/models"
	"rehealth/internal/stats"
	"rehealth/internal/storage"
)

// Dashboard is the current-day summary shown on the main screen.
type Dashboard struct {
	Date           time.Time
	Steps          int64
	CaloriesIn     int64
	CaloriesBurned float64

	HasSleep    bool
	SleepHours  float64
	SleepRating float64

	HasMeasurement bool
	WeightKg       float64
	BMI            float64
	BMICategory    stats.BMICategory
}

// Achievements is the score/rank result consumed by the achievements screen.
// NextRank is empty at the terminal tier.
type Achievements struct {
	Totals          stats.LifetimeTotals
	Score           int
	RankName        string
	NextRank        string
	ProgressPercent float64
}

// BuildDashboard assembles today's values for a user. Days without data show
// zeros; sleep rating and BMI appear only when their inputs exist.
func BuildDashboard(db *storage.DB, userID uuid.UUID, day time.Time) (*Dashboard, error) {
	day = models.Midnight(day)
	d := &Dashboard{Date: day}

	steps, err := db.SampleRange(userID, models.KindSteps, day, day)
	if err != nil {
		return nil, fmt.Errorf("dashboard steps: %w", err)
	}
	for _, s := range steps {
		d.Steps += int64(s.Value)
	}

	calories, err := db.SampleRange(userID, models.KindCalories, day, day)
	if err != nil {
		return nil, fmt.Errorf("dashboard calories: %w", err)
	}
	for _, s := range calories {
		d.CaloriesIn += int64(s.Value)
	}

	weight, err := db.LatestWeight(userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard weight: %w", err)
	}
	d.CaloriesBurned = stats.CaloriesBurned(int(d.Steps), weight)

	sleep, err := db.SleepOn(userID, day)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// no sleep logged today
	case err != nil:
		return nil, fmt.Errorf("dashboard sleep: %w", err)
	default:
		rating, err := stats.SleepRating(sleep.DurationHours, sleep.Quality)
		if err != nil {
			return nil, fmt.Errorf("dashboard sleep rating: %w", err)
		}
		d.HasSleep = true
		d.SleepHours = sleep.DurationHours
		d.SleepRating = rating
	}

	m, err := db.LatestMeasurement(userID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// never measured
	case err != nil:
		return nil, fmt.Errorf("dashboard measurement: %w", err)
	default:
		bmi, err := stats.BMI(m.WeightKg, m.HeightCm)
		if err != nil {
			return nil, fmt.Errorf("dashboard bmi: %w", err)
		}
		d.HasMeasurement = true
		d.WeightKg = m.WeightKg
		d.BMI = bmi
		d.BMICategory = stats.ClassifyBMI(bmi)
	}

	return d, nil
}

// BuildTrend returns the dense trailing window for a metric kind ending today.
func BuildTrend(db *storage.DB, userID uuid.UUID, kind models.MetricKind, refDate time.Time) (*stats.Window, error) {
	return stats.BuildWindow(db, userID, kind, stats.DefaultWindowDays, refDate)
}

// BuildAchievements reduces a user's history to lifetime totals, score, rank,
// and progress toward the next tier.
func BuildAchievements(db *storage.DB, userID uuid.UUID) (*Achievements, error) {
	totals, err := stats.Lifetime(db, userID)
	if err != nil {
		return nil, err
	}
	score, err := stats.Score(totals)
	if err != nil {
		return nil, err
	}
	next, pct := stats.Progress(score)
	return &Achievements{
		Totals:          totals,
		Score:           score,
		RankName:        stats.Rank(score),
		NextRank:        next,
		ProgressPercent: pct,
	}, nil
}
