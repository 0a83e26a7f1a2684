// ABOUTME: Read queries consumed by the stats engine: ranges, totals, latest.
// ABOUTME: Same-day step and calorie rows are combined by SUM in SQL.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rehealth/internal/models"
)

// rangeQueries maps each metric kind to its range query. Steps and calories
// are summed per day; sleep is the day's single row. Dispatch is a table
// lookup keyed by kind.
var rangeQueries = map[models.MetricKind]string{
	models.KindSteps: `
		SELECT day, SUM(count)
		FROM steps
		WHERE user_id = ? AND day >= ? AND day <= ?
		GROUP BY day
		ORDER BY day ASC`,
	models.KindCalories: `
		SELECT day, SUM(calories)
		FROM food
		WHERE user_id = ? AND day >= ? AND day <= ?
		GROUP BY day
		ORDER BY day ASC`,
	models.KindSleep: `
		SELECT day, duration_hours
		FROM sleep
		WHERE user_id = ? AND day >= ? AND day <= ?
		ORDER BY day ASC, rowid ASC`,
}

// SampleRange returns dated samples of one metric kind within [from, to],
// ascending by day. No rows in range is an empty slice, not an error.
func (d *DB) SampleRange(userID uuid.UUID, kind models.MetricKind, from, to time.Time) ([]models.Sample, error) {
	query, ok := rangeQueries[kind]
	if !ok {
		return nil, fmt.Errorf("sample range: unsupported metric kind %q", kind)
	}

	rows, err := d.db.Query(query,
		userID.String(),
		from.Format(models.DayFormat),
		to.Format(models.DayFormat),
	)
	if err != nil {
		return nil, fmt.Errorf("sample range %s: %w", kind, err)
	}
	defer rows.Close()

	var samples []models.Sample
	for rows.Next() {
		var day string
		var s models.Sample
		if err := rows.Scan(&day, &s.Value); err != nil {
			return nil, fmt.Errorf("sample range %s: %w", kind, err)
		}
		if s.Day, err = time.ParseInLocation(models.DayFormat, day, time.Local); err != nil {
			return nil, fmt.Errorf("sample range %s: parse day: %w", kind, err)
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

// TotalSteps returns the all-time step sum for a user, 0 on empty history.
func (d *DB) TotalSteps(userID uuid.UUID) (int64, error) {
	return d.sumInt(`SELECT COALESCE(SUM(count), 0) FROM steps WHERE user_id = ?`, userID, "total steps")
}

// TotalCalories returns the all-time consumed-calorie sum for a user.
func (d *DB) TotalCalories(userID uuid.UUID) (int64, error) {
	return d.sumInt(`SELECT COALESCE(SUM(calories), 0) FROM food WHERE user_id = ?`, userID, "total calories")
}

// TotalSleepHours returns the all-time slept-hours sum for a user.
func (d *DB) TotalSleepHours(userID uuid.UUID) (float64, error) {
	return d.sumFloat(`SELECT COALESCE(SUM(duration_hours), 0) FROM sleep WHERE user_id = ?`, userID, "total sleep")
}

// TotalWeightLifted returns the all-time lifted volume for a user. The
// per-session product weight x sets x reps is computed inside the aggregate;
// no stored volume column exists.
func (d *DB) TotalWeightLifted(userID uuid.UUID) (float64, error) {
	return d.sumFloat(`SELECT COALESCE(SUM(weight_kg * sets * reps), 0) FROM workouts WHERE user_id = ?`, userID, "total weight lifted")
}

func (d *DB) sumInt(query string, userID uuid.UUID, what string) (int64, error) {
	var total int64
	if err := d.db.QueryRow(query, userID.String()).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", what, err)
	}
	return total, nil
}

func (d *DB) sumFloat(query string, userID uuid.UUID, what string) (float64, error) {
	var total float64
	if err := d.db.QueryRow(query, userID.String()).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", what, err)
	}
	return total, nil
}

// LatestWeight returns the user's most recent recorded weight, or 0 when no
// measurement exists. The zero feeds the calorie estimator's fallback.
func (d *DB) LatestWeight(userID uuid.UUID) (float64, error) {
	m, err := d.LatestMeasurement(userID)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return m.WeightKg, nil
}

// LatestMeasurement returns the most recent body measurement, or ErrNotFound.
func (d *DB) LatestMeasurement(userID uuid.UUID) (*models.Measurement, error) {
	query := `
		SELECT id, day, height_cm, weight_kg
		FROM measurements
		WHERE user_id = ?
		ORDER BY day DESC, rowid DESC
		LIMIT 1
	`
	row := d.db.QueryRow(query, userID.String())

	var m models.Measurement
	var id, day string
	if err := row.Scan(&id, &day, &m.HeightCm, &m.WeightKg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("latest measurement: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("latest measurement: %w", err)
	}

	var err error
	if m.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("latest measurement: parse id: %w", err)
	}
	if m.Day, err = time.ParseInLocation(models.DayFormat, day, time.Local); err != nil {
		return nil, fmt.Errorf("latest measurement: parse day: %w", err)
	}
	m.UserID = userID
	return &m, nil
}

// SleepOn returns the sleep entry for a specific day, or ErrNotFound. When
// several rows exist for the day the most recent insert wins.
func (d *DB) SleepOn(userID uuid.UUID, day time.Time) (*models.SleepEntry, error) {
	query := `
		SELECT id, duration_hours, quality
		FROM sleep
		WHERE user_id = ? AND day = ?
		ORDER BY rowid DESC
		LIMIT 1
	`
	row := d.db.QueryRow(query, userID.String(), day.Format(models.DayFormat))

	var e models.SleepEntry
	var id string
	if err := row.Scan(&id, &e.DurationHours, &e.Quality); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("sleep on %s: %w", day.Format(models.DayFormat), ErrNotFound)
		}
		return nil, fmt.Errorf("sleep on %s: %w", day.Format(models.DayFormat), err)
	}

	var err error
	if e.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("sleep entry: parse id: %w", err)
	}
	e.UserID = userID
	e.Day = models.Midnight(day)
	return &e, nil
}
