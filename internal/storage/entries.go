// ABOUTME: Append-only inserts for log entries, one row per logging action.
// ABOUTME: Entries are never updated or deleted by the aggregation core.
package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rehealth/internal/models"
)

// AddSteps stores a step entry.
func (d *DB) AddSteps(e *models.StepEntry) error {
	query := `INSERT INTO steps (id, user_id, day, count, goal) VALUES (?, ?, ?, ?, ?)`
	_, err := d.db.Exec(query,
		e.ID.String(),
		e.UserID.String(),
		e.Day.Format(models.DayFormat),
		e.Count,
		e.Goal,
	)
	if err != nil {
		return fmt.Errorf("add steps: %w", err)
	}
	return nil
}

// AddSleep stores a sleep entry.
func (d *DB) AddSleep(e *models.SleepEntry) error {
	query := `INSERT INTO sleep (id, user_id, day, duration_hours, quality) VALUES (?, ?, ?, ?, ?)`
	_, err := d.db.Exec(query,
		e.ID.String(),
		e.UserID.String(),
		e.Day.Format(models.DayFormat),
		e.DurationHours,
		e.Quality,
	)
	if err != nil {
		return fmt.Errorf("add sleep: %w", err)
	}
	return nil
}

// AddFood stores a food entry. Meal types are normalized to lowercase.
func (d *DB) AddFood(e *models.FoodEntry) error {
	query := `INSERT INTO food (id, user_id, day, name, calories, meal_type) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := d.db.Exec(query,
		e.ID.String(),
		e.UserID.String(),
		e.Day.Format(models.DayFormat),
		e.Name,
		e.Calories,
		strings.ToLower(e.MealType),
	)
	if err != nil {
		return fmt.Errorf("add food: %w", err)
	}
	return nil
}

// AddWorkout stores a workout entry.
func (d *DB) AddWorkout(e *models.WorkoutEntry) error {
	query := `INSERT INTO workouts (id, user_id, day, exercise, weight_kg, sets, reps) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := d.db.Exec(query,
		e.ID.String(),
		e.UserID.String(),
		e.Day.Format(models.DayFormat),
		e.Exercise,
		e.WeightKg,
		e.Sets,
		e.Reps,
	)
	if err != nil {
		return fmt.Errorf("add workout: %w", err)
	}
	return nil
}

// AddMeasurement stores a body measurement.
func (d *DB) AddMeasurement(m *models.Measurement) error {
	query := `INSERT INTO measurements (id, user_id, day, height_cm, weight_kg) VALUES (?, ?, ?, ?, ?)`
	_, err := d.db.Exec(query,
		m.ID.String(),
		m.UserID.String(),
		m.Day.Format(models.DayFormat),
		m.HeightCm,
		m.WeightKg,
	)
	if err != nil {
		return fmt.Errorf("add measurement: %w", err)
	}
	return nil
}

// ActivityRow is one line of the unified recent-activity feed.
type ActivityRow struct {
	Day     time.Time
	Kind    string
	Detail  string
	Value   float64
	Unit    string
}

// ListActivity returns the most recent log entries across all tables,
// newest first.
func (d *DB) ListActivity(userID uuid.UUID, limit int) ([]ActivityRow, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT day, 'steps' AS kind, '' AS detail, CAST(count AS REAL) AS value, 'steps' AS unit, rowid
		FROM steps WHERE user_id = ?
		UNION ALL
		SELECT day, 'sleep', '', duration_hours, 'hours', rowid FROM sleep WHERE user_id = ?
		UNION ALL
		SELECT day, 'food', name, CAST(calories AS REAL), 'kcal', rowid FROM food WHERE user_id = ?
		UNION ALL
		SELECT day, 'workout', exercise, weight_kg * sets * reps, 'kg moved', rowid FROM workouts WHERE user_id = ?
		UNION ALL
		SELECT day, 'measurement', '', weight_kg, 'kg', rowid FROM measurements WHERE user_id = ?
		ORDER BY day DESC, rowid DESC
		LIMIT ?
	`
	uid := userID.String()
	rows, err := d.db.Query(query, uid, uid, uid, uid, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var out []ActivityRow
	for rows.Next() {
		var r ActivityRow
		var day string
		var rowid int64
		if err := rows.Scan(&day, &r.Kind, &r.Detail, &r.Value, &r.Unit, &rowid); err != nil {
			return nil, fmt.Errorf("list activity: %w", err)
		}
		if r.Day, err = time.ParseInLocation(models.DayFormat, day, time.Local); err != nil {
			return nil, fmt.Errorf("list activity: parse day: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
