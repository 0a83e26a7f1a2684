// ABOUTME: Full-history export for one user in JSON or YAML.
// ABOUTME: A pure formatting concern; mirrors the raw tables, no aggregation.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"rehealth/internal/models"
)

// ExportData is the full dump format for one user's history.
type ExportData struct {
	Version      string                 `json:"version" yaml:"version"`
	ExportedAt   time.Time              `json:"exported_at" yaml:"exported_at"`
	Tool         string                 `json:"tool" yaml:"tool"`
	Username     string                 `json:"username" yaml:"username"`
	Steps        []*models.StepEntry    `json:"steps" yaml:"steps"`
	Sleep        []*models.SleepEntry   `json:"sleep" yaml:"sleep"`
	Food         []*models.FoodEntry    `json:"food" yaml:"food"`
	Workouts     []*models.WorkoutEntry `json:"workouts" yaml:"workouts"`
	Measurements []*models.Measurement  `json:"measurements" yaml:"measurements"`
}

// Marshal renders the export in the requested format ("json" or "yaml").
func (e *ExportData) Marshal(format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(e, "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(e)
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
}

// GetAllData retrieves a user's entire history for export.
func (d *DB) GetAllData(u *models.User) (*ExportData, error) {
	out := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "rehealth",
		Username:   u.Username,
	}
	var err error

	if out.Steps, err = d.listSteps(u.ID); err != nil {
		return nil, fmt.Errorf("export steps: %w", err)
	}
	if out.Sleep, err = d.listSleep(u.ID); err != nil {
		return nil, fmt.Errorf("export sleep: %w", err)
	}
	if out.Food, err = d.listFood(u.ID); err != nil {
		return nil, fmt.Errorf("export food: %w", err)
	}
	if out.Workouts, err = d.listWorkouts(u.ID); err != nil {
		return nil, fmt.Errorf("export workouts: %w", err)
	}
	if out.Measurements, err = d.listMeasurements(u.ID); err != nil {
		return nil, fmt.Errorf("export measurements: %w", err)
	}
	return out, nil
}

func (d *DB) listSteps(userID uuid.UUID) ([]*models.StepEntry, error) {
	rows, err := d.db.Query(
		`SELECT id, day, count, goal FROM steps WHERE user_id = ? ORDER BY day ASC, rowid ASC`,
		userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.StepEntry
	for rows.Next() {
		e := &models.StepEntry{UserID: userID}
		var id, day string
		if err := rows.Scan(&id, &day, &e.Count, &e.Goal); err != nil {
			return nil, err
		}
		if e.ID, e.Day, err = parseRowKey(id, day); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (d *DB) listSleep(userID uuid.UUID) ([]*models.SleepEntry, error) {
	rows, err := d.db.Query(
		`SELECT id, day, duration_hours, quality FROM sleep WHERE user_id = ? ORDER BY day ASC, rowid ASC`,
		userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.SleepEntry
	for rows.Next() {
		e := &models.SleepEntry{UserID: userID}
		var id, day string
		if err := rows.Scan(&id, &day, &e.DurationHours, &e.Quality); err != nil {
			return nil, err
		}
		if e.ID, e.Day, err = parseRowKey(id, day); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (d *DB) listFood(userID uuid.UUID) ([]*models.FoodEntry, error) {
	rows, err := d.db.Query(
		`SELECT id, day, name, calories, COALESCE(meal_type, '') FROM food WHERE user_id = ? ORDER BY day ASC, rowid ASC`,
		userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.FoodEntry
	for rows.Next() {
		e := &models.FoodEntry{UserID: userID}
		var id, day string
		if err := rows.Scan(&id, &day, &e.Name, &e.Calories, &e.MealType); err != nil {
			return nil, err
		}
		if e.ID, e.Day, err = parseRowKey(id, day); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (d *DB) listWorkouts(userID uuid.UUID) ([]*models.WorkoutEntry, error) {
	rows, err := d.db.Query(
		`SELECT id, day, exercise, weight_kg, sets, reps FROM workouts WHERE user_id = ? ORDER BY day ASC, rowid ASC`,
		userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.WorkoutEntry
	for rows.Next() {
		e := &models.WorkoutEntry{UserID: userID}
		var id, day string
		if err := rows.Scan(&id, &day, &e.Exercise, &e.WeightKg, &e.Sets, &e.Reps); err != nil {
			return nil, err
		}
		if e.ID, e.Day, err = parseRowKey(id, day); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (d *DB) listMeasurements(userID uuid.UUID) ([]*models.Measurement, error) {
	rows, err := d.db.Query(
		`SELECT id, day, height_cm, weight_kg FROM measurements WHERE user_id = ? ORDER BY day ASC, rowid ASC`,
		userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Measurement
	for rows.Next() {
		m := &models.Measurement{UserID: userID}
		var id, day string
		if err := rows.Scan(&id, &day, &m.HeightCm, &m.WeightKg); err != nil {
			return nil, err
		}
		if m.ID, m.Day, err = parseRowKey(id, day); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func parseRowKey(id, day string) (uuid.UUID, time.Time, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("parse id: %w", err)
	}
	d, err := time.ParseInLocation(models.DayFormat, day, time.Local)
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("parse day: %w", err)
	}
	return uid, d, nil
}
