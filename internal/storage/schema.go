// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: One table per log type: steps, sleep, food, workouts, measurements.
package storage

// initSchema creates the database schema if it does not exist.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		sex TEXT,
		date_of_birth TEXT,
		joined_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS steps (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		day TEXT NOT NULL,
		count INTEGER NOT NULL,
		goal INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS sleep (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		day TEXT NOT NULL,
		duration_hours REAL NOT NULL,
		quality INTEGER NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS food (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		day TEXT NOT NULL,
		name TEXT NOT NULL,
		calories INTEGER NOT NULL,
		meal_type TEXT,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		day TEXT NOT NULL,
		exercise TEXT NOT NULL,
		weight_kg REAL NOT NULL,
		sets INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS measurements (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		day TEXT NOT NULL,
		height_cm REAL NOT NULL,
		weight_kg REAL NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE INDEX IF NOT EXISTS idx_steps_user_day ON steps(user_id, day);
	CREATE INDEX IF NOT EXISTS idx_sleep_user_day ON sleep(user_id, day);
	CREATE INDEX IF NOT EXISTS idx_food_user_day ON food(user_id, day);
	CREATE INDEX IF NOT EXISTS idx_workouts_user_day ON workouts(user_id, day);
	CREATE INDEX IF NOT EXISTS idx_measurements_user_day ON measurements(user_id, day);
	`

	_, err := d.db.Exec(schema)
	return err
}
