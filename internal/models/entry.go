// ABOUTME: Log entry models: steps, sleep, food, workouts, body measurements.
// ABOUTME: One struct per table; entries are append-only and dated by calendar day.
package models

import (
	"time"

	"github.com/google/uuid"
)

// StepEntry is a step count logged for a day. Multiple entries per day are
// allowed and are summed at query time.
type StepEntry struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Day    time.Time
	Count  int
	Goal   int
}

// NewStepEntry creates a step entry dated today.
func NewStepEntry(userID uuid.UUID, count int) *StepEntry {
	return &StepEntry{
		ID:     uuid.New(),
		UserID: userID,
		Day:    Today(),
		Count:  count,
	}
}

// WithGoal sets the daily step goal recorded alongside the count.
func (e *StepEntry) WithGoal(goal int) *StepEntry {
	e.Goal = goal
	return e
}

// WithDay backdates the entry to a specific calendar day.
func (e *StepEntry) WithDay(day time.Time) *StepEntry {
	e.Day = Midnight(day)
	return e
}

// SleepEntry records one night of sleep. One entry per day.
type SleepEntry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Day           time.Time
	DurationHours float64
	Quality       int // 1..5
}

// NewSleepEntry creates a sleep entry dated today.
func NewSleepEntry(userID uuid.UUID, durationHours float64, quality int) *SleepEntry {
	return &SleepEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Day:           Today(),
		DurationHours: durationHours,
		Quality:       quality,
	}
}

// WithDay backdates the entry to a specific calendar day.
func (e *SleepEntry) WithDay(day time.Time) *SleepEntry {
	e.Day = Midnight(day)
	return e
}

// FoodEntry records a consumed food item and its calories.
type FoodEntry struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Day      time.Time
	Name     string
	Calories int
	MealType string // breakfast, lunch, dinner, snack
}

// NewFoodEntry creates a food entry dated today.
func NewFoodEntry(userID uuid.UUID, name string, calories int) *FoodEntry {
	return &FoodEntry{
		ID:       uuid.New(),
		UserID:   userID,
		Day:      Today(),
		Name:     name,
		Calories: calories,
	}
}

// WithMealType sets the meal type, normalized to lowercase by the storage layer.
func (e *FoodEntry) WithMealType(mealType string) *FoodEntry {
	e.MealType = mealType
	return e
}

// WithDay backdates the entry to a specific calendar day.
func (e *FoodEntry) WithDay(day time.Time) *FoodEntry {
	e.Day = Midnight(day)
	return e
}

// WorkoutEntry records one resistance-training session of a single exercise.
type WorkoutEntry struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Day      time.Time
	Exercise string
	WeightKg float64
	Sets     int
	Reps     int
}

// Volume returns the total weight moved in the session (weight x sets x reps).
func (e *WorkoutEntry) Volume() float64 {
	return e.WeightKg * float64(e.Sets) * float64(e.Reps)
}

// NewWorkoutEntry creates a workout entry dated today.
func NewWorkoutEntry(userID uuid.UUID, exercise string, weightKg float64, sets, reps int) *WorkoutEntry {
	return &WorkoutEntry{
		ID:       uuid.New(),
		UserID:   userID,
		Day:      Today(),
		Exercise: exercise,
		WeightKg: weightKg,
		Sets:     sets,
		Reps:     reps,
	}
}

// WithDay backdates the entry to a specific calendar day.
func (e *WorkoutEntry) WithDay(day time.Time) *WorkoutEntry {
	e.Day = Midnight(day)
	return e
}

// Measurement records height and weight on a given day. The latest row is
// the user's current body measurement.
type Measurement struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Day      time.Time
	HeightCm float64
	WeightKg float64
}

// NewMeasurement creates a measurement dated today.
func NewMeasurement(userID uuid.UUID, heightCm, weightKg float64) *Measurement {
	return &Measurement{
		ID:       uuid.New(),
		UserID:   userID,
		Day:      Today(),
		HeightCm: heightCm,
		WeightKg: weightKg,
	}
}

// WithDay backdates the measurement to a specific calendar day.
func (m *Measurement) WithDay(day time.Time) *Measurement {
	m.Day = Midnight(day)
	return m
}
