// ABOUTME: CLI commands for logging entries: steps, sleep, food, workout, measurement.
// ABOUTME: Entries default to today; --day backdates them.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rehealth/internal/models"
)

var (
	logDay      string
	logGoal     int
	logMealType string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a health entry",
	Long: `Log a health entry for today (or a past day with --day).

Examples:
  rehealth log steps 10000
  rehealth log steps 8000 --goal 10000 --day 2025-06-01
  rehealth log sleep 7.5 4
  rehealth log food "chicken salad" 450 --meal lunch
  rehealth log workout squat 100 3 10
  rehealth log measurement 175 70.5`,
}

var logStepsCmd = &cobra.Command{
	Use:   "steps <count>",
	Short: "Log a step count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := activeUser()
		if err != nil {
			return err
		}
		count, err := strconv.Atoi(args[0])
		if err != nil || count < 0 {
			return fmt.Errorf("invalid step count: %s", args[0])
		}
		day, err := resolveDay()
		if err != nil {
			return err
		}

		e := models.NewStepEntry(u.ID, count).WithDay(day)
		if logGoal > 0 {
			e.WithGoal(logGoal)
		}
		if err := db.AddSteps(e); err != nil {
			return fmt.Errorf("failed to log steps: %w", err)
		}

		color.Green("✓ Logged %d steps for %s", count, day.Format(models.DayFormat))
		return nil
	},
}

var logSleepCmd = &cobra.Command{
	Use:   "sleep <hours> <quality 1-5>",
	Short: "Log one night of sleep",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := activeUser()
		if err != nil {
			return err
		}
		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil || hours < 0 {
			return fmt.Errorf("invalid sleep duration: %s", args[0])
		}
		quality, err := strconv.Atoi(args[1])
		if err != nil || quality < 1 || quality > 5 {
			return fmt.Errorf("invalid sleep quality (want 1-5): %s", args[1])
		}
		day, err := resolveDay()
		if err != nil {
			return err
		}

		e := models.NewSleepEntry(u.ID, hours, quality).WithDay(day)
		if err := db.AddSleep(e); err != nil {
			return fmt.Errorf("failed to log sleep: %w", err)
		}

		color.Green("✓ Logged %.1f hours of sleep (quality %d) for %s", hours, quality, day.Format(models.DayFormat))
		return nil
	},
}

var logFoodCmd = &cobra.Command{
	Use:   "food <name> <calories>",
	Short: "Log a consumed food item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := activeUser()
		if err != nil {
			return err
		}
		calories, err := strconv.Atoi(args[1])
		if err != nil || calories < 0 {
			return fmt.Errorf("invalid calories: %s", args[1])
		}
		day, err := resolveDay()
		if err != nil {
			return err
		}

		e := models.NewFoodEntry(u.ID, args[0], calories).WithDay(day)
		if logMealType != "" {
			e.WithMealType(logMealType)
		}
		if err := db.AddFood(e); err != nil {
			return fmt.Errorf("failed to log food: %w", err)
		}

		color.Green("✓ Logged %s (%d kcal) for %s", args[0], calories, day.Format(models.DayFormat))
		return nil
	},
}

var logWorkoutCmd = &cobra.Command{
	Use:   "workout <exercise> <weight-kg> <sets> <reps>",
	Short: "Log a resistance-training session",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := activeUser()
		if err != nil {
			return err
		}
		weight, err := strconv.ParseFloat(args[1], 64)
		if err != nil || weight < 0 {
			return fmt.Errorf("invalid weight: %s", args[1])
		}
		sets, err := strconv.Atoi(args[2])
		if err != nil || sets <= 0 {
			return fmt.Errorf("invalid sets: %s", args[2])
		}
		reps, err := strconv.Atoi(args[3])
		if err != nil || reps <= 0 {
			return fmt.Errorf("invalid reps: %s", args[3])
		}
		day, err := resolveDay()
		if err != nil {
			return err
		}

		e := models.NewWorkoutEntry(u.ID, args[0], weight, sets, reps).WithDay(day)
		if err := db.AddWorkout(e); err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}

		color.Green("✓ Logged %s: %.1f kg x %d x %d (%.0f kg moved) for %s",
			args[0], weight, sets, reps, e.Volume(), day.Format(models.DayFormat))
		return nil
	},
}

var logMeasurementCmd = &cobra.Command{
	Use:   "measurement <height-cm> <weight-kg>",
	Short: "Log a body measurement",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := activeUser()
		if err != nil {
			return err
		}
		height, err := strconv.ParseFloat(args[0], 64)
		if err != nil || height <= 0 {
			return fmt.Errorf("invalid height: %s", args[0])
		}
		weight, err := strconv.ParseFloat(args[1], 64)
		if err != nil || weight <= 0 {
			return fmt.Errorf("invalid weight: %s", args[1])
		}
		day, err := resolveDay()
		if err != nil {
			return err
		}

		m := models.NewMeasurement(u.ID, height, weight).WithDay(day)
		if err := db.AddMeasurement(m); err != nil {
			return fmt.Errorf("failed to log measurement: %w", err)
		}

		color.Green("✓ Logged measurement %.1f cm / %.1f kg for %s", height, weight, day.Format(models.DayFormat))
		return nil
	},
}

func resolveDay() (time.Time, error) {
	if logDay == "" {
		return models.Today(), nil
	}
	t, err := time.ParseInLocation(models.DayFormat, logDay, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, want YYYY-MM-DD", logDay)
	}
	return t, nil
}

func init() {
	logCmd.PersistentFlags().StringVar(&logDay, "day", "", "calendar day (YYYY-MM-DD), defaults to today")
	logStepsCmd.Flags().IntVar(&logGoal, "goal", 0, "daily step goal")
	logFoodCmd.Flags().StringVar(&logMealType, "meal", "", "meal type (breakfast, lunch, dinner, snack)")

	logCmd.AddCommand(logStepsCmd)
	logCmd.AddCommand(logSleepCmd)
	logCmd.AddCommand(logFoodCmd)
	logCmd.AddCommand(logWorkoutCmd)
	logCmd.AddCommand(logMeasurementCmd)
	rootCmd.AddCommand(logCmd)
}
