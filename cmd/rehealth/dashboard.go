// ABOUTME: CLI command showing today's values at a glance.
// ABOUTME: Steps, calories in/burned, sleep rating, and BMI when measured.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rehealth/internal/models"
	"rehealth/internal/report"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d"},
	Short:   "Show today's metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := activeUser()
		if err != nil {
			return err
		}

		d, err := report.BuildDashboard(db, u.ID, models.Today())
		if err != nil {
			return fmt.Errorf("failed to build dashboard: %w", err)
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Printf("Hello %s\n", u.Username)
		faint.Printf("%s\n\n", d.Date.Format("Monday, 2 January 2006"))

		fmt.Printf("Steps:           %d\n", d.Steps)
		fmt.Printf("Calories in:     %d kcal\n", d.CaloriesIn)
		fmt.Printf("Calories burned: %.2f kcal\n", d.CaloriesBurned)

		if d.HasSleep {
			fmt.Printf("Sleep:           %.1f h (rating %.2f)\n", d.SleepHours, d.SleepRating)
		} else {
			faint.Println("Sleep:           not logged")
		}

		if d.HasMeasurement {
			fmt.Printf("BMI:             %.1f (%s)\n", d.BMI, d.BMICategory)
		} else {
			faint.Println("BMI:             no measurement yet")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
