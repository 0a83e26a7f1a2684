// ABOUTME: CLI command showing lifetime totals, score, and achievement rank.
// ABOUTME: Renders a progress bar toward the next tier.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rehealth/internal/report"
)

var rankCmd = &cobra.Command{
	Use:     "rank",
	Aliases: []string{"achievements", "r"},
	Short:   "Show lifetime totals and achievement rank",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := activeUser()
		if err != nil {
			return err
		}

		a, err := report.BuildAchievements(db, u.ID)
		if err != nil {
			return fmt.Errorf("failed to build achievements: %w", err)
		}

		bold := color.New(color.Bold)
		bold.Printf("%s's Hall of Fame\n\n", u.Username)

		fmt.Printf("Total steps taken:    %d\n", a.Totals.Steps)
		fmt.Printf("Total hours slept:    %.1f\n", a.Totals.SleepHours)
		fmt.Printf("Total weight lifted:  %.0f kg\n", a.Totals.WeightLiftedKg)
		fmt.Printf("Total calories eaten: %d\n\n", a.Totals.Calories)

		fmt.Printf("Score: %d\n", a.Score)
		color.Cyan("Rank:  %s\n", a.RankName)

		if a.NextRank == "" {
			color.Green("Top rank reached. Nothing left to climb.")
			return nil
		}

		fmt.Printf("\n%s  %.1f%% to %s\n", progressBar(a.ProgressPercent, 30), a.ProgressPercent, a.NextRank)
		return nil
	},
}

// progressBar renders a fixed-width bar like [#####.....].
func progressBar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func init() {
	rootCmd.AddCommand(rankCmd)
}
