// ABOUTME: CLI command rendering the 7-day trend chart for a metric.
// ABOUTME: Uses asciigraph for the plot and MM/DD labels for the axis.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"rehealth/internal/models"
	"rehealth/internal/report"
	"rehealth/internal/stats"
)

var trendCmd = &cobra.Command{
	Use:     "trend <steps|calories|sleep>",
	Aliases: []string{"t"},
	Short:   "Show the 7-day trend for a metric",
	Long: `Show the trailing 7-day trend for a metric as a terminal chart.

Days without data show as 0. A logged 0 looks the same as a missing day;
the chart cannot tell them apart.

Examples:
  rehealth trend steps
  rehealth trend sleep`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMetricKind(args[0]) {
			return fmt.Errorf("unknown metric %q, want steps, calories, or sleep", args[0])
		}
		kind := models.MetricKind(args[0])

		u, err := activeUser()
		if err != nil {
			return err
		}

		w, err := report.BuildTrend(db, u.ID, kind, models.Today())
		if err != nil {
			return fmt.Errorf("failed to build trend: %w", err)
		}

		bold := color.New(color.Bold)
		bold.Printf("%s, last %d days (%s)\n\n", stats.AxisTitle(kind), len(w.Values), stats.AxisUnit(kind))

		chart := asciigraph.Plot(w.Values,
			asciigraph.Height(8),
			asciigraph.Width(7*8),
		)
		fmt.Println(chart)
		fmt.Println()
		fmt.Printf("        %s\n", strings.Join(w.Labels, "   "))

		faint := color.New(color.Faint)
		for i, v := range w.Values {
			faint.Printf("  day %d  %s  %.1f\n", i+1, w.Labels[i], v)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)
}
