// ABOUTME: CLI command listing recent log entries across all tables.
// ABOUTME: Newest first; each line shows day, kind, detail, and value.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rehealth/internal/models"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List recent log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := activeUser()
		if err != nil {
			return err
		}

		rows, err := db.ListActivity(u.ID, listLimit)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No entries yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range rows {
			detail := ""
			if r.Detail != "" {
				detail = faint.Sprintf(" (%s)", truncate(r.Detail, 30))
			}
			fmt.Printf("%s %s %.1f %s%s\n",
				faint.Sprint(r.Day.Format(models.DayFormat)),
				padRight(r.Kind, 12),
				r.Value,
				r.Unit,
				detail)
		}
		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max entries to show")
	rootCmd.AddCommand(listCmd)
}
