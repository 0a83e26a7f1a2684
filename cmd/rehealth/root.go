// ABOUTME: Root Cobra command for the rehealth CLI.
// ABOUTME: Opens config and storage in PersistentPreRunE, closes in PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rehealth/internal/config"
	"rehealth/internal/models"
	"rehealth/internal/storage"
)

var (
	cfg *config.Config
	db  *storage.DB
)

var rootCmd = &cobra.Command{
	Use:   "rehealth",
	Short: "Personal health tracker with achievement ranks",
	Long: `ReHealth is a CLI tool for tracking daily health metrics.

WHAT IT TRACKS:

  Steps          daily step counts (plus an optional goal)
  Sleep          hours slept and a 1-5 quality rating
  Food           consumed items and their calories
  Workouts       resistance training: exercise, weight, sets, reps
  Measurements   height and weight (feeds BMI and calorie estimates)

QUICK START:

  $ rehealth user create frost          # Create a profile
  $ rehealth log steps 10000            # Log today's steps
  $ rehealth log sleep 7.5 4            # 7.5 hours, quality 4/5
  $ rehealth dashboard                  # Today at a glance
  $ rehealth trend steps                # 7-day chart
  $ rehealth rank                       # Lifetime totals and achievement rank

MCP INTEGRATION:

  Run 'rehealth mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "rehealth": { "command": "rehealth", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Entries are stored in SQLite at ~/.local/share/rehealth/rehealth.db.
  Override the location with data_dir in ~/.config/rehealth/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		db, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

// activeUser resolves the logged-in profile, failing with a hint when none.
func activeUser() (*models.User, error) {
	if cfg.CurrentUser == "" {
		return nil, fmt.Errorf("no active profile: run 'rehealth user login <name>' first")
	}
	u, err := db.GetUserByUsername(cfg.CurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %q: %w", cfg.CurrentUser, err)
	}
	return u, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
