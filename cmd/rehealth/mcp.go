// ABOUTME: CLI command starting the MCP stdio server.
// ABOUTME: Serves the active profile to MCP-compatible AI assistants.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rehealth/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Model Context Protocol server",
	Long: `Start an MCP server on stdio exposing the active profile.

Tools: log_steps, log_sleep, log_food, log_workout, log_measurement,
get_dashboard, get_trend, get_achievements.

Resources: rehealth://today, rehealth://rank.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := activeUser()
		if err != nil {
			return err
		}

		server, err := mcp.NewServer(db, u)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
