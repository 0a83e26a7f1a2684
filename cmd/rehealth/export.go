// ABOUTME: CLI command exporting a user's full history to JSON or YAML.
// ABOUTME: Writes to stdout or a file given with --output.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active profile's history",
	Long: `Export all logged entries for the active profile.

Examples:
  rehealth export                          # JSON to stdout
  rehealth export --format yaml            # YAML to stdout
  rehealth export -o backup.json           # JSON to a file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := activeUser()
		if err != nil {
			return err
		}

		data, err := db.GetAllData(u)
		if err != nil {
			return fmt.Errorf("failed to collect data: %w", err)
		}

		out, err := data.Marshal(exportFormat)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			fmt.Println(string(out))
			return nil
		}

		if err := os.WriteFile(exportOutput, out, 0600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format (json or yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (stdout when omitted)")
	rootCmd.AddCommand(exportCmd)
}
