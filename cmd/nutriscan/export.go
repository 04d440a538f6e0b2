// ABOUTME: CLI commands for exporting and importing nutriscan data.
// ABOUTME: Supports JSON and YAML snapshot formats.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harperreed/nutriscan/internal/storage"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export all data",
	Long: `Export all nutriscan data in one versioned snapshot.

FORMATS:

  json    Full JSON export (suitable for backup/restore)
  yaml    YAML export (human-readable)

EXAMPLES:

  nutriscan export json                   # Export all data as JSON
  nutriscan export json -o backup.json    # Save to file
  nutriscan export yaml                   # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot := gateway.ExportAll()

		var data []byte
		var err error
		switch args[0] {
		case "json":
			data, err = json.MarshalIndent(snapshot, "", "  ")
		case "yaml":
			data, err = yaml.Marshal(snapshot)
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON snapshot",
	Long: `Import nutriscan data from a previously exported JSON snapshot.
Existing slots and days are overwritten by the snapshot's contents.

EXAMPLES:

  nutriscan import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var snapshot storage.ExportData
		if err := json.Unmarshal(raw, &snapshot); err != nil {
			return fmt.Errorf("invalid snapshot: %w", err)
		}
		if err := gateway.ImportAll(&snapshot); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
