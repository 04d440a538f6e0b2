// ABOUTME: CLI command for viewing and updating tool configuration.
// ABOUTME: Persists backend and data directory to the XDG config file.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/nutriscan/internal/config"
)

var (
	configBackend string
	configDataDir string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
	Long: `Show or update nutriscan configuration. With no flags, prints the
current settings and where they come from.

Environment variables NUTRISCAN_BACKEND and NUTRISCAN_DATA_DIR override
the config file at runtime without changing it.

EXAMPLES:

  nutriscan config                          # Show settings
  nutriscan config --backend sqlite         # Switch to SQLite
  nutriscan config --data-dir ~/nutrition   # Move the data directory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		changed := false
		if configBackend != "" {
			if configBackend != "badger" && configBackend != "sqlite" {
				return fmt.Errorf("unknown backend: %s (use badger or sqlite)", configBackend)
			}
			c.Backend = configBackend
			changed = true
		}
		if configDataDir != "" {
			c.DataDir = configDataDir
			changed = true
		}

		if changed {
			if err := c.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			color.Green("✓ Config saved to %s", config.GetConfigPath())
		}

		fmt.Printf("  Backend   %s\n", c.GetBackend())
		fmt.Printf("  Data dir  %s\n", c.GetDataDir())
		fmt.Printf("  Config    %s\n", config.GetConfigPath())

		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&configBackend, "backend", "", "storage backend (badger or sqlite)")
	configCmd.Flags().StringVar(&configDataDir, "data-dir", "", "data directory")
	rootCmd.AddCommand(configCmd)
}
