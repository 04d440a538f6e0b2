// ABOUTME: Root Cobra command for nutriscan CLI.
// ABOUTME: Handles gateway lifecycle and streak touch via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperreed/nutriscan/internal/config"
	"github.com/harperreed/nutriscan/internal/report"
	"github.com/harperreed/nutriscan/internal/storage"
)

var (
	cfg     *config.Config
	gateway *storage.Gateway
)

var rootCmd = &cobra.Command{
	Use:   "nutriscan",
	Short: "Nutrition tracker with additive awareness",
	Long: `Nutriscan is a CLI tool for tracking daily nutrition against
calculated needs, with food additive (E-number) awareness.

QUICK START:

  $ nutriscan profile set --age 25 --weight 70 --height 175 --sex male
  $ nutriscan profile                     # Show profile and daily needs
  $ nutriscan search ayam                 # Search the food catalog
  $ nutriscan add "Nasi Putih" 150        # Log 150g of white rice
  $ nutriscan list                        # Today's journal and progress
  $ nutriscan water                       # Log a glass of water

REPORTS:

  $ nutriscan week                        # Rolling 7-day report
  $ nutriscan streak                      # Consecutive-day streak
  $ nutriscan additive E621               # Look up an additive

MCP INTEGRATION:

  Run 'nutriscan mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "nutriscan": { "command": "nutriscan", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives under ~/.local/share/nutriscan (Badger by default, SQLite
  via config). Set NUTRISCAN_BACKEND or NUTRISCAN_DATA_DIR to override.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch storage skip the gateway
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "config" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		gateway, err = cfg.OpenGateway()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		// Every visit advances the usage streak
		touched := report.Touch(gateway.Streak(), time.Now())
		if err := gateway.PutStreak(touched); err != nil {
			return fmt.Errorf("failed to save streak: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if gateway != nil {
			return gateway.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
