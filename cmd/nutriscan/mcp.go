// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/nutriscan/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CONFIGURATION:

  {
    "mcpServers": {
      "nutriscan": {
        "command": "nutriscan",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  search_foods    Search the food catalog
  additive_info   Look up an additive by E-number
  log_food        Log a food into the daily journal
  remove_food     Remove a journal entry by index
  add_water       Record a glass of water
  day_summary     A day's totals, progress, and additives
  weekly_report   Rolling 7-day report
  compute_needs   BMR/TDEE/BMI/macro targets
  set_profile     Save the user profile

AVAILABLE RESOURCES:

  nutriscan://today      Today's journal with progress
  nutriscan://week       Rolling 7-day report
  nutriscan://catalog    The food catalog by category`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(gateway)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
