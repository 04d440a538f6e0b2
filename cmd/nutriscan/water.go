// ABOUTME: CLI commands for daily water tracking.
// ABOUTME: One glass per invocation, capped at the daily target, with reset.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/nutriscan/internal/journal"
	"github.com/harperreed/nutriscan/internal/models"
)

var waterDate string

var waterCmd = &cobra.Command{
	Use:     "water",
	Aliases: []string{"w"},
	Short:   "Log a glass of water",
	Long: `Log one glass of water (250 ml) for the day. The daily target is
8 glasses; logging past the target is rejected.

EXAMPLES:

  nutriscan water              # One more glass today
  nutriscan water reset        # Zero today's counter`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDateFlag(waterDate)
		if err != nil {
			return err
		}

		j := gateway.Journal(date)
		if err := journal.AddWater(j); err != nil {
			return err
		}
		if err := gateway.PutJournal(date, j); err != nil {
			return fmt.Errorf("failed to save journal: %w", err)
		}

		color.Cyan("✓ Water logged")
		fmt.Printf("  %d/%d glasses (%d ml, %.0f%%)\n",
			j.WaterGlasses, models.WaterTarget,
			journal.WaterML(j), journal.WaterProgressPercent(j))

		return nil
	},
}

var waterResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the day's water counter",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDateFlag(waterDate)
		if err != nil {
			return err
		}

		j := gateway.Journal(date)
		journal.ResetWater(j)
		if err := gateway.PutJournal(date, j); err != nil {
			return fmt.Errorf("failed to save journal: %w", err)
		}

		color.Yellow("✗ Water counter reset for %s", date)
		return nil
	},
}

func init() {
	waterCmd.PersistentFlags().StringVarP(&waterDate, "date", "d", "", "date (YYYY-MM-DD, default today)")
	waterCmd.AddCommand(waterResetCmd)
	rootCmd.AddCommand(waterCmd)
}
