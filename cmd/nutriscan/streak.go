// ABOUTME: CLI command for the consecutive-day usage streak.
// ABOUTME: Shows the count, level, and motivational message.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/nutriscan/internal/report"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the usage streak",
	Long: `Show the consecutive-day usage streak. Every nutriscan invocation
counts as a visit; missing a full day resets the streak to one.

Levels step up at 7 (Rajin), 30 (Pro), 100 (Master), and 365 (Legenda)
days.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := gateway.Streak()
		level := report.LevelFor(s.StreakCount)

		bold := color.New(color.Bold)
		bold.Printf("🔥 %d day streak\n", s.StreakCount)
		fmt.Printf("  Level: %s\n", level.Name)
		fmt.Printf("  %s\n", report.MessageFor(s.StreakCount))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
