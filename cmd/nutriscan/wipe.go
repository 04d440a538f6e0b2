// ABOUTME: CLI command for wiping all stored nutriscan data.
// ABOUTME: Prefix-scoped delete; keys owned by other tools are untouched.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var wipeForce bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all stored data",
	Long: `Delete all nutriscan data: profile, theme, streak, and every day's
journal. Only nutriscan-owned keys are removed; anything else sharing
the store survives.

There is no undo. Consider 'nutriscan export json -o backup.json' first.

EXAMPLES:

  nutriscan wipe            # Asks for confirmation
  nutriscan wipe --force    # No confirmation`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !wipeForce {
			fmt.Print("This deletes ALL nutriscan data. Type 'yes' to continue: ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := gateway.WipeAll(); err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		color.Yellow("✗ All nutriscan data deleted")
		return nil
	},
}

func init() {
	wipeCmd.Flags().BoolVarP(&wipeForce, "force", "f", false, "skip confirmation")
	rootCmd.AddCommand(wipeCmd)
}
