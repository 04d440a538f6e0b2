// ABOUTME: CLI command for the display theme preference.
// ABOUTME: Persists a single theme string used by UI frontends.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the display theme",
	Long: `Show or set the persisted display theme preference.

EXAMPLES:

  nutriscan theme          # Show the current theme
  nutriscan theme dark     # Switch to dark`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			theme := gateway.Theme()
			if theme == "" {
				theme = "light"
			}
			fmt.Printf("Theme: %s\n", theme)
			return nil
		}

		theme := args[0]
		if theme != "light" && theme != "dark" {
			return fmt.Errorf("unknown theme: %s (use light or dark)", theme)
		}
		if err := gateway.PutTheme(theme); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}

		color.Green("✓ Theme set to %s", theme)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
