// ABOUTME: CLI command for food additive lookups.
// ABOUTME: Shows E-number details with risk level coloring.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/nutriscan/internal/catalog"
)

var additiveCmd = &cobra.Command{
	Use:     "additive <code>",
	Aliases: []string{"e"},
	Short:   "Look up a food additive",
	Long: `Look up a food additive by its E-number code. Unknown codes return a
generic caution placeholder rather than an error.

EXAMPLES:

  nutriscan additive E621      # Monosodium glutamate
  nutriscan additive e102      # Case-insensitive`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info := catalog.AdditiveInfo(args[0])

		bold := color.New(color.Bold)
		bold.Printf("%s  %s\n", info.Code, info.Name)
		if info.Formula != "" {
			fmt.Printf("  Formula    %s\n", info.Formula)
		}
		if info.Structure != "" {
			fmt.Printf("  Structure  %s\n", info.Structure)
		}
		fmt.Printf("  Risk       %s\n", riskColored(info.Level))
		fmt.Printf("  %s\n", info.Desc)
		fmt.Printf("  %s\n", info.Impact)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(additiveCmd)
}
