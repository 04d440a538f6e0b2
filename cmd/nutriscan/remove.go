// ABOUTME: CLI command for removing journal entries.
// ABOUTME: Removes by the index shown in 'nutriscan list'.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/nutriscan/internal/journal"
)

var removeDate string

var removeCmd = &cobra.Command{
	Use:     "remove <index>",
	Aliases: []string{"rm", "del"},
	Short:   "Remove a journal entry",
	Long: `Remove a food entry from a day's journal by its index.

Indexes are shown in the first column of 'nutriscan list' output and are
zero-based. Remaining entries keep their relative order.

EXAMPLES:

  nutriscan remove 0                    # Remove today's first entry
  nutriscan rm 2 --date 2026-08-30      # Remove from a past day`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index: %s", args[0])
		}

		date, err := resolveDateFlag(removeDate)
		if err != nil {
			return err
		}

		j := gateway.Journal(date)
		if index < 0 || index >= len(j.Foods) {
			return fmt.Errorf("index %d out of range: the day has %d entries", index, len(j.Foods))
		}
		removed := j.Foods[index]

		if err := journal.RemoveEntry(j, index); err != nil {
			return err
		}
		if err := gateway.PutJournal(date, j); err != nil {
			return fmt.Errorf("failed to save journal: %w", err)
		}

		color.Yellow("✗ Removed %s", removed.Name)
		fmt.Printf("  %.0fg, %.0f kcal\n", removed.AmountGrams, journal.EntryCalories(removed))

		return nil
	},
}

func init() {
	removeCmd.Flags().StringVarP(&removeDate, "date", "d", "", "date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(removeCmd)
}
