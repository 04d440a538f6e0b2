// ABOUTME: CLI command for logging foods into the daily journal.
// ABOUTME: Snapshots catalog nutrition at log time, per-100g scaled by amount.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/nutriscan/internal/catalog"
	"github.com/harperreed/nutriscan/internal/journal"
	"github.com/harperreed/nutriscan/internal/models"
	"github.com/harperreed/nutriscan/internal/storage"
)

var (
	addMeal string
	addDate string
)

var addCmd = &cobra.Command{
	Use:     "add <food> <grams>",
	Aliases: []string{"a", "log"},
	Short:   "Log a food",
	Long: `Log a catalog food into the daily journal. Nutrition is snapshotted
from the catalog at log time; later catalog changes never affect old entries.

The food name must match a catalog entry exactly. Use 'nutriscan search'
to find the right name.

EXAMPLES:

  nutriscan add "Nasi Putih" 150
  nutriscan add "Mie Instan" 80 --meal dinner
  nutriscan add "Pisang" 100 --meal snack --date 2026-08-30`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		food, ok := catalog.FoodByName(args[0])
		if !ok {
			return fmt.Errorf("food not found in catalog: %s (try 'nutriscan search')", args[0])
		}

		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %s", args[1])
		}

		meal := models.MealOther
		if addMeal != "" {
			if !models.IsValidMealSlot(addMeal) {
				return fmt.Errorf("unknown meal slot: %s (use breakfast, lunch, dinner, snack, or other)", addMeal)
			}
			meal = models.MealSlot(addMeal)
		}

		date, err := resolveDateFlag(addDate)
		if err != nil {
			return err
		}

		j := gateway.Journal(date)
		entry, err := journal.AddEntry(j, food, amount, meal)
		if err != nil {
			return err
		}
		if err := gateway.PutJournal(date, j); err != nil {
			return fmt.Errorf("failed to save journal: %w", err)
		}

		color.Green("✓ Logged %s", entry.Name)
		fmt.Printf("  %s %.0fg, %.0f kcal (%s)\n",
			color.New(color.Faint).Sprint(entry.ID.String()[:8]),
			entry.AmountGrams, journal.EntryCalories(entry),
			models.MealSlotLabels[entry.Meal])

		return nil
	},
}

// resolveDateFlag defaults an empty date flag to today and accepts the
// "today"/"yesterday" shorthands.
func resolveDateFlag(s string) (string, error) {
	switch s {
	case "", "today":
		return storage.Today(), nil
	case "yesterday":
		return time.Now().AddDate(0, 0, -1).Format(storage.DateLayout), nil
	}
	if _, err := time.Parse(storage.DateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", s)
	}
	return s, nil
}

func init() {
	addCmd.Flags().StringVarP(&addMeal, "meal", "m", "", "meal slot (breakfast, lunch, dinner, snack, other)")
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(addCmd)
}
