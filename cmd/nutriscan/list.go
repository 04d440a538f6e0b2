// ABOUTME: CLI command for showing a day's journal.
// ABOUTME: Groups entries by meal and shows totals, progress, water, and additives.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/nutriscan/internal/calc"
	"github.com/harperreed/nutriscan/internal/catalog"
	"github.com/harperreed/nutriscan/internal/journal"
	"github.com/harperreed/nutriscan/internal/models"
)

var listDate string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l", "today"},
	Short:   "Show a day's journal",
	Long: `Show a day's food journal grouped by meal, with nutrition totals,
calorie target progress, water intake, and additives consumed.

Entry indexes shown in the first column are used with 'nutriscan remove'.

EXAMPLES:

  nutriscan list                    # Today's journal
  nutriscan list --date 2026-08-30  # A past day`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDateFlag(listDate)
		if err != nil {
			return err
		}

		j := gateway.Journal(date)
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Printf("Journal %s\n", date)
		if len(j.Foods) == 0 {
			fmt.Println("  No foods logged.")
		}

		// Stable meal order; index positions match the flat entry list
		indexes := make(map[string]int, len(j.Foods))
		for i, e := range j.Foods {
			indexes[e.ID.String()] = i
		}
		grouped := journal.GroupByMeal(j)
		for _, slot := range models.MealSlotOrder {
			entries, ok := grouped[slot]
			if !ok {
				continue
			}
			fmt.Printf("\n  %s\n", models.MealSlotLabels[slot])
			for _, e := range entries {
				fmt.Printf("  %s %s %.0fg  %.0f kcal\n",
					faint.Sprintf("[%d]", indexes[e.ID.String()]),
					padRight(e.Name, 24),
					e.AmountGrams, journal.EntryCalories(e))
			}
		}

		totals := journal.Sum(j.Foods)
		fmt.Println()
		bold.Println("Totals")
		fmt.Printf("  %.0f kcal  %.1fg protein  %.1fg fat  %.1fg carbs\n",
			totals.Calories, totals.Protein, totals.Fat, totals.Carbs)

		if p := gateway.Profile(); p != nil {
			needs := calc.DailyNeeds(*p)
			target := float64(needs.TargetCalories)
			percent := journal.ProgressPercent(totals.Calories, target)
			remaining := target - totals.Calories
			if remaining >= 0 {
				fmt.Printf("  Target: %d kcal (%.0f%%, %.0f kcal left)\n",
					needs.TargetCalories, percent, remaining)
			} else {
				color.Red("  Target: %d kcal (%.0f%%, %.0f kcal over)",
					needs.TargetCalories, percent, -remaining)
			}
			proteinLeft := float64(needs.Targets.ProteinG) - totals.Protein
			if proteinLeft < 0 {
				proteinLeft = 0
			}
			fmt.Printf("  Protein: %dg target (%.1fg left)\n",
				needs.Targets.ProteinG, proteinLeft)
		} else {
			faint.Println("  No profile saved; run 'nutriscan profile set' for a calorie target.")
		}

		fmt.Printf("  Water: %d/%d glasses (%d ml)\n",
			j.WaterGlasses, models.WaterTarget, journal.WaterML(j))

		if codes := catalog.UniqueAdditivesOf(j.Foods); len(codes) > 0 {
			fmt.Println()
			bold.Println("Additives")
			for _, code := range codes {
				info := catalog.AdditiveInfo(code)
				fmt.Printf("  %s %s %s\n",
					padRight(code, 6), padRight(info.Name, 28),
					riskColored(info.Level))
			}
		}

		return nil
	},
}

func riskColored(level models.RiskLevel) string {
	label := models.RiskLabels[level]
	switch level {
	case models.RiskSafe:
		return color.GreenString(label)
	case models.RiskCaution:
		return color.YellowString(label)
	default:
		return color.RedString(label)
	}
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVarP(&listDate, "date", "d", "", "date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(listCmd)
}
