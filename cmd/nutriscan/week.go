// ABOUTME: CLI command for the rolling 7-day report.
// ABOUTME: Per-day rows, a calorie bar chart, active days, and averages.
package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/nutriscan/internal/report"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the rolling 7-day report",
	Long: `Show the last seven days (oldest first) with daily calorie totals,
water intake, and a calorie bar chart. Days with no logged calories do
not count toward the average.

EXAMPLES:

  nutriscan week`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := report.WeeklySnapshot(gateway, time.Now())

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Println("Last 7 Days")

		var maxCal float64
		for _, day := range r.Days {
			if day.Totals.Calories > maxCal {
				maxCal = day.Totals.Calories
			}
		}

		for _, day := range r.Days {
			bar := ""
			if maxCal > 0 {
				width := int(math.Round(day.Totals.Calories / maxCal * 24))
				bar = strings.Repeat("█", width)
			}
			fmt.Printf("  %s %s %5.0f kcal  %s\n",
				day.DayLabel, faint.Sprint(day.Date), day.Totals.Calories, bar)
		}

		fmt.Println()
		if r.ActiveDays == 0 {
			fmt.Println("  No active days this week.")
			return nil
		}
		fmt.Printf("  Active days: %d/7\n", r.ActiveDays)
		fmt.Printf("  Average: %.0f kcal over active days\n", r.AverageCalories)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
}
