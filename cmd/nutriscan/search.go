// ABOUTME: CLI commands for searching and browsing the food catalog.
// ABOUTME: Substring search with filters plus per-category browsing.
package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/nutriscan/internal/catalog"
	"github.com/harperreed/nutriscan/internal/models"
)

var (
	searchCategory string
	searchMaxCal   float64
	searchMinProt  float64
)

var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Aliases: []string{"s", "find"},
	Short:   "Search the food catalog",
	Long: `Search the food catalog by name, case-insensitively. Queries shorter
than two characters return nothing. Filters combine with AND.

Nutrition values are per 100 grams.

EXAMPLES:

  nutriscan search nasi
  nutriscan search ayam --category hewani
  nutriscan search goreng --max-cal 300 --min-protein 10`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		if utf8.RuneCountInString(query) < catalog.MinQueryLength {
			return fmt.Errorf("query must be at least %d characters", catalog.MinQueryLength)
		}
		if searchCategory != "" && catalog.CategoryByID(models.Category(searchCategory)) == nil {
			return fmt.Errorf("unknown category: %s", searchCategory)
		}

		results := catalog.SearchFoods(query, catalog.Filters{
			Category:    models.Category(searchCategory),
			MaxCalories: searchMaxCal,
			MinProtein:  searchMinProt,
		})
		if len(results) == 0 {
			fmt.Println("No foods found.")
			return nil
		}

		printFoods(results)
		return nil
	},
}

var categoryCmd = &cobra.Command{
	Use:     "category [id]",
	Aliases: []string{"cat"},
	Short:   "Browse the catalog by category",
	Long: `List the catalog categories, or all foods in one category.

EXAMPLES:

  nutriscan category           # List categories
  nutriscan category buah      # All fruits`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, cat := range catalog.Categories {
				fmt.Printf("  %s %s\n", padRight(string(cat.ID), 10), cat.Name)
			}
			return nil
		}

		id := models.Category(args[0])
		if catalog.CategoryByID(id) == nil {
			return fmt.Errorf("unknown category: %s", args[0])
		}

		foods := catalog.FoodsByCategory(id)
		if len(foods) == 0 {
			fmt.Println("No foods in this category.")
			return nil
		}
		printFoods(foods)
		return nil
	},
}

func printFoods(foods []models.FoodDefinition) {
	faint := color.New(color.Faint)
	for _, f := range foods {
		additives := ""
		if len(f.Additives) > 0 {
			additives = faint.Sprintf("  +%d additives", len(f.Additives))
		}
		fmt.Printf("  %s %4.0f kcal  %5.1fp %5.1ff %5.1fc%s\n",
			padRight(f.Name, 26), f.Calories, f.Protein, f.Fat, f.Carbs, additives)
	}
}

func init() {
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "filter by category ID")
	searchCmd.Flags().Float64Var(&searchMaxCal, "max-cal", 0, "maximum calories per 100g")
	searchCmd.Flags().Float64Var(&searchMinProt, "min-protein", 0, "minimum protein per 100g")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(categoryCmd)
}
