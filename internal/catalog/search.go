// ABOUTME: Food catalog search and lookup.
// ABOUTME: Case-insensitive substring search with AND-composed filters.
package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/harperreed/nutriscan/internal/models"
)

// MinQueryLength is the minimum search query length in characters. Shorter
// queries mean "no search yet" and always yield an empty result.
const MinQueryLength = 2

// Filters narrows a search. Zero values disable each filter.
type Filters struct {
	Category    models.Category
	MaxCalories float64
	MinProtein  float64
}

// SearchFoods returns catalog entries whose name contains the query,
// case-insensitively, in catalog order. Queries shorter than MinQueryLength
// yield an empty result regardless of filters. Filters compose as AND.
func SearchFoods(query string, filters Filters) []models.FoodDefinition {
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil
	}

	lower := strings.ToLower(query)
	var results []models.FoodDefinition
	for _, food := range Foods {
		if filters.Category != "" && filters.Category != models.CategoryAll && food.Category != filters.Category {
			continue
		}
		if filters.MaxCalories > 0 && food.Calories > filters.MaxCalories {
			continue
		}
		if filters.MinProtein > 0 && food.Protein < filters.MinProtein {
			continue
		}
		if strings.Contains(strings.ToLower(food.Name), lower) {
			results = append(results, food)
		}
	}
	return results
}

// FoodsByCategory returns all foods in a category, in catalog order. The
// "all" category (or an empty ID) returns the full catalog.
func FoodsByCategory(id models.Category) []models.FoodDefinition {
	if id == "" || id == models.CategoryAll {
		out := make([]models.FoodDefinition, len(Foods))
		copy(out, Foods)
		return out
	}
	var results []models.FoodDefinition
	for _, food := range Foods {
		if food.Category == id {
			results = append(results, food)
		}
	}
	return results
}

// FoodByName looks up a catalog entry by exact name. The second return is
// false when there is no such food.
func FoodByName(name string) (models.FoodDefinition, bool) {
	for _, food := range Foods {
		if food.Name == name {
			return food, true
		}
	}
	return models.FoodDefinition{}, false
}
