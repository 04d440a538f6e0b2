// ABOUTME: Daily journal mutation and aggregation.
// ABOUTME: Add/remove entries, meal grouping, nutrient totals, target progress.
package journal

import (
	"errors"

	"github.com/harperreed/nutriscan/internal/models"
)

var (
	// ErrInvalidAmount rejects non-positive food amounts.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrIndexOutOfRange rejects removal of a non-existent entry.
	ErrIndexOutOfRange = errors.New("entry index out of range")
	// ErrWaterTargetReached rejects water past the daily target.
	ErrWaterTargetReached = errors.New("water target already reached")
)

// Totals is the aggregated nutrition of a set of entries. Values are
// unrounded; rounding is the presentation layer's concern.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// Add returns the componentwise sum of two totals.
func (t Totals) Add(other Totals) Totals {
	return Totals{
		Calories: t.Calories + other.Calories,
		Protein:  t.Protein + other.Protein,
		Fat:      t.Fat + other.Fat,
		Carbs:    t.Carbs + other.Carbs,
	}
}

// AddEntry appends a snapshot of the food to the journal. The amount is in
// grams and must be positive.
func AddEntry(j *models.DailyJournal, food models.FoodDefinition, amountGrams float64, meal models.MealSlot) (models.FoodEntry, error) {
	if amountGrams <= 0 {
		return models.FoodEntry{}, ErrInvalidAmount
	}
	entry := models.NewFoodEntry(food, amountGrams, meal)
	j.Foods = append(j.Foods, entry)
	return entry, nil
}

// RemoveEntry deletes the entry at index, preserving the relative order of
// the rest. An out-of-range index leaves the journal unchanged.
func RemoveEntry(j *models.DailyJournal, index int) error {
	if index < 0 || index >= len(j.Foods) {
		return ErrIndexOutOfRange
	}
	j.Foods = append(j.Foods[:index], j.Foods[index+1:]...)
	return nil
}

// GroupByMeal buckets entries by meal slot. Iterate the result through
// models.MealSlotOrder; slots with no entries are absent from the map.
func GroupByMeal(j *models.DailyJournal) map[models.MealSlot][]models.FoodEntry {
	grouped := make(map[models.MealSlot][]models.FoodEntry)
	for _, entry := range j.Foods {
		meal := entry.Meal
		if !models.IsValidMealSlot(string(meal)) {
			meal = models.MealOther
		}
		grouped[meal] = append(grouped[meal], entry)
	}
	return grouped
}

// Sum aggregates nutrition over entries: each entry contributes its per-100g
// fields scaled by amount/100.
func Sum(entries []models.FoodEntry) Totals {
	var t Totals
	for _, e := range entries {
		ratio := e.AmountGrams / 100
		t.Calories += e.Calories * ratio
		t.Protein += e.Protein * ratio
		t.Fat += e.Fat * ratio
		t.Carbs += e.Carbs * ratio
	}
	return t
}

// EntryCalories is the calorie contribution of a single entry.
func EntryCalories(e models.FoodEntry) float64 {
	return e.Calories * e.AmountGrams / 100
}

// ProgressPercent returns consumed/target as a raw percentage. It is not
// clamped: values above 100 signal the overflow state. A non-positive
// target yields 0.
func ProgressPercent(total, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return total / target * 100
}

// AddWater records one glass of water, up to the daily target.
func AddWater(j *models.DailyJournal) error {
	if j.WaterGlasses >= models.WaterTarget {
		return ErrWaterTargetReached
	}
	j.WaterGlasses++
	return nil
}

// ResetWater zeroes the day's water counter.
func ResetWater(j *models.DailyJournal) {
	j.WaterGlasses = 0
}

// WaterProgressPercent is the hydration progress, clamped to 100.
func WaterProgressPercent(j *models.DailyJournal) float64 {
	percent := float64(j.WaterGlasses) / models.WaterTarget * 100
	if percent > 100 {
		return 100
	}
	return percent
}

// WaterML is the day's water intake in milliliters.
func WaterML(j *models.DailyJournal) int {
	return j.WaterGlasses * models.GlassSizeML
}
