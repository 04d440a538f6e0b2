// ABOUTME: Daily journal model: food entries, meal slots, water counter.
// ABOUTME: Entries snapshot catalog macros at add time so history never drifts.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MealSlot is the bucket a logged food belongs to.
type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealDinner    MealSlot = "dinner"
	MealSnack     MealSlot = "snack"
	MealOther     MealSlot = "other"
)

// MealSlotOrder is the fixed display order for grouped journal views.
var MealSlotOrder = []MealSlot{
	MealBreakfast, MealLunch, MealDinner, MealSnack, MealOther,
}

// MealSlotLabels maps meal slots to their display labels.
var MealSlotLabels = map[MealSlot]string{
	MealBreakfast: "Sarapan",
	MealLunch:     "Makan Siang",
	MealDinner:    "Makan Malam",
	MealSnack:     "Snack",
	MealOther:     "Lainnya",
}

// IsValidMealSlot checks if a string is a valid meal slot.
func IsValidMealSlot(s string) bool {
	for _, slot := range MealSlotOrder {
		if string(slot) == s {
			return true
		}
	}
	return false
}

const (
	// WaterTarget is the daily hydration target in glasses.
	WaterTarget = 8
	// GlassSizeML is the assumed size of one glass of water.
	GlassSizeML = 250
)

// FoodEntry is one logged food in a day's journal. The nutritional fields
// are copied from the catalog when the entry is created, never referenced
// back, so later catalog edits cannot rewrite history.
type FoodEntry struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Calories    float64   `json:"cal"`
	Protein     float64   `json:"prot"`
	Fat         float64   `json:"fat"`
	Carbs       float64   `json:"carb"`
	Additives   []string  `json:"additives"`
	AmountGrams float64   `json:"amount_grams"`
	Meal        MealSlot  `json:"meal"`
}

// NewFoodEntry snapshots a catalog definition into a journal entry.
func NewFoodEntry(food FoodDefinition, amountGrams float64, meal MealSlot) FoodEntry {
	additives := make([]string, len(food.Additives))
	copy(additives, food.Additives)
	return FoodEntry{
		ID:          uuid.New(),
		Name:        food.Name,
		Calories:    food.Calories,
		Protein:     food.Protein,
		Fat:         food.Fat,
		Carbs:       food.Carbs,
		Additives:   additives,
		AmountGrams: amountGrams,
		Meal:        meal,
	}
}

// DailyJournal is the authoritative record of one calendar day.
type DailyJournal struct {
	Date         string      `json:"date"`
	Foods        []FoodEntry `json:"foods"`
	WaterGlasses int         `json:"water"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// EmptyJournal returns the zero-value journal for a date.
func EmptyJournal(date string) *DailyJournal {
	return &DailyJournal{Date: date, Foods: []FoodEntry{}}
}
