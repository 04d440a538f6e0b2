// ABOUTME: Tests for the weekly aggregator.
// ABOUTME: Window bounds, active-day counting, and average over active days.
package report

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/nutriscan/internal/models"
	"github.com/harperreed/nutriscan/internal/storage"
)

func setupGateway(t *testing.T) *storage.Gateway {
	t.Helper()
	store, err := storage.OpenBadger(filepath.Join(t.TempDir(), "kv"))
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	g := storage.NewGateway(store)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func putDay(t *testing.T, g *storage.Gateway, date string, calories float64, water int) {
	t.Helper()
	j := models.EmptyJournal(date)
	if calories > 0 {
		j.Foods = append(j.Foods, models.FoodEntry{
			Name: "Test", Calories: calories, AmountGrams: 100, Meal: models.MealLunch,
		})
	}
	j.WaterGlasses = water
	if err := g.PutJournal(date, j); err != nil {
		t.Fatalf("PutJournal failed: %v", err)
	}
}

func TestWeeklySnapshotWindow(t *testing.T) {
	g := setupGateway(t)
	today := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	r := WeeklySnapshot(g, today)

	if len(r.Days) != 7 {
		t.Fatalf("got %d days, want 7", len(r.Days))
	}
	if r.Days[0].Date != "2026-08-26" {
		t.Errorf("first day = %s, want 2026-08-26", r.Days[0].Date)
	}
	if r.Days[6].Date != "2026-09-01" {
		t.Errorf("last day = %s, want 2026-09-01", r.Days[6].Date)
	}
	// Missing days are all-zero, never errors.
	for _, day := range r.Days {
		if day.Totals.Calories != 0 || day.Water != 0 {
			t.Errorf("empty week has data on %s", day.Date)
		}
	}
	if r.ActiveDays != 0 || r.AverageCalories != 0 {
		t.Errorf("empty week: ActiveDays=%d AverageCalories=%v", r.ActiveDays, r.AverageCalories)
	}

	// Day labels use Indonesian weekday names; 2026-08-26 is a Wednesday.
	wantLabels := []string{"Rab", "Kam", "Jum", "Sab", "Min", "Sen", "Sel"}
	for i, day := range r.Days {
		if day.DayLabel != wantLabels[i] {
			t.Errorf("day %d label = %s, want %s", i, day.DayLabel, wantLabels[i])
		}
	}
}

func TestWeeklySnapshotActiveDaysAndAverage(t *testing.T) {
	g := setupGateway(t)
	today := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	// Entries only on day -3 and day 0.
	putDay(t, g, "2026-08-29", 400, 2)
	putDay(t, g, "2026-09-01", 600, 5)
	// A logged zero-calorie day does not count as active.
	putDay(t, g, "2026-08-27", 0, 8)

	r := WeeklySnapshot(g, today)

	if r.ActiveDays != 2 {
		t.Errorf("ActiveDays = %d, want 2", r.ActiveDays)
	}
	if want := 500.0; math.Abs(r.AverageCalories-want) > 1e-9 {
		t.Errorf("AverageCalories = %v, want %v (mean over active days only)", r.AverageCalories, want)
	}

	// Water carries through even on inactive days.
	if r.Days[1].Water != 8 {
		t.Errorf("day -5 water = %d, want 8", r.Days[1].Water)
	}
}

func TestWeeklyChartProjection(t *testing.T) {
	g := setupGateway(t)
	today := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	putDay(t, g, "2026-09-01", 436, 0)

	chart := WeeklySnapshot(g, today).Chart()

	if len(chart.Labels) != 7 || len(chart.Calories) != 7 || len(chart.Protein) != 7 {
		t.Fatalf("chart series lengths = %d/%d/%d, want 7",
			len(chart.Labels), len(chart.Calories), len(chart.Protein))
	}
	if chart.Labels[6] != "Sel" {
		t.Errorf("last label = %s, want Sel", chart.Labels[6])
	}
	if chart.Calories[6] != 436 {
		t.Errorf("last calories = %v, want 436", chart.Calories[6])
	}
}
