// ABOUTME: Tests for the persistence gateway over both backends.
// ABOUTME: Round-trips, default degradation, legacy mirror, and prefix-safe wipe.
package storage

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/harperreed/nutriscan/internal/models"
)

// withEachBackend runs a subtest against a Badger-backed and a SQLite-backed
// gateway, each in a fresh temp directory.
func withEachBackend(t *testing.T, fn func(t *testing.T, g *Gateway)) {
	t.Helper()

	t.Run("badger", func(t *testing.T) {
		store, err := OpenBadger(filepath.Join(t.TempDir(), "kv"))
		if err != nil {
			t.Fatalf("OpenBadger failed: %v", err)
		}
		g := NewGateway(store)
		defer g.Close()
		fn(t, g)
	})

	t.Run("sqlite", func(t *testing.T) {
		store, err := OpenSQLite(filepath.Join(t.TempDir(), "nutriscan.db"))
		if err != nil {
			t.Fatalf("OpenSQLite failed: %v", err)
		}
		g := NewGateway(store)
		defer g.Close()
		fn(t, g)
	})
}

func sampleJournal(date string) *models.DailyJournal {
	j := models.EmptyJournal(date)
	j.Foods = append(j.Foods,
		models.NewFoodEntry(models.FoodDefinition{
			Name: "Nasi Putih", Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28,
			Category: models.CategoryStaple, Additives: []string{},
		}, 150, models.MealLunch),
		models.NewFoodEntry(models.FoodDefinition{
			Name: "Mie Instan", Calories: 436, Protein: 9, Fat: 17, Carbs: 63,
			Category: models.CategoryStaple, Additives: []string{"E621", "E627", "E631", "E150c", "E501"},
		}, 80, models.MealDinner),
	)
	j.WaterGlasses = 3
	return j
}

func TestJournalRoundTrip(t *testing.T) {
	withEachBackend(t, func(t *testing.T, g *Gateway) {
		const date = "2026-08-30"
		want := sampleJournal(date)

		if err := g.PutJournal(date, want); err != nil {
			t.Fatalf("PutJournal failed: %v", err)
		}

		got := g.Journal(date)
		if got.Date != date {
			t.Errorf("Date = %s, want %s", got.Date, date)
		}
		if got.WaterGlasses != want.WaterGlasses {
			t.Errorf("WaterGlasses = %d, want %d", got.WaterGlasses, want.WaterGlasses)
		}
		if got.UpdatedAt.IsZero() {
			t.Error("UpdatedAt should be stamped on put")
		}
		if !reflect.DeepEqual(got.Foods, want.Foods) {
			t.Errorf("Foods mismatch:\n got %+v\nwant %+v", got.Foods, want.Foods)
		}
	})
}

func TestJournalAbsentDateIsEmpty(t *testing.T) {
	withEachBackend(t, func(t *testing.T, g *Gateway) {
		got := g.Journal("1999-01-01")
		if len(got.Foods) != 0 {
			t.Errorf("absent date returned %d entries", len(got.Foods))
		}
		if got.WaterGlasses != 0 {
			t.Errorf("absent date water = %d, want 0", got.WaterGlasses)
		}
		if got.Date != "1999-01-01" {
			t.Errorf("Date = %s", got.Date)
		}
	})
}

func TestProfileSlot(t *testing.T) {
	withEachBackend(t, func(t *testing.T, g *Gateway) {
		if g.Profile() != nil {
			t.Error("Profile should be nil before any save")
		}

		p := models.Profile{Age: 20, Weight: 60, Height: 165, Sex: models.SexMale, ActivityFactor: 1.55}
		if err := g.PutProfile(p); err != nil {
			t.Fatalf("PutProfile failed: %v", err)
		}

		got := g.Profile()
		if got == nil {
			t.Fatal("Profile is nil after save")
		}
		if *got != p {
			t.Errorf("Profile = %+v, want %+v", *got, p)
		}
	})
}

func TestThemeAndStreakSlots(t *testing.T) {
	withEachBackend(t, func(t *testing.T, g *Gateway) {
		if g.Theme() != "" {
			t.Error("Theme should default to empty")
		}
		if err := g.PutTheme("dark"); err != nil {
			t.Fatalf("PutTheme failed: %v", err)
		}
		if g.Theme() != "dark" {
			t.Errorf("Theme = %s, want dark", g.Theme())
		}

		if s := g.Streak(); s.StreakCount != 0 || s.LastVisitDate != "" {
			t.Errorf("Streak should default to zero, got %+v", s)
		}
		want := models.StreakState{StreakCount: 4, LastVisitDate: "2026-09-01"}
		if err := g.PutStreak(want); err != nil {
			t.Fatalf("PutStreak failed: %v", err)
		}
		if got := g.Streak(); got != want {
			t.Errorf("Streak = %+v, want %+v", got, want)
		}
	})
}

func TestLegacyMirrorWrittenForToday(t *testing.T) {
	withEachBackend(t, func(t *testing.T, g *Gateway) {
		fixed := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		g.now = func() time.Time { return fixed }

		today := fixed.Format(DateLayout)
		j := sampleJournal(today)
		if err := g.PutJournal(today, j); err != nil {
			t.Fatalf("PutJournal failed: %v", err)
		}

		data, err := g.store.Get(legacyFoodsKey)
		if err != nil {
			t.Fatalf("legacy foods slot missing: %v", err)
		}
		var mirrored []models.FoodEntry
		if err := json.Unmarshal(data, &mirrored); err != nil {
			t.Fatalf("legacy foods slot not valid JSON: %v", err)
		}
		if !reflect.DeepEqual(mirrored, j.Foods) {
			t.Error("legacy mirror does not match today's entries")
		}

		// A write for another day must not touch the mirror.
		if err := g.PutJournal("2026-08-15", sampleJournal("2026-08-15")); err != nil {
			t.Fatalf("PutJournal failed: %v", err)
		}
		after, err := g.store.Get(legacyFoodsKey)
		if err != nil {
			t.Fatalf("legacy foods slot missing after past-day write: %v", err)
		}
		if !reflect.DeepEqual(after, data) {
			t.Error("past-day write changed the legacy mirror")
		}
	})
}

func TestJournalDates(t *testing.T) {
	withEachBackend(t, func(t *testing.T, g *Gateway) {
		for _, date := range []string{"2026-08-29", "2026-08-30", "2026-09-01"} {
			if err := g.PutJournal(date, sampleJournal(date)); err != nil {
				t.Fatalf("PutJournal failed: %v", err)
			}
		}

		dates := g.JournalDates()
		if len(dates) != 3 {
			t.Errorf("JournalDates returned %d dates, want 3", len(dates))
		}
	})
}

func TestWipeAllRespectsForeignKeys(t *testing.T) {
	withEachBackend(t, func(t *testing.T, g *Gateway) {
		if err := g.PutProfile(models.DefaultProfile()); err != nil {
			t.Fatal(err)
		}
		if err := g.PutJournal("2026-09-01", sampleJournal("2026-09-01")); err != nil {
			t.Fatal(err)
		}
		// A key owned by some other tool sharing the store.
		if err := g.store.Set("othertool:config", []byte(`{}`)); err != nil {
			t.Fatal(err)
		}

		if err := g.WipeAll(); err != nil {
			t.Fatalf("WipeAll failed: %v", err)
		}

		if g.Profile() != nil {
			t.Error("profile survived wipe")
		}
		if len(g.JournalDates()) != 0 {
			t.Error("journals survived wipe")
		}
		if _, err := g.store.Get("othertool:config"); err != nil {
			t.Errorf("wipe deleted a foreign key: %v", err)
		}
	})
}

// brokenStore fails every operation, standing in for a backend that has
// gone bad (quota, corruption).
type brokenStore struct{}

func (brokenStore) Get(string) ([]byte, error) { return nil, errors.New("store offline") }
func (brokenStore) Set(string, []byte) error   { return errors.New("store offline") }
func (brokenStore) Delete(string) error        { return errors.New("store offline") }
func (brokenStore) Keys() ([]string, error)    { return nil, errors.New("store offline") }
func (brokenStore) Close() error               { return nil }

func TestReadsDegradeOnBrokenStore(t *testing.T) {
	g := NewGateway(brokenStore{})

	j := g.Journal("2026-09-01")
	if j == nil || len(j.Foods) != 0 {
		t.Error("Journal should degrade to empty on store failure")
	}
	if g.Profile() != nil {
		t.Error("Profile should degrade to nil on store failure")
	}
	if g.Theme() != "" {
		t.Error("Theme should degrade to empty on store failure")
	}
	if s := g.Streak(); s != (models.StreakState{}) {
		t.Error("Streak should degrade to zero on store failure")
	}
	if g.JournalDates() != nil {
		t.Error("JournalDates should degrade to nil on store failure")
	}
}

func TestWritesFailLoudlyOnBrokenStore(t *testing.T) {
	g := NewGateway(brokenStore{})

	if err := g.PutJournal("2026-09-01", models.EmptyJournal("2026-09-01")); err == nil {
		t.Error("PutJournal should report store failure")
	}
	if err := g.PutProfile(models.DefaultProfile()); err == nil {
		t.Error("PutProfile should report store failure")
	}
	if err := g.PutTheme("dark"); err == nil {
		t.Error("PutTheme should report store failure")
	}
	if err := g.WipeAll(); err == nil {
		t.Error("WipeAll should report store failure")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	withEachBackend(t, func(t *testing.T, g *Gateway) {
		if err := g.PutProfile(models.Profile{Age: 20, Weight: 60, Height: 165, Sex: models.SexMale, ActivityFactor: 1.55}); err != nil {
			t.Fatal(err)
		}
		if err := g.PutTheme("dark"); err != nil {
			t.Fatal(err)
		}
		if err := g.PutStreak(models.StreakState{StreakCount: 2, LastVisitDate: "2026-09-01"}); err != nil {
			t.Fatal(err)
		}
		if err := g.PutJournal("2026-09-01", sampleJournal("2026-09-01")); err != nil {
			t.Fatal(err)
		}

		snapshot := g.ExportAll()
		if snapshot.Tool != "nutriscan" || snapshot.Version != "1.0" {
			t.Errorf("snapshot header = %s/%s", snapshot.Tool, snapshot.Version)
		}
		if len(snapshot.Days) != 1 {
			t.Fatalf("snapshot has %d days, want 1", len(snapshot.Days))
		}

		// Restore into a fresh store.
		store, err := OpenBadger(filepath.Join(t.TempDir(), "restore"))
		if err != nil {
			t.Fatal(err)
		}
		fresh := NewGateway(store)
		defer fresh.Close()

		if err := fresh.ImportAll(snapshot); err != nil {
			t.Fatalf("ImportAll failed: %v", err)
		}
		if fresh.Theme() != "dark" {
			t.Error("theme not restored")
		}
		if got := fresh.Journal("2026-09-01"); len(got.Foods) != 2 {
			t.Errorf("restored journal has %d entries, want 2", len(got.Foods))
		}
	})
}
