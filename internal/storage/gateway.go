// ABOUTME: Typed persistence gateway on top of the key-value Store.
// ABOUTME: Date-keyed journals plus singleton slots; reads degrade to defaults.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/nutriscan/internal/models"
)

// DateLayout is the ISO date format used for journal keys.
const DateLayout = "2006-01-02"

const (
	keyPrefix      = "nutriscan:"
	profileKey     = keyPrefix + "profile"
	themeKey       = keyPrefix + "theme"
	streakKey      = keyPrefix + "streak"
	legacyFoodsKey = keyPrefix + "foods"
	dayKeyPrefix   = keyPrefix + "day:"
)

func dayKey(date string) string {
	return dayKeyPrefix + date
}

// Today returns the current date in journal-key form.
func Today() string {
	return time.Now().Format(DateLayout)
}

// Gateway is the persistence boundary the core talks to. Writes report
// their errors to the caller; reads never fail, they fall back to zero
// values so a broken store cannot take the session down.
type Gateway struct {
	store Store

	// now is injectable for tests.
	now func() time.Time
}

// NewGateway wraps a Store.
func NewGateway(store Store) *Gateway {
	return &Gateway{store: store, now: time.Now}
}

// Close closes the underlying store.
func (g *Gateway) Close() error {
	return g.store.Close()
}

func (g *Gateway) today() string {
	return g.now().Format(DateLayout)
}

func (g *Gateway) getJSON(key string, v any) bool {
	data, err := g.store.Get(key)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func (g *Gateway) setJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return g.store.Set(key, data)
}

// Journal loads the journal for a date. An absent key, a read error, or a
// corrupt record all yield an empty journal for that date.
func (g *Gateway) Journal(date string) *models.DailyJournal {
	j := models.EmptyJournal(date)
	if g.getJSON(dayKey(date), j) {
		j.Date = date
		if j.Foods == nil {
			j.Foods = []models.FoodEntry{}
		}
		if j.WaterGlasses < 0 {
			j.WaterGlasses = 0
		}
		if j.WaterGlasses > models.WaterTarget {
			j.WaterGlasses = models.WaterTarget
		}
		return j
	}
	return models.EmptyJournal(date)
}

// PutJournal overwrites the full record for a date and stamps UpdatedAt.
// When the date is today it also rewrites the legacy flat foods slot, a
// write-only mirror kept for backward compatibility; it is never read back
// as a source of truth.
func (g *Gateway) PutJournal(date string, j *models.DailyJournal) error {
	j.Date = date
	j.UpdatedAt = g.now()
	if err := g.setJSON(dayKey(date), j); err != nil {
		return fmt.Errorf("put journal %s: %w", date, err)
	}

	if date == g.today() {
		// Mirror failure is not fatal; the dated record is authoritative.
		_ = g.setJSON(legacyFoodsKey, j.Foods)
	}
	return nil
}

// Profile returns the saved profile, or nil when none has been saved.
func (g *Gateway) Profile() *models.Profile {
	var p models.Profile
	if g.getJSON(profileKey, &p) {
		return &p
	}
	return nil
}

// PutProfile overwrites the profile slot.
func (g *Gateway) PutProfile(p models.Profile) error {
	if err := g.setJSON(profileKey, p); err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}

// Theme returns the saved theme, or "" when none has been saved.
func (g *Gateway) Theme() string {
	var theme string
	if g.getJSON(themeKey, &theme) {
		return theme
	}
	return ""
}

// PutTheme overwrites the theme slot.
func (g *Gateway) PutTheme(theme string) error {
	if err := g.setJSON(themeKey, theme); err != nil {
		return fmt.Errorf("put theme: %w", err)
	}
	return nil
}

// Streak returns the saved streak state; the zero value means no visit has
// been recorded yet.
func (g *Gateway) Streak() models.StreakState {
	var s models.StreakState
	g.getJSON(streakKey, &s)
	return s
}

// PutStreak overwrites the streak slot.
func (g *Gateway) PutStreak(s models.StreakState) error {
	if err := g.setJSON(streakKey, s); err != nil {
		return fmt.Errorf("put streak: %w", err)
	}
	return nil
}

// JournalDates lists every date that has a stored journal, sorted by key
// order. Unreadable key listings degrade to an empty slice.
func (g *Gateway) JournalDates() []string {
	keys, err := g.store.Keys()
	if err != nil {
		return nil
	}
	var dates []string
	for _, key := range keys {
		if strings.HasPrefix(key, dayKeyPrefix) {
			dates = append(dates, strings.TrimPrefix(key, dayKeyPrefix))
		}
	}
	return dates
}

// WipeAll deletes every key this tool owns. Keys outside the nutriscan
// prefix are left alone so a shared store is safe.
func (g *Gateway) WipeAll() error {
	keys, err := g.store.Keys()
	if err != nil {
		return fmt.Errorf("wipe: list keys: %w", err)
	}
	for _, key := range keys {
		if !strings.HasPrefix(key, keyPrefix) {
			continue
		}
		if err := g.store.Delete(key); err != nil {
			return fmt.Errorf("wipe: %w", err)
		}
	}
	return nil
}
