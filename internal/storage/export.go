// ABOUTME: Export of all stored nutriscan data.
// ABOUTME: Produces a versioned snapshot serializable as JSON or YAML.
package storage

import (
	"sort"
	"time"

	"github.com/harperreed/nutriscan/internal/models"
)

// ExportData is the full export format.
type ExportData struct {
	Version    string                          `json:"version" yaml:"version"`
	ExportedAt time.Time                       `json:"exported_at" yaml:"exported_at"`
	Tool       string                          `json:"tool" yaml:"tool"`
	Profile    *models.Profile                 `json:"profile,omitempty" yaml:"profile,omitempty"`
	Theme      string                          `json:"theme,omitempty" yaml:"theme,omitempty"`
	Streak     models.StreakState              `json:"streak" yaml:"streak"`
	Days       map[string]*models.DailyJournal `json:"days" yaml:"days"`
}

// ExportAll gathers everything the gateway owns into one snapshot.
func (g *Gateway) ExportAll() *ExportData {
	days := make(map[string]*models.DailyJournal)
	dates := g.JournalDates()
	sort.Strings(dates)
	for _, date := range dates {
		days[date] = g.Journal(date)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: g.now(),
		Tool:       "nutriscan",
		Profile:    g.Profile(),
		Theme:      g.Theme(),
		Streak:     g.Streak(),
		Days:       days,
	}
}

// ImportAll writes a snapshot back into the store, overwriting slot by slot.
func (g *Gateway) ImportAll(data *ExportData) error {
	if data.Profile != nil {
		if err := g.PutProfile(*data.Profile); err != nil {
			return err
		}
	}
	if data.Theme != "" {
		if err := g.PutTheme(data.Theme); err != nil {
			return err
		}
	}
	if data.Streak.LastVisitDate != "" {
		if err := g.PutStreak(data.Streak); err != nil {
			return err
		}
	}
	for date, j := range data.Days {
		if err := g.PutJournal(date, j); err != nil {
			return err
		}
	}
	return nil
}
