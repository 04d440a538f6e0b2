// ABOUTME: Rolling 7-day report derived from stored journals.
// ABOUTME: Pure read-and-fold over the gateway; holds no state of its own.
package report

import (
	"math"
	"time"

	"github.com/harperreed/nutriscan/internal/journal"
	"github.com/harperreed/nutriscan/internal/storage"
)

// DayReport is one day's slice of the weekly view.
type DayReport struct {
	Date     string         `json:"date"`
	DayLabel string         `json:"day_label"`
	Totals   journal.Totals `json:"totals"`
	Water    int            `json:"water"`
}

// WeeklyReport covers today-6 through today inclusive, oldest first.
// AverageCalories is computed over active days only; a day is active when
// its calorie total is strictly greater than zero.
type WeeklyReport struct {
	Days            []DayReport `json:"days"`
	ActiveDays      int         `json:"active_days"`
	AverageCalories float64     `json:"average_calories"`
}

// ChartData is the chart-shaped projection of a weekly report: one label
// per day plus calorie and protein series, rounded for display.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Calories []float64 `json:"calories"`
	Protein  []float64 `json:"protein"`
}

// dayNames holds Indonesian short weekday names, Sunday first to line up
// with time.Weekday.
var dayNames = [7]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}

// WeeklySnapshot folds the last seven days of journals into a report.
// Missing days contribute zero totals.
func WeeklySnapshot(g *storage.Gateway, today time.Time) *WeeklyReport {
	r := &WeeklyReport{}

	var totalCalories float64
	for offset := 6; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		date := day.Format(storage.DateLayout)
		j := g.Journal(date)
		totals := journal.Sum(j.Foods)

		r.Days = append(r.Days, DayReport{
			Date:     date,
			DayLabel: dayNames[day.Weekday()],
			Totals:   totals,
			Water:    j.WaterGlasses,
		})

		if totals.Calories > 0 {
			r.ActiveDays++
			totalCalories += totals.Calories
		}
	}

	if r.ActiveDays > 0 {
		r.AverageCalories = totalCalories / float64(r.ActiveDays)
	}
	return r
}

// Chart projects the report into label/series form for a chart sink.
func (r *WeeklyReport) Chart() ChartData {
	c := ChartData{}
	for _, day := range r.Days {
		c.Labels = append(c.Labels, day.DayLabel)
		c.Calories = append(c.Calories, math.Round(day.Totals.Calories))
		c.Protein = append(c.Protein, math.Round(day.Totals.Protein*10)/10)
	}
	return c
}
