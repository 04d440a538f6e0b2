// ABOUTME: Persisted state for the consecutive-day usage streak.
package models

// StreakState is the streak bookkeeping persisted across sessions.
// LastVisitDate is an ISO date (YYYY-MM-DD); empty means no visit recorded.
type StreakState struct {
	StreakCount   int    `json:"streak_count" yaml:"streak_count"`
	LastVisitDate string `json:"last_visit_date" yaml:"last_visit_date"`
}
