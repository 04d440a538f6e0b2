// ABOUTME: Consecutive-day usage streak state machine and levels.
// ABOUTME: Recomputed once per process start and persisted immediately.
package report

import (
	"fmt"
	"time"

	"github.com/harperreed/nutriscan/internal/models"
	"github.com/harperreed/nutriscan/internal/storage"
)

// Touch advances the streak for a visit on the given day:
// first visit ever starts at 1; a same-day re-visit changes nothing;
// a visit the day after the last one increments; any longer gap resets to 1.
func Touch(s models.StreakState, today time.Time) models.StreakState {
	todayStr := today.Format(storage.DateLayout)
	if s.LastVisitDate == todayStr {
		return s
	}

	yesterday := today.AddDate(0, 0, -1).Format(storage.DateLayout)
	count := 1
	if s.LastVisitDate == yesterday {
		count = s.StreakCount + 1
	}
	return models.StreakState{StreakCount: count, LastVisitDate: todayStr}
}

// StreakLevel is a gamification tier derived from the streak count.
type StreakLevel struct {
	Name  string
	Color string
}

// LevelFor returns the tier for a streak count. Tiers step up at 7, 30,
// 100, and 365 days.
func LevelFor(count int) StreakLevel {
	switch {
	case count >= 365:
		return StreakLevel{"Legenda", "#fbbf24"}
	case count >= 100:
		return StreakLevel{"Master", "#a855f7"}
	case count >= 30:
		return StreakLevel{"Pro", "#22c55e"}
	case count >= 7:
		return StreakLevel{"Rajin", "#f59e0b"}
	default:
		return StreakLevel{"Pemula", "#94a3b8"}
	}
}

// MessageFor returns the motivational message for a streak count.
func MessageFor(count int) string {
	switch {
	case count <= 1:
		return "Selamat datang! Mulai perjalanan sehatmu hari ini!"
	case count < 7:
		return fmt.Sprintf("%d hari berturut-turut! Terus semangat!", count)
	case count < 30:
		return fmt.Sprintf("Luar biasa! %d hari streak! Kamu hebat!", count)
	case count < 100:
		return fmt.Sprintf("WOW! %d hari! Kamu sudah jadi Pro!", count)
	default:
		return fmt.Sprintf("LEGENDARIS! %d hari streak!", count)
	}
}
