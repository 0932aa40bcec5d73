package types

import (
	"math"
	"strings"
	"time"
)

// savingKeywords marks activities that reduce resource use rather than
// just earn points.
var savingKeywords = []string{"hemat air", "hemat listrik", "penghematan"}

// IsSavingActivity reports whether an activity name describes a saving
// habit, by case-insensitive substring match against the keyword set.
func IsSavingActivity(activityType string) bool {
	lowered := strings.ToLower(activityType)
	for _, keyword := range savingKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// HabitPoints converts a metered amount (km walked, litres saved, ...) into
// points at the habit's per-unit rate, rounding half away from zero.
func HabitPoints(meter, perUnit float64) int {
	return int(math.Round(meter * perUnit))
}

type EcoHabitLog struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	ActivityType string    `db:"activity_type" json:"activity_type"`
	Points       int       `db:"points" json:"points"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`

	// Derived from ActivityType, never stored.
	IsSaving bool `db:"-" json:"is_saving"`
}

// Derive recomputes the derived fields after a fetch or patch.
func (l *EcoHabitLog) Derive() {
	l.IsSaving = IsSavingActivity(l.ActivityType)
}

type CreateHabitLogRequest struct {
	ActivityType string `json:"activity_type"`
	Points       int    `json:"points"`
}
