package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ProgressEntry aggregates the per-day facts for one user: weight, water
// glasses and the identifiers of completed workouts. One row per (user, date);
// a missing row reads the same as a row holding zero values.
type ProgressEntry struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	Date              time.Time `json:"date"` // Calendar date, normalized to midnight UTC.
	Weight            *float64  `json:"weight,omitempty"`
	WaterGlasses      int       `json:"water_glasses"`
	WorkoutsCompleted []string  `json:"workouts_completed"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// HasCompletedWorkouts reports whether any workout was completed on this day.
func (e *ProgressEntry) HasCompletedWorkouts() bool {
	return e != nil && len(e.WorkoutsCompleted) > 0
}

// WithWorkout returns the completed-workouts set after adding or removing the
// given identifier. Adding is idempotent; removing an absent id is a no-op.
func (e *ProgressEntry) WithWorkout(workoutID string, completed bool) []string {
	current := []string{}
	if e != nil {
		current = e.WorkoutsCompleted
	}

	if completed {
		if slices.Contains(current, workoutID) {
			return current
		}

		return append(slices.Clone(current), workoutID)
	}

	updated := make([]string, 0, len(current))
	for _, id := range current {
		if id != workoutID {
			updated = append(updated, id)
		}
	}

	return updated
}

// TruncateToDate normalizes a timestamp to its calendar date at midnight UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
