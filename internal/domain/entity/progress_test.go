package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressEntry_WithWorkout(t *testing.T) {
	entry := &ProgressEntry{WorkoutsCompleted: []string{"pushups"}}

	assert.Equal(t, []string{"pushups", "squats"}, entry.WithWorkout("squats", true))
	assert.Equal(t, []string{"pushups"}, entry.WithWorkout("pushups", true), "adding twice is idempotent")
	assert.Equal(t, []string{}, entry.WithWorkout("pushups", false))
	assert.Equal(t, []string{"pushups"}, entry.WithWorkout("absent", false), "removing an absent id is a no-op")
}

func TestProgressEntry_WithWorkout_NilEntry(t *testing.T) {
	var entry *ProgressEntry

	assert.Equal(t, []string{"situps"}, entry.WithWorkout("situps", true))
	assert.False(t, entry.HasCompletedWorkouts())
}

func TestTruncateToDate(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	stamp := time.Date(2025, 3, 15, 6, 45, 12, 0, loc)

	// 06:45 UTC+8 is 22:45 the previous day in UTC.
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), TruncateToDate(stamp))
}
