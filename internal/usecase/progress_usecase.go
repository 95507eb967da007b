package usecase

import (
	"context"
	"time"

	"fitflow/internal/domain/entity"

	"github.com/google/uuid"
)

// ProgressUsecase records per-day facts and computes read-side aggregates.
type ProgressUsecase interface {
	// LogWeight upserts the weight for (user, date), leaving other fields untouched.
	LogWeight(ctx context.Context, userID uuid.UUID, date time.Time, weightKg float64) error

	// LogWater adds delta glasses for (user, date). The whole delta is rejected
	// when it would push the daily total past the cap; nothing is truncated.
	LogWater(ctx context.Context, userID uuid.UUID, date time.Time, delta int) error

	// LogWorkout toggles a workout identifier in the day's completed set.
	LogWorkout(ctx context.Context, userID uuid.UUID, date time.Time, workoutID string, completed bool) error

	// GetTodaysProgress returns the entry for today, or nil when nothing was
	// logged yet.
	GetTodaysProgress(ctx context.Context, userID uuid.UUID) (*entity.ProgressEntry, error)

	// ComputeStreak counts consecutive days with at least one completed workout,
	// walking backward from asOf, bounded by the configured lookback window.
	ComputeStreak(ctx context.Context, userID uuid.UUID, asOf time.Time) (int, error)
}
