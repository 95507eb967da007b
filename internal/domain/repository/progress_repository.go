package repository

import (
	"context"
	"time"

	"fitflow/internal/domain/entity"
	"fitflow/internal/errors"

	"github.com/google/uuid"
)

// ErrProgressNotFound is returned when no progress row exists for a date.
var ErrProgressNotFound = errors.New("progress entry not found")

// ProgressRepository defines the interface for per-day progress persistence.
// A missing row must be treated identically to a row with zero/empty values on
// every read path.
type ProgressRepository interface {
	// FindByUserAndDate retrieves the progress entry for one calendar date.
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.ProgressEntry, error)

	// FindSince retrieves entries on or after the given date, newest first,
	// bounded by limit.
	FindSince(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*entity.ProgressEntry, error)

	// UpsertWeight sets the weight field for (user, date), leaving the other
	// fields untouched.
	UpsertWeight(ctx context.Context, userID uuid.UUID, date time.Time, weightKg float64) error

	// AddWaterGlasses atomically adds delta glasses for (user, date), but only
	// while the resulting total stays within cap. Returns false with no
	// mutation when the guarded write was rejected, so a racing pair of calls
	// can never push the stored total past the cap.
	AddWaterGlasses(ctx context.Context, userID uuid.UUID, date time.Time, delta, cap int) (bool, error)

	// UpsertWorkouts replaces the completed-workouts set for (user, date),
	// leaving the other fields untouched.
	UpsertWorkouts(ctx context.Context, userID uuid.UUID, date time.Time, workouts []string) error
}
