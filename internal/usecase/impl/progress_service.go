package impl

import (
	"context"
	"log/slog"
	"time"

	"fitflow/config"
	deliverycontext "fitflow/internal/delivery/context"
	"fitflow/internal/domain/entity"
	domainerrors "fitflow/internal/domain/errors"
	"fitflow/internal/domain/repository"
	"fitflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// progressService implements the ProgressUsecase interface.
type progressService struct {
	progressRepo repository.ProgressRepository
	waterCap     int
	lookbackDays int
	logger       *slog.Logger
}

// ProgressServiceParams holds dependencies for ProgressService, injected by Fx.
type ProgressServiceParams struct {
	fx.In

	ProgressRepo repository.ProgressRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProgressService creates a new progress service instance
func NewProgressService(params ProgressServiceParams) usecase.ProgressUsecase {
	srv := &progressService{
		progressRepo: params.ProgressRepo,
		logger:       params.Logger,
	}
	if params.Config != nil && params.Config.Progress != nil {
		srv.waterCap = params.Config.Progress.WaterDailyCap
		srv.lookbackDays = params.Config.Progress.StreakLookbackDays
	}

	return srv
}

func (srv *progressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LogWeight upserts the weight for (user, date).
func (srv *progressService) LogWeight(ctx context.Context, userID uuid.UUID, date time.Time, weightKg float64) error {
	if weightKg <= 0 {
		return errors.Wrap(domainerrors.ErrInvalidWeight, "weight must be positive")
	}

	day := entity.TruncateToDate(date)
	if err := srv.progressRepo.UpsertWeight(ctx, userID, day, weightKg); err != nil {
		return errors.Wrap(err, "failed to upsert weight")
	}

	return nil
}

// LogWater adds delta glasses for (user, date). The whole delta is rejected
// when it would push the daily total past the cap.
func (srv *progressService) LogWater(ctx context.Context, userID uuid.UUID, date time.Time, delta int) error {
	if delta <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "water delta must be positive")
	}
	if delta > srv.waterCap {
		return domainerrors.ErrWaterLimitExceeded.WrapMessage("delta exceeds the daily cap on its own")
	}

	day := entity.TruncateToDate(date)
	added, err := srv.progressRepo.AddWaterGlasses(ctx, userID, day, delta, srv.waterCap)
	if err != nil {
		return errors.Wrap(err, "failed to add water glasses")
	}
	if !added {
		return domainerrors.ErrWaterLimitExceeded.WrapMessage("daily water cap reached")
	}

	return nil
}

// LogWorkout toggles a workout identifier in the day's completed set.
func (srv *progressService) LogWorkout(ctx context.Context, userID uuid.UUID, date time.Time, workoutID string, completed bool) error {
	if workoutID == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "workout id is required")
	}

	day := entity.TruncateToDate(date)
	entry, err := srv.progressRepo.FindByUserAndDate(ctx, userID, day)
	if err != nil && !errors.Is(err, repository.ErrProgressNotFound) {
		return errors.Wrap(err, "failed to find progress entry")
	}

	workouts := entry.WithWorkout(workoutID, completed)
	if err := srv.progressRepo.UpsertWorkouts(ctx, userID, day, workouts); err != nil {
		return errors.Wrap(err, "failed to upsert workouts")
	}

	return nil
}

// GetTodaysProgress returns today's entry, or nil when nothing was logged yet.
func (srv *progressService) GetTodaysProgress(ctx context.Context, userID uuid.UUID) (*entity.ProgressEntry, error) {
	today := entity.TruncateToDate(time.Now())
	entry, err := srv.progressRepo.FindByUserAndDate(ctx, userID, today)
	if err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find today's progress")
	}

	return entry, nil
}

// ComputeStreak counts consecutive days with a non-empty completed-workouts
// set, walking backward from asOf and stopping at the first empty or missing
// day. The scan is bounded by the configured lookback window.
func (srv *progressService) ComputeStreak(ctx context.Context, userID uuid.UUID, asOf time.Time) (int, error) {
	end := entity.TruncateToDate(asOf)
	since := end.AddDate(0, 0, -srv.lookbackDays)

	entries, err := srv.progressRepo.FindSince(ctx, userID, since, srv.lookbackDays+1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load progress history")
	}

	completedByDate := make(map[time.Time]bool, len(entries))
	for _, entry := range entries {
		completedByDate[entity.TruncateToDate(entry.Date)] = entry.HasCompletedWorkouts()
	}

	streak := 0
	for day := end; streak < srv.lookbackDays; day = day.AddDate(0, 0, -1) {
		if !completedByDate[day] {
			break
		}
		streak++
	}

	return streak, nil
}
