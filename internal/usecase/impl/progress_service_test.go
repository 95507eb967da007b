package impl

import (
	"context"
	"testing"
	"time"

	"fitflow/config"
	"fitflow/internal/domain/entity"
	domainerrors "fitflow/internal/domain/errors"
	"fitflow/internal/domain/repository"
	mockRepo "fitflow/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProgressService(t *testing.T) (*mockRepo.MockProgressRepository, *progressService) {
	mockProgressRepo := mockRepo.NewMockProgressRepository(t)
	service := NewProgressService(ProgressServiceParams{
		ProgressRepo: mockProgressRepo,
		Config: &config.Config{
			Progress: &config.ProgressConfig{
				WaterDailyCap:      8,
				StreakLookbackDays: 30,
			},
		},
		Logger: newTestLogger(),
	})

	return mockProgressRepo, service.(*progressService)
}

func TestProgressService_LogWeight(t *testing.T) {
	mockProgressRepo, service := newProgressService(t)

	ctx := context.Background()
	userID := uuid.New()
	logged := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	mockProgressRepo.EXPECT().
		UpsertWeight(ctx, userID, day, 74.5).
		Return(nil)

	require.NoError(t, service.LogWeight(ctx, userID, logged, 74.5))
}

func TestProgressService_LogWeight_Invalid(t *testing.T) {
	_, service := newProgressService(t)

	err := service.LogWeight(context.Background(), uuid.New(), time.Now(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidWeight))

	err = service.LogWeight(context.Background(), uuid.New(), time.Now(), -3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidWeight))
}

func TestProgressService_LogWater(t *testing.T) {
	mockProgressRepo, service := newProgressService(t)

	ctx := context.Background()
	userID := uuid.New()
	day := entity.TruncateToDate(time.Now())

	mockProgressRepo.EXPECT().
		AddWaterGlasses(ctx, userID, day, 2, 8).
		Return(true, nil)

	require.NoError(t, service.LogWater(ctx, userID, time.Now(), 2))
}

func TestProgressService_LogWater_CapReached(t *testing.T) {
	mockProgressRepo, service := newProgressService(t)

	ctx := context.Background()
	userID := uuid.New()
	day := entity.TruncateToDate(time.Now())

	// Stored total is 7; a delta of 2 would land on 9. The whole delta is
	// rejected, nothing is truncated.
	mockProgressRepo.EXPECT().
		AddWaterGlasses(ctx, userID, day, 2, 8).
		Return(false, nil)

	err := service.LogWater(ctx, userID, time.Now(), 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrWaterLimitExceeded))
}

func TestProgressService_LogWater_InvalidDelta(t *testing.T) {
	_, service := newProgressService(t)

	err := service.LogWater(context.Background(), uuid.New(), time.Now(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	err = service.LogWater(context.Background(), uuid.New(), time.Now(), 9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrWaterLimitExceeded))
}

func TestProgressService_LogWorkout_AddAndRemove(t *testing.T) {
	mockProgressRepo, service := newProgressService(t)

	ctx := context.Background()
	userID := uuid.New()
	day := entity.TruncateToDate(time.Now())

	existing := &entity.ProgressEntry{
		UserID:            userID,
		Date:              day,
		WorkoutsCompleted: []string{"morning-cardio"},
	}

	mockProgressRepo.EXPECT().
		FindByUserAndDate(ctx, userID, day).
		Return(existing, nil).
		Once()

	mockProgressRepo.EXPECT().
		UpsertWorkouts(ctx, userID, day, []string{"morning-cardio", "strength"}).
		Return(nil).
		Once()

	require.NoError(t, service.LogWorkout(ctx, userID, time.Now(), "strength", true))

	mockProgressRepo.EXPECT().
		FindByUserAndDate(ctx, userID, day).
		Return(existing, nil).
		Once()

	mockProgressRepo.EXPECT().
		UpsertWorkouts(ctx, userID, day, []string{}).
		Return(nil).
		Once()

	require.NoError(t, service.LogWorkout(ctx, userID, time.Now(), "morning-cardio", false))
}

func TestProgressService_LogWorkout_FirstEntryOfTheDay(t *testing.T) {
	mockProgressRepo, service := newProgressService(t)

	ctx := context.Background()
	userID := uuid.New()
	day := entity.TruncateToDate(time.Now())

	mockProgressRepo.EXPECT().
		FindByUserAndDate(ctx, userID, day).
		Return(nil, repository.ErrProgressNotFound)

	mockProgressRepo.EXPECT().
		UpsertWorkouts(ctx, userID, day, []string{"evening-run"}).
		Return(nil)

	require.NoError(t, service.LogWorkout(ctx, userID, time.Now(), "evening-run", true))
}

func TestProgressService_GetTodaysProgress_Empty(t *testing.T) {
	mockProgressRepo, service := newProgressService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockProgressRepo.EXPECT().
		FindByUserAndDate(ctx, userID, entity.TruncateToDate(time.Now())).
		Return(nil, repository.ErrProgressNotFound)

	entry, err := service.GetTodaysProgress(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestProgressService_ComputeStreak(t *testing.T) {
	mockProgressRepo, service := newProgressService(t)

	ctx := context.Background()
	userID := uuid.New()
	asOf := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	end := entity.TruncateToDate(asOf)

	dayEntry := func(offset int, workouts ...string) *entity.ProgressEntry {
		return &entity.ProgressEntry{
			UserID:            userID,
			Date:              end.AddDate(0, 0, offset),
			WorkoutsCompleted: workouts,
		}
	}

	// Workouts on T, T-1 and T-2, nothing on T-3: streak is 3.
	entries := []*entity.ProgressEntry{
		dayEntry(0, "a"),
		dayEntry(-1, "b"),
		dayEntry(-2, "c"),
		dayEntry(-3),
		dayEntry(-4, "d"),
	}

	mockProgressRepo.EXPECT().
		FindSince(ctx, userID, end.AddDate(0, 0, -30), 31).
		Return(entries, nil)

	streak, err := service.ComputeStreak(ctx, userID, asOf)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestProgressService_ComputeStreak_BrokenToday(t *testing.T) {
	mockProgressRepo, service := newProgressService(t)

	ctx := context.Background()
	userID := uuid.New()
	asOf := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	end := entity.TruncateToDate(asOf)

	entries := []*entity.ProgressEntry{
		{UserID: userID, Date: end.AddDate(0, 0, -1), WorkoutsCompleted: []string{"a"}},
	}

	mockProgressRepo.EXPECT().
		FindSince(ctx, userID, end.AddDate(0, 0, -30), 31).
		Return(entries, nil)

	streak, err := service.ComputeStreak(ctx, userID, asOf)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestProgressService_ComputeStreak_NoHistory(t *testing.T) {
	mockProgressRepo, service := newProgressService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockProgressRepo.EXPECT().
		FindSince(ctx, userID, mock.Anything, 31).
		Return(nil, nil)

	streak, err := service.ComputeStreak(ctx, userID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}
