package impl

import (
	"context"
	"testing"

	"fitflow/config"
	"fitflow/internal/domain/entity"
	domainerrors "fitflow/internal/domain/errors"
	mockUC "fitflow/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDashboardService(t *testing.T) (*mockUC.MockPlanUsecase, *mockUC.MockProgressUsecase, *dashboardService) {
	mockPlans := mockUC.NewMockPlanUsecase(t)
	mockProgress := mockUC.NewMockProgressUsecase(t)
	service := NewDashboardService(DashboardServiceParams{
		Plans:    mockPlans,
		Progress: mockProgress,
		Config: &config.Config{
			Progress: &config.ProgressConfig{WaterDailyCap: 8, StreakLookbackDays: 30},
		},
	})

	return mockPlans, mockProgress, service.(*dashboardService)
}

func TestDashboardService_GetStats(t *testing.T) {
	mockPlans, mockProgress, service := newDashboardService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockPlans.EXPECT().
		GetCurrentPlan(ctx, userID, entity.PlanKindMeal).
		Return(&entity.Plan{
			UserID:        userID,
			Kind:          entity.PlanKindMeal,
			DailyCalories: 2000,
		}, nil)

	mockProgress.EXPECT().
		GetTodaysProgress(ctx, userID).
		Return(&entity.ProgressEntry{UserID: userID, WaterGlasses: 5}, nil)

	mockProgress.EXPECT().
		ComputeStreak(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(4, nil)

	stats, err := service.GetStats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2000, stats.TargetCalories)
	assert.Equal(t, 5, stats.WaterGlasses)
	assert.Equal(t, 8, stats.WaterCap)
	assert.Equal(t, 4, stats.WorkoutStreak)
	require.NotNil(t, stats.Macros)
	assert.Equal(t, 150, stats.Macros.ProteinGrams)
	assert.Equal(t, 200, stats.Macros.CarbsGrams)
	assert.Equal(t, 67, stats.Macros.FatGrams)
}

func TestDashboardService_GetStats_NoPlanNoProgress(t *testing.T) {
	mockPlans, mockProgress, service := newDashboardService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockPlans.EXPECT().
		GetCurrentPlan(ctx, userID, entity.PlanKindMeal).
		Return(nil, domainerrors.ErrPlanNotFound.WrapMessage("no current plan of this kind"))

	mockProgress.EXPECT().
		GetTodaysProgress(ctx, userID).
		Return(nil, nil)

	mockProgress.EXPECT().
		ComputeStreak(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(0, nil)

	stats, err := service.GetStats(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, stats.TargetCalories)
	assert.Zero(t, stats.WaterGlasses)
	assert.Zero(t, stats.WorkoutStreak)
	assert.Nil(t, stats.Macros)
}
