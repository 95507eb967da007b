package impl

import (
	"context"
	"time"

	"fitflow/config"
	"fitflow/internal/domain/entity"
	domainerrors "fitflow/internal/domain/errors"
	"fitflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface. It is a
// read-side composition over the plan and progress usecases.
type dashboardService struct {
	plans    usecase.PlanUsecase
	progress usecase.ProgressUsecase
	waterCap int
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	Plans    usecase.PlanUsecase
	Progress usecase.ProgressUsecase
	Config   *config.Config
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	waterCap := 0
	if params.Config != nil && params.Config.Progress != nil {
		waterCap = params.Config.Progress.WaterDailyCap
	}

	return &dashboardService{
		plans:    params.Plans,
		progress: params.Progress,
		waterCap: waterCap,
	}
}

// GetStats assembles today's stats from the current meal plan and progress.
func (srv *dashboardService) GetStats(ctx context.Context, userID uuid.UUID) (*usecase.DashboardStats, error) {
	stats := &usecase.DashboardStats{WaterCap: srv.waterCap}

	mealPlan, err := srv.plans.GetCurrentPlan(ctx, userID, entity.PlanKindMeal)
	if err != nil && !errors.Is(err, domainerrors.ErrPlanNotFound) {
		return nil, err
	}
	if mealPlan != nil {
		stats.TargetCalories = mealPlan.DailyCalories
		if mealPlan.DailyCalories > 0 {
			macros := entity.EstimateMacros(mealPlan.DailyCalories)
			stats.Macros = &macros
		}
	}

	today, err := srv.progress.GetTodaysProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	if today != nil {
		stats.WaterGlasses = today.WaterGlasses
	}

	streak, err := srv.progress.ComputeStreak(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}
	stats.WorkoutStreak = streak

	return stats, nil
}
