package usecase

import (
	"context"

	"fitflow/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardStats is the aggregate the home screen renders.
type DashboardStats struct {
	TargetCalories int                   `json:"targetCalories"`
	WorkoutStreak  int                   `json:"workoutStreak"`
	WaterGlasses   int                   `json:"waterGlasses"`
	WaterCap       int                   `json:"waterCap"`
	Macros         *entity.MacroEstimate `json:"macros,omitempty"`
}

// DashboardUsecase assembles today's stats from plans and progress.
type DashboardUsecase interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error)
}
