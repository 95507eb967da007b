package usecase

import (
	"context"

	"fitflow/internal/domain/entity"

	"github.com/google/uuid"
)

// PlanUsecase composes the entitlement gate, the AI generation gateway and the
// plan store into the generate/read surface the UI calls.
type PlanUsecase interface {
	// GeneratePlan runs the full workflow: profile completeness check,
	// entitlement gate, AI call, response validation, persistence, and only
	// then entitlement consumption. A plan that fails to save burns neither a
	// free trial nor a regeneration.
	GeneratePlan(ctx context.Context, userID uuid.UUID, kind entity.PlanKind) (*entity.Plan, error)

	// GetCurrentPlan returns the user's current plan of the given kind.
	GetCurrentPlan(ctx context.Context, userID uuid.UUID, kind entity.PlanKind) (*entity.Plan, error)
}
