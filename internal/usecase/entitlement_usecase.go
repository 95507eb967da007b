// Package usecase defines the application's use case interfaces and DTOs.
package usecase

import (
	"context"

	"fitflow/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionState is the read model the UI uses to decide which upgrade or
// purchase prompts to show.
type SubscriptionState struct {
	Tier                   entity.SubscriptionTier `json:"tier"`
	CanRegenerate          bool                    `json:"can_regenerate"`
	RegenerationsRemaining int                     `json:"regenerations_remaining"`
	CanUseFreeMealPlan     bool                    `json:"can_use_free_meal_plan"`
	CanUseFreeWorkoutPlan  bool                    `json:"can_use_free_workout_plan"`
}

// EntitlementUsecase owns subscription tiers, free-trial flags and
// regeneration quota accounting.
type EntitlementUsecase interface {
	// GetOrCreate returns the user's subscription, lazily creating a basic one
	// on first access. Safe under concurrent first access.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error)

	// GetState returns the UI-facing subscription state.
	GetState(ctx context.Context, userID uuid.UUID) (*SubscriptionState, error)

	// ConsumeFreeTrial marks the one-shot free generation for the kind as used.
	// Idempotent; must only be called after the generated plan was persisted.
	ConsumeFreeTrial(ctx context.Context, userID uuid.UUID, kind entity.PlanKind) error

	// ConsumeRegeneration takes one regeneration slot. Returns false without
	// mutation when the quota is exhausted, including when a concurrent call
	// won the last slot.
	ConsumeRegeneration(ctx context.Context, userID uuid.UUID) (bool, error)

	// Upgrade moves the user to the pro tier. Counters are untouched.
	Upgrade(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error)

	// PurchaseRegenerations raises the quota limit by the configured batch size
	// and appends an audit row. The audit write is best-effort: its failure is
	// logged but never rolls back the limit increase.
	PurchaseRegenerations(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error)
}
