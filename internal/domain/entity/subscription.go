package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionTier is the paid tier of a subscription.
type SubscriptionTier string

const (
	TierBasic SubscriptionTier = "basic"
	TierPro   SubscriptionTier = "pro"
)

// Subscription holds a user's tier, one-shot free-trial flags and the
// regeneration quota counters. One row per user, created lazily on first access.
type Subscription struct {
	ID                  uuid.UUID        `json:"id"`                    // The unique identifier for the subscription row.
	UserID              uuid.UUID        `json:"user_id"`               // The owning user.
	Tier                SubscriptionTier `json:"tier"`                  // basic or pro.
	RegenerationsUsed   int              `json:"regenerations_used"`    // Consumed regeneration slots; never exceeds the limit.
	RegenerationsLimit  int              `json:"regenerations_limit"`   // Purchased/granted regeneration capacity.
	FreeMealPlanUsed    bool             `json:"free_meal_plan_used"`   // One-way flag; set after the first meal plan generation.
	FreeWorkoutPlanUsed bool             `json:"free_workout_plan_used"` // One-way flag; set after the first workout plan generation.
	LastResetDate       *time.Time       `json:"last_reset_date,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// FreeGenerationAvailable reports whether the one-shot free generation for the
// given kind has not been used yet.
func (s *Subscription) FreeGenerationAvailable(kind PlanKind) bool {
	switch kind {
	case PlanKindMeal:
		return !s.FreeMealPlanUsed
	case PlanKindWorkout:
		return !s.FreeWorkoutPlanUsed
	default:
		return false
	}
}

// CanGenerate is the pure entitlement decision. The free-trial check is
// strictly prior to and independent of the tier/quota check: first use is
// allowed unconditionally regardless of tier.
func (s *Subscription) CanGenerate(kind PlanKind) bool {
	if s.FreeGenerationAvailable(kind) {
		return true
	}

	return s.Tier == TierPro && s.RegenerationsUsed < s.RegenerationsLimit
}

// RegenerationsRemaining returns the unconsumed quota, never negative.
func (s *Subscription) RegenerationsRemaining() int {
	remaining := s.RegenerationsLimit - s.RegenerationsUsed
	if remaining < 0 {
		return 0
	}

	return remaining
}

// RegenerationPurchase is an append-only audit record of a quota purchase.
// Rows are never mutated or deleted.
type RegenerationPurchase struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	RegenerationsAdded int       `json:"regenerations_added"`
	AmountPaid         float64   `json:"amount_paid"`
	PurchasedAt        time.Time `json:"purchased_at"`
}
