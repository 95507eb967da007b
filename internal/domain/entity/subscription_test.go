package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscription_CanGenerate_FreeTrialFirst(t *testing.T) {
	// A basic user with zero quota can still generate once per kind.
	sub := &Subscription{Tier: TierBasic}

	assert.True(t, sub.CanGenerate(PlanKindMeal))
	assert.True(t, sub.CanGenerate(PlanKindWorkout))
}

func TestSubscription_CanGenerate_FreeTrialIndependentPerKind(t *testing.T) {
	sub := &Subscription{Tier: TierBasic, FreeMealPlanUsed: true}

	assert.False(t, sub.CanGenerate(PlanKindMeal))
	assert.True(t, sub.CanGenerate(PlanKindWorkout))
}

func TestSubscription_CanGenerate_ProQuota(t *testing.T) {
	sub := &Subscription{
		Tier:                TierPro,
		FreeMealPlanUsed:    true,
		FreeWorkoutPlanUsed: true,
		RegenerationsUsed:   2,
		RegenerationsLimit:  3,
	}

	assert.True(t, sub.CanGenerate(PlanKindMeal))

	sub.RegenerationsUsed = 3
	assert.False(t, sub.CanGenerate(PlanKindMeal))
}

func TestSubscription_CanGenerate_BasicBlockedAfterTrial(t *testing.T) {
	// Quota only counts for pro users.
	sub := &Subscription{
		Tier:               TierBasic,
		FreeMealPlanUsed:   true,
		RegenerationsLimit: 5,
	}

	assert.False(t, sub.CanGenerate(PlanKindMeal))
}

func TestSubscription_RegenerationsRemaining_NeverNegative(t *testing.T) {
	sub := &Subscription{RegenerationsUsed: 7, RegenerationsLimit: 5}

	assert.Equal(t, 0, sub.RegenerationsRemaining())
}
