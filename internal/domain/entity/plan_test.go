package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateMacros(t *testing.T) {
	macros := EstimateMacros(2000)

	assert.Equal(t, 150, macros.ProteinGrams)
	assert.Equal(t, 200, macros.CarbsGrams)
	assert.Equal(t, 67, macros.FatGrams)
}

func TestEstimateMacros_NonPositiveCalories(t *testing.T) {
	assert.Equal(t, MacroEstimate{}, EstimateMacros(0))
	assert.Equal(t, MacroEstimate{}, EstimateMacros(-100))
}

func TestPlanKind_Valid(t *testing.T) {
	assert.True(t, PlanKindMeal.Valid())
	assert.True(t, PlanKindWorkout.Valid())
	assert.False(t, PlanKind("yoga").Valid())
	assert.False(t, PlanKind("").Valid())
}
