package entity

import (
	"time"

	"github.com/google/uuid"
)

// FitnessGoal is the user's stated training objective.
type FitnessGoal string

const (
	GoalLoseWeight  FitnessGoal = "lose_weight"
	GoalGainMuscle  FitnessGoal = "gain_muscle"
	GoalMaintain    FitnessGoal = "maintain"
	GoalImproveFitness FitnessGoal = "improve_fitness"
)

// DietaryPreference is the user's stated dietary preference.
type DietaryPreference string

const (
	DietNone       DietaryPreference = "none"
	DietVegetarian DietaryPreference = "vegetarian"
	DietVegan      DietaryPreference = "vegan"
	DietKeto       DietaryPreference = "keto"
	DietPaleo      DietaryPreference = "paleo"
)

// Profile holds the setup-form attributes that parameterize plan generation.
// Age, weight and height are pointers because a profile may exist before the
// user has completed setup.
type Profile struct {
	UserID            uuid.UUID         `json:"user_id"` // The identity-provider user this profile belongs to.
	FullName          string            `json:"full_name"`
	Age               *int              `json:"age,omitempty"`
	WeightKg          *float64          `json:"weight,omitempty"`
	HeightCm          *float64          `json:"height,omitempty"`
	FitnessGoal       FitnessGoal       `json:"fitness_goal"`
	DietaryPreference DietaryPreference `json:"dietary_preference"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// Complete reports whether the required generation inputs are present.
// A plan cannot be generated for an incomplete profile.
func (p *Profile) Complete() bool {
	return p != nil && p.Age != nil && p.WeightKg != nil && p.HeightCm != nil
}
