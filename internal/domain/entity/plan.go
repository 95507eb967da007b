// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PlanKind selects which schema and which storage table a generation or
// persistence operation targets.
type PlanKind string

const (
	PlanKindMeal    PlanKind = "meal"
	PlanKindWorkout PlanKind = "workout"
)

// Valid reports whether the kind is one of the known plan kinds.
func (k PlanKind) Valid() bool {
	return k == PlanKindMeal || k == PlanKindWorkout
}

// Weekdays is the canonical seven-day order every plan must cover exactly once.
var Weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Plan is the single current plan of one kind for a user. The system keeps no
// history; a new generation replaces the previous row.
type Plan struct {
	ID            uuid.UUID       `json:"id"`             // The unique identifier for the plan row.
	UserID        uuid.UUID       `json:"user_id"`        // The owner; plans are never shared across users.
	Kind          PlanKind        `json:"kind"`           // Meal or workout.
	Title         string          `json:"title"`          // Display title produced by the generator.
	Overview      string          `json:"overview"`       // Short summary of the plan.
	DailyCalories int             `json:"daily_calories"` // Estimated daily calories (meal plans only, 0 otherwise).
	WeeklyGoal    string          `json:"weekly_goal"`    // Weekly objective (workout plans only, empty otherwise).
	Data          json.RawMessage `json:"data"`           // The full structured plan payload as validated JSON.
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// MealItem is one named meal slot entry within a day.
type MealItem struct {
	Name        string `json:"name"`
	Calories    int    `json:"calories"`
	Description string `json:"description"`
}

// MealSlots holds the five named meal slots of a single day.
type MealSlots struct {
	Breakfast MealItem `json:"breakfast"`
	Lunch     MealItem `json:"lunch"`
	Dinner    MealItem `json:"dinner"`
	Snack1    MealItem `json:"snack1"`
	Snack2    MealItem `json:"snack2"`
}

// MealDay is one calendar day of a meal plan.
type MealDay struct {
	Day   string    `json:"day"`
	Meals MealSlots `json:"meals"`
}

// MealPlanData is the structured payload of a meal plan.
type MealPlanData struct {
	Title         string    `json:"title"`
	Overview      string    `json:"overview"`
	DailyCalories int       `json:"dailyCalories"`
	Days          []MealDay `json:"days"`
}

// Exercise is a single exercise within a workout day. Sets, reps, duration and
// rest are optional; a generator may emit any subset depending on the type.
type Exercise struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Sets        int    `json:"sets,omitempty"`
	Reps        string `json:"reps,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Rest        string `json:"rest,omitempty"`
	Description string `json:"description"`
}

// WorkoutDay is one calendar day of a workout plan. An empty exercises list is
// the accepted representation of a rest day.
type WorkoutDay struct {
	Day       string     `json:"day"`
	Focus     string     `json:"focus"`
	Duration  string     `json:"duration"`
	Exercises []Exercise `json:"exercises"`
}

// WorkoutPlanData is the structured payload of a workout plan.
type WorkoutPlanData struct {
	Title      string       `json:"title"`
	Overview   string       `json:"overview"`
	WeeklyGoal string       `json:"weeklyGoal"`
	Days       []WorkoutDay `json:"days"`
}

// MacroEstimate is a fixed-ratio macro split derived from a calorie total.
// It is an estimate, not measured data.
type MacroEstimate struct {
	ProteinGrams int `json:"protein"`
	CarbsGrams   int `json:"carbs"`
	FatGrams     int `json:"fat"`
}

// EstimateMacros converts a daily calorie target into grams using a 30/40/30
// protein/carb/fat calorie split at 4/4/9 kcal per gram.
func EstimateMacros(dailyCalories int) MacroEstimate {
	if dailyCalories <= 0 {
		return MacroEstimate{}
	}

	c := float64(dailyCalories)

	return MacroEstimate{
		ProteinGrams: int(c*0.3/4 + 0.5),
		CarbsGrams:   int(c*0.4/4 + 0.5),
		FatGrams:     int(c*0.3/9 + 0.5),
	}
}
