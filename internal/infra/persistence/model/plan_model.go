package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MealPlanModel mirrors the 'meal_plans' table. The unique index on user_id
// enforces the single-current-plan rule at the storage level.
type MealPlanModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Overview      string    `gorm:"type:text"`
	DailyCalories int       `gorm:"not null;default:0"`
	Data          json.RawMessage `gorm:"type:jsonb;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// WorkoutPlanModel mirrors the 'workout_plans' table, with the same
// single-current-plan unique index as meal plans.
type WorkoutPlanModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Overview   string    `gorm:"type:text"`
	WeeklyGoal string    `gorm:"type:varchar(255)"`
	Data       json.RawMessage `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkoutPlanModel) TableName() string {
	return "workout_plans"
}
