// Package model contains the GORM-specific structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. The primary key is the
// identity-provider user id, so there is at most one profile per user.
type ProfileModel struct {
	UserID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName          string    `gorm:"type:varchar(100)"`
	Age               *int
	Weight            *float64 `gorm:"type:decimal(5,2)"`
	Height            *float64 `gorm:"type:decimal(5,2)"`
	FitnessGoal       string   `gorm:"type:varchar(50)"`
	DietaryPreference string   `gorm:"type:varchar(50)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
