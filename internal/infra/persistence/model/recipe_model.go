package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel mirrors the 'recipes' table.
type RecipeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(50);index"`
	Description string    `gorm:"type:text"`
	Calories    int       `gorm:"not null;default:0"`
	PrepTime    string    `gorm:"type:varchar(50)"`
	Servings    string    `gorm:"type:varchar(50)"`
	Ingredients StringSlice `gorm:"type:jsonb;not null;default:'[]'"`
	Steps       StringSlice `gorm:"type:jsonb;not null;default:'[]'"`
	SourceURL   string      `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
