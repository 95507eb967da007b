package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressEntryModel mirrors the 'progress_entries' table. One row per
// (user_id, date); the composite unique index backs the guarded upserts.
type ProgressEntryModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_date"`
	Date              time.Time `gorm:"type:date;not null;uniqueIndex:idx_progress_user_date"`
	Weight            *float64  `gorm:"type:decimal(5,2)"`
	WaterGlasses      int       `gorm:"not null;default:0"`
	WorkoutsCompleted StringSlice `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProgressEntryModel) TableName() string {
	return "progress_entries"
}
