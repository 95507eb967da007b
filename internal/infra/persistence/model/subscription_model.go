package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel mirrors the 'subscriptions' table. The unique index on
// user_id keeps lazy creation race-safe: at most one row per user can exist.
type SubscriptionModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Tier                string    `gorm:"type:varchar(20);not null;default:'basic'"`
	RegenerationsUsed   int       `gorm:"not null;default:0"`
	RegenerationsLimit  int       `gorm:"not null;default:0"`
	FreeMealPlanUsed    bool      `gorm:"not null;default:false"`
	FreeWorkoutPlanUsed bool      `gorm:"not null;default:false"`
	LastResetDate       *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// RegenerationPurchaseModel mirrors the 'regeneration_purchases' table.
// Rows are append-only; there is no update or delete path.
type RegenerationPurchaseModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index"`
	RegenerationsAdded int       `gorm:"not null"`
	AmountPaid         float64   `gorm:"type:decimal(10,2);not null"`
	PurchasedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegenerationPurchaseModel) TableName() string {
	return "regeneration_purchases"
}
