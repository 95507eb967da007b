package repository

import (
	"context"

	"fitflow/internal/domain/entity"
	"fitflow/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrDuplicateSubscription is returned when trying to create a subscription that already exists.
	ErrDuplicateSubscription = errors.New("subscription already exists")
)

// SubscriptionRepository defines the interface for subscription-related database operations.
type SubscriptionRepository interface {
	// FindByUserID retrieves the subscription row for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error)

	// CreateIfAbsent inserts a new subscription unless one already exists for
	// the user. A concurrent duplicate insert must not fail the call; callers
	// re-read to observe the winning row.
	CreateIfAbsent(ctx context.Context, subscription *entity.Subscription) error

	// SetTier updates the subscription tier without touching the counters.
	SetTier(ctx context.Context, userID uuid.UUID, tier entity.SubscriptionTier) error

	// MarkFreeGenerationUsed sets the one-shot free flag for the kind. The flag
	// is one-way; calling this twice has the same effect as once.
	MarkFreeGenerationUsed(ctx context.Context, userID uuid.UUID, kind entity.PlanKind) error

	// ConsumeRegeneration atomically increments regenerations_used by one, but
	// only while used < limit. Returns false with no mutation when the quota is
	// exhausted or when a concurrent consumer took the last slot.
	ConsumeRegeneration(ctx context.Context, userID uuid.UUID) (bool, error)

	// AddRegenerationLimit atomically raises regenerations_limit by the batch size.
	AddRegenerationLimit(ctx context.Context, userID uuid.UUID, batch int) error

	// CreatePurchase appends a regeneration purchase audit row.
	CreatePurchase(ctx context.Context, purchase *entity.RegenerationPurchase) error

	// FindPurchasesByUser retrieves the purchase history for a user, newest first.
	FindPurchasesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RegenerationPurchase, error)
}
