package postgres

import (
	"context"

	"fitflow/internal/domain/entity"
	domainerrors "fitflow/internal/domain/errors"
	"fitflow/internal/domain/repository"
	"fitflow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindByUserID retrieves the subscription row for a user.
func (repo *subscriptionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by user ID")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// CreateIfAbsent inserts a new subscription unless one already exists for the
// user. The unique index on user_id plus DO NOTHING makes a concurrent
// duplicate insert a silent no-op instead of an error.
func (repo *subscriptionRepository) CreateIfAbsent(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(subscriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	return nil
}

// SetTier updates the subscription tier without touching the counters.
func (repo *subscriptionRepository) SetTier(ctx context.Context, userID uuid.UUID, tier entity.SubscriptionTier) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("user_id = ?", userID).
		Update("tier", string(tier))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set subscription tier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// MarkFreeGenerationUsed sets the one-shot free flag for the kind. Setting a
// flag that is already true is a harmless repeat of the same write.
func (repo *subscriptionRepository) MarkFreeGenerationUsed(ctx context.Context, userID uuid.UUID, kind entity.PlanKind) error {
	column := "free_meal_plan_used"
	if kind == entity.PlanKindWorkout {
		column = "free_workout_plan_used"
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("user_id = ?", userID).
		Update(column, true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark free generation used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// ConsumeRegeneration atomically takes one regeneration slot. The guard in the
// WHERE clause makes the increment and the quota check one statement, so two
// racing consumers can never both win the last slot.
func (repo *subscriptionRepository) ConsumeRegeneration(ctx context.Context, userID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("user_id = ? AND regenerations_used < regenerations_limit", userID).
		Update("regenerations_used", gorm.Expr("regenerations_used + 1"))
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to consume regeneration")
	}

	return result.RowsAffected > 0, nil
}

// AddRegenerationLimit atomically raises regenerations_limit by the batch size.
func (repo *subscriptionRepository) AddRegenerationLimit(ctx context.Context, userID uuid.UUID, batch int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("user_id = ?", userID).
		Update("regenerations_limit", gorm.Expr("regenerations_limit + ?", batch))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to add regeneration limit")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// CreatePurchase appends a regeneration purchase audit row.
func (repo *subscriptionRepository) CreatePurchase(ctx context.Context, purchase *entity.RegenerationPurchase) error {
	purchaseM := &model.RegenerationPurchaseModel{
		ID:                 purchase.ID,
		UserID:             purchase.UserID,
		RegenerationsAdded: purchase.RegenerationsAdded,
		AmountPaid:         purchase.AmountPaid,
		PurchasedAt:        purchase.PurchasedAt,
	}

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create regeneration purchase")
	}

	return nil
}

// FindPurchasesByUser retrieves the purchase history for a user, newest first.
func (repo *subscriptionRepository) FindPurchasesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RegenerationPurchase, error) {
	var purchaseMs []model.RegenerationPurchaseModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchased_at DESC").
		Find(&purchaseMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find purchases by user")
	}

	purchases := make([]*entity.RegenerationPurchase, 0, len(purchaseMs))
	for i := range purchaseMs {
		p := &purchaseMs[i]
		purchases = append(purchases, &entity.RegenerationPurchase{
			ID:                 p.ID,
			UserID:             p.UserID,
			RegenerationsAdded: p.RegenerationsAdded,
			AmountPaid:         p.AmountPaid,
			PurchasedAt:        p.PurchasedAt,
		})
	}

	return purchases, nil
}

// toSubscriptionDomain converts a GORM model to a domain entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	return &entity.Subscription{
		ID:                  data.ID,
		UserID:              data.UserID,
		Tier:                entity.SubscriptionTier(data.Tier),
		RegenerationsUsed:   data.RegenerationsUsed,
		RegenerationsLimit:  data.RegenerationsLimit,
		FreeMealPlanUsed:    data.FreeMealPlanUsed,
		FreeWorkoutPlanUsed: data.FreeWorkoutPlanUsed,
		LastResetDate:       data.LastResetDate,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain entity to a GORM model.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	return &model.SubscriptionModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		Tier:                string(data.Tier),
		RegenerationsUsed:   data.RegenerationsUsed,
		RegenerationsLimit:  data.RegenerationsLimit,
		FreeMealPlanUsed:    data.FreeMealPlanUsed,
		FreeWorkoutPlanUsed: data.FreeWorkoutPlanUsed,
		LastResetDate:       data.LastResetDate,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
