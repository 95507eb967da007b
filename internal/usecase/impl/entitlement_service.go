// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"fitflow/config"
	deliverycontext "fitflow/internal/delivery/context"
	"fitflow/internal/domain/entity"
	domainerrors "fitflow/internal/domain/errors"
	"fitflow/internal/domain/repository"
	"fitflow/internal/domain/service"
	"fitflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// entitlementService implements the EntitlementUsecase interface.
type entitlementService struct {
	subscriptionRepo  repository.SubscriptionRepository
	publisher         service.EventPublisher
	defaultRegenLimit int
	purchaseBatchSize int
	purchaseUnitPrice float64
	logger            *slog.Logger
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewEntitlementService creates a new entitlement service instance
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	srv := &entitlementService{
		subscriptionRepo: params.SubscriptionRepo,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
	if params.Config != nil && params.Config.Entitlement != nil {
		srv.defaultRegenLimit = params.Config.Entitlement.DefaultRegenerationLimit
		srv.purchaseBatchSize = params.Config.Entitlement.PurchaseBatchSize
		srv.purchaseUnitPrice = params.Config.Entitlement.PurchaseUnitPrice
	}

	return srv
}

func (srv *entitlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrCreate returns the user's subscription, creating a basic one on first access.
func (srv *entitlementService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	sub, err := srv.subscriptionRepo.FindByUserID(ctx, userID)
	if err == nil {
		return sub, nil
	}
	if !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, errors.Wrap(err, "failed to find subscription by user")
	}

	now := time.Now()
	fresh := &entity.Subscription{
		ID:                 uuid.New(),
		UserID:             userID,
		Tier:               entity.TierBasic,
		RegenerationsLimit: srv.defaultRegenLimit,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// A concurrent first request may insert the row between our read and this
	// write. CreateIfAbsent tolerates the duplicate; the re-read below returns
	// whichever row won.
	if err := srv.subscriptionRepo.CreateIfAbsent(ctx, fresh); err != nil {
		return nil, errors.Wrap(err, "failed to create subscription")
	}

	sub, err = srv.subscriptionRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload subscription after create")
	}

	return sub, nil
}

// GetState returns the UI-facing view of the user's entitlements.
func (srv *entitlementService) GetState(ctx context.Context, userID uuid.UUID) (*usecase.SubscriptionState, error) {
	sub, err := srv.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.SubscriptionState{
		Tier:                   sub.Tier,
		CanRegenerate:          sub.Tier == entity.TierPro && sub.RegenerationsRemaining() > 0,
		RegenerationsRemaining: sub.RegenerationsRemaining(),
		CanUseFreeMealPlan:     sub.FreeGenerationAvailable(entity.PlanKindMeal),
		CanUseFreeWorkoutPlan:  sub.FreeGenerationAvailable(entity.PlanKindWorkout),
	}, nil
}

// ConsumeFreeTrial marks the one-shot free generation for the kind as used.
func (srv *entitlementService) ConsumeFreeTrial(ctx context.Context, userID uuid.UUID, kind entity.PlanKind) error {
	if !kind.Valid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid plan kind")
	}

	if err := srv.subscriptionRepo.MarkFreeGenerationUsed(ctx, userID, kind); err != nil {
		return errors.Wrap(err, "failed to mark free generation used")
	}

	return nil
}

// ConsumeRegeneration takes one regeneration slot if any remain.
func (srv *entitlementService) ConsumeRegeneration(ctx context.Context, userID uuid.UUID) (bool, error) {
	consumed, err := srv.subscriptionRepo.ConsumeRegeneration(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to consume regeneration")
	}

	return consumed, nil
}

// Upgrade moves the user to the pro tier.
func (srv *entitlementService) Upgrade(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	if _, err := srv.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	if err := srv.subscriptionRepo.SetTier(ctx, userID, entity.TierPro); err != nil {
		return nil, errors.Wrap(err, "failed to set subscription tier")
	}

	sub, err := srv.subscriptionRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload subscription after upgrade")
	}

	srv.log(ctx).Info("Subscription upgraded", slog.String("user_id", userID.String()))

	return sub, nil
}

// PurchaseRegenerations raises the quota limit by one batch and records the purchase.
func (srv *entitlementService) PurchaseRegenerations(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	if _, err := srv.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	if err := srv.subscriptionRepo.AddRegenerationLimit(ctx, userID, srv.purchaseBatchSize); err != nil {
		return nil, errors.Wrap(err, "failed to add regeneration limit")
	}

	// The audit row is best-effort. The limit increase above already committed
	// and must stand even when this write fails.
	purchase := &entity.RegenerationPurchase{
		ID:                 uuid.New(),
		UserID:             userID,
		RegenerationsAdded: srv.purchaseBatchSize,
		AmountPaid:         srv.purchaseUnitPrice,
		PurchasedAt:        time.Now(),
	}
	if err := srv.subscriptionRepo.CreatePurchase(ctx, purchase); err != nil {
		srv.log(ctx).Warn("Failed to record regeneration purchase",
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
	}

	srv.publishPurchaseEvent(ctx, purchase)

	sub, err := srv.subscriptionRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload subscription after purchase")
	}

	return sub, nil
}

func (srv *entitlementService) publishPurchaseEvent(ctx context.Context, purchase *entity.RegenerationPurchase) {
	if srv.publisher == nil {
		return
	}

	event := &service.RegenerationsPurchasedEvent{
		RequestID:          deliverycontext.GetRequestIDFromContext(ctx),
		UserID:             purchase.UserID.String(),
		RegenerationsAdded: purchase.RegenerationsAdded,
		AmountPaid:         purchase.AmountPaid,
	}
	if err := srv.publisher.PublishRegenerationsPurchased(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish purchase event", slog.Any("error", err))
	}
}
