package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fitflow/config"
	"fitflow/internal/domain/entity"
	"fitflow/internal/domain/repository"
	mockRepo "fitflow/internal/mocks/repository"
	mockSvc "fitflow/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func entitlementTestConfig() *config.Config {
	return &config.Config{
		Entitlement: &config.EntitlementConfig{
			DefaultRegenerationLimit: 0,
			PurchaseBatchSize:        3,
			PurchaseUnitPrice:        2.99,
		},
	}
}

func TestEntitlementService_GetOrCreate_CreatesOnFirstAccess(t *testing.T) {
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewEntitlementService(EntitlementServiceParams{
		SubscriptionRepo: mockSubRepo,
		Publisher:        mockPublisher,
		Config:           entitlementTestConfig(),
		Logger:           newTestLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	created := &entity.Subscription{
		ID:     uuid.New(),
		UserID: userID,
		Tier:   entity.TierBasic,
	}

	mockSubRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrSubscriptionNotFound).
		Once()

	mockSubRepo.EXPECT().
		CreateIfAbsent(ctx, mock.AnythingOfType("*entity.Subscription")).
		Run(func(_ context.Context, sub *entity.Subscription) {
			assert.Equal(t, userID, sub.UserID)
			assert.Equal(t, entity.TierBasic, sub.Tier)
			assert.False(t, sub.FreeMealPlanUsed)
			assert.False(t, sub.FreeWorkoutPlanUsed)
		}).
		Return(nil)

	mockSubRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(created, nil).
		Once()

	sub, err := service.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, created, sub)
}

func TestEntitlementService_GetOrCreate_ReturnsExisting(t *testing.T) {
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewEntitlementService(EntitlementServiceParams{
		SubscriptionRepo: mockSubRepo,
		Publisher:        mockPublisher,
		Config:           entitlementTestConfig(),
		Logger:           newTestLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Subscription{ID: uuid.New(), UserID: userID, Tier: entity.TierPro}

	mockSubRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(existing, nil)

	sub, err := service.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, existing, sub)
}

func TestEntitlementService_GetState(t *testing.T) {
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewEntitlementService(EntitlementServiceParams{
		SubscriptionRepo: mockSubRepo,
		Publisher:        mockPublisher,
		Config:           entitlementTestConfig(),
		Logger:           newTestLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	mockSubRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Subscription{
			UserID:             userID,
			Tier:               entity.TierPro,
			RegenerationsUsed:  2,
			RegenerationsLimit: 3,
			FreeMealPlanUsed:   true,
		}, nil)

	state, err := service.GetState(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.TierPro, state.Tier)
	assert.True(t, state.CanRegenerate)
	assert.Equal(t, 1, state.RegenerationsRemaining)
	assert.False(t, state.CanUseFreeMealPlan)
	assert.True(t, state.CanUseFreeWorkoutPlan)
}

func TestEntitlementService_GetState_BasicTierCannotRegenerate(t *testing.T) {
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewEntitlementService(EntitlementServiceParams{
		SubscriptionRepo: mockSubRepo,
		Publisher:        mockPublisher,
		Config:           entitlementTestConfig(),
		Logger:           newTestLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	mockSubRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.Subscription{
			UserID:             userID,
			Tier:               entity.TierBasic,
			RegenerationsLimit: 3,
		}, nil)

	state, err := service.GetState(ctx, userID)
	require.NoError(t, err)
	assert.False(t, state.CanRegenerate)
}

func TestEntitlementService_ConsumeRegeneration_Exhausted(t *testing.T) {
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewEntitlementService(EntitlementServiceParams{
		SubscriptionRepo: mockSubRepo,
		Publisher:        mockPublisher,
		Config:           entitlementTestConfig(),
		Logger:           newTestLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()

	mockSubRepo.EXPECT().
		ConsumeRegeneration(ctx, userID).
		Return(false, nil)

	consumed, err := service.ConsumeRegeneration(ctx, userID)
	require.NoError(t, err)
	assert.False(t, consumed)
}

func TestEntitlementService_Upgrade(t *testing.T) {
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewEntitlementService(EntitlementServiceParams{
		SubscriptionRepo: mockSubRepo,
		Publisher:        mockPublisher,
		Config:           entitlementTestConfig(),
		Logger:           newTestLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()
	basic := &entity.Subscription{UserID: userID, Tier: entity.TierBasic, RegenerationsUsed: 1, RegenerationsLimit: 3}
	upgraded := &entity.Subscription{UserID: userID, Tier: entity.TierPro, RegenerationsUsed: 1, RegenerationsLimit: 3}

	mockSubRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(basic, nil).
		Once()

	mockSubRepo.EXPECT().
		SetTier(ctx, userID, entity.TierPro).
		Return(nil)

	mockSubRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(upgraded, nil).
		Once()

	sub, err := service.Upgrade(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.TierPro, sub.Tier)
	// Counters survive the upgrade untouched.
	assert.Equal(t, 1, sub.RegenerationsUsed)
	assert.Equal(t, 3, sub.RegenerationsLimit)
}

func TestEntitlementService_PurchaseRegenerations(t *testing.T) {
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewEntitlementService(EntitlementServiceParams{
		SubscriptionRepo: mockSubRepo,
		Publisher:        mockPublisher,
		Config:           entitlementTestConfig(),
		Logger:           newTestLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Subscription{UserID: userID, Tier: entity.TierPro, RegenerationsLimit: 3}
	raised := &entity.Subscription{UserID: userID, Tier: entity.TierPro, RegenerationsLimit: 6}

	mockSubRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(existing, nil).
		Once()

	mockSubRepo.EXPECT().
		AddRegenerationLimit(ctx, userID, 3).
		Return(nil)

	mockSubRepo.EXPECT().
		CreatePurchase(ctx, mock.AnythingOfType("*entity.RegenerationPurchase")).
		Run(func(_ context.Context, purchase *entity.RegenerationPurchase) {
			assert.Equal(t, 3, purchase.RegenerationsAdded)
			assert.Equal(t, 2.99, purchase.AmountPaid)
		}).
		Return(nil)

	mockPublisher.EXPECT().
		PublishRegenerationsPurchased(ctx, mock.AnythingOfType("*service.RegenerationsPurchasedEvent")).
		Return(nil)

	mockSubRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(raised, nil).
		Once()

	sub, err := service.PurchaseRegenerations(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 6, sub.RegenerationsLimit)
}

func TestEntitlementService_PurchaseRegenerations_AuditFailureDoesNotRollBack(t *testing.T) {
	mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewEntitlementService(EntitlementServiceParams{
		SubscriptionRepo: mockSubRepo,
		Publisher:        mockPublisher,
		Config:           entitlementTestConfig(),
		Logger:           newTestLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Subscription{UserID: userID, Tier: entity.TierPro, RegenerationsLimit: 3}
	raised := &entity.Subscription{UserID: userID, Tier: entity.TierPro, RegenerationsLimit: 6}

	mockSubRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(existing, nil).
		Once()

	mockSubRepo.EXPECT().
		AddRegenerationLimit(ctx, userID, 3).
		Return(nil)

	mockSubRepo.EXPECT().
		CreatePurchase(ctx, mock.AnythingOfType("*entity.RegenerationPurchase")).
		Return(errors.New("audit table unavailable"))

	mockPublisher.EXPECT().
		PublishRegenerationsPurchased(ctx, mock.AnythingOfType("*service.RegenerationsPurchasedEvent")).
		Return(nil)

	mockSubRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(raised, nil).
		Once()

	sub, err := service.PurchaseRegenerations(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 6, sub.RegenerationsLimit)
}
