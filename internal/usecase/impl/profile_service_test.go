package impl

import (
	"context"
	"testing"

	"fitflow/internal/domain/entity"
	"fitflow/internal/domain/repository"
	mockRepo "fitflow/internal/mocks/repository"
	"fitflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetProfile_BeforeSetup(t *testing.T) {
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(ProfileServiceParams{ProfileRepo: mockProfileRepo})

	ctx := context.Background()
	userID := uuid.New()

	mockProfileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	profile, err := service.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.False(t, profile.Complete())
}

func TestProfileService_UpdateProfile_PartialUpdate(t *testing.T) {
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(ProfileServiceParams{ProfileRepo: mockProfileRepo})

	ctx := context.Background()
	userID := uuid.New()

	age := 28
	weight := 64.0
	height := 170.0
	existing := &entity.Profile{
		UserID:      userID,
		FullName:    "Ada",
		Age:         &age,
		WeightKg:    &weight,
		HeightCm:    &height,
		FitnessGoal: entity.GoalMaintain,
	}

	mockProfileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(existing, nil)

	mockProfileRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.Equal(t, "Ada", profile.FullName)
			require.NotNil(t, profile.WeightKg)
			assert.Equal(t, 62.5, *profile.WeightKg)
			assert.Equal(t, entity.GoalGainMuscle, profile.FitnessGoal)
		}).
		Return(nil)

	newWeight := 62.5
	goal := string(entity.GoalGainMuscle)
	updated, err := service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		WeightKg:    &newWeight,
		FitnessGoal: &goal,
	})
	require.NoError(t, err)
	assert.True(t, updated.Complete())
}

func TestProfileService_UpdateProfile_FirstSave(t *testing.T) {
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(ProfileServiceParams{ProfileRepo: mockProfileRepo})

	ctx := context.Background()
	userID := uuid.New()

	mockProfileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	mockProfileRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	name := "Sam"
	updated, err := service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Sam", updated.FullName)
	assert.False(t, updated.Complete())
}
