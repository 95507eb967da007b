package impl

import (
	"context"
	"time"

	"fitflow/internal/domain/entity"
	"fitflow/internal/domain/repository"
	"fitflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
	}
}

// GetProfile returns the user's profile, or a fresh empty one before setup.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return &entity.Profile{UserID: userID}, nil
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile applies the provided fields and persists the profile.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.Age != nil {
		profile.Age = input.Age
	}
	if input.WeightKg != nil {
		profile.WeightKg = input.WeightKg
	}
	if input.HeightCm != nil {
		profile.HeightCm = input.HeightCm
	}
	if input.FitnessGoal != nil {
		profile.FitnessGoal = entity.FitnessGoal(*input.FitnessGoal)
	}
	if input.DietaryPreference != nil {
		profile.DietaryPreference = entity.DietaryPreference(*input.DietaryPreference)
	}
	profile.UpdatedAt = time.Now()

	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to upsert profile")
	}

	return profile, nil
}
