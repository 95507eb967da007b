package usecase

import (
	"context"

	"fitflow/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the setup-form fields. Nil pointers leave the
// corresponding stored value unchanged.
type UpdateProfileInput struct {
	FullName          *string  `json:"full_name"`
	Age               *int     `json:"age" validate:"omitempty,gt=0,lt=130"`
	WeightKg          *float64 `json:"weight" validate:"omitempty,gt=0"`
	HeightCm          *float64 `json:"height" validate:"omitempty,gt=0"`
	FitnessGoal       *string  `json:"fitness_goal"`
	DietaryPreference *string  `json:"dietary_preference"`
}

// ProfileUsecase manages the setup-form profile the plan generator reads.
type ProfileUsecase interface {
	// GetProfile returns the user's profile, or a fresh empty one when the
	// user has not completed setup yet.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// UpdateProfile applies the provided fields and persists the profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
}
