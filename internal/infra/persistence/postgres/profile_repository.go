// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByUserID retrieves the profile for a user.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user ID")
	}

	return toProfileDomain(&profileM), nil
}

// Upsert creates or replaces the profile row for the profile's user.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "age", "weight", "height",
				"fitness_goal", "dietary_preference", "updated_at",
			}),
		}).
		Create(profileM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// toProfileDomain converts a GORM model to a domain entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		UserID:            data.UserID,
		FullName:          data.FullName,
		Age:               data.Age,
		WeightKg:          data.Weight,
		HeightCm:          data.Height,
		FitnessGoal:       entity.FitnessGoal(data.FitnessGoal),
		DietaryPreference: entity.DietaryPreference(data.DietaryPreference),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain entity to a GORM model.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		UserID:            data.UserID,
		FullName:          data.FullName,
		Age:               data.Age,
		Weight:            data.WeightKg,
		Height:            data.HeightCm,
		FitnessGoal:       string(data.FitnessGoal),
		DietaryPreference: string(data.DietaryPreference),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
