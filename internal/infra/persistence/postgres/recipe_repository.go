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
)

// recipeRepository implements the repository.RecipeRepository interface.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{
		db: db,
	}
}

// List retrieves recipes, optionally filtered by category, newest first.
func (repo *recipeRepository) List(ctx context.Context, category string) ([]*entity.Recipe, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var recipeMs []model.RecipeModel
	if err := query.Find(&recipeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeMs))
	for i := range recipeMs {
		recipes = append(recipes, toRecipeDomain(&recipeMs[i]))
	}

	return recipes, nil
}

// FindByID retrieves a single recipe.
func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by ID")
	}

	return toRecipeDomain(&recipeM), nil
}

// Create persists a new recipe.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required recipe information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt

	return nil
}

// toRecipeDomain converts a GORM model to a domain entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	return &entity.Recipe{
		ID:          data.ID,
		Title:       data.Title,
		Category:    data.Category,
		Description: data.Description,
		Calories:    data.Calories,
		PrepTime:    data.PrepTime,
		Servings:    data.Servings,
		Ingredients: data.Ingredients,
		Steps:       data.Steps,
		SourceURL:   data.SourceURL,
		CreatedAt:   data.CreatedAt,
	}
}

// fromRecipeDomain converts a domain entity to a GORM model.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	return &model.RecipeModel{
		ID:          data.ID,
		Title:       data.Title,
		Category:    data.Category,
		Description: data.Description,
		Calories:    data.Calories,
		PrepTime:    data.PrepTime,
		Servings:    data.Servings,
		Ingredients: model.StringSlice(data.Ingredients),
		Steps:       model.StringSlice(data.Steps),
		SourceURL:   data.SourceURL,
		CreatedAt:   data.CreatedAt,
	}
}
