package usecase

import (
	"context"

	"fitflow/internal/domain/entity"

	"github.com/google/uuid"
)

// RecipeUsecase serves the recipe library and the URL importer.
type RecipeUsecase interface {
	// ListRecipes returns recipes, optionally filtered by category.
	ListRecipes(ctx context.Context, category string) ([]*entity.Recipe, error)

	// GetRecipe returns a single recipe by id.
	GetRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// ImportFromURL fetches the page, extracts a recipe with the model and
	// stores it. Returns ErrRecipeImportDisabled when the importer is off.
	ImportFromURL(ctx context.Context, rawURL string) (*entity.Recipe, error)
}
