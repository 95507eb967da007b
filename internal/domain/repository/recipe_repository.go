package repository

import (
	"context"

	"fitflow/internal/domain/entity"
	"fitflow/internal/errors"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is returned when a recipe is not found.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the interface for the shared recipe library.
type RecipeRepository interface {
	// List retrieves recipes, optionally filtered by category, newest first.
	List(ctx context.Context, category string) ([]*entity.Recipe, error)

	// FindByID retrieves a single recipe.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// Create persists a new recipe.
	Create(ctx context.Context, recipe *entity.Recipe) error
}
