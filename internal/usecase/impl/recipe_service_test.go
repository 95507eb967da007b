package impl

import (
	"context"
	"testing"
	"time"

	"fitflow/config"
	domainerrors "fitflow/internal/domain/errors"
	mockRepo "fitflow/internal/mocks/repository"
	mockSvc "fitflow/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recipeServiceMocks struct {
	recipeRepo *mockRepo.MockRecipeRepository
	fetcher    *mockSvc.MockPageFetcher
	generator  *mockSvc.MockPlanTextGenerator
}

func newRecipeService(t *testing.T, importEnabled bool) (*recipeServiceMocks, *recipeService) {
	m := &recipeServiceMocks{
		recipeRepo: mockRepo.NewMockRecipeRepository(t),
		fetcher:    mockSvc.NewMockPageFetcher(t),
		generator:  mockSvc.NewMockPlanTextGenerator(t),
	}
	service := NewRecipeService(RecipeServiceParams{
		RecipeRepo: m.recipeRepo,
		Fetcher:    m.fetcher,
		Generator:  m.generator,
		Config: &config.Config{
			Recipes: &config.RecipesConfig{
				ImportEnabled: importEnabled,
				FetchTimeout:  10 * time.Second,
			},
		},
		Logger: newTestLogger(),
	})

	return m, service.(*recipeService)
}

func TestRecipeService_ImportFromURL(t *testing.T) {
	m, service := newRecipeService(t, true)

	ctx := context.Background()
	pageURL := "https://example.com/best-pancakes"

	m.fetcher.EXPECT().
		FetchText(mock.Anything, pageURL).
		Return("Fluffy pancakes. Ingredients: flour, milk, eggs...", nil)

	m.generator.EXPECT().
		GenerateContent(ctx, mock.AnythingOfType("string")).
		Return(`{
			"title": "Fluffy Pancakes",
			"category": "breakfast",
			"description": "Classic weekend pancakes",
			"calories": 420,
			"prepTime": "20 min",
			"servings": "4 servings",
			"ingredients": ["200g flour", "250ml milk", "2 eggs"],
			"steps": ["Mix", "Fry"]
		}`, nil)

	m.recipeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Recipe")).
		Return(nil)

	recipe, err := service.ImportFromURL(ctx, pageURL)
	require.NoError(t, err)
	assert.Equal(t, "Fluffy Pancakes", recipe.Title)
	assert.Equal(t, "breakfast", recipe.Category)
	assert.Equal(t, pageURL, recipe.SourceURL)
	assert.Len(t, recipe.Ingredients, 3)
}

func TestRecipeService_ImportFromURL_Disabled(t *testing.T) {
	_, service := newRecipeService(t, false)

	_, err := service.ImportFromURL(context.Background(), "https://example.com/recipe")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeImportDisabled))
}

func TestRecipeService_ImportFromURL_InvalidURL(t *testing.T) {
	_, service := newRecipeService(t, true)

	for _, raw := range []string{"", "not a url", "ftp://example.com/x"} {
		_, err := service.ImportFromURL(context.Background(), raw)
		require.Error(t, err, raw)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), raw)
	}
}

func TestRecipeService_ImportFromURL_NotARecipe(t *testing.T) {
	m, service := newRecipeService(t, true)

	ctx := context.Background()
	pageURL := "https://example.com/about-us"

	m.fetcher.EXPECT().
		FetchText(mock.Anything, pageURL).
		Return("We are a company that makes things.", nil)

	m.generator.EXPECT().
		GenerateContent(ctx, mock.AnythingOfType("string")).
		Return(`{"title": "", "ingredients": []}`, nil)

	_, err := service.ImportFromURL(ctx, pageURL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeImportFailed))
}

func TestRecipeService_ImportFromURL_FetchFailure(t *testing.T) {
	m, service := newRecipeService(t, true)

	ctx := context.Background()
	pageURL := "https://example.com/gone"

	m.fetcher.EXPECT().
		FetchText(mock.Anything, pageURL).
		Return("", errors.New("404 not found"))

	_, err := service.ImportFromURL(ctx, pageURL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeImportFailed))
}

func TestRecipeService_GetRecipe_NotFound(t *testing.T) {
	m, service := newRecipeService(t, true)

	ctx := context.Background()
	id := uuid.New()

	m.recipeRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, errors.New("recipe not found"))

	_, err := service.GetRecipe(ctx, id)
	require.Error(t, err)
}
