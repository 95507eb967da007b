package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
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

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	recipeRepo    repository.RecipeRepository
	fetcher       service.PageFetcher
	generator     service.PlanTextGenerator
	importEnabled bool
	fetchTimeout  time.Duration
	logger        *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	RecipeRepo repository.RecipeRepository
	Fetcher    service.PageFetcher
	Generator  service.PlanTextGenerator
	Config     *config.Config
	Logger     *slog.Logger
}

// NewRecipeService creates a new recipe service instance
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	srv := &recipeService{
		recipeRepo: params.RecipeRepo,
		fetcher:    params.Fetcher,
		generator:  params.Generator,
		logger:     params.Logger,
	}
	if params.Config != nil && params.Config.Recipes != nil {
		srv.importEnabled = params.Config.Recipes.ImportEnabled
		srv.fetchTimeout = params.Config.Recipes.FetchTimeout
	}

	return srv
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRecipes returns recipes, optionally filtered by category.
func (srv *recipeService) ListRecipes(ctx context.Context, category string) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.List(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

// GetRecipe returns a single recipe by id.
func (srv *recipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound.WrapMessage("no recipe with this id")
		}

		return nil, errors.Wrap(err, "failed to find recipe")
	}

	return recipe, nil
}

// recipePayload is the JSON shape the extraction prompt asks the model for.
type recipePayload struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Calories    int      `json:"calories"`
	PrepTime    string   `json:"prepTime"`
	Servings    string   `json:"servings"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// ImportFromURL fetches the page, extracts a recipe with the model and stores it.
func (srv *recipeService) ImportFromURL(ctx context.Context, rawURL string) (*entity.Recipe, error) {
	if !srv.importEnabled {
		return nil, domainerrors.ErrRecipeImportDisabled.WrapMessage("recipe import is turned off")
	}

	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid recipe url")
	}

	fetchCtx := ctx
	if srv.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, srv.fetchTimeout)
		defer cancel()
	}

	pageText, err := srv.fetcher.FetchText(fetchCtx, rawURL)
	if err != nil {
		srv.log(ctx).Warn("Failed to fetch recipe page",
			slog.String("url", rawURL),
			slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRecipeImportFailed, "could not fetch the page")
	}

	raw, err := srv.generator.GenerateContent(ctx, buildRecipeExtractionPrompt(pageText))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRecipeImportFailed, err.Error())
	}

	payload, ok := extractJSON(raw)
	if !ok {
		return nil, domainerrors.ErrRecipeImportFailed.WrapMessage("response contains no JSON object")
	}

	var extracted recipePayload
	if err := json.Unmarshal([]byte(payload), &extracted); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRecipeImportFailed, "extracted recipe is not valid JSON")
	}
	if extracted.Title == "" || len(extracted.Ingredients) == 0 {
		return nil, domainerrors.ErrRecipeImportFailed.WrapMessage("page does not look like a recipe")
	}

	recipe := &entity.Recipe{
		ID:          uuid.New(),
		Title:       extracted.Title,
		Category:    extracted.Category,
		Description: extracted.Description,
		Calories:    extracted.Calories,
		PrepTime:    extracted.PrepTime,
		Servings:    extracted.Servings,
		Ingredients: extracted.Ingredients,
		Steps:       extracted.Steps,
		SourceURL:   rawURL,
		CreatedAt:   time.Now(),
	}
	if err := srv.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, errors.Wrap(err, "failed to save imported recipe")
	}

	return recipe, nil
}

func buildRecipeExtractionPrompt(pageText string) string {
	const maxPageText = 12000
	if len(pageText) > maxPageText {
		pageText = pageText[:maxPageText]
	}

	return fmt.Sprintf(`Extract the recipe from the following web page text.

IMPORTANT: Respond ONLY with valid JSON. Do not include any text before or after the JSON.

Format the response as JSON with this structure:
{
  "title": "recipe name",
  "category": "breakfast/lunch/dinner/snack",
  "description": "one sentence summary",
  "calories": estimated calories per serving,
  "prepTime": "e.g. 20 min",
  "servings": "e.g. 4 servings",
  "ingredients": ["ingredient with quantity"],
  "steps": ["preparation step"]
}

Page text:
%s`, pageText)
}
