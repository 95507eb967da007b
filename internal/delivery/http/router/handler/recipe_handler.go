package handler

import (
	"log/slog"
	"net/http"

	"fitflow/internal/delivery/http/response"
	"fitflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for recipe-related handlers.
type RecipeHandler struct {
	uc     usecase.RecipeUsecase
	logger *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: logger,
	}
}

// ImportRecipeInput is the body for the import endpoint.
type ImportRecipeInput struct {
	URL string `json:"url" validate:"required,url"`
}

// ListRecipes returns the recipe library, optionally filtered by category.
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	if _, ok := currentUserID(c); !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	recipes, err := h.uc.ListRecipes(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipes, "")
}

// GetRecipe returns a single recipe by ID.
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	if _, ok := currentUserID(c); !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe ID")
	}

	recipe, err := h.uc.GetRecipe(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "")
}

// ImportRecipe fetches a web page and extracts a structured recipe from it.
func (h *RecipeHandler) ImportRecipe(c echo.Context) error {
	if _, ok := currentUserID(c); !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input ImportRecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid import input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	recipe, err := h.uc.ImportFromURL(c.Request().Context(), input.URL)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, recipe, "Recipe imported successfully")
}
