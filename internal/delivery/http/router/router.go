// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fitflow/internal/delivery/http/middleware"
	"fitflow/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler      *handler.ProfileHandler
	PlanHandler         *handler.PlanHandler
	SubscriptionHandler *handler.SubscriptionHandler
	ProgressHandler     *handler.ProgressHandler
	RecipeHandler       *handler.RecipeHandler
	DashboardHandler    *handler.DashboardHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler      *handler.ProfileHandler
	planHandler         *handler.PlanHandler
	subscriptionHandler *handler.SubscriptionHandler
	progressHandler     *handler.ProgressHandler
	recipeHandler       *handler.RecipeHandler
	dashboardHandler    *handler.DashboardHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:      params.ProfileHandler,
		planHandler:         params.PlanHandler,
		subscriptionHandler: params.SubscriptionHandler,
		progressHandler:     params.ProgressHandler,
		recipeHandler:       params.RecipeHandler,
		dashboardHandler:    params.DashboardHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every functional route requires an identity-provider token.
	api := e.Group("/api/v1")
	api.Use(r.authMiddleware.Authenticate)

	profileGroup := api.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
	}

	planGroup := api.Group("/plans")
	{
		planGroup.POST("/:kind/generate", r.planHandler.GeneratePlan)
		planGroup.GET("/:kind", r.planHandler.GetCurrentPlan)
	}

	subscriptionGroup := api.Group("/subscription")
	{
		subscriptionGroup.GET("", r.subscriptionHandler.GetState)
		subscriptionGroup.POST("/upgrade", r.subscriptionHandler.Upgrade)
		subscriptionGroup.POST("/regenerations/purchase", r.subscriptionHandler.PurchaseRegenerations)
	}

	progressGroup := api.Group("/progress")
	{
		progressGroup.POST("/weight", r.progressHandler.LogWeight)
		progressGroup.POST("/water", r.progressHandler.LogWater)
		progressGroup.POST("/workout", r.progressHandler.LogWorkout)
		progressGroup.GET("/today", r.progressHandler.GetToday)
		progressGroup.GET("/streak", r.progressHandler.GetStreak)
	}

	recipeGroup := api.Group("/recipes")
	{
		recipeGroup.GET("", r.recipeHandler.ListRecipes)
		recipeGroup.GET("/:id", r.recipeHandler.GetRecipe)
		recipeGroup.POST("/import", r.recipeHandler.ImportRecipe)
	}

	api.GET("/dashboard/stats", r.dashboardHandler.GetStats)
}
