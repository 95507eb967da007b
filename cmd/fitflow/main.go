package main

import (
	"context"
	"log/slog"
	"os"

	"fitflow/config"
	"fitflow/internal/delivery"
	"fitflow/internal/delivery/http"
	"fitflow/internal/delivery/http/middleware"
	"fitflow/internal/delivery/http/router/handler"
	"fitflow/internal/infra/ai"
	"fitflow/internal/infra/auth"
	logs "fitflow/internal/infra/log"
	"fitflow/internal/infra/persistence/postgres"
	"fitflow/internal/infra/pubsub"
	"fitflow/internal/infra/webpage"
	"fitflow/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewPlanRepository,
			postgres.NewProgressRepository,
			postgres.NewRecipeRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			ai.NewGeminiGenerator,
			webpage.NewFetcher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewEntitlementService,
			impl.NewPlanService,
			impl.NewProgressService,
			impl.NewRecipeService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewPlanHandler,
			handler.NewSubscriptionHandler,
			handler.NewProgressHandler,
			handler.NewRecipeHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
