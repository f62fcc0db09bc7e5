package main

import (
	"context"
	"log/slog"
	"os"

	"tienda/config"
	"tienda/internal/delivery"
	"tienda/internal/delivery/http"
	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/render"
	"tienda/internal/delivery/http/router/handler"
	"tienda/internal/infra/auth"
	logs "tienda/internal/infra/log"
	"tienda/internal/infra/persistence/postgres"
	"tienda/internal/usecase/impl"

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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		render.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewBrandRepository,
			postgres.NewCartRepository,
			postgres.NewWishlistRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewProductService,
			impl.NewCartService,
			impl.NewWishlistService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewWishlistHandler,
			handler.NewPageHandler,
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
