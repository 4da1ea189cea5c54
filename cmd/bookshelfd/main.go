package main

import (
	"context"
	"log/slog"
	"os"

	"bookshelf/config"
	"bookshelf/internal/delivery"
	"bookshelf/internal/delivery/http"
	"bookshelf/internal/delivery/http/middleware"
	"bookshelf/internal/delivery/http/router/handler"
	"bookshelf/internal/infra/auth/firebase"
	logs "bookshelf/internal/infra/log"
	"bookshelf/internal/infra/persistence/mongo"
	"bookshelf/internal/usecase/impl"

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
		mongo.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongo.NewBookRepository,
			mongo.NewUserRepository,
			mongo.NewReviewRepository,
			mongo.NewWishlistRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewTokenVerifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBookService,
			impl.NewUserService,
			impl.NewReviewService,
			impl.NewWishlistService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBookHandler,
			handler.NewUserHandler,
			handler.NewReviewHandler,
			handler.NewWishlistHandler,
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
