package main

import (
	"context"
	"log/slog"
	"os"

	"kuliner/config"
	"kuliner/internal/delivery"
	"kuliner/internal/delivery/http"
	"kuliner/internal/delivery/http/middleware"
	"kuliner/internal/delivery/http/router/handler"
	"kuliner/internal/infra/auth"
	"kuliner/internal/infra/auth/google"
	logs "kuliner/internal/infra/log"
	"kuliner/internal/infra/persistence/firestore"
	"kuliner/internal/infra/pubsub"
	"kuliner/internal/infra/qrcode"
	"kuliner/internal/infra/storage"
	"kuliner/internal/usecase/impl"

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
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewUserRepository,
			firestore.NewCredentialRepository,
			firestore.NewSessionRepository,
			firestore.NewRestaurantRepository,
			firestore.NewReviewRepository,
			firestore.NewPlaceListRepository,
			firestore.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			storage.NewMediaStorage,
			pubsub.NewEventPublisher,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewRestaurantService,
			impl.NewReviewService,
			impl.NewPlaceListService,
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
			handler.NewUserHandler,
			handler.NewProfileHandler,
			handler.NewRestaurantHandler,
			handler.NewReviewHandler,
			handler.NewPlaceListHandler,
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
