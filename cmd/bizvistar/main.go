package main

import (
	"context"
	"log/slog"
	"os"

	"bizvistar/config"
	"bizvistar/internal/delivery"
	"bizvistar/internal/delivery/http"
	httpmiddleware "bizvistar/internal/delivery/http/middleware"
	"bizvistar/internal/delivery/http/router/handler"
	deliverymiddleware "bizvistar/internal/delivery/middleware"
	"bizvistar/internal/infra/auth"
	"bizvistar/internal/infra/deploy"
	"bizvistar/internal/infra/geoip"
	logs "bizvistar/internal/infra/log"
	"bizvistar/internal/infra/persistence/postgres"
	"bizvistar/internal/infra/poster"
	"bizvistar/internal/infra/push"
	"bizvistar/internal/infra/render"
	"bizvistar/internal/infra/storage"
	"bizvistar/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewWebsiteRepository,
			postgres.NewProductRepository,
			postgres.NewNotificationRepository,
			postgres.NewAnalyticsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			poster.NewQRPosterService,
			render.NewInvoiceRenderer,
			push.NewPushService,
			geoip.NewGeoLocator,
			storage.NewArtifactStore,
			deploy.NewDeployPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSiteService,
			impl.NewRecommendationService,
			impl.NewStockAlertService,
			impl.NewAnalyticsService,
			impl.NewWebsiteService,
			impl.NewAppsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSiteHandler,
			handler.NewRecommendationHandler,
			handler.NewAnalyticsHandler,
			handler.NewWebsiteHandler,
			handler.NewNotificationHandler,
			handler.NewUserHandler,
			handler.NewAppsHandler,
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
