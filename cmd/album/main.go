package main

import (
	"context"
	"log/slog"
	"os"

	"album/config"
	"album/internal/delivery"
	"album/internal/delivery/api"
	"album/internal/delivery/api/middleware"
	"album/internal/delivery/api/router/handler"
	"album/internal/delivery/worker"
	"album/internal/domain/service"
	"album/internal/infra/auth"
	"album/internal/infra/auth/google"
	"album/internal/infra/identity"
	logs "album/internal/infra/log"
	"album/internal/infra/persistence/postgres"
	"album/internal/infra/pubsub"
	"album/internal/infra/qrcode"
	"album/internal/infra/storage"
	"album/internal/infra/transcribe"
	"album/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In

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
			storage.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAgentRepository,
			postgres.NewMediaRepository,
			postgres.NewSessionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			service.NewSystemClock,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewIdentityVerifier,
			identity.NewProfileFetcher,
			transcribe.NewTranscriber,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccessService,
			impl.NewAgentService,
			impl.NewSessionService,
			impl.NewMediaService,
			impl.NewIngestService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMediaHandler,
			handler.NewUploadHandler,
			handler.NewAuthHandler,
			handler.NewAgentHandler,
			handler.NewStaticHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSessionSweeper,
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
