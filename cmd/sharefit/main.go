package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"sharefit/config"
	"sharefit/internal/delivery"
	"sharefit/internal/delivery/http"
	"sharefit/internal/delivery/http/middleware"
	"sharefit/internal/delivery/http/router/handler"
	"sharefit/internal/domain/repository"
	"sharefit/internal/domain/service"
	"sharefit/internal/infra/auth"
	logs "sharefit/internal/infra/log"
	"sharefit/internal/infra/persistence/postgres"
	"sharefit/internal/infra/pubsub"
	"sharefit/internal/infra/push"
	"sharefit/internal/infra/qrcode"
	"sharefit/internal/infra/storage"
	"sharefit/internal/realtime"
	"sharefit/internal/usecase"
	"sharefit/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
			postgres.NewFollowRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewWorkoutRepository,
			postgres.NewFeedRepository,
			postgres.NewGroupRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newPushGateway,
			newPushDeliverer,
			pubsub.NewPushFallback,
			newQRCodeService,
			storage.New,
			realtime.NewRegistry,
			// The registry doubles as the StreamRegistry used by the router
			func(r *realtime.Registry) service.StreamRegistry { return r },
		),
	)
}

// newPushGateway creates the FCM gateway with dependency injection
func newPushGateway(ctx context.Context, cfg *config.Config) (service.PushGateway, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	gateway, err := push.NewFCMService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create FCM gateway: %w", err)
	}

	return gateway, nil
}

// newPushDeliverer creates an in-process deliverer for the direct fallback
// provider. Without Firebase there is nothing to deliver with.
func newPushDeliverer(
	gateway service.PushGateway,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) service.PushDeliverer {
	if gateway == nil {
		return nil
	}

	return impl.NewPushDeliveryService(gateway, userRepo, logger)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newNotifier,
			impl.NewUserService,
			impl.NewWorkoutService,
			impl.NewFeedService,
			impl.NewGroupService,
			impl.NewMediaService,
		),
	)
}

// newNotifier creates the notification router with its dispatcher pool and
// drains it on shutdown.
func newNotifier(
	lc fx.Lifecycle,
	registry service.StreamRegistry,
	fallback service.PushFallback,
	followRepo repository.FollowRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.Notifier {
	queueSize, dispatchers := 0, 0
	if cfg.Stream != nil {
		queueSize = cfg.Stream.QueueSize
		dispatchers = cfg.Stream.Dispatchers
	}

	notifier := impl.NewNotifierService(registry, fallback, followRepo, logger, queueSize, dispatchers)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Draining notification router")

			if closer, ok := notifier.(interface{ Close() error }); ok {
				return closer.Close()
			}

			return nil
		},
	})

	return notifier
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
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewWorkoutHandler,
			handler.NewFeedHandler,
			handler.NewGroupHandler,
			handler.NewFileHandler,
			handler.NewStreamHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
