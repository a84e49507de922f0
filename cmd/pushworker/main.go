package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"sharefit/config"
	"sharefit/internal/delivery"
	"sharefit/internal/delivery/worker"
	"sharefit/internal/delivery/worker/handler"
	"sharefit/internal/domain/service"
	logs "sharefit/internal/infra/log"
	"sharefit/internal/infra/persistence/postgres"
	"sharefit/internal/infra/push"
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
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPushGateway,
			impl.NewPushDeliveryService,
		),
	)
}

// newPushGateway creates the FCM gateway. The worker exists to deliver
// pushes, so Firebase configuration is mandatory here.
func newPushGateway(ctx context.Context, cfg *config.Config) (service.PushGateway, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required for the push worker")
	}

	gateway, err := push.NewFCMService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create FCM gateway: %w", err)
	}

	return gateway, nil
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
