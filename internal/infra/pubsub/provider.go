package pubsub

import (
	"context"
	"log/slog"

	"sharefit/config"
	"sharefit/internal/domain/constants"
	"sharefit/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopFallback is a no-op implementation when the fallback bridge is disabled.
// Offline users simply get no push until a bridge is configured.
type noopFallback struct {
	logger *slog.Logger
}

func (p *noopFallback) Publish(ctx context.Context, req *service.PushRequest) error {
	p.logger.Debug("[NoopFallback] Push fallback disabled, dropping",
		slog.String("user_id", req.UserID.String()),
		slog.String("kind", string(req.Kind)),
	)

	return nil
}

func (p *noopFallback) Close() error {
	return nil
}

// directFallback delivers pushes in process without a broker. Used for
// single-instance deployments where running a worker is overkill.
type directFallback struct {
	deliverer service.PushDeliverer
}

func (p *directFallback) Publish(ctx context.Context, req *service.PushRequest) error {
	p.deliverer.Deliver(ctx, req)

	return nil
}

func (p *directFallback) Close() error {
	return nil
}

// FallbackParams holds dependencies for PushFallback, injected by Fx
type FallbackParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger

	// Deliverer is only present in processes that also run the push gateway
	// client, which the direct provider requires.
	Deliverer service.PushDeliverer `optional:"true"`
}

// NewPushFallback creates a PushFallback bridge based on configuration
func NewPushFallback(params FallbackParams) (service.PushFallback, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If no bridge is configured, return a no-op fallback
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Push fallback bridge not configured, using no-op fallback")

		return &noopFallback{logger: logger}, nil
	}

	var fallback service.PushFallback
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderDirect:
		if params.Deliverer == nil {
			return nil, errors.New("direct provider requires an in-process push deliverer")
		}
		logger.Info("Using direct in-process push fallback")

		fallback = &directFallback{deliverer: params.Deliverer}

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for push fallback",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		fallback = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for push fallback",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		fallback, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close the bridge on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing PushFallback")

			return fallback.Close()
		},
	})

	return fallback, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushFallback),
)
