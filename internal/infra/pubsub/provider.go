// Package pubsub provides the cache-invalidation publisher implementations.
package pubsub

import (
	"context"
	"log/slog"

	"beacon/config"
	"beacon/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Provider names accepted in the pubsub config block.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
	ProviderNATS   = "nats"
)

// noopPublisher is a no-op implementation used when no sink is configured.
// Invalidation stays best-effort either way: a missing sink just means the
// signal degrades to a debug log line.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishInvalidation(_ context.Context, event *service.InvalidationEvent) error {
	p.logger.Debug("[NoopPubSub] Invalidation publishing disabled, skipping",
		slog.String("serial_number", event.SerialNumber),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for InvalidationPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewInvalidationPublisher creates an InvalidationPublisher based on configuration
func NewInvalidationPublisher(params PublisherParams) (service.InvalidationPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op invalidation publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.InvalidationPublisher
	var err error

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for cache invalidation",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for cache invalidation",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case ProviderNATS:
		if cfg.NATSURL == "" {
			return nil, errors.New("NATS URL is required for nats provider")
		}
		logger.Info("Using NATS publisher for cache invalidation",
			slog.String("url", cfg.NATSURL),
			slog.String("subject", cfg.NATSSubject),
		)

		publisher, err = NewNATSPublisher(cfg.NATSURL, cfg.NATSSubject, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing InvalidationPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
