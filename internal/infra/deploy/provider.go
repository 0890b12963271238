// Package deploy contains the concrete implementations of the deploy trigger.
package deploy

import (
	"context"
	"log/slog"

	"bizvistar/config"
	"bizvistar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Provider names accepted in configuration.
const (
	ProviderWebhook = "webhook"
	ProviderGoogle  = "google"
)

// noopPublisher is a no-op implementation when deploy triggers are disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishDeployEvent(ctx context.Context, event *service.DeployEvent) error {
	p.logger.Debug("[NoopDeploy] Deploy trigger disabled, skipping",
		slog.String("website_id", event.WebsiteID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for DeployPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDeployPublisher creates a DeployPublisher based on configuration
func NewDeployPublisher(params PublisherParams) (service.DeployPublisher, error) {
	cfg := params.Config.Deploy
	logger := params.Logger

	// If deploys are not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Deploy trigger not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.DeployPublisher
	var err error

	switch cfg.Provider {
	case ProviderWebhook:
		if cfg.HookURL == "" {
			return nil, errors.New("hook URL is required for webhook provider")
		}
		logger.Info("Using webhook deploy publisher",
			slog.String("hook_url", cfg.HookURL),
		)

		publisher = NewWebhookPublisher(cfg.HookURL, logger)

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub deploy publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown deploy provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing DeployPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
