package deploy

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"bizvistar/internal/domain/service"

	"github.com/pkg/errors"
)

// webhookPublisher implements DeployPublisher by POSTing to a hosting
// provider's deploy hook, the way Vercel-style rebuild hooks work.
type webhookPublisher struct {
	hookURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookPublisher creates a new webhook deploy publisher
func NewWebhookPublisher(hookURL string, logger *slog.Logger) service.DeployPublisher {
	return &webhookPublisher{
		hookURL: hookURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishDeployEvent fires the deploy hook with the event as JSON body.
func (p *webhookPublisher) PublishDeployEvent(ctx context.Context, event *service.DeployEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[WebhookDeploy] Firing deploy hook",
		slog.String("hook_url", p.hookURL),
		slog.String("website_id", event.WebsiteID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.hookURL, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("deploy hook returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[WebhookDeploy] Deploy hook fired successfully",
		slog.String("website_id", event.WebsiteID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *webhookPublisher) Close() error {
	return nil
}
