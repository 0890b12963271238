// Package push contains the concrete implementation of owner device push alerts.
package push

import (
	"context"
	"fmt"
	"log/slog"

	"bizvistar/config"
	"bizvistar/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// noopPushService swallows pushes when Firebase is not configured.
type noopPushService struct {
	logger *slog.Logger
}

func (s *noopPushService) SendNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.Debug("[NoopPush] Push disabled, skipping", slog.String("title", title))

	return nil
}

// Params holds dependencies for the push service, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService creates a PushService based on configuration.
func NewPushService(params Params) (service.PushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using no-op push service")

		return &noopPushService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath)
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.PushService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendNotification sends a push notification to a single device token
func (s *firebaseService) SendNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
