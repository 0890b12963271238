package service

import "context"

// PushService defines the interface for sending a push notification to a
// single device token. Used as a best-effort side channel for stock alerts.
type PushService interface {
	SendNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
