package service

import "context"

// DeployEvent describes a site publish that should trigger a rebuild.
type DeployEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	WebsiteID string `json:"website_id"`
	Slug      string `json:"site_slug"`
}

// DeployPublisher defines the interface for firing deploy triggers after a
// publish. Implementations are best-effort; callers never fail the publish
// because a trigger could not be delivered.
type DeployPublisher interface {
	// PublishDeployEvent fires a deploy trigger for the given site.
	PublishDeployEvent(ctx context.Context, event *DeployEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
