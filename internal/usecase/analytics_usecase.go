package usecase

import (
	"context"

	"bizvistar/internal/domain/entity"

	"github.com/google/uuid"
)

// CollectEventInput carries one storefront beacon into the analytics store.
type CollectEventInput struct {
	WebsiteID uuid.UUID
	EventType string
	Path      string
	OrderID   *uuid.UUID
	UserAgent string
	RemoteIP  string
}

// AnalyticsSummary backs the dashboard charts.
type AnalyticsSummary struct {
	Daily    []*entity.DailyPageViews `json:"daily"`
	TopPages []*entity.PathViews      `json:"top_pages"`
}

// AnalyticsUsecase persists storefront events and aggregates them for owners.
type AnalyticsUsecase interface {
	// Collect persists one event row. The geolocation lookup is best-effort
	// and never fails the collection.
	Collect(ctx context.Context, input *CollectEventInput) error

	// Summary aggregates the last `days` days for an owned website.
	Summary(ctx context.Context, userID, websiteID uuid.UUID, days int) (*AnalyticsSummary, error)
}
