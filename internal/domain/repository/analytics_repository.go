package repository

import (
	"context"
	"time"

	"bizvistar/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsRepository defines the interface for the append-only analytics store.
type AnalyticsRepository interface {
	// CreateEvent persists a single analytics event row.
	CreateEvent(ctx context.Context, event *entity.AnalyticsEvent) error

	// CountViewsByDay aggregates page views per day since the given time.
	CountViewsByDay(ctx context.Context, websiteID uuid.UUID, since time.Time) ([]*entity.DailyPageViews, error)

	// TopPaths returns the most viewed paths since the given time.
	TopPaths(ctx context.Context, websiteID uuid.UUID, since time.Time, limit int) ([]*entity.PathViews, error)
}
