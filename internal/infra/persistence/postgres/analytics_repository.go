package postgres

import (
	"context"
	"time"

	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"
	"bizvistar/internal/domain/repository"
	"bizvistar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// analyticsRepository implements the repository.AnalyticsRepository interface.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// CreateEvent persists a single analytics event row.
func (repo *analyticsRepository) CreateEvent(ctx context.Context, event *entity.AnalyticsEvent) error {
	eventM := fromAnalyticsEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSiteNotFound.WrapMessage("event references a missing website")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create analytics event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// CountViewsByDay aggregates page views per day since the given time.
func (repo *analyticsRepository) CountViewsByDay(ctx context.Context, websiteID uuid.UUID, since time.Time) ([]*entity.DailyPageViews, error) {
	var buckets []*entity.DailyPageViews

	if err := repo.db.WithContext(ctx).
		Model(&model.AnalyticsEventModel{}).
		Select("date_trunc('day', created_at) AS day, count(*) AS views").
		Where("website_id = ? AND event_type = ? AND created_at >= ?", websiteID, "page_view", since).
		Group("day").
		Order("day ASC").
		Scan(&buckets).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate daily views")
	}

	return buckets, nil
}

// TopPaths returns the most viewed paths since the given time.
func (repo *analyticsRepository) TopPaths(ctx context.Context, websiteID uuid.UUID, since time.Time, limit int) ([]*entity.PathViews, error) {
	var rows []*entity.PathViews

	query := repo.db.WithContext(ctx).
		Model(&model.AnalyticsEventModel{}).
		Select("path, count(*) AS views").
		Where("website_id = ? AND event_type = ? AND created_at >= ?", websiteID, "page_view", since).
		Group("path").
		Order("views DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate top paths")
	}

	return rows, nil
}

// fromAnalyticsEventDomain maps a domain entity onto the GORM model.
func fromAnalyticsEventDomain(event *entity.AnalyticsEvent) *model.AnalyticsEventModel {
	return &model.AnalyticsEventModel{
		ID:        event.ID,
		WebsiteID: event.WebsiteID,
		EventType: event.EventType,
		Path:      event.Path,
		UserAgent: event.UserAgent,
		Location:  event.Location,
		OrderID:   event.OrderID,
		CreatedAt: event.CreatedAt,
	}
}
