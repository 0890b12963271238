package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "bizvistar/internal/delivery/context"
	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"
	"bizvistar/internal/domain/repository"
	"bizvistar/internal/domain/service"
	"bizvistar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSummaryDays = 30
	topPagesLimit      = 5
)

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	websiteRepo   repository.WebsiteRepository
	geoLocator    service.GeoLocator
	logger        *slog.Logger
}

// AnalyticsServiceParams holds dependencies for the analytics service, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	AnalyticsRepo repository.AnalyticsRepository
	WebsiteRepo   repository.WebsiteRepository
	GeoLocator    service.GeoLocator `optional:"true"`
	Logger        *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		analyticsRepo: params.AnalyticsRepo,
		websiteRepo:   params.WebsiteRepo,
		geoLocator:    params.GeoLocator,
		logger:        params.Logger,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Collect persists one storefront event row.
func (srv *analyticsService) Collect(ctx context.Context, input *usecase.CollectEventInput) error {
	if input.EventType == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("eventType is required")
	}

	if _, err := srv.websiteRepo.FindByID(ctx, input.WebsiteID); err != nil {
		if errors.Is(err, repository.ErrWebsiteNotFound) {
			return domainerrors.ErrSiteNotFound
		}

		return errors.Wrap(err, "failed to resolve website for event")
	}

	event := &entity.AnalyticsEvent{
		ID:        uuid.New(),
		WebsiteID: input.WebsiteID,
		EventType: input.EventType,
		Path:      input.Path,
		UserAgent: input.UserAgent,
		Location:  srv.lookupLocation(ctx, input.RemoteIP),
		OrderID:   input.OrderID,
		CreatedAt: time.Now(),
	}

	if err := srv.analyticsRepo.CreateEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to persist analytics event")
	}

	return nil
}

// Summary aggregates the last `days` days for an owned website.
func (srv *analyticsService) Summary(ctx context.Context, userID, websiteID uuid.UUID, days int) (*usecase.AnalyticsSummary, error) {
	website, err := srv.websiteRepo.FindByID(ctx, websiteID)
	if errors.Is(err, repository.ErrWebsiteNotFound) {
		return nil, domainerrors.ErrSiteNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load website")
	}
	if website.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	if days <= 0 {
		days = defaultSummaryDays
	}
	since := time.Now().AddDate(0, 0, -days)

	daily, err := srv.analyticsRepo.CountViewsByDay(ctx, websiteID, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate daily views")
	}

	topPages, err := srv.analyticsRepo.TopPaths(ctx, websiteID, since, topPagesLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate top pages")
	}

	return &usecase.AnalyticsSummary{Daily: daily, TopPages: topPages}, nil
}

// lookupLocation resolves the visitor's IP best-effort. Failures are logged
// and the event is stored without location data.
func (srv *analyticsService) lookupLocation(ctx context.Context, ip string) json.RawMessage {
	if srv.geoLocator == nil || ip == "" {
		return nil
	}

	location, err := srv.geoLocator.Lookup(ctx, ip)
	if err != nil {
		srv.log(ctx).Debug("Geolocation lookup failed", slog.String("ip", ip), slog.Any("error", err))

		return nil
	}

	payload, err := json.Marshal(location)
	if err != nil {
		return nil
	}

	return payload
}
