package impl

import (
	"context"
	"testing"
	"time"

	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"
	"bizvistar/internal/domain/repository"
	"bizvistar/internal/domain/service"
	mockRepo "bizvistar/internal/mocks/repository"
	mockSvc "bizvistar/internal/mocks/service"
	"bizvistar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// analyticsFixtures holds all test dependencies for analytics tests.
type analyticsFixtures struct {
	service       usecase.AnalyticsUsecase
	analyticsRepo *mockRepo.MockAnalyticsRepository
	websiteRepo   *mockRepo.MockWebsiteRepository
	geoLocator    *mockSvc.MockGeoLocator
}

func createTestAnalyticsService(t *testing.T) analyticsFixtures {
	analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
	websiteRepo := mockRepo.NewMockWebsiteRepository(t)
	geoLocator := mockSvc.NewMockGeoLocator(t)

	service := NewAnalyticsService(AnalyticsServiceParams{
		AnalyticsRepo: analyticsRepo,
		WebsiteRepo:   websiteRepo,
		GeoLocator:    geoLocator,
		Logger:        newDiscardLogger(),
	})

	return analyticsFixtures{
		service:       service,
		analyticsRepo: analyticsRepo,
		websiteRepo:   websiteRepo,
		geoLocator:    geoLocator,
	}
}

func TestAnalyticsService_Collect_Success(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	website := &entity.Website{ID: uuid.New(), UserID: uuid.New()}

	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
	fx.geoLocator.EXPECT().Lookup(ctx, "203.0.113.7").Return(&service.Location{Country: "IN", City: "Pune"}, nil)

	var captured *entity.AnalyticsEvent
	fx.analyticsRepo.EXPECT().
		CreateEvent(ctx, mock.Anything).
		Run(func(ctx context.Context, event *entity.AnalyticsEvent) {
			captured = event
		}).
		Return(nil)

	err := fx.service.Collect(ctx, &usecase.CollectEventInput{
		WebsiteID: website.ID,
		EventType: "page_view",
		Path:      "/site/chai-corner/shop",
		UserAgent: "Mozilla/5.0",
		RemoteIP:  "203.0.113.7",
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, website.ID, captured.WebsiteID)
	assert.Equal(t, "page_view", captured.EventType)
	assert.JSONEq(t, `{"country":"IN","city":"Pune"}`, string(captured.Location))
}

func TestAnalyticsService_Collect_GeoFailureStillPersists(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	website := &entity.Website{ID: uuid.New(), UserID: uuid.New()}

	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
	fx.geoLocator.EXPECT().Lookup(ctx, "203.0.113.7").Return(nil, assert.AnError)

	var captured *entity.AnalyticsEvent
	fx.analyticsRepo.EXPECT().
		CreateEvent(ctx, mock.Anything).
		Run(func(ctx context.Context, event *entity.AnalyticsEvent) {
			captured = event
		}).
		Return(nil)

	err := fx.service.Collect(ctx, &usecase.CollectEventInput{
		WebsiteID: website.ID,
		EventType: "page_view",
		RemoteIP:  "203.0.113.7",
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Empty(t, captured.Location)
}

func TestAnalyticsService_Collect_MissingEventType(t *testing.T) {
	fx := createTestAnalyticsService(t)

	err := fx.service.Collect(context.Background(), &usecase.CollectEventInput{
		WebsiteID: uuid.New(),
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAnalyticsService_Collect_UnknownWebsite(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	websiteID := uuid.New()

	fx.websiteRepo.EXPECT().FindByID(ctx, websiteID).Return(nil, repository.ErrWebsiteNotFound)

	err := fx.service.Collect(ctx, &usecase.CollectEventInput{
		WebsiteID: websiteID,
		EventType: "page_view",
	})

	require.ErrorIs(t, err, domainerrors.ErrSiteNotFound)
}

func TestAnalyticsService_Summary_Success(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website := &entity.Website{ID: uuid.New(), UserID: ownerID}
	daily := []*entity.DailyPageViews{{Day: time.Now().Truncate(24 * time.Hour), Views: 12}}
	topPages := []*entity.PathViews{{Path: "/site/chai-corner", Views: 9}}

	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
	fx.analyticsRepo.EXPECT().CountViewsByDay(ctx, website.ID, mock.Anything).Return(daily, nil)
	fx.analyticsRepo.EXPECT().TopPaths(ctx, website.ID, mock.Anything, topPagesLimit).Return(topPages, nil)

	summary, err := fx.service.Summary(ctx, ownerID, website.ID, 7)

	require.NoError(t, err)
	assert.Equal(t, daily, summary.Daily)
	assert.Equal(t, topPages, summary.TopPages)
}

func TestAnalyticsService_Summary_NotOwner(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	website := &entity.Website{ID: uuid.New(), UserID: uuid.New()}

	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)

	summary, err := fx.service.Summary(ctx, uuid.New(), website.ID, 7)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, summary)
}
