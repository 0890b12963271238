package impl

import (
	"context"
	"testing"

	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"
	"bizvistar/internal/domain/repository"
	mockRepo "bizvistar/internal/mocks/repository"
	mockUC "bizvistar/internal/mocks/usecase"
	"bizvistar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// siteFixtures holds all test dependencies for site resolver tests.
type siteFixtures struct {
	service        usecase.SiteUsecase
	websiteRepo    *mockRepo.MockWebsiteRepository
	productRepo    *mockRepo.MockProductRepository
	recommendation *mockUC.MockRecommendationUsecase
}

func createTestSiteService(t *testing.T) siteFixtures {
	websiteRepo := mockRepo.NewMockWebsiteRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	recommendation := mockUC.NewMockRecommendationUsecase(t)

	service := NewSiteService(SiteServiceParams{
		WebsiteRepo:    websiteRepo,
		ProductRepo:    productRepo,
		Recommendation: recommendation,
		Logger:         newDiscardLogger(),
	})

	return siteFixtures{
		service:        service,
		websiteRepo:    websiteRepo,
		productRepo:    productRepo,
		recommendation: recommendation,
	}
}

func publishedWebsiteFixture(slug string) *entity.Website {
	return &entity.Website{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Slug:         slug,
		TemplateName: entity.TemplateFlara,
		Published:    true,
	}
}

func TestSiteService_ResolveSite_Success(t *testing.T) {
	fx := createTestSiteService(t)

	ctx := context.Background()
	website := publishedWebsiteFixture("chai-corner")
	catalog := []*entity.Product{
		{ID: uuid.New(), WebsiteID: website.ID, Name: "Masala Chai", Stock: 10},
	}

	fx.websiteRepo.EXPECT().FindPublishedBySlug(ctx, "chai-corner").Return(website, nil)
	fx.productRepo.EXPECT().FindByWebsite(ctx, website.ID).Return(catalog, nil)

	view, err := fx.service.ResolveSite(ctx, "chai-corner")

	require.NoError(t, err)
	assert.Equal(t, website, view.Website)
	assert.Equal(t, catalog, view.Products)
}

func TestSiteService_ResolveSite_UnpublishedLooksMissing(t *testing.T) {
	fx := createTestSiteService(t)

	ctx := context.Background()

	fx.websiteRepo.EXPECT().FindPublishedBySlug(ctx, "drafts-only").Return(nil, repository.ErrWebsiteNotFound)

	view, err := fx.service.ResolveSite(ctx, "drafts-only")

	require.ErrorIs(t, err, domainerrors.ErrSiteNotFound)
	assert.Nil(t, view)
}

func TestSiteService_ResolveSite_EmptySlug(t *testing.T) {
	fx := createTestSiteService(t)

	view, err := fx.service.ResolveSite(context.Background(), "")

	require.ErrorIs(t, err, domainerrors.ErrSiteNotFound)
	assert.Nil(t, view)
}

func TestSiteService_ResolveSite_UnknownTemplate(t *testing.T) {
	fx := createTestSiteService(t)

	ctx := context.Background()
	website := publishedWebsiteFixture("chai-corner")
	website.TemplateName = "vaporwave"

	fx.websiteRepo.EXPECT().FindPublishedBySlug(ctx, "chai-corner").Return(website, nil)

	view, err := fx.service.ResolveSite(ctx, "chai-corner")

	require.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
	assert.Nil(t, view)
}

func TestSiteService_ResolveProduct_Success(t *testing.T) {
	fx := createTestSiteService(t)

	ctx := context.Background()
	website := publishedWebsiteFixture("chai-corner")
	product := &entity.Product{ID: uuid.New(), WebsiteID: website.ID, Name: "Masala Chai", Stock: 10}
	suggested := []*entity.Product{
		{ID: uuid.New(), WebsiteID: website.ID, Name: "Green Tea", Stock: 4},
	}

	fx.websiteRepo.EXPECT().FindPublishedBySlug(ctx, "chai-corner").Return(website, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.recommendation.EXPECT().SuggestProducts(ctx, website.ID, product.ID).Return(suggested, nil)

	view, err := fx.service.ResolveProduct(ctx, "chai-corner", product.ID)

	require.NoError(t, err)
	assert.Equal(t, product, view.Product)
	assert.Equal(t, suggested, view.Suggested)
}

func TestSiteService_ResolveProduct_ForeignProduct(t *testing.T) {
	fx := createTestSiteService(t)

	ctx := context.Background()
	website := publishedWebsiteFixture("chai-corner")
	foreign := &entity.Product{ID: uuid.New(), WebsiteID: uuid.New(), Name: "Not Ours", Stock: 1}

	fx.websiteRepo.EXPECT().FindPublishedBySlug(ctx, "chai-corner").Return(website, nil)
	fx.productRepo.EXPECT().FindByID(ctx, foreign.ID).Return(foreign, nil)

	view, err := fx.service.ResolveProduct(ctx, "chai-corner", foreign.ID)

	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Nil(t, view)
}

func TestSiteService_ResolveProduct_SuggestionFailureTolerated(t *testing.T) {
	fx := createTestSiteService(t)

	ctx := context.Background()
	website := publishedWebsiteFixture("chai-corner")
	product := &entity.Product{ID: uuid.New(), WebsiteID: website.ID, Name: "Masala Chai", Stock: 10}

	fx.websiteRepo.EXPECT().FindPublishedBySlug(ctx, "chai-corner").Return(website, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.recommendation.EXPECT().SuggestProducts(ctx, website.ID, product.ID).Return(nil, assert.AnError)

	view, err := fx.service.ResolveProduct(ctx, "chai-corner", product.ID)

	require.NoError(t, err)
	assert.Equal(t, product, view.Product)
	assert.Empty(t, view.Suggested)
}
