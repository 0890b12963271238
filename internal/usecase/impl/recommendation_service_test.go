package impl

import (
	"context"
	"fmt"
	"testing"

	"bizvistar/config"
	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"
	mockRepo "bizvistar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recommendationFixtures holds all test dependencies for recommendation tests.
type recommendationFixtures struct {
	service     *recommendationService
	productRepo *mockRepo.MockProductRepository
}

func createTestRecommendationService(t *testing.T) recommendationFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewRecommendationService(RecommendationServiceParams{
		ProductRepo: productRepo,
		Config:      &config.Config{},
		Logger:      newDiscardLogger(),
	}).(*recommendationService)

	// Identity shuffle keeps picks deterministic so bounds can be asserted.
	service.shuffle = func(n int, swap func(i, j int)) {}

	return recommendationFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func buildCatalog(websiteID uuid.UUID, target *entity.Product, sameCategory, otherInStock, otherOutOfStock int) []*entity.Product {
	catalog := []*entity.Product{target}
	for i := 0; i < sameCategory; i++ {
		catalog = append(catalog, &entity.Product{
			ID: uuid.New(), WebsiteID: websiteID, Name: fmt.Sprintf("same-%d", i), Category: target.Category, Stock: 10,
		})
	}
	for i := 0; i < otherInStock; i++ {
		catalog = append(catalog, &entity.Product{
			ID: uuid.New(), WebsiteID: websiteID, Name: fmt.Sprintf("other-%d", i), Category: "other", Stock: 10,
		})
	}
	for i := 0; i < otherOutOfStock; i++ {
		catalog = append(catalog, &entity.Product{
			ID: uuid.New(), WebsiteID: websiteID, Name: fmt.Sprintf("oos-%d", i), Category: "other", Stock: 0,
		})
	}

	return catalog
}

func TestRecommendationService_SuggestProducts_ExcludesTargetAndRespectsBounds(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	websiteID := uuid.New()
	target := &entity.Product{ID: uuid.New(), WebsiteID: websiteID, Name: "target", Category: "tea", Stock: 10}
	catalog := buildCatalog(websiteID, target, 3, 6, 0)

	fx.productRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.productRepo.EXPECT().FindByWebsite(ctx, websiteID).Return(catalog, nil)

	suggested, err := fx.service.SuggestProducts(ctx, websiteID, target.ID)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(suggested), 2)
	assert.LessOrEqual(t, len(suggested), 8)

	sameCategory := 0
	for _, product := range suggested {
		assert.NotEqual(t, target.ID, product.ID)
		if product.Category == target.Category {
			sameCategory++
		}
	}
	assert.LessOrEqual(t, sameCategory, 4)
}

func TestRecommendationService_SuggestProducts_CapsSameCategory(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	websiteID := uuid.New()
	target := &entity.Product{ID: uuid.New(), WebsiteID: websiteID, Name: "target", Category: "tea", Stock: 10}
	catalog := buildCatalog(websiteID, target, 10, 10, 0)

	fx.productRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.productRepo.EXPECT().FindByWebsite(ctx, websiteID).Return(catalog, nil)

	suggested, err := fx.service.SuggestProducts(ctx, websiteID, target.ID)

	require.NoError(t, err)
	assert.Len(t, suggested, 8)

	sameCategory := 0
	for _, product := range suggested {
		if product.Category == target.Category {
			sameCategory++
		}
	}
	assert.Equal(t, 4, sameCategory)
}

func TestRecommendationService_SuggestProducts_BackfillsOutOfStockToMinimum(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	websiteID := uuid.New()
	target := &entity.Product{ID: uuid.New(), WebsiteID: websiteID, Name: "target", Category: "tea", Stock: 10}
	catalog := buildCatalog(websiteID, target, 0, 0, 5)

	fx.productRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.productRepo.EXPECT().FindByWebsite(ctx, websiteID).Return(catalog, nil)

	suggested, err := fx.service.SuggestProducts(ctx, websiteID, target.ID)

	require.NoError(t, err)
	// Out-of-stock others only fill up to the minimum, never further.
	assert.Len(t, suggested, 2)
}

func TestRecommendationService_SuggestProducts_SkipsBackfillWhenMinimumMet(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	websiteID := uuid.New()
	target := &entity.Product{ID: uuid.New(), WebsiteID: websiteID, Name: "target", Category: "tea", Stock: 10}
	catalog := buildCatalog(websiteID, target, 2, 1, 5)

	fx.productRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.productRepo.EXPECT().FindByWebsite(ctx, websiteID).Return(catalog, nil)

	suggested, err := fx.service.SuggestProducts(ctx, websiteID, target.ID)

	require.NoError(t, err)
	assert.Len(t, suggested, 3)
	for _, product := range suggested {
		assert.True(t, product.InStock())
	}
}

func TestRecommendationService_SuggestProducts_SingleProductCatalog(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	websiteID := uuid.New()
	target := &entity.Product{ID: uuid.New(), WebsiteID: websiteID, Name: "target", Category: "tea", Stock: 10}

	fx.productRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.productRepo.EXPECT().FindByWebsite(ctx, websiteID).Return([]*entity.Product{target}, nil)

	suggested, err := fx.service.SuggestProducts(ctx, websiteID, target.ID)

	require.NoError(t, err)
	assert.Empty(t, suggested)
}

func TestRecommendationService_SuggestProducts_ForeignProductTreatedAsMissing(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	websiteID := uuid.New()
	foreign := &entity.Product{ID: uuid.New(), WebsiteID: uuid.New(), Name: "foreign", Stock: 10}

	fx.productRepo.EXPECT().FindByID(ctx, foreign.ID).Return(foreign, nil)

	suggested, err := fx.service.SuggestProducts(ctx, websiteID, foreign.ID)

	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Nil(t, suggested)
}
