package impl

import (
	"context"
	"testing"

	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"
	"bizvistar/internal/domain/service"
	mockRepo "bizvistar/internal/mocks/repository"
	mockSvc "bizvistar/internal/mocks/service"
	"bizvistar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// appsFixtures holds all test dependencies for apps service tests.
type appsFixtures struct {
	service         usecase.AppsUsecase
	websiteRepo     *mockRepo.MockWebsiteRepository
	posterService   *mockSvc.MockPosterService
	invoiceRenderer *mockSvc.MockInvoiceRenderer
	artifactStore   *mockSvc.MockArtifactStore
}

func createTestAppsService(t *testing.T) appsFixtures {
	websiteRepo := mockRepo.NewMockWebsiteRepository(t)
	posterService := mockSvc.NewMockPosterService(t)
	invoiceRenderer := mockSvc.NewMockInvoiceRenderer(t)
	artifactStore := mockSvc.NewMockArtifactStore(t)

	service := NewAppsService(AppsServiceParams{
		WebsiteRepo:     websiteRepo,
		PosterService:   posterService,
		InvoiceRenderer: invoiceRenderer,
		ArtifactStore:   artifactStore,
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	})

	return appsFixtures{
		service:         service,
		websiteRepo:     websiteRepo,
		posterService:   posterService,
		invoiceRenderer: invoiceRenderer,
		artifactStore:   artifactStore,
	}
}

func TestAppsService_GeneratePoster_Success(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website := &entity.Website{ID: uuid.New(), UserID: ownerID, Slug: "chai-corner", Published: true}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
	fx.posterService.EXPECT().GeneratePoster("https://bizvistar.test/site/chai-corner").Return(png, nil)
	fx.artifactStore.EXPECT().
		Save(ctx, mock.Anything, "image/png", png).
		Return("https://cdn.bizvistar.test/posters/poster.png", nil)

	output, err := fx.service.GeneratePoster(ctx, ownerID, website.ID)

	require.NoError(t, err)
	assert.Equal(t, png, output.PNG)
	assert.Equal(t, "https://cdn.bizvistar.test/posters/poster.png", output.StoredURL)
}

func TestAppsService_GeneratePoster_Unpublished(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website := &entity.Website{ID: uuid.New(), UserID: ownerID, Slug: "chai-corner", Published: false}

	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)

	output, err := fx.service.GeneratePoster(ctx, ownerID, website.ID)

	require.ErrorIs(t, err, domainerrors.ErrSiteNotPublished)
	assert.Nil(t, output)
}

func TestAppsService_GeneratePoster_StoreFailureTolerated(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website := &entity.Website{ID: uuid.New(), UserID: ownerID, Slug: "chai-corner", Published: true}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
	fx.posterService.EXPECT().GeneratePoster(mock.Anything).Return(png, nil)
	fx.artifactStore.EXPECT().Save(ctx, mock.Anything, "image/png", png).Return("", assert.AnError)

	output, err := fx.service.GeneratePoster(ctx, ownerID, website.ID)

	require.NoError(t, err)
	assert.Equal(t, png, output.PNG)
	assert.Empty(t, output.StoredURL)
}

func TestAppsService_RenderInvoice_Success(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website := &entity.Website{ID: uuid.New(), UserID: ownerID, Slug: "chai-corner", Published: true}
	rendered := []byte("<html>invoice</html>")

	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)

	var doc *service.InvoiceDocument
	fx.invoiceRenderer.EXPECT().
		Render(mock.Anything).
		Run(func(d *service.InvoiceDocument) {
			doc = d
		}).
		Return(rendered, nil)
	fx.artifactStore.EXPECT().Save(ctx, mock.Anything, mock.Anything, rendered).Return("", nil)

	html, err := fx.service.RenderInvoice(ctx, ownerID, &usecase.InvoiceInput{
		WebsiteID:    website.ID,
		OrderRef:     "ORD-1042",
		CustomerName: "Priya",
		Items: []usecase.InvoiceItem{
			{Name: "Masala Chai", Quantity: 2, UnitPrice: 120},
			{Name: "Green Tea", Quantity: 1, UnitPrice: 90},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, rendered, html)
	require.NotNil(t, doc)
	assert.Equal(t, "ORD-1042", doc.OrderRef)
	assert.Len(t, doc.Lines, 2)
	assert.InDelta(t, 330.0, doc.Total, 0.001)
	assert.InDelta(t, 240.0, doc.Lines[0].Amount, 0.001)
	assert.False(t, doc.IssuedAt.IsZero())
}

func TestAppsService_RenderInvoice_NotOwner(t *testing.T) {
	fx := createTestAppsService(t)

	ctx := context.Background()
	website := &entity.Website{ID: uuid.New(), UserID: uuid.New()}

	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)

	html, err := fx.service.RenderInvoice(ctx, uuid.New(), &usecase.InvoiceInput{
		WebsiteID: website.ID,
		OrderRef:  "ORD-1",
		Items:     []usecase.InvoiceItem{{Name: "Chai", Quantity: 1, UnitPrice: 10}},
	})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, html)
}
