package impl

import (
	"context"
	"encoding/json"
	"testing"

	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"
	"bizvistar/internal/domain/repository"
	mockRepo "bizvistar/internal/mocks/repository"
	mockSvc "bizvistar/internal/mocks/service"
	"bizvistar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// websiteFixtures holds all test dependencies for website service tests.
type websiteFixtures struct {
	service         usecase.WebsiteUsecase
	txManager       *mockRepo.MockTransactionManager
	websiteRepo     *mockRepo.MockWebsiteRepository
	deployPublisher *mockSvc.MockDeployPublisher
}

func createTestWebsiteService(t *testing.T) websiteFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	websiteRepo := mockRepo.NewMockWebsiteRepository(t)
	deployPublisher := mockSvc.NewMockDeployPublisher(t)

	service := NewWebsiteService(WebsiteServiceParams{
		TxManager:       txManager,
		WebsiteRepo:     websiteRepo,
		DeployPublisher: deployPublisher,
		Logger:          newDiscardLogger(),
	})

	return websiteFixtures{
		service:         service,
		txManager:       txManager,
		websiteRepo:     websiteRepo,
		deployPublisher: deployPublisher,
	}
}

// onExecute wires the transaction manager mock to run the unit of work
// against a factory configured by the test.
func (fx websiteFixtures) onExecute(t *testing.T, ctx context.Context, configure func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			configure(factory)

			return fn(factory)
		})
}

func TestWebsiteService_Publish_Success(t *testing.T) {
	fx := createTestWebsiteService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website := &entity.Website{ID: uuid.New(), UserID: ownerID, Slug: "chai-corner", Published: false}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txWebsiteRepo := mockRepo.NewMockWebsiteRepository(t)
		factory.EXPECT().WebsiteRepo().Return(txWebsiteRepo)
		txWebsiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
		txWebsiteRepo.EXPECT().CountPublishedByUser(ctx, ownerID, website.ID).Return(int64(0), nil)
		txWebsiteRepo.EXPECT().SetPublished(ctx, website.ID, true).Return(nil)
	})
	fx.deployPublisher.EXPECT().PublishDeployEvent(ctx, mock.Anything).Return(nil)

	message, err := fx.service.Publish(ctx, ownerID, website.ID)

	require.NoError(t, err)
	assert.Equal(t, "Website published successfully.", message)
}

func TestWebsiteService_Publish_AlreadyPublished(t *testing.T) {
	fx := createTestWebsiteService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website := &entity.Website{ID: uuid.New(), UserID: ownerID, Slug: "chai-corner", Published: true}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txWebsiteRepo := mockRepo.NewMockWebsiteRepository(t)
		factory.EXPECT().WebsiteRepo().Return(txWebsiteRepo)
		txWebsiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
	})

	message, err := fx.service.Publish(ctx, ownerID, website.ID)

	require.NoError(t, err)
	assert.Equal(t, "Already published.", message)
}

func TestWebsiteService_Publish_SecondLiveSiteRejected(t *testing.T) {
	fx := createTestWebsiteService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website := &entity.Website{ID: uuid.New(), UserID: ownerID, Slug: "chai-corner", Published: false}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txWebsiteRepo := mockRepo.NewMockWebsiteRepository(t)
		factory.EXPECT().WebsiteRepo().Return(txWebsiteRepo)
		txWebsiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
		txWebsiteRepo.EXPECT().CountPublishedByUser(ctx, ownerID, website.ID).Return(int64(1), nil)
	})

	message, err := fx.service.Publish(ctx, ownerID, website.ID)

	require.ErrorIs(t, err, domainerrors.ErrPublishLimitReached)
	assert.Empty(t, message)
}

func TestWebsiteService_Publish_NotOwner(t *testing.T) {
	fx := createTestWebsiteService(t)

	ctx := context.Background()
	website := &entity.Website{ID: uuid.New(), UserID: uuid.New(), Slug: "chai-corner"}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txWebsiteRepo := mockRepo.NewMockWebsiteRepository(t)
		factory.EXPECT().WebsiteRepo().Return(txWebsiteRepo)
		txWebsiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
	})

	message, err := fx.service.Publish(ctx, uuid.New(), website.ID)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Empty(t, message)
}

func TestWebsiteService_Publish_DeployFailureDoesNotFail(t *testing.T) {
	fx := createTestWebsiteService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website := &entity.Website{ID: uuid.New(), UserID: ownerID, Slug: "chai-corner", Published: false}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txWebsiteRepo := mockRepo.NewMockWebsiteRepository(t)
		factory.EXPECT().WebsiteRepo().Return(txWebsiteRepo)
		txWebsiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
		txWebsiteRepo.EXPECT().CountPublishedByUser(ctx, ownerID, website.ID).Return(int64(0), nil)
		txWebsiteRepo.EXPECT().SetPublished(ctx, website.ID, true).Return(nil)
	})
	fx.deployPublisher.EXPECT().PublishDeployEvent(ctx, mock.Anything).Return(assert.AnError)

	message, err := fx.service.Publish(ctx, ownerID, website.ID)

	require.NoError(t, err)
	assert.Equal(t, "Website published successfully.", message)
}

func TestWebsiteService_SaveDraft_Success(t *testing.T) {
	fx := createTestWebsiteService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website := &entity.Website{ID: uuid.New(), UserID: ownerID}
	data := json.RawMessage(`{"hero":{"title":"Chai Corner"}}`)

	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
	fx.websiteRepo.EXPECT().UpdateData(ctx, website.ID, data).Return(nil)

	err := fx.service.SaveDraft(ctx, ownerID, website.ID, data)

	require.NoError(t, err)
}

func TestWebsiteService_SaveDraft_InvalidJSON(t *testing.T) {
	fx := createTestWebsiteService(t)

	err := fx.service.SaveDraft(context.Background(), uuid.New(), uuid.New(), json.RawMessage(`{"broken"`))

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestWebsiteService_SaveDraft_NotOwner(t *testing.T) {
	fx := createTestWebsiteService(t)

	ctx := context.Background()
	website := &entity.Website{ID: uuid.New(), UserID: uuid.New()}

	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)

	err := fx.service.SaveDraft(ctx, uuid.New(), website.ID, json.RawMessage(`{}`))

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestWebsiteService_Overview_Success(t *testing.T) {
	fx := createTestWebsiteService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	websites := []*entity.Website{{ID: uuid.New(), UserID: ownerID}}

	fx.websiteRepo.EXPECT().FindByUser(ctx, ownerID).Return(websites, nil)

	result, err := fx.service.Overview(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, websites, result)
}
