package impl

import (
	"context"
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

// stockAlertFixtures holds all test dependencies for stock alert tests.
type stockAlertFixtures struct {
	service          usecase.NotificationUsecase
	websiteRepo      *mockRepo.MockWebsiteRepository
	productRepo      *mockRepo.MockProductRepository
	notificationRepo *mockRepo.MockNotificationRepository
	userRepo         *mockRepo.MockUserRepository
	pushService      *mockSvc.MockPushService
}

func createTestStockAlertService(t *testing.T) stockAlertFixtures {
	websiteRepo := mockRepo.NewMockWebsiteRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	pushService := mockSvc.NewMockPushService(t)

	service := NewStockAlertService(StockAlertServiceParams{
		WebsiteRepo:      websiteRepo,
		ProductRepo:      productRepo,
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
		PushService:      pushService,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return stockAlertFixtures{
		service:          service,
		websiteRepo:      websiteRepo,
		productRepo:      productRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		pushService:      pushService,
	}
}

func stockFixture(ownerID uuid.UUID, stock int) (*entity.Website, *entity.Product) {
	website := &entity.Website{ID: uuid.New(), UserID: ownerID, Slug: "chai-corner"}
	product := &entity.Product{ID: uuid.New(), WebsiteID: website.ID, Name: "Masala Chai", Stock: stock}

	return website, product
}

func TestStockAlertService_CheckStock_OutOfStock(t *testing.T) {
	fx := createTestStockAlertService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website, product := stockFixture(ownerID, 0)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, ownerID).Return(&entity.User{ID: ownerID}, nil)

	notification, err := fx.service.CheckStock(ctx, ownerID, product.ID)

	require.NoError(t, err)
	require.NotNil(t, notification)
	assert.Equal(t, entity.NotificationOutOfStock, notification.Type)
	assert.Equal(t, "Out of Stock Alert", notification.Title)
	assert.Equal(t, "Masala Chai is out of stock (0 remaining).", notification.Message)
	assert.Equal(t, website.ID, notification.WebsiteID)
}

func TestStockAlertService_CheckStock_LowStock(t *testing.T) {
	fx := createTestStockAlertService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website, product := stockFixture(ownerID, 3)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, ownerID).Return(&entity.User{ID: ownerID}, nil)

	notification, err := fx.service.CheckStock(ctx, ownerID, product.ID)

	require.NoError(t, err)
	require.NotNil(t, notification)
	assert.Equal(t, entity.NotificationLowStock, notification.Type)
	assert.Equal(t, "Low Stock Alert", notification.Title)
	assert.Equal(t, "Masala Chai is running low (3 remaining).", notification.Message)
}

func TestStockAlertService_CheckStock_UnlimitedStockNeverAlerts(t *testing.T) {
	fx := createTestStockAlertService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website, product := stockFixture(ownerID, entity.UnlimitedStock)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)

	notification, err := fx.service.CheckStock(ctx, ownerID, product.ID)

	require.NoError(t, err)
	assert.Nil(t, notification)
}

func TestStockAlertService_CheckStock_AboveThreshold(t *testing.T) {
	fx := createTestStockAlertService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website, product := stockFixture(ownerID, 6)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)

	notification, err := fx.service.CheckStock(ctx, ownerID, product.ID)

	require.NoError(t, err)
	assert.Nil(t, notification)
}

func TestStockAlertService_CheckStock_NotOwner(t *testing.T) {
	fx := createTestStockAlertService(t)

	ctx := context.Background()
	website, product := stockFixture(uuid.New(), 0)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)

	notification, err := fx.service.CheckStock(ctx, uuid.New(), product.ID)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, notification)
}

func TestStockAlertService_CheckStock_ProductMissing(t *testing.T) {
	fx := createTestStockAlertService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	notification, err := fx.service.CheckStock(ctx, uuid.New(), productID)

	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Nil(t, notification)
}

func TestStockAlertService_CheckStock_PushFailureDoesNotFail(t *testing.T) {
	fx := createTestStockAlertService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website, product := stockFixture(ownerID, 2)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, ownerID).Return(&entity.User{ID: ownerID, FCMToken: "device-token"}, nil)
	fx.pushService.EXPECT().
		SendNotification(ctx, "device-token", "Low Stock Alert", mock.Anything, mock.Anything).
		Return(assert.AnError)

	notification, err := fx.service.CheckStock(ctx, ownerID, product.ID)

	require.NoError(t, err)
	assert.NotNil(t, notification)
}

func TestStockAlertService_ListNotifications_NotOwner(t *testing.T) {
	fx := createTestStockAlertService(t)

	ctx := context.Background()
	website := &entity.Website{ID: uuid.New(), UserID: uuid.New()}

	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)

	notifications, err := fx.service.ListNotifications(ctx, uuid.New(), website.ID)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, notifications)
}

func TestStockAlertService_MarkNotificationRead_Success(t *testing.T) {
	fx := createTestStockAlertService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website := &entity.Website{ID: uuid.New(), UserID: ownerID}
	notification := &entity.Notification{ID: uuid.New(), WebsiteID: website.ID}

	fx.notificationRepo.EXPECT().FindByID(ctx, notification.ID).Return(notification, nil)
	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
	fx.notificationRepo.EXPECT().MarkRead(ctx, notification.ID).Return(nil)

	err := fx.service.MarkNotificationRead(ctx, ownerID, notification.ID)

	require.NoError(t, err)
}

func TestStockAlertService_ClearNotifications_Success(t *testing.T) {
	fx := createTestStockAlertService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	website := &entity.Website{ID: uuid.New(), UserID: ownerID}

	fx.websiteRepo.EXPECT().FindByID(ctx, website.ID).Return(website, nil)
	fx.notificationRepo.EXPECT().DeleteByWebsite(ctx, website.ID).Return(nil)

	err := fx.service.ClearNotifications(ctx, ownerID, website.ID)

	require.NoError(t, err)
}
