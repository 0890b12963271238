package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"bizvistar/config"
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

const defaultLowStockThreshold = 5

// stockAlertService implements the NotificationUsecase interface.
type stockAlertService struct {
	websiteRepo       repository.WebsiteRepository
	productRepo       repository.ProductRepository
	notificationRepo  repository.NotificationRepository
	userRepo          repository.UserRepository
	pushService       service.PushService
	lowStockThreshold int
	logger            *slog.Logger
}

// StockAlertServiceParams holds dependencies for the stock alert service, injected by Fx.
type StockAlertServiceParams struct {
	fx.In

	WebsiteRepo      repository.WebsiteRepository
	ProductRepo      repository.ProductRepository
	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	PushService      service.PushService `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewStockAlertService is the constructor for stockAlertService.
func NewStockAlertService(params StockAlertServiceParams) usecase.NotificationUsecase {
	threshold := defaultLowStockThreshold
	if params.Config != nil && params.Config.StockAlert != nil && params.Config.StockAlert.LowStockThreshold > 0 {
		threshold = params.Config.StockAlert.LowStockThreshold
	}

	return &stockAlertService{
		websiteRepo:       params.WebsiteRepo,
		productRepo:       params.ProductRepo,
		notificationRepo:  params.NotificationRepo,
		userRepo:          params.UserRepo,
		pushService:       params.PushService,
		lowStockThreshold: threshold,
		logger:            params.Logger,
	}
}

func (srv *stockAlertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckStock re-reads the product's stock and emits one alert when the
// threshold is crossed. Unlimited stock never alerts.
func (srv *stockAlertService) CheckStock(ctx context.Context, userID, productID uuid.UUID) (*entity.Notification, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product")
	}

	website, err := srv.ownedWebsite(ctx, userID, product.WebsiteID)
	if err != nil {
		return nil, err
	}

	if product.Stock == entity.UnlimitedStock || product.Stock > srv.lowStockThreshold {
		return nil, nil
	}

	notification := buildStockNotification(product)
	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create stock notification")
	}

	srv.log(ctx).Info("Created stock alert",
		slog.Any("websiteID", website.ID),
		slog.Any("productID", product.ID),
		slog.String("type", string(notification.Type)),
		slog.Int("stock", product.Stock))

	srv.pushToOwner(ctx, website.UserID, notification)

	return notification, nil
}

// ListNotifications returns all notifications of an owned website, newest first.
func (srv *stockAlertService) ListNotifications(ctx context.Context, userID, websiteID uuid.UUID) ([]*entity.Notification, error) {
	if _, err := srv.ownedWebsite(ctx, userID, websiteID); err != nil {
		return nil, err
	}

	notifications, err := srv.notificationRepo.FindByWebsite(ctx, websiteID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkNotificationRead flips the read flag of an owned notification.
func (srv *stockAlertService) MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	notification, err := srv.ownedNotification(ctx, userID, notificationID)
	if err != nil {
		return err
	}

	if err := srv.notificationRepo.MarkRead(ctx, notification.ID); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// DeleteNotification removes a single owned notification.
func (srv *stockAlertService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	notification, err := srv.ownedNotification(ctx, userID, notificationID)
	if err != nil {
		return err
	}

	if err := srv.notificationRepo.Delete(ctx, notification.ID); err != nil {
		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

// ClearNotifications removes every notification of an owned website.
func (srv *stockAlertService) ClearNotifications(ctx context.Context, userID, websiteID uuid.UUID) error {
	if _, err := srv.ownedWebsite(ctx, userID, websiteID); err != nil {
		return err
	}

	if err := srv.notificationRepo.DeleteByWebsite(ctx, websiteID); err != nil {
		return errors.Wrap(err, "failed to clear notifications")
	}

	return nil
}

// ownedWebsite loads a website and verifies the caller owns it.
func (srv *stockAlertService) ownedWebsite(ctx context.Context, userID, websiteID uuid.UUID) (*entity.Website, error) {
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

	return website, nil
}

// ownedNotification loads a notification and verifies the caller owns its website.
func (srv *stockAlertService) ownedNotification(ctx context.Context, userID, notificationID uuid.UUID) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.FindByID(ctx, notificationID)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return nil, domainerrors.ErrNotificationNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load notification")
	}

	if _, err := srv.ownedWebsite(ctx, userID, notification.WebsiteID); err != nil {
		return nil, err
	}

	return notification, nil
}

// pushToOwner forwards the alert to the owner's device. Best-effort; a push
// failure never fails the alert creation.
func (srv *stockAlertService) pushToOwner(ctx context.Context, ownerID uuid.UUID, notification *entity.Notification) {
	if srv.pushService == nil {
		return
	}

	owner, err := srv.userRepo.FindByID(ctx, ownerID)
	if err != nil || owner.FCMToken == "" {
		return
	}

	data := map[string]string{
		"notification_id": notification.ID.String(),
		"website_id":      notification.WebsiteID.String(),
		"type":            string(notification.Type),
	}
	if err := srv.pushService.SendNotification(ctx, owner.FCMToken, notification.Title, notification.Message, data); err != nil {
		srv.log(ctx).Warn("Failed to push stock alert",
			slog.Any("notificationID", notification.ID),
			slog.Any("error", err))
	}
}

// buildStockNotification maps a low product stock onto an alert record.
func buildStockNotification(product *entity.Product) *entity.Notification {
	notificationType := entity.NotificationLowStock
	title := "Low Stock Alert"
	if product.Stock == 0 {
		notificationType = entity.NotificationOutOfStock
		title = "Out of Stock Alert"
	}

	condition := "running low"
	if product.Stock == 0 {
		condition = "out of stock"
	}

	payload, _ := json.Marshal(map[string]any{
		"product_id":    product.ID,
		"product_name":  product.Name,
		"current_stock": product.Stock,
	})

	return &entity.Notification{
		ID:        uuid.New(),
		WebsiteID: product.WebsiteID,
		Type:      notificationType,
		Title:     title,
		Message:   fmt.Sprintf("%s is %s (%d remaining).", product.Name, condition, product.Stock),
		Data:      payload,
		Read:      false,
		CreatedAt: time.Now(),
	}
}
