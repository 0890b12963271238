package usecase

import (
	"context"

	"bizvistar/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase covers the dashboard alert lifecycle: the low-stock
// emitter plus the owner-facing list/read/delete operations. Every operation
// verifies that the caller owns the parent website.
type NotificationUsecase interface {
	// CheckStock re-reads the product's stock and creates exactly one
	// low_stock/out_of_stock notification when the threshold is crossed.
	// Returns nil when stock is unlimited or above the threshold.
	CheckStock(ctx context.Context, userID, productID uuid.UUID) (*entity.Notification, error)

	// ListNotifications returns all notifications of an owned website, newest first.
	ListNotifications(ctx context.Context, userID, websiteID uuid.UUID) ([]*entity.Notification, error)

	// MarkNotificationRead flips the read flag of an owned notification.
	MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// DeleteNotification removes a single owned notification.
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error

	// ClearNotifications removes every notification of an owned website.
	ClearNotifications(ctx context.Context, userID, websiteID uuid.UUID) error
}
