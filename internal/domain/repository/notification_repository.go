package repository

import (
	"context"
	"errors"

	"bizvistar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindByWebsite retrieves all notifications for a website, newest first.
	FindByWebsite(ctx context.Context, websiteID uuid.UUID) ([]*entity.Notification, error)

	// MarkRead flips the read flag of a notification.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// Delete removes a single notification.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByWebsite removes every notification of a website.
	DeleteByWebsite(ctx context.Context, websiteID uuid.UUID) error
}
