package postgres

import (
	"context"

	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"
	"bizvistar/internal/domain/repository"
	"bizvistar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSiteNotFound.WrapMessage("notification references a missing website")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindByWebsite retrieves all notifications for a website, newest first.
func (repo *notificationRepository) FindByWebsite(ctx context.Context, websiteID uuid.UUID) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("website_id = ?", websiteID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by website")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkRead flips the read flag of a notification.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// Delete removes a single notification.
func (repo *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// DeleteByWebsite removes every notification of a website.
func (repo *notificationRepository) DeleteByWebsite(ctx context.Context, websiteID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("website_id = ?", websiteID).
		Delete(&model.NotificationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear notifications")
	}

	return nil
}

// fromNotificationDomain maps a domain entity onto the GORM model.
func fromNotificationDomain(notification *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:        notification.ID,
		WebsiteID: notification.WebsiteID,
		Type:      string(notification.Type),
		Title:     notification.Title,
		Message:   notification.Message,
		Data:      notification.Data,
		IsRead:    notification.Read,
		CreatedAt: notification.CreatedAt,
	}
}

// toNotificationDomain maps a GORM model back to the domain entity.
func toNotificationDomain(notificationM *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:        notificationM.ID,
		WebsiteID: notificationM.WebsiteID,
		Type:      entity.NotificationType(notificationM.Type),
		Title:     notificationM.Title,
		Message:   notificationM.Message,
		Data:      notificationM.Data,
		Read:      notificationM.IsRead,
		CreatedAt: notificationM.CreatedAt,
	}
}
