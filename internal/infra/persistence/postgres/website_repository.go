package postgres

import (
	"context"
	"encoding/json"

	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"
	"bizvistar/internal/domain/repository"
	"bizvistar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// websiteRepository implements the repository.WebsiteRepository interface.
type websiteRepository struct {
	db *gorm.DB
}

// NewWebsiteRepository is the constructor for websiteRepository.
func NewWebsiteRepository(db *gorm.DB) repository.WebsiteRepository {
	return &websiteRepository{
		db: db,
	}
}

// Create persists a new website.
func (repo *websiteRepository) Create(ctx context.Context, website *entity.Website) error {
	websiteM := fromWebsiteDomain(website)

	if err := repo.db.WithContext(ctx).Create(websiteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("slug is already in use")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required website information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create website")
	}

	website.ID = websiteM.ID
	website.CreatedAt = websiteM.CreatedAt
	website.UpdatedAt = websiteM.UpdatedAt

	return nil
}

// FindByID retrieves a website by its unique ID.
func (repo *websiteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Website, error) {
	var websiteM model.WebsiteModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&websiteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWebsiteNotFound
		}

		return nil, errors.Wrap(err, "failed to find website by ID")
	}

	return toWebsiteDomain(&websiteM), nil
}

// FindPublishedBySlug retrieves a published website by its public slug.
func (repo *websiteRepository) FindPublishedBySlug(ctx context.Context, slug string) (*entity.Website, error) {
	var websiteM model.WebsiteModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&websiteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWebsiteNotFound
		}

		return nil, errors.Wrap(err, "failed to find website by slug")
	}

	return toWebsiteDomain(&websiteM), nil
}

// FindByUser retrieves all websites owned by a user, newest first.
func (repo *websiteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Website, error) {
	var websiteModels []*model.WebsiteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&websiteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find websites by user")
	}

	websites := make([]*entity.Website, 0, len(websiteModels))
	for _, websiteM := range websiteModels {
		websites = append(websites, toWebsiteDomain(websiteM))
	}

	return websites, nil
}

// ExistsForUser reports whether the user owns at least one website.
func (repo *websiteRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WebsiteModel{}).
		Where("user_id = ?", userID).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check website existence")
	}

	return count > 0, nil
}

// CountPublishedByUser counts the user's published websites, excluding one ID.
func (repo *websiteRepository) CountPublishedByUser(ctx context.Context, userID, excludeID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WebsiteModel{}).
		Where("user_id = ? AND is_published = ? AND id <> ?", userID, true, excludeID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count published websites")
	}

	return count, nil
}

// UpdateData replaces the stored content blob of a website.
func (repo *websiteRepository) UpdateData(ctx context.Context, id uuid.UUID, data json.RawMessage) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WebsiteModel{}).
		Where("id = ?", id).
		Update("data", data)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update website data")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWebsiteNotFound
	}

	return nil
}

// SetPublished flips the published flag of a website.
func (repo *websiteRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WebsiteModel{}).
		Where("id = ?", id).
		Update("is_published", published)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update published flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWebsiteNotFound
	}

	return nil
}

// fromWebsiteDomain maps a domain entity onto the GORM model.
func fromWebsiteDomain(website *entity.Website) *model.WebsiteModel {
	return &model.WebsiteModel{
		ID:           website.ID,
		UserID:       website.UserID,
		Slug:         website.Slug,
		TemplateName: website.TemplateName,
		IsPublished:  website.Published,
		Data:         website.Data,
		CreatedAt:    website.CreatedAt,
		UpdatedAt:    website.UpdatedAt,
	}
}

// toWebsiteDomain maps a GORM model back to the domain entity.
func toWebsiteDomain(websiteM *model.WebsiteModel) *entity.Website {
	return &entity.Website{
		ID:           websiteM.ID,
		UserID:       websiteM.UserID,
		Slug:         websiteM.Slug,
		TemplateName: websiteM.TemplateName,
		Published:    websiteM.IsPublished,
		Data:         websiteM.Data,
		CreatedAt:    websiteM.CreatedAt,
		UpdatedAt:    websiteM.UpdatedAt,
	}
}
