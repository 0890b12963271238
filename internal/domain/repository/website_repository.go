// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"bizvistar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWebsiteNotFound is returned when a website is not found.
var ErrWebsiteNotFound = errors.New("website not found")

// WebsiteRepository defines the interface for website-related database operations.
type WebsiteRepository interface {
	// Create persists a new website.
	Create(ctx context.Context, website *entity.Website) error

	// FindByID retrieves a website by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Website, error)

	// FindPublishedBySlug retrieves a website by its public slug,
	// filtered to published sites only.
	FindPublishedBySlug(ctx context.Context, slug string) (*entity.Website, error)

	// FindByUser retrieves all websites owned by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Website, error)

	// ExistsForUser reports whether the user owns at least one website.
	ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error)

	// CountPublishedByUser counts the user's published websites, excluding one ID.
	CountPublishedByUser(ctx context.Context, userID, excludeID uuid.UUID) (int64, error)

	// UpdateData replaces the stored content blob of a website.
	UpdateData(ctx context.Context, id uuid.UUID, data json.RawMessage) error

	// SetPublished flips the published flag of a website.
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error
}
