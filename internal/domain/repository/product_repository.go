package repository

import (
	"context"
	"errors"

	"bizvistar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product-related database operations.
// Dashboard CRUD lives outside this service; the storefront only reads.
type ProductRepository interface {
	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByWebsite retrieves the full catalog of a website, newest first.
	FindByWebsite(ctx context.Context, websiteID uuid.UUID) ([]*entity.Product, error)
}
