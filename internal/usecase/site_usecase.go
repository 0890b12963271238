// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bizvistar/internal/domain/entity"

	"github.com/google/uuid"
)

// SiteView is everything the template renderer needs for the home and shop pages.
type SiteView struct {
	Website  *entity.Website
	Products []*entity.Product
}

// ProductView is everything the template renderer needs for a product page.
type ProductView struct {
	Website   *entity.Website
	Product   *entity.Product
	Suggested []*entity.Product
}

// SiteUsecase resolves public slugs into renderable site data.
// Unpublished sites are indistinguishable from missing ones.
type SiteUsecase interface {
	// ResolveSite loads the published website for a slug together with its catalog.
	ResolveSite(ctx context.Context, slug string) (*SiteView, error)

	// ResolveProduct loads one product of a published website plus its
	// suggested products.
	ResolveProduct(ctx context.Context, slug string, productID uuid.UUID) (*ProductView, error)
}
