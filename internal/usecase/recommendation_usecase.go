package usecase

import (
	"context"

	"bizvistar/internal/domain/entity"

	"github.com/google/uuid"
)

// RecommendationUsecase produces the suggested-products list for a storefront
// product page. The result never contains the queried product and its length
// stays within the configured bounds; ordering is deliberately random.
type RecommendationUsecase interface {
	SuggestProducts(ctx context.Context, websiteID, productID uuid.UUID) ([]*entity.Product, error)
}
