// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"bizvistar/config"
	deliverycontext "bizvistar/internal/delivery/context"
	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"
	"bizvistar/internal/domain/repository"
	"bizvistar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMinSuggestions  = 2
	defaultMaxSuggestions  = 8
	defaultSameCategoryCap = 4
)

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	productRepo     repository.ProductRepository
	minLimit        int
	maxLimit        int
	sameCategoryCap int
	// shuffle permutes n elements in place. Swappable in tests for
	// deterministic bounds assertions.
	shuffle func(n int, swap func(i, j int))
	logger  *slog.Logger
}

// RecommendationServiceParams holds dependencies for the recommendation service, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	minLimit := defaultMinSuggestions
	maxLimit := defaultMaxSuggestions
	sameCategoryCap := defaultSameCategoryCap
	if params.Config != nil && params.Config.Recommendation != nil {
		if params.Config.Recommendation.MinLimit > 0 {
			minLimit = params.Config.Recommendation.MinLimit
		}
		if params.Config.Recommendation.MaxLimit > 0 {
			maxLimit = params.Config.Recommendation.MaxLimit
		}
		if params.Config.Recommendation.SameCategoryCap > 0 {
			sameCategoryCap = params.Config.Recommendation.SameCategoryCap
		}
	}

	return &recommendationService{
		productRepo:     params.ProductRepo,
		minLimit:        minLimit,
		maxLimit:        maxLimit,
		sameCategoryCap: sameCategoryCap,
		shuffle:         rand.Shuffle,
		logger:          params.Logger,
	}
}

func (srv *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SuggestProducts builds the suggested-products list for one product page.
// Candidates are partitioned into same-category and others, the others split
// by stock, each partition shuffled, then picked in order of preference:
// same-category first, in-stock others up to the maximum, out-of-stock others
// only to reach the minimum.
func (srv *recommendationService) SuggestProducts(ctx context.Context, websiteID, productID uuid.UUID) ([]*entity.Product, error) {
	target, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load target product")
	}

	// A product id from another tenant's catalog is treated as missing.
	if target.WebsiteID != websiteID {
		return nil, domainerrors.ErrProductNotFound
	}

	catalog, err := srv.productRepo.FindByWebsite(ctx, websiteID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sibling catalog")
	}

	var sameCategory, inStockOthers, outOfStockOthers []*entity.Product
	for _, candidate := range catalog {
		if candidate.ID == target.ID {
			continue
		}
		switch {
		case candidate.Category != "" && candidate.Category == target.Category:
			sameCategory = append(sameCategory, candidate)
		case candidate.InStock():
			inStockOthers = append(inStockOthers, candidate)
		default:
			outOfStockOthers = append(outOfStockOthers, candidate)
		}
	}

	srv.shufflePool(sameCategory)
	srv.shufflePool(inStockOthers)
	srv.shufflePool(outOfStockOthers)

	picked := make([]*entity.Product, 0, srv.maxLimit)
	picked = appendUpTo(picked, sameCategory, min(srv.sameCategoryCap, srv.maxLimit))
	picked = appendUpTo(picked, inStockOthers, srv.maxLimit)
	if len(picked) < srv.minLimit {
		picked = appendUpTo(picked, outOfStockOthers, srv.minLimit)
	}

	srv.shufflePool(picked)

	srv.log(ctx).Debug("Built product suggestions",
		slog.Any("websiteID", websiteID),
		slog.Any("productID", productID),
		slog.Int("count", len(picked)))

	return picked, nil
}

func (srv *recommendationService) shufflePool(pool []*entity.Product) {
	srv.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
}

// appendUpTo appends items from pool until dst reaches limit.
func appendUpTo(dst, pool []*entity.Product, limit int) []*entity.Product {
	for _, item := range pool {
		if len(dst) >= limit {
			break
		}
		dst = append(dst, item)
	}

	return dst
}
