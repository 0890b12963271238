package impl

import (
	"context"
	"log/slog"

	deliverycontext "bizvistar/internal/delivery/context"
	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"
	"bizvistar/internal/domain/repository"
	"bizvistar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// siteService implements the SiteUsecase interface.
type siteService struct {
	websiteRepo    repository.WebsiteRepository
	productRepo    repository.ProductRepository
	recommendation usecase.RecommendationUsecase
	logger         *slog.Logger
}

// SiteServiceParams holds dependencies for the site service, injected by Fx.
type SiteServiceParams struct {
	fx.In

	WebsiteRepo    repository.WebsiteRepository
	ProductRepo    repository.ProductRepository
	Recommendation usecase.RecommendationUsecase
	Logger         *slog.Logger
}

// NewSiteService is the constructor for siteService.
func NewSiteService(params SiteServiceParams) usecase.SiteUsecase {
	return &siteService{
		websiteRepo:    params.WebsiteRepo,
		productRepo:    params.ProductRepo,
		recommendation: params.Recommendation,
		logger:         params.Logger,
	}
}

func (srv *siteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveSite loads the published website for a slug together with its catalog.
func (srv *siteService) ResolveSite(ctx context.Context, slug string) (*usecase.SiteView, error) {
	website, err := srv.publishedWebsite(ctx, slug)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.FindByWebsite(ctx, website.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	return &usecase.SiteView{Website: website, Products: products}, nil
}

// ResolveProduct loads one product of a published website plus suggestions.
func (srv *siteService) ResolveProduct(ctx context.Context, slug string, productID uuid.UUID) (*usecase.ProductView, error) {
	website, err := srv.publishedWebsite(ctx, slug)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product")
	}
	if product.WebsiteID != website.ID {
		return nil, domainerrors.ErrProductNotFound
	}

	// Suggestions are decorative; an empty list renders fine.
	suggested, err := srv.recommendation.SuggestProducts(ctx, website.ID, product.ID)
	if err != nil {
		srv.log(ctx).Warn("Failed to build suggestions",
			slog.Any("productID", product.ID),
			slog.Any("error", err))
		suggested = nil
	}

	return &usecase.ProductView{Website: website, Product: product, Suggested: suggested}, nil
}

// publishedWebsite resolves a slug to a published website with a known template.
// Unpublished and missing sites are indistinguishable to callers.
func (srv *siteService) publishedWebsite(ctx context.Context, slug string) (*entity.Website, error) {
	if slug == "" {
		return nil, domainerrors.ErrSiteNotFound
	}

	website, err := srv.websiteRepo.FindPublishedBySlug(ctx, slug)
	if errors.Is(err, repository.ErrWebsiteNotFound) {
		return nil, domainerrors.ErrSiteNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve slug")
	}

	if !entity.IsKnownTemplate(website.TemplateName) {
		srv.log(ctx).Error("Website stores an unknown template name",
			slog.Any("websiteID", website.ID),
			slog.String("template", website.TemplateName))

		return nil, domainerrors.ErrTemplateNotFound
	}

	return website, nil
}
