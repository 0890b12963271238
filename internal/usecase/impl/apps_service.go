package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bizvistar/config"
	deliverycontext "bizvistar/internal/delivery/context"
	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"
	"bizvistar/internal/domain/repository"
	"bizvistar/internal/domain/service"
	"bizvistar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// appsService implements the AppsUsecase interface.
type appsService struct {
	websiteRepo     repository.WebsiteRepository
	posterService   service.PosterService
	invoiceRenderer service.InvoiceRenderer
	artifactStore   service.ArtifactStore
	storefrontBase  string
	logger          *slog.Logger
}

// AppsServiceParams holds dependencies for the apps service, injected by Fx.
type AppsServiceParams struct {
	fx.In

	WebsiteRepo     repository.WebsiteRepository
	PosterService   service.PosterService
	InvoiceRenderer service.InvoiceRenderer
	ArtifactStore   service.ArtifactStore `optional:"true"`
	Config          *config.Config
	Logger          *slog.Logger
}

// NewAppsService is the constructor for appsService.
func NewAppsService(params AppsServiceParams) usecase.AppsUsecase {
	storefrontBase := ""
	if params.Config != nil && params.Config.Storefront != nil {
		storefrontBase = strings.TrimRight(params.Config.Storefront.BaseURL, "/")
	}

	return &appsService{
		websiteRepo:     params.WebsiteRepo,
		posterService:   params.PosterService,
		invoiceRenderer: params.InvoiceRenderer,
		artifactStore:   params.ArtifactStore,
		storefrontBase:  storefrontBase,
		logger:          params.Logger,
	}
}

func (srv *appsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GeneratePoster renders a QR poster pointing at a published storefront.
func (srv *appsService) GeneratePoster(ctx context.Context, userID, websiteID uuid.UUID) (*usecase.PosterOutput, error) {
	website, err := srv.ownedWebsite(ctx, userID, websiteID)
	if err != nil {
		return nil, err
	}

	if !website.Published {
		return nil, domainerrors.ErrSiteNotPublished
	}

	siteURL := fmt.Sprintf("%s/site/%s", srv.storefrontBase, website.Slug)

	png, err := srv.posterService.GeneratePoster(siteURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render poster")
	}

	output := &usecase.PosterOutput{PNG: png}
	output.StoredURL = srv.store(ctx, fmt.Sprintf("posters/%s.png", website.ID), "image/png", png)

	return output, nil
}

// RenderInvoice renders an invoice document for an owned website's order.
func (srv *appsService) RenderInvoice(ctx context.Context, userID uuid.UUID, input *usecase.InvoiceInput) ([]byte, error) {
	website, err := srv.ownedWebsite(ctx, userID, input.WebsiteID)
	if err != nil {
		return nil, err
	}

	doc := buildInvoiceDocument(website, input)

	html, err := srv.invoiceRenderer.Render(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render invoice")
	}

	srv.store(ctx, fmt.Sprintf("invoices/%s/%s.html", website.ID, input.OrderRef), "text/html; charset=utf-8", html)

	return html, nil
}

// store persists an artifact best-effort and returns its URL, or empty when
// storage is not configured or the write failed.
func (srv *appsService) store(ctx context.Context, key, contentType string, data []byte) string {
	if srv.artifactStore == nil {
		return ""
	}

	url, err := srv.artifactStore.Save(ctx, key, contentType, data)
	if err != nil {
		srv.log(ctx).Warn("Failed to store artifact", slog.String("key", key), slog.Any("error", err))

		return ""
	}

	return url
}

func (srv *appsService) ownedWebsite(ctx context.Context, userID, websiteID uuid.UUID) (*entity.Website, error) {
	website, err := srv.websiteRepo.FindByID(ctx, websiteID)
	if errors.Is(err, repository.ErrWebsiteNotFound) {
		return nil, domainerrors.ErrSiteNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load website")
	}
	if website.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return website, nil
}

// buildInvoiceDocument computes line amounts and the total for rendering.
func buildInvoiceDocument(website *entity.Website, input *usecase.InvoiceInput) *service.InvoiceDocument {
	issuedAt := input.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	lines := make([]service.InvoiceLine, 0, len(input.Items))
	total := 0.0
	for _, item := range input.Items {
		amount := float64(item.Quantity) * item.UnitPrice
		total += amount
		lines = append(lines, service.InvoiceLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Amount:    amount,
		})
	}

	return &service.InvoiceDocument{
		OrderRef:     input.OrderRef,
		SiteName:     website.Slug,
		CustomerName: input.CustomerName,
		Lines:        lines,
		Total:        total,
		IssuedAt:     issuedAt,
	}
}
