package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"bizvistar/internal/delivery/http/response"
	"bizvistar/internal/domain/entity"
	"bizvistar/internal/infra/render"
	"bizvistar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SiteHandler serves the public storefront pages of published sites.
type SiteHandler struct {
	uc     usecase.SiteUsecase
	logger *slog.Logger
}

// NewSiteHandler is the constructor for SiteHandler, injected by Fx.
func NewSiteHandler(uc usecase.SiteUsecase, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{
		uc:     uc,
		logger: logger,
	}
}

// Home renders the landing page of a published site.
func (h *SiteHandler) Home(c echo.Context) error {
	view, err := h.uc.ResolveSite(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return handleAppError(c, err)
	}

	return h.renderPage(c, render.PageHome, view.Website, view.Products, nil, nil)
}

// Shop renders the full catalog page of a published site.
func (h *SiteHandler) Shop(c echo.Context) error {
	view, err := h.uc.ResolveSite(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return handleAppError(c, err)
	}

	return h.renderPage(c, render.PageShop, view.Website, view.Products, nil, nil)
}

// Product renders a single product page with suggestions.
func (h *SiteHandler) Product(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.NotFound(c, "PRODUCT_NOT_FOUND", "No product matches this id")
	}

	view, err := h.uc.ResolveProduct(c.Request().Context(), c.Param("slug"), productID)
	if err != nil {
		return handleAppError(c, err)
	}

	return h.renderPage(c, render.PageProduct, view.Website, nil, view.Product, view.Suggested)
}

// renderPage assembles the view model and renders through the template
// registry. The content blob is owner-edited, so a malformed blob renders
// as an empty page rather than an error.
func (h *SiteHandler) renderPage(c echo.Context, page string, site *entity.Website, products []*entity.Product, product *entity.Product, suggested []*entity.Product) error {
	content := map[string]any{}
	if len(site.Data) > 0 {
		if err := json.Unmarshal(site.Data, &content); err != nil {
			h.logger.Warn("Site content blob is not valid JSON",
				slog.Any("websiteID", site.ID),
				slog.Any("error", err))
			content = map[string]any{}
		}
	}

	return c.Render(http.StatusOK, render.PageName(site.TemplateName, page), &render.PageData{
		Site:      site,
		Content:   content,
		Products:  products,
		Product:   product,
		Suggested: suggested,
	})
}
