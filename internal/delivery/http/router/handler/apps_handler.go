package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "bizvistar/internal/delivery/context"
	"bizvistar/internal/delivery/http/response"
	"bizvistar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// storedLocationHeader carries the blob URL of a stored artifact alongside
// the inline response body.
const storedLocationHeader = "X-Stored-Location"

// AppsHandler serves the dashboard utility apps (QR poster, invoice).
type AppsHandler struct {
	uc     usecase.AppsUsecase
	logger *slog.Logger
}

// NewAppsHandler is the constructor for AppsHandler, injected by Fx.
func NewAppsHandler(uc usecase.AppsUsecase, logger *slog.Logger) *AppsHandler {
	return &AppsHandler{
		uc:     uc,
		logger: logger,
	}
}

// Poster handles GET /api/apps/poster.
func (h *AppsHandler) Poster(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	websiteID, err := uuid.Parse(c.QueryParam("websiteId"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "websiteId must be a valid uuid")
	}

	output, err := h.uc.GeneratePoster(c.Request().Context(), userID, websiteID)
	if err != nil {
		return handleAppError(c, err)
	}

	if output.StoredURL != "" {
		c.Response().Header().Set(storedLocationHeader, output.StoredURL)
	}

	return c.Blob(http.StatusOK, "image/png", output.PNG)
}

// Invoice handles POST /api/apps/invoice.
func (h *AppsHandler) Invoice(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	var input usecase.InvoiceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invoice input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "website_id, order_ref, customer_name and at least one item are required")
	}

	html, err := h.uc.RenderInvoice(c.Request().Context(), userID, &input)
	if err != nil {
		return handleAppError(c, err)
	}

	return c.HTMLBlob(http.StatusOK, html)
}
