package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "bizvistar/internal/delivery/context"
	"bizvistar/internal/delivery/http/response"
	domainerrors "bizvistar/internal/domain/errors"
	"bizvistar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnalyticsHandler ingests storefront beacons and serves owner summaries.
type AnalyticsHandler struct {
	uc     usecase.AnalyticsUsecase
	logger *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:     uc,
		logger: logger,
	}
}

// CollectRequest is the beacon body posted by the storefront client script.
type CollectRequest struct {
	WebsiteID uuid.UUID  `json:"websiteId"`
	EventType string     `json:"eventType"`
	Path      string     `json:"path"`
	OrderID   *uuid.UUID `json:"orderId,omitempty"`
}

// Collect handles POST /api/analytics/collect.
func (h *AnalyticsHandler) Collect(c echo.Context) error {
	var req CollectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analytics event input")
	}

	err := h.uc.Collect(c.Request().Context(), &usecase.CollectEventInput{
		WebsiteID: req.WebsiteID,
		EventType: req.EventType,
		Path:      req.Path,
		OrderID:   req.OrderID,
		UserAgent: c.Request().UserAgent(),
		RemoteIP:  c.RealIP(),
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
		}

		// Beacons are fire-and-forget on the client; answer a flat error body.
		h.logger.Error("Failed to collect analytics event", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to collect event"})
	}

	return c.JSON(http.StatusOK, map[string]bool{"collected": true})
}

// Summary handles GET /api/analytics/summary.
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	websiteID, err := uuid.Parse(c.QueryParam("websiteId"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "websiteId must be a valid uuid")
	}

	days := 0
	if daysStr := c.QueryParam("days"); daysStr != "" {
		if parsed, err := strconv.Atoi(daysStr); err == nil {
			days = parsed
		}
	}

	summary, err := h.uc.Summary(c.Request().Context(), userID, websiteID, days)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Analytics summary retrieved successfully")
}
