package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	deliverycontext "bizvistar/internal/delivery/context"
	"bizvistar/internal/delivery/http/response"
	"bizvistar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// WebsiteHandler covers the owner-side editor endpoints.
type WebsiteHandler struct {
	uc     usecase.WebsiteUsecase
	logger *slog.Logger
}

// NewWebsiteHandler is the constructor for WebsiteHandler, injected by Fx.
func NewWebsiteHandler(uc usecase.WebsiteUsecase, logger *slog.Logger) *WebsiteHandler {
	return &WebsiteHandler{
		uc:     uc,
		logger: logger,
	}
}

// SaveRequest is the body of the editor's save endpoint.
type SaveRequest struct {
	WebsiteID   uuid.UUID       `json:"websiteId"`
	WebsiteData json.RawMessage `json:"websiteData"`
}

// PublishRequest is the body of the publish endpoint.
type PublishRequest struct {
	WebsiteID uuid.UUID `json:"websiteId"`
}

// Save handles POST /api/website/save.
func (h *WebsiteHandler) Save(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	var req SaveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid save input")
	}
	if req.WebsiteID == uuid.Nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "websiteId is required")
	}

	if err := h.uc.SaveDraft(c.Request().Context(), userID, req.WebsiteID, req.WebsiteData); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Website saved successfully")
}

// Publish handles POST /api/website/publish.
func (h *WebsiteHandler) Publish(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	var req PublishRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid publish input")
	}
	if req.WebsiteID == uuid.Nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "websiteId is required")
	}

	message, err := h.uc.Publish(c.Request().Context(), userID, req.WebsiteID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}

// Overview handles GET /dashboard.
func (h *WebsiteHandler) Overview(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	websites, err := h.uc.Overview(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, websites, "Dashboard overview retrieved successfully")
}
