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

// NotificationHandler covers the stock-check trigger and the owner alert inbox.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// CheckStock handles POST /api/products/:id/stock-check.
func (h *NotificationHandler) CheckStock(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "product id must be a valid uuid")
	}

	notification, err := h.uc.CheckStock(c.Request().Context(), userID, productID)
	if err != nil {
		return handleAppError(c, err)
	}

	if notification == nil {
		return response.Success(c, http.StatusOK, nil, "Stock level is fine")
	}

	return response.Success(c, http.StatusCreated, notification, "Stock notification created")
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	websiteID, err := uuid.Parse(c.QueryParam("websiteId"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "websiteId must be a valid uuid")
	}

	notifications, err := h.uc.ListNotifications(c.Request().Context(), userID, websiteID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// MarkRead handles PATCH /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "notification id must be a valid uuid")
	}

	if err := h.uc.MarkNotificationRead(c.Request().Context(), userID, notificationID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// Delete handles DELETE /api/notifications/:id.
func (h *NotificationHandler) Delete(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "notification id must be a valid uuid")
	}

	if err := h.uc.DeleteNotification(c.Request().Context(), userID, notificationID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted")
}

// Clear handles DELETE /api/notifications.
func (h *NotificationHandler) Clear(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	websiteID, err := uuid.Parse(c.QueryParam("websiteId"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "websiteId must be a valid uuid")
	}

	if err := h.uc.ClearNotifications(c.Request().Context(), userID, websiteID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notifications cleared")
}
