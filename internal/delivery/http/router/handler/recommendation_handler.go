package handler

import (
	"log/slog"
	"net/http"

	"bizvistar/internal/delivery/http/response"
	"bizvistar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RecommendationHandler exposes the suggested-products selector to storefront clients.
type RecommendationHandler struct {
	uc     usecase.RecommendationUsecase
	logger *slog.Logger
}

// NewRecommendationHandler is the constructor for RecommendationHandler, injected by Fx.
func NewRecommendationHandler(uc usecase.RecommendationUsecase, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Suggestions handles GET /api/suggestions.
func (h *RecommendationHandler) Suggestions(c echo.Context) error {
	websiteID, err := uuid.Parse(c.QueryParam("websiteId"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "websiteId must be a valid uuid")
	}

	productID, err := uuid.Parse(c.QueryParam("productId"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "productId must be a valid uuid")
	}

	products, err := h.uc.SuggestProducts(c.Request().Context(), websiteID, productID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Suggestions retrieved successfully")
}
