// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	httpmiddleware "bizvistar/internal/delivery/http/middleware"
	"bizvistar/internal/delivery/http/router/handler"
	deliverymiddleware "bizvistar/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SiteHandler           *handler.SiteHandler
	RecommendationHandler *handler.RecommendationHandler
	AnalyticsHandler      *handler.AnalyticsHandler
	WebsiteHandler        *handler.WebsiteHandler
	NotificationHandler   *handler.NotificationHandler
	UserHandler           *handler.UserHandler
	AppsHandler           *handler.AppsHandler
	AuthMiddleware        *httpmiddleware.AuthMiddleware
	RequestIDMiddleware   *deliverymiddleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront pages
	e.GET("/site/:slug", r.params.SiteHandler.Home)
	e.GET("/site/:slug/shop", r.params.SiteHandler.Shop)
	e.GET("/site/:slug/product/:productId", r.params.SiteHandler.Product)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/refresh", r.params.UserHandler.Refresh)
	}

	// Public API consumed by storefront client scripts
	apiGroup := e.Group("/api")
	apiGroup.GET("/suggestions", r.params.RecommendationHandler.Suggestions)
	apiGroup.POST("/analytics/collect", r.params.AnalyticsHandler.Collect)

	// Owner API routes behind JWT authentication
	ownerGroup := apiGroup.Group("")
	ownerGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		ownerGroup.POST("/website/save", r.params.WebsiteHandler.Save)
		ownerGroup.POST("/website/publish", r.params.WebsiteHandler.Publish)

		ownerGroup.POST("/products/:id/stock-check", r.params.NotificationHandler.CheckStock)

		ownerGroup.GET("/notifications", r.params.NotificationHandler.List)
		ownerGroup.PATCH("/notifications/:id/read", r.params.NotificationHandler.MarkRead)
		ownerGroup.DELETE("/notifications/:id", r.params.NotificationHandler.Delete)
		ownerGroup.DELETE("/notifications", r.params.NotificationHandler.Clear)

		ownerGroup.GET("/analytics/summary", r.params.AnalyticsHandler.Summary)

		ownerGroup.GET("/apps/poster", r.params.AppsHandler.Poster)
		ownerGroup.POST("/apps/invoice", r.params.AppsHandler.Invoice)
	}

	// Dashboard page routes use redirects instead of 401 JSON
	dashboardGroup := e.Group("/dashboard")
	dashboardGroup.Use(r.params.AuthMiddleware.AuthenticatePage)
	{
		dashboardGroup.GET("", r.params.WebsiteHandler.Overview)
	}
}
