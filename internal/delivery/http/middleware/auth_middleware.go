// Package middleware contains HTTP-specific middleware for the echo server.
package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"bizvistar/config"
	deliverycontext "bizvistar/internal/delivery/context"
	"bizvistar/internal/domain/repository"
	"bizvistar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// accessTokenCookie carries the session for dashboard page requests, where
// the browser cannot attach an Authorization header.
const accessTokenCookie = "access_token"

// AuthMiddleware provides middleware for JWT authentication and access gating.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	websiteRepo repository.WebsiteRepository
	cfg         *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, websiteRepo repository.WebsiteRepository, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, websiteRepo: websiteRepo, cfg: cfg}
}

// Authenticate validates the JWT access token on API routes. Failures are
// answered with 401 JSON, never with a redirect.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := m.resolveUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// AuthenticatePage gates dashboard page routes. Unauthenticated callers are
// redirected to the sign-in page with the original path preserved; callers
// without a site yet are sent to the template picker.
func (m *AuthMiddleware) AuthenticatePage(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := m.resolveUser(c)
		if !ok {
			target := "/sign-in?redirect=" + url.QueryEscape(c.Request().URL.Path)

			return c.Redirect(http.StatusFound, target)
		}

		hasSite, err := m.websiteRepo.ExistsForUser(c.Request().Context(), userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to resolve account state"})
		}
		if !hasSite {
			return c.Redirect(http.StatusFound, "/templates")
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// resolveUser extracts and validates the access token from the Authorization
// header or, for page routes, the session cookie.
func (m *AuthMiddleware) resolveUser(c echo.Context) (uuid.UUID, bool) {
	tokenString := ""

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		trimmed := strings.TrimPrefix(authHeader, "Bearer ")
		if trimmed != authHeader {
			tokenString = trimmed
		}
	}

	if tokenString == "" {
		if cookie, err := c.Cookie(accessTokenCookie); err == nil {
			tokenString = cookie.Value
		}
	}

	if tokenString == "" {
		return uuid.Nil, false
	}

	token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
	if err != nil || !token.Valid {
		return uuid.Nil, false
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}
