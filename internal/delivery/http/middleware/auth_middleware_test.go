package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bizvistar/config"
	deliverycontext "bizvistar/internal/delivery/context"
	"bizvistar/internal/infra/auth"
	mockRepo "bizvistar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	middleware  *AuthMiddleware
	websiteRepo *mockRepo.MockWebsiteRepository
	userID      uuid.UUID
	accessToken string
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, _, err := tokenSvc.GenerateTokens(userID)
	require.NoError(t, err)

	websiteRepo := mockRepo.NewMockWebsiteRepository(t)

	return &authFixture{
		middleware:  NewAuthMiddleware(tokenSvc, websiteRepo, cfg),
		websiteRepo: websiteRepo,
		userID:      userID,
		accessToken: accessToken,
	}
}

func invoke(t *testing.T, handler echo.HandlerFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	require.NoError(t, handler(c))

	return rec, c
}

func TestAuthenticate_ValidBearerToken(t *testing.T) {
	fx := newAuthFixture(t)

	nextCalled := false
	handler := fx.middleware.Authenticate(func(c echo.Context) error {
		nextCalled = true
		assert.Equal(t, fx.userID, deliverycontext.GetUserID(c))

		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+fx.accessToken)
	invoke(t, handler, req)

	assert.True(t, nextCalled)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	fx := newAuthFixture(t)

	handler := fx.middleware.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run without a token")

		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	rec, _ := invoke(t, handler, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthenticate_MalformedToken(t *testing.T) {
	fx := newAuthFixture(t)

	handler := fx.middleware.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler must not run with a bad token")

		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec, _ := invoke(t, handler, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatePage_UnauthenticatedRedirectsToSignIn(t *testing.T) {
	fx := newAuthFixture(t)

	handler := fx.middleware.AuthenticatePage(func(c echo.Context) error {
		t.Fatal("next handler must not run without a session")

		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec, _ := invoke(t, handler, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/sign-in?redirect=%2Fdashboard", rec.Header().Get("Location"))
}

func TestAuthenticatePage_NoSiteRedirectsToTemplates(t *testing.T) {
	fx := newAuthFixture(t)
	fx.websiteRepo.EXPECT().ExistsForUser(mock.Anything, fx.userID).Return(false, nil)

	handler := fx.middleware.AuthenticatePage(func(c echo.Context) error {
		t.Fatal("next handler must not run without a site")

		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: fx.accessToken})
	rec, _ := invoke(t, handler, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/templates", rec.Header().Get("Location"))
}

func TestAuthenticatePage_SessionCookieAccepted(t *testing.T) {
	fx := newAuthFixture(t)
	fx.websiteRepo.EXPECT().ExistsForUser(mock.Anything, fx.userID).Return(true, nil)

	nextCalled := false
	handler := fx.middleware.AuthenticatePage(func(c echo.Context) error {
		nextCalled = true
		assert.Equal(t, fx.userID, deliverycontext.GetUserID(c))

		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: fx.accessToken})
	invoke(t, handler, req)

	assert.True(t, nextCalled)
}
