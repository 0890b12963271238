package geoip

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bizvistar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocator(t *testing.T, handler http.HandlerFunc) *httpGeoLocator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		GeoIP: &config.GeoIPConfig{Endpoint: server.URL, Timeout: time.Second},
	}
	locator := NewGeoLocator(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NotNil(t, locator)

	client, ok := locator.(*httpGeoLocator)
	require.True(t, ok)

	return client
}

func TestHTTPGeoLocator_Lookup(t *testing.T) {
	locator := newTestLocator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/203.0.113.10/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ip":"203.0.113.10","city":"Pune","region":"Maharashtra","country_name":"India"}`))
	})

	location, err := locator.Lookup(context.Background(), "203.0.113.10")
	require.NoError(t, err)
	assert.Equal(t, "India", location.Country)
	assert.Equal(t, "Maharashtra", location.Region)
	assert.Equal(t, "Pune", location.City)
	assert.Equal(t, "203.0.113.10", location.IP)
}

func TestHTTPGeoLocator_Lookup_ProviderError(t *testing.T) {
	locator := newTestLocator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":true,"reason":"Reserved IP Address"}`))
	})

	_, err := locator.Lookup(context.Background(), "127.0.0.1")
	assert.ErrorContains(t, err, "Reserved IP Address")
}

func TestHTTPGeoLocator_Lookup_NonOKStatus(t *testing.T) {
	locator := newTestLocator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := locator.Lookup(context.Background(), "203.0.113.10")
	assert.ErrorContains(t, err, "429")
}

func TestHTTPGeoLocator_Lookup_EmptyIP(t *testing.T) {
	locator := newTestLocator(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an empty ip")
	})

	_, err := locator.Lookup(context.Background(), "")
	assert.Error(t, err)
}

func TestNewGeoLocator_Unconfigured(t *testing.T) {
	locator := NewGeoLocator(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Nil(t, locator)
}
