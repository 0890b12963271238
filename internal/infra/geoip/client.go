// Package geoip resolves request IPs to coarse locations for analytics.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"bizvistar/config"
	"bizvistar/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultEndpoint = "https://ipapi.co"
	defaultTimeout  = 3 * time.Second
)

type httpGeoLocator struct {
	endpoint   string
	httpClient *http.Client
}

// lookupResponse mirrors the ipapi.co JSON payload, trimmed to the fields we keep.
type lookupResponse struct {
	IP          string `json:"ip"`
	City        string `json:"city"`
	Region      string `json:"region"`
	CountryName string `json:"country_name"`
	Error       bool   `json:"error"`
	Reason      string `json:"reason"`
}

// NewGeoLocator creates an ipapi.co-style geolocation client. Returns nil
// when geolocation is not configured; callers treat a nil locator as
// lookups disabled.
func NewGeoLocator(cfg *config.Config, logger *slog.Logger) service.GeoLocator {
	if cfg.GeoIP == nil {
		logger.Info("GeoIP not configured, analytics events are stored without location")

		return nil
	}

	endpoint := cfg.GeoIP.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	timeout := cfg.GeoIP.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &httpGeoLocator{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Lookup resolves an IP address to a location.
func (c *httpGeoLocator) Lookup(ctx context.Context, ip string) (*service.Location, error) {
	if ip == "" {
		return nil, errors.New("ip must not be empty")
	}

	url := fmt.Sprintf("%s/%s/json/", c.endpoint, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geoip lookup returned status %d", resp.StatusCode)
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.WithStack(err)
	}
	if payload.Error {
		return nil, errors.Errorf("geoip lookup failed: %s", payload.Reason)
	}

	return &service.Location{
		Country: payload.CountryName,
		Region:  payload.Region,
		City:    payload.City,
		IP:      payload.IP,
	}, nil
}
