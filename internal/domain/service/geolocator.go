package service

import "context"

// Location is the minimal geolocation payload stored with analytics events.
type Location struct {
	Country string `json:"country,omitempty"`
	Region  string `json:"region,omitempty"`
	City    string `json:"city,omitempty"`
	IP      string `json:"ip,omitempty"`
}

// GeoLocator defines the interface for best-effort IP geolocation.
// Lookups are allowed to fail; callers ignore errors and persist without
// location data.
type GeoLocator interface {
	Lookup(ctx context.Context, ip string) (*Location, error)
}
