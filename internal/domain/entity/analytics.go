package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AnalyticsEvent is a single append-only storefront event row.
// No update or delete path exists for these records.
type AnalyticsEvent struct {
	ID        uuid.UUID       `json:"id"`                 // The Global Unique Identifier (GUID) for the event.
	WebsiteID uuid.UUID       `json:"website_id"`         // The ID of the website the event was collected for.
	EventType string          `json:"event_type"`         // Event kind, e.g. "page_view" or "purchase".
	Path      string          `json:"path"`               // The storefront path the event happened on.
	UserAgent string          `json:"user_agent"`         // The visitor's user agent string.
	Location  json.RawMessage `json:"location"`           // Best-effort geolocation payload; may be empty.
	OrderID   *uuid.UUID      `json:"order_id,omitempty"` // Optional order reference for purchase events.
	CreatedAt time.Time       `json:"created_at"`         // Timestamp of when this record was created.
}

// DailyPageViews is one bucket of the visitors-over-time aggregate.
type DailyPageViews struct {
	Day   time.Time `json:"day"`
	Views int64     `json:"views"`
}

// PathViews is one row of the top-pages aggregate.
type PathViews struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}
