package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationType enumerates the kinds of dashboard notifications.
type NotificationType string

const (
	// NotificationNewOrder is created when a storefront order comes in.
	NotificationNewOrder NotificationType = "new_order"
	// NotificationLowStock is created when a product's stock falls to the low threshold.
	NotificationLowStock NotificationType = "low_stock"
	// NotificationOutOfStock is created when a product's stock reaches zero.
	NotificationOutOfStock NotificationType = "out_of_stock"
)

// Notification represents a dashboard alert for a website owner.
// Notifications are created by the emitter and only ever flipped to read
// or deleted afterwards.
type Notification struct {
	ID        uuid.UUID        `json:"id"`         // The Global Unique Identifier (GUID) for the notification.
	WebsiteID uuid.UUID        `json:"website_id"` // The ID of the website the alert belongs to.
	Type      NotificationType `json:"type"`       // The kind of alert.
	Title     string           `json:"title"`      // Short human-readable headline.
	Message   string           `json:"message"`    // Longer human-readable body.
	Data      json.RawMessage  `json:"data"`       // Free-form payload (product id, remaining stock, ...).
	Read      bool             `json:"is_read"`    // Whether the owner has seen the alert.
	CreatedAt time.Time        `json:"created_at"` // Timestamp of when this record was created.
}
