package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AnalyticsEventModel mirrors the 'client_analytics' table. Append-only.
type AnalyticsEventModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WebsiteID uuid.UUID       `gorm:"type:uuid;not null;index:idx_client_analytics_website_created"`
	EventType string          `gorm:"type:varchar(50);not null"`
	Path      string          `gorm:"type:text"`
	UserAgent string          `gorm:"type:text"`
	Location  json.RawMessage `gorm:"type:jsonb"`
	OrderID   *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt time.Time       `gorm:"index:idx_client_analytics_website_created"`
}

// TableName explicitly sets the table name for GORM.
func (AnalyticsEventModel) TableName() string {
	return "client_analytics"
}
