// Package model contains the GORM-specific structs mirroring the database tables.
// Types are exported so the GORM Gen tool can consume them from cmd/gen.
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WebsiteModel mirrors the 'websites' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type WebsiteModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Slug         string          `gorm:"type:varchar(100);unique;not null"`
	TemplateName string          `gorm:"type:varchar(50);not null"`
	IsPublished  bool            `gorm:"not null;default:false;index"`
	Data         json.RawMessage `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Products      []ProductModel      `gorm:"foreignKey:WebsiteID"`
	Notifications []NotificationModel `gorm:"foreignKey:WebsiteID"`
}

// TableName explicitly sets the table name for GORM.
func (WebsiteModel) TableName() string {
	return "websites"
}
