package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table.
// Rows are inserted by the emitter and only ever flipped to read or deleted.
type NotificationModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WebsiteID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type      string          `gorm:"type:varchar(20);not null"`
	Title     string          `gorm:"type:text;not null"`
	Message   string          `gorm:"type:text;not null"`
	Data      json.RawMessage `gorm:"type:jsonb"`
	IsRead    bool            `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
