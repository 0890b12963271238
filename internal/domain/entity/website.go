// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Website represents a tenant's site built from a template.
// It is created at onboarding, mutated by the editor (content) and by
// publish actions (published flag), and never deleted by in-scope code.
type Website struct {
	ID           uuid.UUID       `json:"id"`            // The Global Unique Identifier (GUID) for the website.
	UserID       uuid.UUID       `json:"user_id"`       // The ID of the owning user.
	Slug         string          `json:"site_slug"`     // The public slug the site is served under.
	TemplateName string          `json:"template_name"` // The name of the template the site renders with.
	Published    bool            `json:"is_published"`  // Whether the site is live on its public routes.
	Data         json.RawMessage `json:"website_data"`  // The arbitrary site content blob edited through the dashboard.
	CreatedAt    time.Time       `json:"created_at"`    // Timestamp of when this record was created.
	UpdatedAt    time.Time       `json:"updated_at"`    // Timestamp of the last modification.
}
