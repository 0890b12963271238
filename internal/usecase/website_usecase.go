package usecase

import (
	"context"
	"encoding/json"

	"bizvistar/internal/domain/entity"

	"github.com/google/uuid"
)

// WebsiteUsecase covers the owner-side editor operations: saving draft
// content, publishing, and the dashboard overview.
type WebsiteUsecase interface {
	// SaveDraft replaces the stored content JSON of an owned website.
	SaveDraft(ctx context.Context, userID, websiteID uuid.UUID, data json.RawMessage) error

	// Publish marks an owned website as live, enforcing the one-live-site
	// rule, and fires the deploy trigger best-effort. Returns a
	// human-readable status message.
	Publish(ctx context.Context, userID, websiteID uuid.UUID) (string, error)

	// Overview returns the caller's websites for the dashboard landing page.
	Overview(ctx context.Context, userID uuid.UUID) ([]*entity.Website, error)
}
