package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PosterOutput is the generated QR poster plus, when blob storage is
// configured, the URL it was stored under.
type PosterOutput struct {
	PNG       []byte `json:"-"`
	StoredURL string `json:"stored_url,omitempty"`
}

// InvoiceItem is one line of a generated invoice.
type InvoiceItem struct {
	Name      string  `json:"name" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// InvoiceInput describes the order an invoice document is generated for.
type InvoiceInput struct {
	WebsiteID    uuid.UUID     `json:"website_id" validate:"required"`
	OrderRef     string        `json:"order_ref" validate:"required"`
	CustomerName string        `json:"customer_name" validate:"required"`
	Items        []InvoiceItem `json:"items" validate:"required,min=1,dive"`
	IssuedAt     time.Time     `json:"issued_at"`
}

// AppsUsecase covers the small utility apps offered in the dashboard.
type AppsUsecase interface {
	// GeneratePoster renders a QR poster for an owned, published website.
	GeneratePoster(ctx context.Context, userID, websiteID uuid.UUID) (*PosterOutput, error)

	// RenderInvoice renders an invoice document for an owned website's order.
	RenderInvoice(ctx context.Context, userID uuid.UUID, input *InvoiceInput) ([]byte, error)
}
