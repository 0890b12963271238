package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnlimitedStock is the sentinel stock value for products that never run out.
const UnlimitedStock = -1

// Product represents a single item sold through a website's storefront.
type Product struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the product.
	WebsiteID   uuid.UUID `json:"website_id"`  // The ID of the parent website.
	Name        string    `json:"name"`        // The display name of the product.
	Description string    `json:"description"` // The long-form product description.
	Price       float64   `json:"price"`       // The unit price in the shop's currency.
	Stock       int       `json:"stock"`       // Remaining stock; UnlimitedStock (-1) means never runs out.
	Category    string    `json:"category"`    // The category the product belongs to.
	Image       string    `json:"image"`       // URL of the product image.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when this record was created.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}

// InStock reports whether the product can currently be bought.
func (p *Product) InStock() bool {
	return p.Stock == UnlimitedStock || p.Stock > 0
}
