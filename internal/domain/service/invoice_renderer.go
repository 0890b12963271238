package service

import "time"

// InvoiceLine is one priced row of an invoice document.
type InvoiceLine struct {
	Name      string
	Quantity  int
	UnitPrice float64
	Amount    float64
}

// InvoiceDocument is the fully computed model an invoice is rendered from.
type InvoiceDocument struct {
	OrderRef     string
	SiteName     string
	CustomerName string
	Lines        []InvoiceLine
	Total        float64
	IssuedAt     time.Time
}

// InvoiceRenderer defines the interface for rendering invoice documents.
type InvoiceRenderer interface {
	// Render produces a printable HTML document for the invoice.
	Render(doc *InvoiceDocument) ([]byte, error)
}
