package render

import (
	"bytes"
	"html/template"

	"bizvistar/internal/domain/service"

	"github.com/pkg/errors"
)

type htmlInvoiceRenderer struct {
	tmpl *template.Template
}

// NewInvoiceRenderer parses the embedded invoice template.
func NewInvoiceRenderer() (service.InvoiceRenderer, error) {
	tmpl, err := template.New("invoice.html").Funcs(funcMap()).ParseFS(templateFS, "templates/invoice.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse invoice template")
	}

	return &htmlInvoiceRenderer{tmpl: tmpl}, nil
}

// Render produces a printable HTML document for the invoice.
func (r *htmlInvoiceRenderer) Render(doc *service.InvoiceDocument) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("invoice document must not be nil")
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, doc); err != nil {
		return nil, errors.Wrap(err, "failed to render invoice")
	}

	return buf.Bytes(), nil
}
