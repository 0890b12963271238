package render

import (
	"bytes"
	"testing"
	"time"

	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"
	"bizvistar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPageData(templateName string) *PageData {
	site := &entity.Website{
		ID:           uuid.New(),
		Slug:         "chai-corner",
		TemplateName: templateName,
		Published:    true,
	}
	product := &entity.Product{
		ID:        uuid.New(),
		WebsiteID: site.ID,
		Name:      "Masala Chai",
		Price:     80,
		Stock:     12,
		Category:  "beverages",
	}

	return &PageData{
		Site: site,
		Content: map[string]any{
			"logoText": "Chai Corner",
			"hero": map[string]any{
				"title":    "Brewed Fresh Daily",
				"subtitle": "Small batch chai and snacks.",
				"cta":      "See the menu",
			},
		},
		Products:  []*entity.Product{product},
		Product:   product,
		Suggested: []*entity.Product{product},
	}
}

func TestSiteRenderer_RendersEveryKnownTemplate(t *testing.T) {
	renderer, err := NewSiteRenderer()
	require.NoError(t, err)

	for _, brand := range entity.KnownTemplates() {
		for _, page := range []string{PageHome, PageShop, PageProduct} {
			var buf bytes.Buffer
			err := renderer.Render(&buf, PageName(brand, page), testPageData(brand), nil)
			require.NoError(t, err, "%s/%s", brand, page)
			assert.Contains(t, buf.String(), "Masala Chai")
			assert.Contains(t, buf.String(), "$80.00")
		}
	}
}

func TestSiteRenderer_UnknownName(t *testing.T) {
	renderer, err := NewSiteRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = renderer.Render(&buf, PageName("vaporwave", PageHome), testPageData(entity.TemplateFlara), nil)
	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}

func TestSiteRenderer_MissingContentKeys(t *testing.T) {
	renderer, err := NewSiteRenderer()
	require.NoError(t, err)

	data := testPageData(entity.TemplateFlara)
	data.Content = map[string]any{}
	data.Suggested = nil

	var buf bytes.Buffer
	err = renderer.Render(&buf, PageName(entity.TemplateFlara, PageHome), data, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "chai-corner")
}

func TestHTMLInvoiceRenderer_Render(t *testing.T) {
	renderer, err := NewInvoiceRenderer()
	require.NoError(t, err)

	doc := &service.InvoiceDocument{
		OrderRef:     "ORD-42",
		SiteName:     "chai-corner",
		CustomerName: "Priya Sharma",
		Lines: []service.InvoiceLine{
			{Name: "Masala Chai", Quantity: 3, UnitPrice: 80, Amount: 240},
			{Name: "Samosa", Quantity: 2, UnitPrice: 45, Amount: 90},
		},
		Total:    330,
		IssuedAt: time.Date(2026, time.August, 12, 0, 0, 0, 0, time.UTC),
	}

	html, err := renderer.Render(doc)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "ORD-42")
	assert.Contains(t, out, "Priya Sharma")
	assert.Contains(t, out, "Masala Chai")
	assert.Contains(t, out, "$330.00")
	assert.Contains(t, out, "12 Aug 2026")
}

func TestHTMLInvoiceRenderer_NilDocument(t *testing.T) {
	renderer, err := NewInvoiceRenderer()
	require.NoError(t, err)

	_, err = renderer.Render(nil)
	assert.Error(t, err)
}
