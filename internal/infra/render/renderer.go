// Package render turns resolved site data into storefront HTML using the
// fixed template set.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"bizvistar/internal/domain/entity"
	domainerrors "bizvistar/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates
var templateFS embed.FS

// Page names the renderer serves for every template brand.
const (
	PageHome    = "home"
	PageShop    = "shop"
	PageProduct = "product"
)

// PageName builds the renderer lookup key for a template brand and page.
func PageName(templateName, page string) string {
	return templateName + "/" + page
}

// PageData is the view model every storefront page renders from.
// Content is the decoded site data blob; pages guard against missing keys
// because the blob's shape is owner-edited.
type PageData struct {
	Site      *entity.Website
	Content   map[string]any
	Products  []*entity.Product
	Product   *entity.Product
	Suggested []*entity.Product
}

// SiteRenderer implements echo.Renderer over the embedded template set.
type SiteRenderer struct {
	templates map[string]*template.Template
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"currency": func(v float64) string {
			return fmt.Sprintf("$%.2f", v)
		},
	}
}

// NewSiteRenderer parses every page of every known template brand.
// Parsing happens once at startup so a broken template fails the boot,
// not a request.
func NewSiteRenderer() (*SiteRenderer, error) {
	templates := make(map[string]*template.Template)
	for _, brand := range entity.KnownTemplates() {
		for _, page := range []string{PageHome, PageShop, PageProduct} {
			path := fmt.Sprintf("templates/%s/%s.html", brand, page)
			tmpl, err := template.New(page + ".html").Funcs(funcMap()).ParseFS(templateFS, path)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse template %s", path)
			}
			templates[PageName(brand, page)] = tmpl
		}
	}

	return &SiteRenderer{templates: templates}, nil
}

// Render implements echo.Renderer. The name is a PageName key.
func (r *SiteRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return domainerrors.ErrTemplateNotFound
	}

	return errors.WithStack(tmpl.Execute(w, data))
}
