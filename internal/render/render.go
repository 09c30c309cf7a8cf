// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the wardrobe pages.
// It supports full-page and HTMX partial rendering, automatically detecting
// the request type via the HX-Request header.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"wardrobe/internal/middleware"
	"wardrobe/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Shared files parsed into every page template set.
const (
	layoutFile   = "base.html"
	partialsFile = "partials.html"
)

// PageData holds all data passed to page templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active navigation section (e.g., "closet", "calendar")
	CSRFToken string         // CSRF token for forms and HTMX headers
	Data      map[string]any // Page-specific data
	Flashes   []Flash        // One-time notification messages
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// Renderer handles template parsing and execution for wardrobe pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// New creates a Renderer by parsing all page templates from the embedded
// filesystem. Each page is paired with the base layout and the shared
// partials. When devMode is true, pages load HTMX unminified.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "active"
				}
				return ""
			},
			"isDev": func() bool {
				return devMode
			},
			// label turns an enum value such as "outerwear" into "Outerwear".
			"label": func(v any) string {
				s := fmt.Sprint(v)
				if s == "" {
					return s
				}
				return strings.ToUpper(s[:1]) + s[1:]
			},
			// swatch returns an inline background style for a hex color, or
			// nothing for values that are not hex colors.
			"swatch": func(color string) template.CSS {
				if !hexColor.MatchString(color) {
					return ""
				}
				return template.CSS("background-color: " + color)
			},
			"dateKey": func(t time.Time) string {
				return t.Format(models.DateLayout)
			},
			"longDate": func(t time.Time) string {
				return t.Format("Monday, January 2, 2006")
			},
			"shortDate": func(t time.Time) string {
				return t.Format("Monday, January 2")
			},
			// firstItems and moreItems render "a, b, +N" thumbnail rows.
			"firstItems": func(n int, items []models.ClothingItem) []models.ClothingItem {
				if len(items) <= n {
					return items
				}
				return items[:n]
			},
			"moreItems": func(n int, items []models.ClothingItem) int {
				if len(items) <= n {
					return 0
				}
				return len(items) - n
			},
			// thumbArgs packs arguments for the "thumbs" partial.
			"thumbArgs": func(n int, items []models.ClothingItem) map[string]any {
				return map[string]any{"N": n, "Items": items}
			},
		},
	}

	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == layoutFile || name == partialsFile {
			continue
		}

		tmpl, err := template.New(layoutFile).Funcs(r.funcMap).ParseFS(
			templateFS,
			"templates/"+layoutFile,
			"templates/"+partialsFile,
			"templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		r.templates[strings.TrimSuffix(name, ".html")] = tmpl
	}

	return r, nil
}

// Page renders a full page or an HTMX partial, depending on the request
// headers. For HTMX requests, only the "content" block is sent. For full
// page loads, the entire base layout is rendered.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	rn.PageStatus(w, r, http.StatusOK, name, data)
}

// PageStatus is Page with an explicit status code, e.g. 422 for a form
// that failed validation.
func (rn *Renderer) PageStatus(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) {
	block := layoutFile
	if IsHTMX(r) {
		block = "content"
	}
	rn.render(w, r, status, name, block, data)
}

// Partial renders a single named block of a page template, regardless of
// the request type. Used for HTMX swaps smaller than the content block.
func (rn *Renderer) Partial(w http.ResponseWriter, r *http.Request, name, block string, data *PageData) {
	rn.render(w, r, http.StatusOK, name, block, data)
}

func (rn *Renderer) render(w http.ResponseWriter, r *http.Request, status int, name, block string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		slog.Error("template not found", "template", name)
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	// Inject CSRF token from context (set by CSRF middleware).
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())

	// Render into a buffer so a failing template never sends half a page.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, block, data); err != nil {
		slog.Error("template execution failed", "template", name, "block", block, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// IsHTMX returns true if the request was made by HTMX (has HX-Request header).
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
