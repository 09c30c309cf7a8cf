// Package web provides embedded static assets for the wardrobe pages.
// HTMX loads from its CDN; the stylesheet is embedded here and served at
// /static/.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS
