// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"time"

	"wardrobe/internal/query"
	"wardrobe/internal/render"
	"wardrobe/internal/store"
)

// suggestionCount is how many closet items the home page suggests.
const suggestionCount = 3

// Pages groups the read-only pages: home and discover.
type Pages struct {
	renderer *render.Renderer
	store    *store.ClosetStore
	now      func() time.Time
}

// NewPages creates a new Pages handler group. A nil now uses the system clock.
func NewPages(renderer *render.Renderer, st *store.ClosetStore, now func() time.Time) *Pages {
	if now == nil {
		now = time.Now
	}
	return &Pages{renderer: renderer, store: st, now: now}
}

// Home renders the dashboard: collection counts, the next planned outfit,
// a few suggested items and the favorite outfits.
func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	items := p.store.ClothingItems()
	if len(items) > suggestionCount {
		items = items[:suggestionCount]
	}

	data := map[string]any{
		"Counts":      p.store.Counts(),
		"Suggestions": items,
		"Favorites":   query.FavoriteOutfits(p.store.Outfits()),
	}
	if next, ok := query.NextPlanned(p.store.CalendarEvents(), p.now()); ok {
		data["Next"] = next
	}

	p.renderer.Page(w, r, "home", &render.PageData{
		Title:   "Home",
		Section: "home",
		Data:    data,
	})
}

// inspiration is one static card on the discover page.
type inspiration struct {
	Title       string
	Description string
	Image       string
}

var (
	trendingStyles = []inspiration{
		{"Minimalist Chic", "Clean lines, neutral colors, and timeless pieces.", "https://images.pexels.com/photos/5384423/pexels-photo-5384423.jpeg"},
		{"Vintage Revival", "70s and 90s inspired looks making a strong comeback.", "https://images.pexels.com/photos/7147449/pexels-photo-7147449.jpeg"},
		{"Bold Color Blocking", "Vibrant colors in unexpected combinations.", "https://images.pexels.com/photos/8386358/pexels-photo-8386358.jpeg"},
	}
	outfitIdeas = []inspiration{
		{"Office Elegance", "Professional yet stylish for the modern workplace.", "https://images.pexels.com/photos/1036623/pexels-photo-1036623.jpeg"},
		{"Weekend Casual", "Comfortable but put-together looks for your days off.", "https://images.pexels.com/photos/6311392/pexels-photo-6311392.jpeg"},
		{"Evening Glamour", "Make a statement at your next special event.", "https://images.pexels.com/photos/9428850/pexels-photo-9428850.jpeg"},
	}
)

// Discover renders the static inspiration page.
func (p *Pages) Discover(w http.ResponseWriter, r *http.Request) {
	p.renderer.Page(w, r, "discover", &render.PageData{
		Title:   "Discover",
		Section: "discover",
		Data: map[string]any{
			"Trending": trendingStyles,
			"Ideas":    outfitIdeas,
		},
	})
}
