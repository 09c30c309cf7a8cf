// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the wardrobe pages.
// Handlers are grouped by concern (pages, closet, outfits, calendar) and
// receive their dependencies through the handler struct.
package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"wardrobe/internal/models"
	"wardrobe/internal/query"
	"wardrobe/internal/render"
)

// redirect sends the browser to url after a successful mutation. HTMX
// requests get an HX-Redirect header so the client performs a full
// navigation; plain form posts get a 303.
func redirect(w http.ResponseWriter, r *http.Request, url string) {
	if render.IsHTMX(r) {
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// removed answers a successful delete. HTMX swaps the card out with the
// empty body; everything else is redirected to fallback.
func removed(w http.ResponseWriter, r *http.Request, fallback string) {
	if render.IsHTMX(r) && r.Header.Get("HX-Target") != "" {
		w.WriteHeader(http.StatusOK)
		return
	}
	redirect(w, r, fallback)
}

// parseID reads the {id} URL parameter. It writes a 400 and returns false
// if the value is not a UUID.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// readForm parses the request form. It writes a 400 and returns false if
// the body cannot be decoded.
func readForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return false
	}
	return true
}

// targets reports whether an HTMX request asked to swap the element with
// the given id.
func targets(r *http.Request, id string) bool {
	return render.IsHTMX(r) && r.Header.Get("HX-Target") == id
}

// filterForm mirrors the list filter controls. Unknown enum values fall
// back to query.All.
type filterForm struct {
	Search    string
	Category  string
	Season    string
	Occasion  string
	Favorites bool
}

func parseFilter(r *http.Request) filterForm {
	q := r.URL.Query()
	f := filterForm{
		Search:    q.Get("q"),
		Category:  query.All,
		Season:    query.All,
		Occasion:  query.All,
		Favorites: q.Get("favorites") != "",
	}
	if c, ok := models.ParseCategory(q.Get("category")); ok {
		f.Category = string(c)
	}
	if s, ok := models.ParseSeason(q.Get("season")); ok {
		f.Season = string(s)
	}
	if o, ok := models.ParseOccasion(q.Get("occasion")); ok {
		f.Occasion = string(o)
	}
	return f
}

func (f filterForm) items() query.ItemFilter {
	return query.ItemFilter{
		Search:        f.Search,
		Category:      models.Category(f.Category),
		Season:        models.Season(f.Season),
		Occasion:      models.Occasion(f.Occasion),
		FavoritesOnly: f.Favorites,
	}
}

func (f filterForm) outfits() query.OutfitFilter {
	return query.OutfitFilter{
		Search:        f.Search,
		Season:        models.Season(f.Season),
		Occasion:      models.Occasion(f.Occasion),
		FavoritesOnly: f.Favorites,
	}
}

// enumData adds the option lists used by filter and form templates.
func enumData(data map[string]any) map[string]any {
	data["Categories"] = models.Categories
	data["Seasons"] = models.Seasons
	data["Occasions"] = models.Occasions
	return data
}

// --- Form value helpers ---

func seasons(values []string) []models.Season {
	out := make([]models.Season, 0, len(values))
	for _, v := range values {
		if s, ok := models.ParseSeason(v); ok {
			out = append(out, s)
		}
	}
	return out
}

func occasions(values []string) []models.Occasion {
	out := make([]models.Occasion, 0, len(values))
	for _, v := range values {
		if o, ok := models.ParseOccasion(v); ok {
			out = append(out, o)
		}
	}
	return out
}

func seasonSet(values []models.Season) map[models.Season]bool {
	m := make(map[models.Season]bool, len(values))
	for _, s := range values {
		m[s] = true
	}
	return m
}

func occasionSet(values []models.Occasion) map[models.Occasion]bool {
	m := make(map[models.Occasion]bool, len(values))
	for _, o := range values {
		m[o] = true
	}
	return m
}

func checked(r *http.Request, name string) bool {
	return r.FormValue(name) != ""
}

func trimmed(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}
