// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package query derives filtered views from the closet collections.
// Every function is pure and recomputed on each call; results keep the
// input order unless stated otherwise.
package query

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"wardrobe/internal/models"
)

// All is the sentinel filter value that matches everything.
const All = "all"

// ItemFilter selects clothing items. Zero values and All bypass a filter;
// set filters combine with logical AND.
type ItemFilter struct {
	Search        string
	Category      models.Category
	Season        models.Season
	Occasion      models.Occasion
	FavoritesOnly bool

	// Exclude drops items by ID, e.g. the ones already picked for an outfit.
	Exclude []uuid.UUID
}

// Active reports whether any filter other than Exclude is set.
func (f ItemFilter) Active() bool {
	return f.Search != "" ||
		set(string(f.Category)) || set(string(f.Season)) || set(string(f.Occasion)) ||
		f.FavoritesOnly
}

// Match reports whether a single item passes the filter.
func (f ItemFilter) Match(it *models.ClothingItem) bool {
	if !containsFold(it.Name, f.Search) {
		return false
	}
	if set(string(f.Category)) && it.Category != f.Category {
		return false
	}
	if set(string(f.Season)) && !it.HasSeason(f.Season) {
		return false
	}
	if set(string(f.Occasion)) && !it.HasOccasion(f.Occasion) {
		return false
	}
	if f.FavoritesOnly && !it.Favorite {
		return false
	}
	return !slices.Contains(f.Exclude, it.ID)
}

// Items returns the items that match f.
func Items(items []models.ClothingItem, f ItemFilter) []models.ClothingItem {
	out := make([]models.ClothingItem, 0, len(items))
	for i := range items {
		if f.Match(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// OutfitFilter selects outfits with the same rules as ItemFilter.
type OutfitFilter struct {
	Search        string
	Season        models.Season
	Occasion      models.Occasion
	FavoritesOnly bool
}

// Active reports whether any filter is set.
func (f OutfitFilter) Active() bool {
	return f.Search != "" ||
		set(string(f.Season)) || set(string(f.Occasion)) || f.FavoritesOnly
}

// Match reports whether a single outfit passes the filter.
func (f OutfitFilter) Match(o *models.Outfit) bool {
	if !containsFold(o.Name, f.Search) {
		return false
	}
	if set(string(f.Season)) && !o.HasSeason(f.Season) {
		return false
	}
	if set(string(f.Occasion)) && !o.HasOccasion(f.Occasion) {
		return false
	}
	return !f.FavoritesOnly || o.Favorite
}

// Outfits returns the outfits that match f.
func Outfits(outfits []models.Outfit, f OutfitFilter) []models.Outfit {
	out := make([]models.Outfit, 0, len(outfits))
	for i := range outfits {
		if f.Match(&outfits[i]) {
			out = append(out, outfits[i])
		}
	}
	return out
}

// FavoriteOutfits returns the favorited outfits.
func FavoriteOutfits(outfits []models.Outfit) []models.Outfit {
	return Outfits(outfits, OutfitFilter{FavoritesOnly: true})
}

// EventOn returns the event scheduled on date's day, if any.
func EventOn(events []models.CalendarEvent, date time.Time) (models.CalendarEvent, bool) {
	for _, e := range events {
		if models.SameDay(e.Date, date) {
			return e, true
		}
	}
	return models.CalendarEvent{}, false
}

// Upcoming returns the events on or after today's day, earliest first.
func Upcoming(events []models.CalendarEvent, today time.Time) []models.CalendarEvent {
	start := models.Day(today)
	out := make([]models.CalendarEvent, 0, len(events))
	for _, e := range events {
		if !models.Day(e.Date.In(start.Location())).Before(start) {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b models.CalendarEvent) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// NextPlanned returns the first upcoming event.
func NextPlanned(events []models.CalendarEvent, today time.Time) (models.CalendarEvent, bool) {
	up := Upcoming(events, today)
	if len(up) == 0 {
		return models.CalendarEvent{}, false
	}
	return up[0], true
}

// set reports whether a filter value is neither empty nor All.
func set(v string) bool {
	return v != "" && v != All
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
