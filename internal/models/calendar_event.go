// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// DateLayout is the day-granularity layout used in URLs, forms and seed files.
const DateLayout = "2006-01-02"

// CalendarEvent assigns an outfit to a calendar day. At most one event
// exists per day; the time-of-day part of Date carries no meaning.
type CalendarEvent struct {
	Date   time.Time `json:"date"`
	Outfit Outfit    `json:"outfit"`
}

// Key returns the event's day formatted with DateLayout.
func (e CalendarEvent) Key() string {
	return e.Date.Format(DateLayout)
}

// Clone returns a deep copy of the event.
func (e CalendarEvent) Clone() CalendarEvent {
	e.Outfit = e.Outfit.Clone()
	return e
}

// Day truncates t to midnight in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date,
// ignoring the time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Wardrobe bundles the three collections, e.g. for seeding a store.
type Wardrobe struct {
	Items   []ClothingItem
	Outfits []Outfit
	Events  []CalendarEvent
}
