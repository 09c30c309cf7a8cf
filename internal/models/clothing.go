// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ClothingItem is a single article of clothing in the closet.
// ImageURL points at an externally hosted image and is never fetched.
type ClothingItem struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Category Category   `json:"category"`
	Color    string     `json:"color"`
	Season   []Season   `json:"season"`
	Occasion []Occasion `json:"occasion"`
	ImageURL string     `json:"image_url"`
	Favorite bool       `json:"favorite"`

	// LastWorn is kept for schema compatibility; nothing writes it yet.
	LastWorn *time.Time `json:"last_worn,omitempty"`
}

// HasSeason reports whether the item is tagged with s.
func (c *ClothingItem) HasSeason(s Season) bool {
	return slices.Contains(c.Season, s)
}

// HasOccasion reports whether the item is tagged with o.
func (c *ClothingItem) HasOccasion(o Occasion) bool {
	return slices.Contains(c.Occasion, o)
}

// Clone returns a deep copy of the item.
func (c ClothingItem) Clone() ClothingItem {
	c.Season = slices.Clone(c.Season)
	c.Occasion = slices.Clone(c.Occasion)
	if c.LastWorn != nil {
		t := *c.LastWorn
		c.LastWorn = &t
	}
	return c
}

// ItemPatch carries a partial update for a ClothingItem. Nil fields are
// left untouched; the ID cannot be patched.
type ItemPatch struct {
	Name     *string
	Category *Category
	Color    *string
	Season   []Season
	Occasion []Occasion
	ImageURL *string
	Favorite *bool
	LastWorn *time.Time
}

// Apply merges the non-nil fields of p into c.
func (p ItemPatch) Apply(c *ClothingItem) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Season != nil {
		c.Season = slices.Clone(p.Season)
	}
	if p.Occasion != nil {
		c.Occasion = slices.Clone(p.Occasion)
	}
	if p.ImageURL != nil {
		c.ImageURL = *p.ImageURL
	}
	if p.Favorite != nil {
		c.Favorite = *p.Favorite
	}
	if p.LastWorn != nil {
		t := *p.LastWorn
		c.LastWorn = &t
	}
}
