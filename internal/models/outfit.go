// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Outfit is a named, ordered group of items worn together. Items are
// copies taken when they were added to the outfit; editing the original
// item later does not change them.
type Outfit struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Items    []ClothingItem `json:"items"`
	Occasion []Occasion     `json:"occasion"`
	Season   []Season       `json:"season"`
	Favorite bool           `json:"favorite"`

	// Schema-only fields, never populated.
	LastWorn *time.Time `json:"last_worn,omitempty"`
	Planned  *time.Time `json:"planned,omitempty"`
}

// HasItem reports whether the outfit contains the item with the given ID.
func (o *Outfit) HasItem(id uuid.UUID) bool {
	return slices.ContainsFunc(o.Items, func(it ClothingItem) bool { return it.ID == id })
}

// HasSeason reports whether the outfit is tagged with s.
func (o *Outfit) HasSeason(s Season) bool {
	return slices.Contains(o.Season, s)
}

// HasOccasion reports whether the outfit is tagged with oc.
func (o *Outfit) HasOccasion(oc Occasion) bool {
	return slices.Contains(o.Occasion, oc)
}

// ItemIDs returns the IDs of the outfit's items in order.
func (o *Outfit) ItemIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(o.Items))
	for i, it := range o.Items {
		ids[i] = it.ID
	}
	return ids
}

// Clone returns a deep copy of the outfit, including its items.
func (o Outfit) Clone() Outfit {
	items := make([]ClothingItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = it.Clone()
	}
	o.Items = items
	o.Occasion = slices.Clone(o.Occasion)
	o.Season = slices.Clone(o.Season)
	if o.LastWorn != nil {
		t := *o.LastWorn
		o.LastWorn = &t
	}
	if o.Planned != nil {
		t := *o.Planned
		o.Planned = &t
	}
	return o
}

// OutfitPatch carries a partial update for an Outfit. Nil fields are left
// untouched.
type OutfitPatch struct {
	Name     *string
	Items    []ClothingItem
	Occasion []Occasion
	Season   []Season
	Favorite *bool
}

// Apply merges the non-nil fields of p into o.
func (p OutfitPatch) Apply(o *Outfit) {
	if p.Name != nil {
		o.Name = *p.Name
	}
	if p.Items != nil {
		items := make([]ClothingItem, len(p.Items))
		for i, it := range p.Items {
			items[i] = it.Clone()
		}
		o.Items = items
	}
	if p.Occasion != nil {
		o.Occasion = slices.Clone(p.Occasion)
	}
	if p.Season != nil {
		o.Season = slices.Clone(p.Season)
	}
	if p.Favorite != nil {
		o.Favorite = *p.Favorite
	}
}
