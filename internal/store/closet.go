// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the in-memory closet: clothing items, outfits and
// calendar events. ClosetStore is the only component allowed to mutate
// those collections.
package store

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"wardrobe/internal/models"
)

// ClosetStore owns the three collections for one session. It is safe for
// concurrent use; every operation completes before it returns.
//
// Lookups by unknown ID are silent no-ops reported through a false return
// value, never an error. The store performs no input validation.
type ClosetStore struct {
	mu      sync.RWMutex
	items   []models.ClothingItem
	outfits []models.Outfit
	events  []models.CalendarEvent
	newID   func() uuid.UUID
}

// Counts reports the size of each collection.
type Counts struct {
	Items   int
	Outfits int
	Events  int
}

// NewClosetStore creates a store seeded with the given wardrobe. A nil
// wardrobe yields an empty store. The seed is copied.
func NewClosetStore(seed *models.Wardrobe) *ClosetStore {
	s := &ClosetStore{newID: uuid.New}
	if seed == nil {
		return s
	}
	for _, it := range seed.Items {
		s.items = append(s.items, it.Clone())
	}
	for _, o := range seed.Outfits {
		s.outfits = append(s.outfits, o.Clone())
	}
	for _, e := range seed.Events {
		s.events = append(s.events, e.Clone())
	}
	return s
}

// --- Reads ---

// ClothingItems returns a copy of all items in insertion order.
func (s *ClosetStore) ClothingItems() []models.ClothingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ClothingItem, len(s.items))
	for i, it := range s.items {
		out[i] = it.Clone()
	}
	return out
}

// Outfits returns a copy of all outfits in insertion order.
func (s *ClosetStore) Outfits() []models.Outfit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Outfit, len(s.outfits))
	for i, o := range s.outfits {
		out[i] = o.Clone()
	}
	return out
}

// CalendarEvents returns a copy of all calendar events in insertion order.
func (s *ClosetStore) CalendarEvents() []models.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CalendarEvent, len(s.events))
	for i, e := range s.events {
		out[i] = e.Clone()
	}
	return out
}

// ClothingItem returns the item with the given ID, if any.
func (s *ClosetStore) ClothingItem(id uuid.UUID) (models.ClothingItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.itemIndex(id); i >= 0 {
		return s.items[i].Clone(), true
	}
	return models.ClothingItem{}, false
}

// Outfit returns the outfit with the given ID, if any.
func (s *ClosetStore) Outfit(id uuid.UUID) (models.Outfit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.outfitIndex(id); i >= 0 {
		return s.outfits[i].Clone(), true
	}
	return models.Outfit{}, false
}

// Counts returns the current collection sizes.
func (s *ClosetStore) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Counts{Items: len(s.items), Outfits: len(s.outfits), Events: len(s.events)}
}

// --- Clothing items ---

// AddClothingItem stores a copy of item under a freshly generated ID and
// returns the stored record. Any ID on the input is ignored.
func (s *ClosetStore) AddClothingItem(item models.ClothingItem) models.ClothingItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item = item.Clone()
	item.ID = s.uniqueID(func(id uuid.UUID) bool { return s.itemIndex(id) >= 0 })
	s.items = append(s.items, item)

	slog.Debug("clothing item added", "id", item.ID, "name", item.Name)
	return item.Clone()
}

// UpdateClothingItem merges patch into the item with the given ID.
// It returns false if no such item exists. Copies of the item already
// held by outfits are not touched.
func (s *ClosetStore) UpdateClothingItem(id uuid.UUID, patch models.ItemPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return false
	}
	patch.Apply(&s.items[i])
	slog.Debug("clothing item updated", "id", id)
	return true
}

// RemoveClothingItem deletes the item and removes it from every outfit.
// Outfits themselves are kept, even if they end up empty.
func (s *ClosetStore) RemoveClothingItem(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)

	for j := range s.outfits {
		s.outfits[j].Items = slices.DeleteFunc(s.outfits[j].Items, func(it models.ClothingItem) bool {
			return it.ID == id
		})
	}

	slog.Debug("clothing item removed", "id", id)
	return true
}

// ToggleFavoriteItem flips the favorite flag of the item.
func (s *ClosetStore) ToggleFavoriteItem(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return false
	}
	s.items[i].Favorite = !s.items[i].Favorite
	return true
}

// --- Outfits ---

// AddOutfit stores a copy of outfit under a freshly generated ID and
// returns the stored record.
func (s *ClosetStore) AddOutfit(outfit models.Outfit) models.Outfit {
	s.mu.Lock()
	defer s.mu.Unlock()

	outfit = outfit.Clone()
	outfit.ID = s.uniqueID(func(id uuid.UUID) bool { return s.outfitIndex(id) >= 0 })
	s.outfits = append(s.outfits, outfit)

	slog.Debug("outfit added", "id", outfit.ID, "name", outfit.Name, "items", len(outfit.Items))
	return outfit.Clone()
}

// UpdateOutfit merges patch into the outfit with the given ID.
// Calendar events keep the copy of the outfit they were scheduled with.
func (s *ClosetStore) UpdateOutfit(id uuid.UUID, patch models.OutfitPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.outfitIndex(id)
	if i < 0 {
		return false
	}
	patch.Apply(&s.outfits[i])
	slog.Debug("outfit updated", "id", id)
	return true
}

// RemoveOutfit deletes the outfit and every calendar event that uses it.
func (s *ClosetStore) RemoveOutfit(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.outfitIndex(id)
	if i < 0 {
		return false
	}
	s.outfits = slices.Delete(s.outfits, i, i+1)

	before := len(s.events)
	s.events = slices.DeleteFunc(s.events, func(e models.CalendarEvent) bool {
		return e.Outfit.ID == id
	})

	slog.Debug("outfit removed", "id", id, "events_removed", before-len(s.events))
	return true
}

// ToggleFavoriteOutfit flips the favorite flag of the outfit.
func (s *ClosetStore) ToggleFavoriteOutfit(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.outfitIndex(id)
	if i < 0 {
		return false
	}
	s.outfits[i].Favorite = !s.outfits[i].Favorite
	return true
}

// --- Calendar ---

// AddCalendarEvent schedules an outfit on a day. Any event already on that
// day is removed first, so there is never more than one event per day.
// It returns true if an existing event was replaced.
func (s *ClosetStore) AddCalendarEvent(event models.CalendarEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := s.removeEventsOn(event.Date) > 0
	s.events = append(s.events, event.Clone())

	slog.Debug("calendar event added",
		"date", event.Date.Format(models.DateLayout),
		"outfit_id", event.Outfit.ID,
		"replaced", replaced,
	)
	return replaced
}

// RemoveCalendarEvent removes the event on the given day, ignoring the
// time of day. It returns false if nothing was scheduled.
func (s *ClosetStore) RemoveCalendarEvent(date time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeEventsOn(date) > 0
}

// removeEventsOn deletes all events on date's day. Callers hold s.mu.
func (s *ClosetStore) removeEventsOn(date time.Time) int {
	before := len(s.events)
	s.events = slices.DeleteFunc(s.events, func(e models.CalendarEvent) bool {
		return models.SameDay(e.Date, date)
	})
	return before - len(s.events)
}

// --- Helpers ---

func (s *ClosetStore) itemIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.items, func(it models.ClothingItem) bool { return it.ID == id })
}

func (s *ClosetStore) outfitIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.outfits, func(o models.Outfit) bool { return o.ID == id })
}

// uniqueID draws IDs until taken reports false.
func (s *ClosetStore) uniqueID(taken func(uuid.UUID) bool) uuid.UUID {
	for {
		id := s.newID()
		if !taken(id) {
			return id
		}
	}
}
