// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"wardrobe/internal/models"
	"wardrobe/internal/query"
	"wardrobe/internal/render"
	"wardrobe/internal/store"
)

// Outfits groups the outfit handlers.
type Outfits struct {
	renderer *render.Renderer
	store    *store.ClosetStore
}

// NewOutfits creates a new Outfits handler group with the given dependencies.
func NewOutfits(renderer *render.Renderer, st *store.ClosetStore) *Outfits {
	return &Outfits{renderer: renderer, store: st}
}

// outfitForm holds the outfit form fields. Items are the selected
// clothing items, resolved against the closet.
type outfitForm struct {
	ID        string
	Name      string
	Favorite  bool
	Items     []models.ClothingItem
	Seasons   map[models.Season]bool
	Occasions map[models.Occasion]bool

	itemIDs  []string
	season   []string
	occasion []string
}

// pickerFilter is the search state of the item picker.
type pickerFilter struct {
	Search   string
	Category string
}

func (o *Outfits) parseForm(r *http.Request) outfitForm {
	f := outfitForm{
		Name:     trimmed(r, "name"),
		Favorite: checked(r, "favorite"),
		itemIDs:  r.Form["item"],
		season:   r.Form["season"],
		occasion: r.Form["occasion"],
	}
	f.Seasons = seasonSet(seasons(f.season))
	f.Occasions = occasionSet(occasions(f.occasion))
	f.Items, _ = o.resolveItems(f.itemIDs)
	return f
}

func outfitFormFrom(o models.Outfit) outfitForm {
	return outfitForm{
		ID:        o.ID.String(),
		Name:      o.Name,
		Favorite:  o.Favorite,
		Items:     o.Items,
		Seasons:   seasonSet(o.Season),
		Occasions: occasionSet(o.Occasion),
	}
}

// resolveItems looks up the selected item IDs in the closet, skipping
// duplicates. It reports false if any ID is malformed or unknown.
func (o *Outfits) resolveItems(ids []string) ([]models.ClothingItem, bool) {
	items := make([]models.ClothingItem, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	ok := true
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			ok = false
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		it, found := o.store.ClothingItem(id)
		if !found {
			ok = false
			continue
		}
		items = append(items, it)
	}
	return items, ok
}

// validate checks the form and, when it passes, that every selected item
// still exists.
func (o *Outfits) validate(f outfitForm) string {
	if msg := validateOutfit(f.Name, f.itemIDs, f.season, f.occasion); msg != "" {
		return msg
	}
	if _, ok := o.resolveItems(f.itemIDs); !ok {
		return "One of the selected items is no longer in your closet."
	}
	return ""
}

func (f outfitForm) patch() models.OutfitPatch {
	return models.OutfitPatch{
		Name:     &f.Name,
		Items:    f.Items,
		Season:   seasons(f.season),
		Occasion: occasions(f.occasion),
		Favorite: &f.Favorite,
	}
}

// List renders the outfits page.
func (o *Outfits) List(w http.ResponseWriter, r *http.Request) {
	f := parseFilter(r)
	all := o.store.Outfits()
	filter := f.outfits()

	data := &render.PageData{
		Title:   "Outfits",
		Section: "outfits",
		Data: enumData(map[string]any{
			"Filter":  f,
			"Outfits": query.Outfits(all, filter),
			"Total":   len(all),
			"Active":  filter.Active(),
		}),
	}

	if targets(r, "outfit-grid") {
		o.renderer.Partial(w, r, "outfits", "outfit_grid", data)
		return
	}
	o.renderer.Page(w, r, "outfits", data)
}

// New renders the empty outfit form. Picker searches re-render only the
// item picker, keeping the current selection.
func (o *Outfits) New(w http.ResponseWriter, r *http.Request) {
	if targets(r, "item-picker") {
		o.picker(w, r, "/outfits/new")
		return
	}
	o.form(w, r, http.StatusOK, outfitForm{}, true, "")
}

// Create handles the new outfit form submission. Items are stored as
// copies of the closet items at this moment.
func (o *Outfits) Create(w http.ResponseWriter, r *http.Request) {
	if !readForm(w, r) {
		return
	}
	f := o.parseForm(r)
	if msg := o.validate(f); msg != "" {
		o.form(w, r, http.StatusUnprocessableEntity, f, true, msg)
		return
	}

	var outfit models.Outfit
	f.patch().Apply(&outfit)
	outfit = o.store.AddOutfit(outfit)

	slog.Info("outfit created", "id", outfit.ID, "name", outfit.Name, "items", len(outfit.Items))
	redirect(w, r, "/outfits")
}

// Edit renders the form for an existing outfit.
func (o *Outfits) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	outfit, found := o.store.Outfit(id)
	if !found {
		http.Error(w, "Outfit not found", http.StatusNotFound)
		return
	}
	if targets(r, "item-picker") {
		o.picker(w, r, "/outfits/"+id.String())
		return
	}
	o.form(w, r, http.StatusOK, outfitFormFrom(outfit), false, "")
}

// Update handles the edit outfit form submission.
func (o *Outfits) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if !readForm(w, r) {
		return
	}

	f := o.parseForm(r)
	f.ID = id.String()
	if msg := o.validate(f); msg != "" {
		o.form(w, r, http.StatusUnprocessableEntity, f, false, msg)
		return
	}

	if !o.store.UpdateOutfit(id, f.patch()) {
		http.Error(w, "Outfit not found", http.StatusNotFound)
		return
	}

	slog.Info("outfit updated", "id", id)
	redirect(w, r, "/outfits")
}

// Delete removes an outfit and clears the days it was planned on.
func (o *Outfits) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if !o.store.RemoveOutfit(id) {
		http.Error(w, "Outfit not found", http.StatusNotFound)
		return
	}

	slog.Info("outfit deleted", "id", id)
	removed(w, r, "/outfits")
}

// ToggleFavorite flips the outfit's favorite flag.
func (o *Outfits) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if !o.store.ToggleFavoriteOutfit(id) {
		http.Error(w, "Outfit not found", http.StatusNotFound)
		return
	}

	if render.IsHTMX(r) {
		outfit, _ := o.store.Outfit(id)
		o.renderer.Partial(w, r, "outfits", "outfit_card_swap", &render.PageData{
			Data: map[string]any{"Outfit": outfit},
		})
		return
	}
	redirect(w, r, "/outfits")
}

// picker re-renders the item picker from the query string the picker
// controls send along with the current selection.
func (o *Outfits) picker(w http.ResponseWriter, r *http.Request, url string) {
	selected, _ := o.resolveItems(r.URL.Query()["item"])
	o.renderer.Partial(w, r, "outfit_form", "item_picker", o.formData(r, outfitForm{Items: selected}, url, true, ""))
}

func (o *Outfits) form(w http.ResponseWriter, r *http.Request, status int, f outfitForm, isNew bool, errMsg string) {
	url := "/outfits/new"
	if !isNew {
		url = "/outfits/" + f.ID
	}
	o.renderer.PageStatus(w, r, status, "outfit_form", o.formData(r, f, url, isNew, errMsg))
}

func (o *Outfits) formData(r *http.Request, f outfitForm, pickerURL string, isNew bool, errMsg string) *render.PageData {
	pf := pickerFilter{Search: r.URL.Query().Get("q"), Category: query.All}
	if c, ok := models.ParseCategory(r.URL.Query().Get("category")); ok {
		pf.Category = string(c)
	}

	exclude := make([]uuid.UUID, len(f.Items))
	for i, it := range f.Items {
		exclude[i] = it.ID
	}
	available := query.Items(o.store.ClothingItems(), query.ItemFilter{
		Search:   pf.Search,
		Category: models.Category(pf.Category),
		Exclude:  exclude,
	})

	title := "Edit Outfit"
	if isNew {
		title = "Create Outfit"
	}
	return &render.PageData{
		Title:   title,
		Section: "outfits",
		Data: enumData(map[string]any{
			"Form":      f,
			"IsNew":     isNew,
			"Error":     errMsg,
			"Picker":    pf,
			"PickerURL": pickerURL,
			"Available": available,
		}),
	}
}
