// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"wardrobe/internal/models"
	"wardrobe/internal/query"
	"wardrobe/internal/render"
	"wardrobe/internal/store"
)

// Closet groups the clothing item handlers.
type Closet struct {
	renderer *render.Renderer
	store    *store.ClosetStore
}

// NewCloset creates a new Closet handler group with the given dependencies.
func NewCloset(renderer *render.Renderer, st *store.ClosetStore) *Closet {
	return &Closet{renderer: renderer, store: st}
}

// itemForm holds the item form fields, both for rendering and for
// re-displaying a submission that failed validation.
type itemForm struct {
	ID        string
	Name      string
	Category  string
	Color     string
	ImageURL  string
	Favorite  bool
	Seasons   map[models.Season]bool
	Occasions map[models.Occasion]bool

	season   []string
	occasion []string
}

func parseItemForm(r *http.Request) itemForm {
	f := itemForm{
		Name:     trimmed(r, "name"),
		Category: trimmed(r, "category"),
		Color:    trimmed(r, "color"),
		ImageURL: trimmed(r, "image_url"),
		Favorite: checked(r, "favorite"),
		season:   r.Form["season"],
		occasion: r.Form["occasion"],
	}
	f.Seasons = seasonSet(seasons(f.season))
	f.Occasions = occasionSet(occasions(f.occasion))
	return f
}

func itemFormFrom(it models.ClothingItem) itemForm {
	return itemForm{
		ID:        it.ID.String(),
		Name:      it.Name,
		Category:  string(it.Category),
		Color:     it.Color,
		ImageURL:  it.ImageURL,
		Favorite:  it.Favorite,
		Seasons:   seasonSet(it.Season),
		Occasions: occasionSet(it.Occasion),
	}
}

func (f itemForm) validate() string {
	return validateItem(f.Name, f.Category, f.Color, f.ImageURL, f.season, f.occasion)
}

// patch converts a validated form into a full-field update.
func (f itemForm) patch() models.ItemPatch {
	category, _ := models.ParseCategory(f.Category)
	return models.ItemPatch{
		Name:     &f.Name,
		Category: &category,
		Color:    &f.Color,
		Season:   seasons(f.season),
		Occasion: occasions(f.occasion),
		ImageURL: &f.ImageURL,
		Favorite: &f.Favorite,
	}
}

// List renders the closet page. Filter changes made through HTMX only
// re-render the item grid.
func (c *Closet) List(w http.ResponseWriter, r *http.Request) {
	f := parseFilter(r)
	all := c.store.ClothingItems()
	filter := f.items()

	data := &render.PageData{
		Title:   "My Closet",
		Section: "closet",
		Data: enumData(map[string]any{
			"Filter": f,
			"Items":  query.Items(all, filter),
			"Total":  len(all),
			"Active": filter.Active(),
		}),
	}

	if targets(r, "item-grid") {
		c.renderer.Partial(w, r, "closet", "item_grid", data)
		return
	}
	c.renderer.Page(w, r, "closet", data)
}

// New renders the empty item form.
func (c *Closet) New(w http.ResponseWriter, r *http.Request) {
	c.form(w, r, http.StatusOK, itemForm{Category: string(models.CategoryTops)}, true, "")
}

// Create handles the new item form submission.
func (c *Closet) Create(w http.ResponseWriter, r *http.Request) {
	if !readForm(w, r) {
		return
	}
	f := parseItemForm(r)
	if msg := f.validate(); msg != "" {
		c.form(w, r, http.StatusUnprocessableEntity, f, true, msg)
		return
	}

	var it models.ClothingItem
	f.patch().Apply(&it)
	it = c.store.AddClothingItem(it)

	slog.Info("clothing item created", "id", it.ID, "name", it.Name)
	redirect(w, r, "/closet")
}

// Edit renders the form for an existing item.
func (c *Closet) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	it, found := c.store.ClothingItem(id)
	if !found {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	c.form(w, r, http.StatusOK, itemFormFrom(it), false, "")
}

// Update handles the edit item form submission.
func (c *Closet) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if !readForm(w, r) {
		return
	}

	f := parseItemForm(r)
	f.ID = id.String()
	if msg := f.validate(); msg != "" {
		c.form(w, r, http.StatusUnprocessableEntity, f, false, msg)
		return
	}

	if !c.store.UpdateClothingItem(id, f.patch()) {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}

	slog.Info("clothing item updated", "id", id)
	redirect(w, r, "/closet")
}

// Delete removes an item from the closet and from every outfit.
func (c *Closet) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if !c.store.RemoveClothingItem(id) {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}

	slog.Info("clothing item deleted", "id", id)
	removed(w, r, "/closet")
}

// ToggleFavorite flips the item's favorite flag. HTMX requests get the
// updated card back.
func (c *Closet) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if !c.store.ToggleFavoriteItem(id) {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}

	if render.IsHTMX(r) {
		it, _ := c.store.ClothingItem(id)
		c.renderer.Partial(w, r, "closet", "item_card_swap", &render.PageData{
			Data: map[string]any{"Item": it},
		})
		return
	}
	redirect(w, r, "/closet")
}

func (c *Closet) form(w http.ResponseWriter, r *http.Request, status int, f itemForm, isNew bool, errMsg string) {
	title := "Edit Item"
	if isNew {
		title = "Add Item"
	}
	c.renderer.PageStatus(w, r, status, "item_form", &render.PageData{
		Title:   title,
		Section: "closet",
		Data: enumData(map[string]any{
			"Form":  f,
			"IsNew": isNew,
			"Error": errMsg,
		}),
	})
}
