// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seed loads the starter wardrobe the closet store is created
// with. The default data set is embedded in the binary; an alternative
// YAML file can be supplied through configuration.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"wardrobe/internal/models"
)

//go:embed wardrobe.yaml
var defaultWardrobe []byte

var (
	// ErrUnknownKey is returned when an outfit or event refers to a key
	// that no item or outfit declares.
	ErrUnknownKey = errors.New("unknown key")

	// ErrDuplicate is returned for repeated keys or two events on one day.
	ErrDuplicate = errors.New("duplicate entry")

	// ErrInvalid is returned for records that break a data model rule.
	ErrInvalid = errors.New("invalid record")
)

// File is the YAML document shape. Records refer to each other by key;
// keys only exist in the file and are replaced by generated IDs on load.
type File struct {
	Items   []Item   `yaml:"items"`
	Outfits []Outfit `yaml:"outfits"`
	Events  []Event  `yaml:"events"`
}

// Item is a clothing item entry.
type Item struct {
	Key      string   `yaml:"key"`
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Color    string   `yaml:"color"`
	Season   []string `yaml:"season"`
	Occasion []string `yaml:"occasion"`
	ImageURL string   `yaml:"image_url"`
	Favorite bool     `yaml:"favorite"`
}

// Outfit is an outfit entry; Items lists item keys in order.
type Outfit struct {
	Key      string   `yaml:"key"`
	Name     string   `yaml:"name"`
	Items    []string `yaml:"items"`
	Occasion []string `yaml:"occasion"`
	Season   []string `yaml:"season"`
	Favorite bool     `yaml:"favorite"`
}

// Event schedules an outfit key on a YYYY-MM-DD date.
type Event struct {
	Date   string `yaml:"date"`
	Outfit string `yaml:"outfit"`
}

// Default decodes the embedded starter wardrobe.
func Default(loc *time.Location) (*models.Wardrobe, error) {
	return Parse(defaultWardrobe, loc)
}

// Load decodes a seed document from r.
func Load(r io.Reader, loc *time.Location) (*models.Wardrobe, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return Parse(data, loc)
}

// LoadFile reads and decodes a seed file from disk.
func LoadFile(path string, loc *time.Location) (*models.Wardrobe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	w, err := Parse(data, loc)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return w, nil
}

// Parse decodes a YAML seed document. Event dates are interpreted as
// midnight in loc (UTC when loc is nil).
func Parse(data []byte, loc *time.Location) (*models.Wardrobe, error) {
	if loc == nil {
		loc = time.UTC
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	w, err := f.resolve(loc)
	if err != nil {
		return nil, err
	}

	slog.Info("seed wardrobe loaded",
		"items", len(w.Items),
		"outfits", len(w.Outfits),
		"events", len(w.Events),
	)
	return w, nil
}

// resolve converts the keyed file records into models with fresh IDs.
func (f *File) resolve(loc *time.Location) (*models.Wardrobe, error) {
	w := &models.Wardrobe{}
	items := make(map[string]models.ClothingItem, len(f.Items))
	outfits := make(map[string]models.Outfit, len(f.Outfits))

	for i, in := range f.Items {
		if _, dup := items[in.Key]; dup {
			return nil, fmt.Errorf("item %q: %w", in.Key, ErrDuplicate)
		}
		it, err := in.toModel()
		if err != nil {
			return nil, fmt.Errorf("item %d (%q): %w", i, in.Key, err)
		}
		items[in.Key] = it
		w.Items = append(w.Items, it)
	}

	for i, in := range f.Outfits {
		if _, dup := outfits[in.Key]; dup {
			return nil, fmt.Errorf("outfit %q: %w", in.Key, ErrDuplicate)
		}
		o, err := in.toModel(items)
		if err != nil {
			return nil, fmt.Errorf("outfit %d (%q): %w", i, in.Key, err)
		}
		outfits[in.Key] = o
		w.Outfits = append(w.Outfits, o)
	}

	seen := make(map[string]bool, len(f.Events))
	for i, in := range f.Events {
		date, err := time.ParseInLocation(models.DateLayout, in.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w: date %q", i, ErrInvalid, in.Date)
		}
		key := date.Format(models.DateLayout)
		if seen[key] {
			return nil, fmt.Errorf("event %d on %s: %w", i, key, ErrDuplicate)
		}
		o, ok := outfits[in.Outfit]
		if !ok {
			return nil, fmt.Errorf("event %d: outfit %q: %w", i, in.Outfit, ErrUnknownKey)
		}
		seen[key] = true
		w.Events = append(w.Events, models.CalendarEvent{Date: date, Outfit: o.Clone()})
	}

	return w, nil
}

func (in Item) toModel() (models.ClothingItem, error) {
	if in.Key == "" || in.Name == "" {
		return models.ClothingItem{}, fmt.Errorf("%w: key and name are required", ErrInvalid)
	}
	cat, ok := models.ParseCategory(in.Category)
	if !ok {
		return models.ClothingItem{}, fmt.Errorf("%w: category %q", ErrInvalid, in.Category)
	}
	seasons, err := parseSeasons(in.Season)
	if err != nil {
		return models.ClothingItem{}, err
	}
	occasions, err := parseOccasions(in.Occasion)
	if err != nil {
		return models.ClothingItem{}, err
	}
	return models.ClothingItem{
		ID:       uuid.New(),
		Name:     in.Name,
		Category: cat,
		Color:    in.Color,
		Season:   seasons,
		Occasion: occasions,
		ImageURL: in.ImageURL,
		Favorite: in.Favorite,
	}, nil
}

func (in Outfit) toModel(items map[string]models.ClothingItem) (models.Outfit, error) {
	if in.Key == "" || in.Name == "" {
		return models.Outfit{}, fmt.Errorf("%w: key and name are required", ErrInvalid)
	}
	o := models.Outfit{ID: uuid.New(), Name: in.Name, Favorite: in.Favorite}
	for _, k := range in.Items {
		it, ok := items[k]
		if !ok {
			return models.Outfit{}, fmt.Errorf("item %q: %w", k, ErrUnknownKey)
		}
		o.Items = append(o.Items, it.Clone())
	}
	var err error
	if o.Season, err = parseSeasons(in.Season); err != nil {
		return models.Outfit{}, err
	}
	if o.Occasion, err = parseOccasions(in.Occasion); err != nil {
		return models.Outfit{}, err
	}
	return o, nil
}

func parseSeasons(raw []string) ([]models.Season, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: at least one season is required", ErrInvalid)
	}
	out := make([]models.Season, 0, len(raw))
	for _, s := range raw {
		v, ok := models.ParseSeason(s)
		if !ok {
			return nil, fmt.Errorf("%w: season %q", ErrInvalid, s)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseOccasions(raw []string) ([]models.Occasion, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: at least one occasion is required", ErrInvalid)
	}
	out := make([]models.Occasion, 0, len(raw))
	for _, s := range raw {
		v, ok := models.ParseOccasion(s)
		if !ok {
			return nil, fmt.Errorf("%w: occasion %q", ErrInvalid, s)
		}
		out = append(out, v)
	}
	return out, nil
}
