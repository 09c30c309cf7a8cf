package seed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"wardrobe/internal/models"
)

func TestDefault(t *testing.T) {
	w, err := Default(time.UTC)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(w.Items) != 8 {
		t.Errorf("items: got %d, want 8", len(w.Items))
	}
	if len(w.Outfits) != 3 {
		t.Errorf("outfits: got %d, want 3", len(w.Outfits))
	}
	if len(w.Events) != 2 {
		t.Errorf("events: got %d, want 2", len(w.Events))
	}

	ids := make(map[string]bool)
	for _, it := range w.Items {
		if ids[it.ID.String()] {
			t.Errorf("duplicate item id %s", it.ID)
		}
		ids[it.ID.String()] = true
		if len(it.Season) == 0 || len(it.Occasion) == 0 {
			t.Errorf("%q: empty season or occasion", it.Name)
		}
	}

	// Outfit items are copies of the seeded items.
	for _, o := range w.Outfits {
		for _, it := range o.Items {
			if !ids[it.ID.String()] {
				t.Errorf("outfit %q references unknown item %s", o.Name, it.ID)
			}
		}
	}

	first := w.Events[0]
	if first.Key() != "2025-01-15" {
		t.Errorf("first event date: got %s, want 2025-01-15", first.Key())
	}
	if first.Outfit.Name != "Business Casual" {
		t.Errorf("first event outfit: got %q", first.Outfit.Name)
	}
	if first.Date.Location() != time.UTC || first.Date.Hour() != 0 {
		t.Errorf("event date should be UTC midnight, got %v", first.Date)
	}
}

func TestParse_Errors(t *testing.T) {
	const item = `
items:
  - key: shirt
    name: Shirt
    category: tops
    color: "#FFFFFF"
    season: [summer]
    occasion: [casual]
`
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name: "unknown item key",
			doc: item + `
outfits:
  - key: o
    name: O
    items: [shirt, hat]
    season: [summer]
    occasion: [casual]
`,
			wantErr: ErrUnknownKey,
		},
		{
			name: "unknown outfit key",
			doc: item + `
events:
  - date: "2025-01-15"
    outfit: nope
`,
			wantErr: ErrUnknownKey,
		},
		{
			name: "duplicate item key",
			doc: item + `
  - key: shirt
    name: Other
    category: tops
    season: [summer]
    occasion: [casual]
`,
			wantErr: ErrDuplicate,
		},
		{
			name: "bad category",
			doc: `
items:
  - key: x
    name: X
    category: hats
    season: [summer]
    occasion: [casual]
`,
			wantErr: ErrInvalid,
		},
		{
			name: "empty season",
			doc: `
items:
  - key: x
    name: X
    category: tops
    occasion: [casual]
`,
			wantErr: ErrInvalid,
		},
		{
			name: "bad date",
			doc: item + `
outfits:
  - key: o
    name: O
    items: [shirt]
    season: [summer]
    occasion: [casual]
events:
  - date: "15/01/2025"
    outfit: o
`,
			wantErr: ErrInvalid,
		},
		{
			name: "two events on one day",
			doc: item + `
outfits:
  - key: o
    name: O
    items: [shirt]
    season: [summer]
    occasion: [casual]
events:
  - date: "2025-01-15"
    outfit: o
  - date: "2025-01-15"
    outfit: o
`,
			wantErr: ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), time.UTC)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("items: [unclosed"), time.UTC); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestLoad_LocationAndReader(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	doc := `
items:
  - key: s
    name: Sneakers
    category: SHOES
    season: [Spring]
    occasion: [workout]
outfits:
  - key: run
    name: Run
    items: [s]
    season: [spring]
    occasion: [workout]
events:
  - date: "2025-04-01"
    outfit: run
`
	w, err := Load(strings.NewReader(doc), loc)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w.Items[0].Category != models.CategoryShoes || w.Items[0].Season[0] != models.SeasonSpring {
		t.Errorf("enum values not normalised: %+v", w.Items[0])
	}
	d := w.Events[0].Date
	if d.Location() != loc || d.Day() != 1 || d.Hour() != 0 {
		t.Errorf("event date: got %v", d)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wardrobe.yaml")
	if err := os.WriteFile(path, defaultWardrobe, 0o600); err != nil {
		t.Fatal(err)
	}
	w, err := LoadFile(path, nil)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(w.Items) != 8 {
		t.Errorf("items: got %d, want 8", len(w.Items))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Error("expected an error for a missing file")
	}
}
