// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"slices"
	"strings"
)

// Category is the closed set of clothing categories.
type Category string

const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryDresses     Category = "dresses"
	CategoryOuterwear   Category = "outerwear"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryTops, CategoryBottoms, CategoryDresses,
	CategoryOuterwear, CategoryShoes, CategoryAccessories,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

// Season is the closed set of seasons an item or outfit can be worn in.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Seasons lists every season in calendar order.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// Valid reports whether s is one of the known seasons.
func (s Season) Valid() bool {
	return slices.Contains(Seasons, s)
}

// Occasion is the closed set of occasions an item or outfit suits.
type Occasion string

const (
	OccasionCasual   Occasion = "casual"
	OccasionFormal   Occasion = "formal"
	OccasionBusiness Occasion = "business"
	OccasionWorkout  Occasion = "workout"
	OccasionSpecial  Occasion = "special"
)

// Occasions lists every occasion in display order.
var Occasions = []Occasion{
	OccasionCasual, OccasionFormal, OccasionBusiness,
	OccasionWorkout, OccasionSpecial,
}

// Valid reports whether o is one of the known occasions.
func (o Occasion) Valid() bool {
	return slices.Contains(Occasions, o)
}

// ParseCategory normalizes a form value into a Category.
// The second return value is false for unknown values.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

// ParseSeason normalizes a form value into a Season.
func ParseSeason(s string) (Season, bool) {
	v := Season(strings.ToLower(strings.TrimSpace(s)))
	return v, v.Valid()
}

// ParseOccasion normalizes a form value into an Occasion.
func ParseOccasion(s string) (Occasion, bool) {
	v := Occasion(strings.ToLower(strings.TrimSpace(s)))
	return v, v.Valid()
}
