package handlers

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"wardrobe/internal/models"
)

// Validation limits for item and outfit fields.
const (
	maxNameLen     = 200
	maxImageURLLen = 2_000
	maxRuleLen     = 500
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateItem checks clothing item form inputs and returns the first error found.
func validateItem(name, category, color, imageURL string, seasons, occasions []string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Item name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Item name is too long (max 200 characters)."
	}
	if _, ok := models.ParseCategory(category); !ok {
		return "Please choose a valid category."
	}
	if color != "" && !hexColor.MatchString(color) {
		return "Color must be a hex value such as #1a2b3c."
	}
	if msg := validateImageURL(imageURL); msg != "" {
		return msg
	}
	if msg := validateTags(seasons, occasions); msg != "" {
		return msg
	}
	return ""
}

// validateOutfit checks outfit form inputs and returns the first error found.
func validateOutfit(name string, itemIDs, seasons, occasions []string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Outfit name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Outfit name is too long (max 200 characters)."
	}
	if len(itemIDs) == 0 {
		return "Select at least one item."
	}
	for _, id := range itemIDs {
		if _, err := uuid.Parse(id); err != nil {
			return "One of the selected items is invalid."
		}
	}
	return validateTags(seasons, occasions)
}

// validateImageURL requires an absolute http(s) URL.
func validateImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Image URL is required."
	}
	if len(raw) > maxImageURLLen {
		return "Image URL is too long (max 2,000 characters)."
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "Image URL must start with http:// or https://."
	}
	return ""
}

// validateTags requires at least one season and one occasion, all known.
func validateTags(seasons, occasions []string) string {
	if len(seasons) == 0 {
		return "Select at least one season."
	}
	for _, s := range seasons {
		if _, ok := models.ParseSeason(s); !ok {
			return "Unknown season: " + s + "."
		}
	}
	if len(occasions) == 0 {
		return "Select at least one occasion."
	}
	for _, o := range occasions {
		if _, ok := models.ParseOccasion(o); !ok {
			return "Unknown occasion: " + o + "."
		}
	}
	return ""
}

// validateRule checks a raw RRULE typed by the user. Parsing is left to
// the calendar package.
func validateRule(rule string) string {
	if utf8.RuneCountInString(rule) > maxRuleLen {
		return "Recurrence rule is too long (max 500 characters)."
	}
	if strings.ContainsAny(rule, "\r\n") {
		return "Recurrence rule must be a single line."
	}
	return ""
}
