// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calendar

import (
	"slices"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"wardrobe/internal/models"
)

const productID = "-//wardrobe//outfit calendar//EN"

// ExportICS renders the planned outfits as an iCalendar feed. Every event
// becomes an all-day VEVENT whose UID depends only on the date, so calendar
// clients update a day in place when its outfit changes.
func ExportICS(name string, events []models.CalendarEvent, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	if name != "" {
		cal.SetXWRCalName(name)
	}

	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b models.CalendarEvent) int {
		return a.Date.Compare(b.Date)
	})

	for _, e := range sorted {
		day := models.Day(e.Date)
		ev := cal.AddEvent(eventUID(day))
		ev.SetDtStampTime(now.UTC())
		ev.SetSummary(e.Outfit.Name)
		if desc := describe(e.Outfit); desc != "" {
			ev.SetDescription(desc)
		}
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
	}

	return cal.Serialize()
}

func eventUID(day time.Time) string {
	return "outfit-" + day.Format("20060102") + "@wardrobe"
}

func describe(o models.Outfit) string {
	names := make([]string, len(o.Items))
	for i, it := range o.Items {
		names[i] = it.Name
	}
	return strings.Join(names, ", ")
}
