// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package calendar builds calendar views over planned outfits: the month
// grid shown on the calendar page, the iCalendar export and recurring
// plans expanded from an RRULE.
package calendar

import (
	"time"

	"wardrobe/internal/models"
	"wardrobe/internal/query"
)

// Cell is one slot of the month grid. Blank cells pad the first week.
type Cell struct {
	Blank bool
	Day   int
	Date  time.Time
	Today bool
	Event *models.CalendarEvent
}

// Key returns the cell date formatted as YYYY-MM-DD, or "" for blanks.
func (c Cell) Key() string {
	if c.Blank {
		return ""
	}
	return c.Date.Format(models.DateLayout)
}

// MonthView is a rendered month: weekday headers, grid cells and
// navigation targets.
type MonthView struct {
	Year     int
	Month    time.Month
	Weekdays []string
	Cells    []Cell
	Prev     time.Time
	Next     time.Time
}

// Title returns e.g. "March 2025".
func (v MonthView) Title() string {
	return v.First().Format("January 2006")
}

// First returns the first day of the month.
func (v MonthView) First() time.Time {
	for _, c := range v.Cells {
		if !c.Blank {
			return c.Date
		}
	}
	return time.Date(v.Year, v.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Param formats a month the way the calendar page expects it in ?month=.
func Param(t time.Time) string {
	return t.Format("2006-01")
}

// ParseParam parses a ?month=YYYY-MM value in loc.
func ParseParam(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01", s, loc)
}

// Month lays out the given month. Days are built in today's location; the
// grid starts on weekStart and has one leading blank cell per weekday
// before the 1st. Each day carries the event planned on it, if any.
func Month(year int, month time.Month, weekStart time.Weekday, today time.Time, events []models.CalendarEvent) MonthView {
	loc := today.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := first.AddDate(0, 1, -1).Day()

	v := MonthView{
		Year:     first.Year(),
		Month:    first.Month(),
		Weekdays: weekdayNames(weekStart),
		Prev:     first.AddDate(0, -1, 0),
		Next:     first.AddDate(0, 1, 0),
	}

	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7
	v.Cells = make([]Cell, 0, lead+days)
	for i := 0; i < lead; i++ {
		v.Cells = append(v.Cells, Cell{Blank: true})
	}

	for d := 1; d <= days; d++ {
		date := time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, loc)
		c := Cell{Day: d, Date: date, Today: models.SameDay(date, today)}
		if e, ok := query.EventOn(events, date); ok {
			c.Event = &e
		}
		v.Cells = append(v.Cells, c)
	}
	return v
}

func weekdayNames(start time.Weekday) []string {
	out := make([]string, 7)
	for i := range out {
		out[i] = time.Weekday((int(start) + i) % 7).String()[:3]
	}
	return out
}
