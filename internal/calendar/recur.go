// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calendar

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"wardrobe/internal/models"
)

const defaultOccurrenceLimit = 60

var (
	// ErrInvalidRule is returned when a recurrence rule cannot be parsed.
	ErrInvalidRule = errors.New("invalid recurrence rule")

	// ErrInvalidRange is returned when the end date precedes the start date.
	ErrInvalidRange = errors.New("end date is before start date")

	// ErrSubDailyRule is returned for rules that repeat more often than daily.
	ErrSubDailyRule = errors.New("recurrence rule repeats more than once a day")
)

// Scheduler is the part of the closet store recurring plans need.
type Scheduler interface {
	AddCalendarEvent(event models.CalendarEvent) bool
}

// Occurrences expands an RFC 5545 RRULE (e.g. "FREQ=WEEKLY;BYDAY=MO,WE")
// into the days between start and until, both inclusive. Results are
// midnight in start's location. At most limit days are returned; a
// non-positive limit falls back to a default cap. Rules repeating more
// often than daily are rejected with ErrSubDailyRule.
func Occurrences(rule string, start, until time.Time, limit int) ([]time.Time, error) {
	rule = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rule), "RRULE:"))
	if rule == "" {
		return nil, fmt.Errorf("%w: empty rule", ErrInvalidRule)
	}

	first := models.Day(start)
	last := models.Day(until.In(first.Location()))
	if last.Before(first) {
		return nil, ErrInvalidRange
	}
	if limit <= 0 {
		limit = defaultOccurrenceLimit
	}

	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	if opt.Freq > rrule.DAILY {
		return nil, fmt.Errorf("%w: %s", ErrSubDailyRule, opt.Freq)
	}
	opt.Dtstart = first
	bound := last.AddDate(0, 0, 1).Add(-time.Nanosecond)
	if opt.Until.IsZero() || opt.Until.After(bound) {
		opt.Until = bound
	}
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	var out []time.Time
	next := r.Iterator()
	for t, ok := next(); ok; t, ok = next() {
		day := models.Day(t.In(first.Location()))
		if day.After(last) {
			break
		}
		if len(out) > 0 && models.SameDay(out[len(out)-1], day) {
			continue
		}
		if len(out) == limit {
			slog.Warn("recurrence truncated", "rule", rule, "limit", limit)
			break
		}
		out = append(out, day)
	}
	return out, nil
}

// PlanRecurring schedules outfit on every date, replacing whatever was
// planned on those days. It returns how many existing plans were replaced.
func PlanRecurring(s Scheduler, outfit models.Outfit, dates []time.Time) int {
	replaced := 0
	for _, d := range dates {
		if s.AddCalendarEvent(models.CalendarEvent{Date: models.Day(d), Outfit: outfit.Clone()}) {
			replaced++
		}
	}
	slog.Info("recurring outfit planned",
		"outfit_id", outfit.ID,
		"days", len(dates),
		"replaced", replaced,
	)
	return replaced
}
