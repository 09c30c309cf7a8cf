// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"wardrobe/internal/calendar"
	"wardrobe/internal/models"
	"wardrobe/internal/query"
	"wardrobe/internal/render"
	"wardrobe/internal/store"
)

// CalendarConfig holds the calendar settings visible to the planner.
type CalendarConfig struct {
	Location        *time.Location
	WeekStart       time.Weekday
	Name            string // X-WR-CALNAME of the exported calendar
	RecurrenceLimit int
	Now             func() time.Time
}

// Planner groups the outfit calendar handlers.
type Planner struct {
	renderer *render.Renderer
	store    *store.ClosetStore
	cfg      CalendarConfig
}

// NewPlanner creates a new Planner handler group. Zero config fields fall
// back to the local time zone, the system clock and a 60 day limit.
func NewPlanner(renderer *render.Renderer, st *store.ClosetStore, cfg CalendarConfig) *Planner {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Name == "" {
		cfg.Name = "My Outfits"
	}
	if cfg.RecurrenceLimit <= 0 {
		cfg.RecurrenceLimit = 60
	}
	return &Planner{renderer: renderer, store: st, cfg: cfg}
}

func (p *Planner) today() time.Time {
	return models.Day(p.cfg.Now().In(p.cfg.Location))
}

// option is a value/label pair for select and checkbox lists.
type option struct {
	Code  string
	Label string
}

var (
	frequencies = []option{
		{"DAILY", "Every day"},
		{"WEEKLY", "Every week"},
		{"MONTHLY", "Every month"},
	}
	weekdays = []option{
		{"MO", "Mon"}, {"TU", "Tue"}, {"WE", "Wed"}, {"TH", "Thu"},
		{"FR", "Fri"}, {"SA", "Sat"}, {"SU", "Sun"},
	}
)

// recurForm holds the recurring plan form fields.
type recurForm struct {
	Outfit string
	Freq   string
	Days   map[string]bool
	Start  string
	Until  string
	Rule   string
}

// rule returns the RRULE to expand: the custom rule when given, otherwise
// one built from the frequency and weekday controls.
func (f recurForm) rule() string {
	if f.Rule != "" {
		return f.Rule
	}
	rule := "FREQ=" + f.Freq
	var days []string
	for _, d := range weekdays {
		if f.Days[d.Code] {
			days = append(days, d.Code)
		}
	}
	if len(days) > 0 {
		rule += ";BYDAY=" + strings.Join(days, ",")
	}
	return rule
}

// Calendar renders the month grid for ?month=YYYY-MM, defaulting to the
// current month.
func (p *Planner) Calendar(w http.ResponseWriter, r *http.Request) {
	today := p.today()
	month := today
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := calendar.ParseParam(v, p.cfg.Location)
		if err != nil {
			http.Error(w, "Invalid month", http.StatusBadRequest)
			return
		}
		month = m
	}

	var flashes []render.Flash
	if n, err := strconv.Atoi(r.URL.Query().Get("planned")); err == nil {
		msg := fmt.Sprintf("Planned %d days.", n)
		if rep, _ := strconv.Atoi(r.URL.Query().Get("replaced")); rep > 0 {
			msg += fmt.Sprintf(" %d existing plans were replaced.", rep)
		}
		flashes = append(flashes, render.Flash{Type: "success", Message: msg})
	}

	defaults := recurForm{
		Freq:  "WEEKLY",
		Start: today.Format(models.DateLayout),
		Until: today.AddDate(0, 1, 0).Format(models.DateLayout),
	}
	p.calendarPage(w, r, http.StatusOK, month, defaults, "", flashes)
}

func (p *Planner) calendarPage(w http.ResponseWriter, r *http.Request, status int, month time.Time, f recurForm, recurErr string, flashes []render.Flash) {
	events := p.store.CalendarEvents()
	view := calendar.Month(month.Year(), month.Month(), p.cfg.WeekStart, p.today(), events)

	p.renderer.PageStatus(w, r, status, "calendar", &render.PageData{
		Title:   "Calendar",
		Section: "calendar",
		Flashes: flashes,
		Data: map[string]any{
			"Month":       view,
			"PrevParam":   calendar.Param(view.Prev),
			"NextParam":   calendar.Param(view.Next),
			"Upcoming":    query.Upcoming(events, p.today()),
			"Outfits":     p.store.Outfits(),
			"Frequencies": frequencies,
			"Weekdays":    weekdays,
			"Recur":       f,
			"RecurError":  recurErr,
		},
	})
}

// parseDate reads the {date} URL parameter as a day in the calendar's
// location. It writes a 400 and returns false on malformed input.
func (p *Planner) parseDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	d, err := time.ParseInLocation(models.DateLayout, chi.URLParam(r, "date"), p.cfg.Location)
	if err != nil {
		http.Error(w, "Invalid date", http.StatusBadRequest)
		return time.Time{}, false
	}
	return d, true
}

// Day renders the plan form for a single day.
func (p *Planner) Day(w http.ResponseWriter, r *http.Request) {
	date, ok := p.parseDate(w, r)
	if !ok {
		return
	}
	selected := ""
	if e, found := query.EventOn(p.store.CalendarEvents(), date); found {
		selected = e.Outfit.ID.String()
	}
	p.planForm(w, r, http.StatusOK, date, selected, "")
}

// Plan handles the plan form submission. An empty outfit clears the day.
// The event stores a copy of the outfit as it is now.
func (p *Planner) Plan(w http.ResponseWriter, r *http.Request) {
	date, ok := p.parseDate(w, r)
	if !ok {
		return
	}
	if !readForm(w, r) {
		return
	}
	back := "/calendar?month=" + calendar.Param(date)

	raw := strings.TrimSpace(r.FormValue("outfit"))
	if raw == "" {
		if p.store.RemoveCalendarEvent(date) {
			slog.Info("calendar day cleared", "date", date.Format(models.DateLayout))
		}
		redirect(w, r, back)
		return
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		p.planForm(w, r, http.StatusUnprocessableEntity, date, "", "Please choose an outfit.")
		return
	}
	outfit, found := p.store.Outfit(id)
	if !found {
		p.planForm(w, r, http.StatusUnprocessableEntity, date, "", "The selected outfit no longer exists.")
		return
	}

	replaced := p.store.AddCalendarEvent(models.CalendarEvent{Date: date, Outfit: outfit})
	slog.Info("outfit planned",
		"date", date.Format(models.DateLayout),
		"outfit_id", outfit.ID,
		"replaced", replaced,
	)
	redirect(w, r, back)
}

// Clear removes the outfit planned on a day.
func (p *Planner) Clear(w http.ResponseWriter, r *http.Request) {
	date, ok := p.parseDate(w, r)
	if !ok {
		return
	}
	if !p.store.RemoveCalendarEvent(date) {
		http.Error(w, "Nothing planned on this day", http.StatusNotFound)
		return
	}
	slog.Info("calendar day cleared", "date", date.Format(models.DateLayout))
	redirect(w, r, "/calendar?month="+calendar.Param(date))
}

// Recurring plans one outfit on every day matched by a recurrence rule
// between two dates. Existing plans on those days are replaced.
func (p *Planner) Recurring(w http.ResponseWriter, r *http.Request) {
	if !readForm(w, r) {
		return
	}
	f := recurForm{
		Outfit: trimmed(r, "outfit"),
		Freq:   strings.ToUpper(trimmed(r, "freq")),
		Days:   make(map[string]bool),
		Start:  trimmed(r, "start"),
		Until:  trimmed(r, "until"),
		Rule:   trimmed(r, "rule"),
	}
	for _, d := range r.Form["byday"] {
		f.Days[strings.ToUpper(d)] = true
	}

	fail := func(month time.Time, msg string) {
		p.calendarPage(w, r, http.StatusUnprocessableEntity, month, f, msg, nil)
	}

	start, err := time.ParseInLocation(models.DateLayout, f.Start, p.cfg.Location)
	if err != nil {
		fail(p.today(), "Start date is invalid.")
		return
	}
	until, err := time.ParseInLocation(models.DateLayout, f.Until, p.cfg.Location)
	if err != nil {
		fail(start, "End date is invalid.")
		return
	}
	if msg := validateRule(f.Rule); msg != "" {
		fail(start, msg)
		return
	}
	if f.Rule == "" && !validFrequency(f.Freq) {
		fail(start, "Please choose how often to repeat.")
		return
	}

	id, err := uuid.Parse(f.Outfit)
	if err != nil {
		fail(start, "Please choose an outfit.")
		return
	}
	outfit, found := p.store.Outfit(id)
	if !found {
		fail(start, "The selected outfit no longer exists.")
		return
	}

	dates, err := calendar.Occurrences(f.rule(), start, until, p.cfg.RecurrenceLimit)
	switch {
	case errors.Is(err, calendar.ErrInvalidRange):
		fail(start, "End date must not be before the start date.")
		return
	case errors.Is(err, calendar.ErrSubDailyRule):
		fail(start, "Plans can repeat at most once a day.")
		return
	case err != nil:
		fail(start, "Recurrence rule is invalid.")
		return
	case len(dates) == 0:
		fail(start, "The rule does not match any day in this range.")
		return
	}

	replaced := calendar.PlanRecurring(p.store, outfit, dates)

	q := url.Values{}
	q.Set("month", calendar.Param(start))
	q.Set("planned", strconv.Itoa(len(dates)))
	q.Set("replaced", strconv.Itoa(replaced))
	redirect(w, r, "/calendar?"+q.Encode())
}

func validFrequency(freq string) bool {
	for _, f := range frequencies {
		if f.Code == freq {
			return true
		}
	}
	return false
}

// ICS serves every planned outfit as an iCalendar feed.
func (p *Planner) ICS(w http.ResponseWriter, r *http.Request) {
	body := calendar.ExportICS(p.cfg.Name, p.store.CalendarEvents(), p.cfg.Now())

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="outfits.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func (p *Planner) planForm(w http.ResponseWriter, r *http.Request, status int, date time.Time, selected, errMsg string) {
	p.renderer.PageStatus(w, r, status, "plan_form", &render.PageData{
		Title:   "Plan Outfit",
		Section: "calendar",
		Data: map[string]any{
			"Date":       date,
			"DateKey":    date.Format(models.DateLayout),
			"MonthParam": calendar.Param(date),
			"Outfits":    p.store.Outfits(),
			"SelectedID": selected,
			"Error":      errMsg,
		},
	})
}
