package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"wardrobe/internal/models"
	"wardrobe/internal/query"
)

func day(s string) time.Time {
	d, err := time.ParseInLocation(models.DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalendarPage(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		target string
		status int
		want   []string
	}{
		{"current month", "/calendar", http.StatusOK, []string{"January 2025", "Business Casual", "/calendar/2025-01-15", "month=2024-12", "month=2025-02"}},
		{"explicit month", "/calendar?month=2025-02", http.StatusOK, []string{"February 2025", "/calendar/2025-02-28"}},
		{"recurring form", "/calendar", http.StatusOK, []string{`action="/calendar/recurring"`, `value="2025-01-10"`, `value="2025-02-10"`}},
		{"flash after recurring plan", "/calendar?planned=3&replaced=1", http.StatusOK, []string{"Planned 3 days. 1 existing plans were replaced."}},
		{"malformed month", "/calendar?month=2025-13", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, request{method: http.MethodGet, target: tt.target})
			assertStatus(t, rec, tt.status)
			body := rec.Body.String()
			for _, want := range tt.want {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
		})
	}
}

func TestCalendarDay(t *testing.T) {
	env := newTestEnv(t)
	bc := env.outfitByName(t, "Business Casual")

	rec := env.do(t, request{method: http.MethodGet, target: "/calendar/2025-01-15"})
	assertStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	if !strings.Contains(body, "Plan Outfit for Wednesday, January 15, 2025") {
		t.Error("missing heading")
	}
	if !strings.Contains(body, `value="`+bc.ID.String()+`" checked`) {
		t.Error("planned outfit should be selected")
	}

	rec = env.do(t, request{method: http.MethodGet, target: "/calendar/15-01-2025"})
	assertStatus(t, rec, http.StatusBadRequest)
}

func TestCalendarPlan(t *testing.T) {
	t.Run("plan a free day", func(t *testing.T) {
		env := newTestEnv(t)
		wc := env.outfitByName(t, "Weekend Casual")

		rec := env.do(t, request{method: http.MethodPost, target: "/calendar/2025-01-18", form: url.Values{"outfit": {wc.ID.String()}}})
		assertRedirect(t, rec, "/calendar?month=2025-01")

		e, ok := query.EventOn(env.Store.CalendarEvents(), day("2025-01-18"))
		if !ok || e.Outfit.ID != wc.ID {
			t.Fatalf("event not planned: %+v", e)
		}
		if e.Date.Hour() != 0 {
			t.Errorf("event date should be midnight, got %v", e.Date)
		}
	})

	t.Run("replaces the existing plan", func(t *testing.T) {
		env := newTestEnv(t)
		eo := env.outfitByName(t, "Evening Out")

		rec := env.do(t, request{method: http.MethodPost, target: "/calendar/2025-01-15", form: url.Values{"outfit": {eo.ID.String()}}, htmx: true})
		assertStatus(t, rec, http.StatusOK)

		if got := env.Store.Counts().Events; got != 2 {
			t.Errorf("events: got %d, want 2", got)
		}
		e, _ := query.EventOn(env.Store.CalendarEvents(), day("2025-01-15"))
		if e.Outfit.ID != eo.ID {
			t.Errorf("outfit on the 15th: %q", e.Outfit.Name)
		}
	})

	t.Run("empty choice clears the day", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(t, request{method: http.MethodPost, target: "/calendar/2025-01-15", form: url.Values{"outfit": {""}}})
		assertRedirect(t, rec, "/calendar?month=2025-01")
		if _, ok := query.EventOn(env.Store.CalendarEvents(), day("2025-01-15")); ok {
			t.Error("day not cleared")
		}
	})

	t.Run("invalid choices", func(t *testing.T) {
		env := newTestEnv(t)
		for _, v := range []string{"nope", "6f1c1d0e-8d8a-4c51-9d2e-0a8b4c3f2e10"} {
			rec := env.do(t, request{method: http.MethodPost, target: "/calendar/2025-01-18", form: url.Values{"outfit": {v}}, htmx: true})
			assertStatus(t, rec, http.StatusUnprocessableEntity)
		}
		if got := env.Store.Counts().Events; got != 2 {
			t.Errorf("events: got %d, want 2", got)
		}
	})
}

func TestCalendarClear(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, request{method: http.MethodDelete, target: "/calendar/2025-01-20", htmx: true})
	assertStatus(t, rec, http.StatusOK)
	if got := rec.Header().Get("HX-Redirect"); got != "/calendar?month=2025-01" {
		t.Errorf("HX-Redirect: got %q", got)
	}

	rec = env.do(t, request{method: http.MethodDelete, target: "/calendar/2025-01-20"})
	assertStatus(t, rec, http.StatusNotFound)

	rec = env.do(t, request{method: http.MethodDelete, target: "/calendar/tomorrow"})
	assertStatus(t, rec, http.StatusBadRequest)
}

func TestCalendarRecurring(t *testing.T) {
	t.Run("weekly on two weekdays", func(t *testing.T) {
		env := newTestEnv(t)
		wc := env.outfitByName(t, "Weekend Casual")

		form := url.Values{
			"outfit": {wc.ID.String()},
			"freq":   {"WEEKLY"},
			"byday":  {"MO", "FR"},
			"start":  {"2025-01-13"},
			"until":  {"2025-01-26"},
		}
		rec := env.do(t, request{method: http.MethodPost, target: "/calendar/recurring", form: form})
		assertRedirect(t, rec, "/calendar?month=2025-01&planned=4&replaced=1")

		if got := env.Store.Counts().Events; got != 5 {
			t.Errorf("events: got %d, want 5", got)
		}
		for _, d := range []string{"2025-01-13", "2025-01-17", "2025-01-20", "2025-01-24"} {
			e, ok := query.EventOn(env.Store.CalendarEvents(), day(d))
			if !ok || e.Outfit.ID != wc.ID {
				t.Errorf("%s: not planned with Weekend Casual", d)
			}
		}
	})

	t.Run("custom rule is capped", func(t *testing.T) {
		env := newTestEnv(t)
		eo := env.outfitByName(t, "Evening Out")

		form := url.Values{
			"outfit": {eo.ID.String()},
			"rule":   {"RRULE:FREQ=DAILY"},
			"start":  {"2025-03-01"},
			"until":  {"2025-05-31"},
		}
		rec := env.do(t, request{method: http.MethodPost, target: "/calendar/recurring", form: form, htmx: true})
		assertStatus(t, rec, http.StatusOK)
		if got := rec.Header().Get("HX-Redirect"); got != "/calendar?month=2025-03&planned=10&replaced=0" {
			t.Errorf("HX-Redirect: got %q", got)
		}
	})

	tests := []struct {
		name   string
		modify func(url.Values)
		want   string
	}{
		{"bad start", func(v url.Values) { v.Set("start", "soon") }, "Start date is invalid."},
		{"bad until", func(v url.Values) { v.Set("until", "") }, "End date is invalid."},
		{"until before start", func(v url.Values) { v.Set("until", "2025-01-01") }, "must not be before"},
		{"unknown frequency", func(v url.Values) { v.Set("freq", "HOURLYISH") }, "how often"},
		{"bad custom rule", func(v url.Values) { v.Set("rule", "FREQ=SOMETIMES") }, "Recurrence rule is invalid."},
		{"sub-daily custom rule", func(v url.Values) { v.Set("rule", "FREQ=SECONDLY") }, "at most once a day"},
		{"hourly custom rule", func(v url.Values) { v.Set("rule", "FREQ=HOURLY;INTERVAL=24") }, "at most once a day"},
		{"no outfit", func(v url.Values) { v.Del("outfit") }, "Please choose an outfit."},
		{"unknown outfit", func(v url.Values) { v.Set("outfit", "6f1c1d0e-8d8a-4c51-9d2e-0a8b4c3f2e10") }, "no longer exists"},
		{"no matching day", func(v url.Values) { v.Set("until", "2025-01-13"); v.Set("byday", "SU") }, "does not match any day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			form := url.Values{
				"outfit": {env.outfitByName(t, "Weekend Casual").ID.String()},
				"freq":   {"WEEKLY"},
				"start":  {"2025-01-13"},
				"until":  {"2025-02-13"},
			}
			tt.modify(form)

			rec := env.do(t, request{method: http.MethodPost, target: "/calendar/recurring", form: form, htmx: true})
			assertStatus(t, rec, http.StatusUnprocessableEntity)
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("body missing %q", tt.want)
			}
			if got := env.Store.Counts().Events; got != 2 {
				t.Errorf("store changed: %d events", got)
			}
		})
	}
}

func TestCalendarICS(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, request{method: http.MethodGet, target: "/calendar.ics"})
	assertStatus(t, rec, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "text/calendar; charset=utf-8" {
		t.Errorf("Content-Type: got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "outfits.ics") {
		t.Errorf("Content-Disposition: got %q", cd)
	}

	body := rec.Body.String()
	for _, want := range []string{"BEGIN:VCALENDAR", "X-WR-CALNAME:Test Outfits", "SUMMARY:Business Casual", "SUMMARY:Evening Out"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}
