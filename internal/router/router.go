// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// wardrobe server.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wardrobe/internal/handlers"
	"wardrobe/internal/metrics"
	"wardrobe/internal/middleware"
	"wardrobe/web"
)

// Handlers bundles the handler groups the router dispatches to.
type Handlers struct {
	Pages   *handlers.Pages
	Closet  *handlers.Closet
	Outfits *handlers.Outfits
	Planner *handlers.Planner
}

// New creates and returns the configured Chi router with all middleware
// and routes wired up. secureCookies marks the CSRF cookie Secure.
func New(h Handlers, m *metrics.Metrics, secureCookies bool) (chi.Router, error) {
	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(m.Middleware)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.NewCSRF(secureCookies))

	// Operational endpoints.
	r.Get("/health", healthHandler)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Get("/", h.Pages.Home)
	r.Get("/discover", h.Pages.Discover)

	// Clothing items
	r.Route("/closet", func(r chi.Router) {
		r.Get("/", h.Closet.List)
		r.Get("/new", h.Closet.New)
		r.Post("/", h.Closet.Create)
		r.Get("/{id}", h.Closet.Edit)
		r.Put("/{id}", h.Closet.Update)
		r.Delete("/{id}", h.Closet.Delete)
		r.Post("/{id}/favorite", h.Closet.ToggleFavorite)
	})

	// Outfits
	r.Route("/outfits", func(r chi.Router) {
		r.Get("/", h.Outfits.List)
		r.Get("/new", h.Outfits.New)
		r.Post("/", h.Outfits.Create)
		r.Get("/{id}", h.Outfits.Edit)
		r.Put("/{id}", h.Outfits.Update)
		r.Delete("/{id}", h.Outfits.Delete)
		r.Post("/{id}/favorite", h.Outfits.ToggleFavorite)
	})

	// Calendar
	r.Get("/calendar.ics", h.Planner.ICS)
	r.Route("/calendar", func(r chi.Router) {
		r.Get("/", h.Planner.Calendar)
		r.Post("/recurring", h.Planner.Recurring)
		r.Get("/{date}", h.Planner.Day)
		r.Post("/{date}", h.Planner.Plan)
		r.Delete("/{date}", h.Planner.Clear)
	})

	return r, nil
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
