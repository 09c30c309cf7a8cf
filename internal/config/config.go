// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// SeedFile is an optional YAML wardrobe loaded instead of the built-in one.
	SeedFile string

	// Calendar settings
	Location        *time.Location
	WeekStart       time.Weekday
	CalendarName    string
	RecurrenceLimit int
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Malformed calendar settings are
// reported as errors rather than silently replaced by defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		SeedFile:     os.Getenv("WARDROBE_SEED_FILE"),
		CalendarName: envOrDefault("WARDROBE_CALENDAR_NAME", "My Outfits"),
	}

	tz := envOrDefault("WARDROBE_TIMEZONE", "Local")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("WARDROBE_TIMEZONE %q: %w", tz, err)
	}
	cfg.Location = loc

	ws, err := parseWeekStart(envOrDefault("WARDROBE_WEEK_START", "sunday"))
	if err != nil {
		return nil, err
	}
	cfg.WeekStart = ws

	limit := envOrDefault("WARDROBE_RECURRENCE_LIMIT", "60")
	n, err := strconv.Atoi(limit)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("WARDROBE_RECURRENCE_LIMIT must be a positive integer, got %q", limit)
	}
	cfg.RecurrenceLimit = n

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// LogLevel returns debug in development and info otherwise.
func (c *Config) LogLevel() slog.Level {
	if c.IsDev() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func parseWeekStart(v string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	}
	return 0, fmt.Errorf("WARDROBE_WEEK_START must be sunday or monday, got %q", v)
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
