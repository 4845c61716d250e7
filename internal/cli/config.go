package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // timezone lookups work in minimal containers

	"github.com/pfrederiksen/f1-schedule/internal/logger"
	"github.com/pfrederiksen/f1-schedule/internal/scraper"
)

const (
	DefaultTimezone = "America/Toronto"
	DefaultOutDir   = "dist"
	dateLayout      = "2006-01-02"
)

// Config holds the settings of one run
type Config struct {
	URL          string
	Year         int
	Date         string
	Timezone     string
	OutDir       string
	TemplatePath string
	Timeout      time.Duration
	DryRun       bool
	Format       string
	LogLevel     string
}

// DefaultConfig returns the flag defaults, taking F1_SCHEDULE_* environment
// variables into account
func DefaultConfig() Config {
	return Config{
		URL:          envOr("F1_SCHEDULE_URL", scraper.ScheduleURL),
		Year:         envInt("F1_SCHEDULE_YEAR", 0),
		Date:         os.Getenv("F1_SCHEDULE_DATE"),
		Timezone:     envOr("F1_SCHEDULE_TZ", DefaultTimezone),
		OutDir:       envOr("F1_SCHEDULE_OUT", DefaultOutDir),
		TemplatePath: os.Getenv("F1_SCHEDULE_TEMPLATE"),
		Timeout:      scraper.Timeout,
		Format:       string(FormatText),
		LogLevel:     envOr("F1_SCHEDULE_LOG_LEVEL", "info"),
	}
}

// settings are the validated, derived values of a Config
type settings struct {
	location  *time.Location
	reference time.Time
	year      int
	format    OutputFormat
	level     logger.Level
}

// resolve validates cfg and derives the reference day and season year.
// An unset year falls back to the reference day's year.
func (cfg Config) resolve(now time.Time) (*settings, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}

	reference := now.In(loc)
	if cfg.Date != "" {
		reference, err = time.ParseInLocation(dateLayout, strings.TrimSpace(cfg.Date), loc)
		if err != nil {
			return nil, fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", cfg.Date, err)
		}
	}

	year := cfg.Year
	if year == 0 {
		year = reference.Year()
	}
	if year < 1 || year > 9999 {
		return nil, fmt.Errorf("invalid --year: %d", cfg.Year)
	}

	format := OutputFormat(strings.ToLower(cfg.Format))
	if format != FormatText && format != FormatJSON {
		return nil, fmt.Errorf("invalid format: %s (must be 'text' or 'json')", cfg.Format)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("invalid --timeout: %s", cfg.Timeout)
	}

	return &settings{
		location:  loc,
		reference: reference,
		year:      year,
		format:    format,
		level:     level,
	}, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt returns def when key is unset or not a number
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}
