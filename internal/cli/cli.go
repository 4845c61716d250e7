package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pfrederiksen/f1-schedule/internal/logger"
	"github.com/pfrederiksen/f1-schedule/internal/render"
	"github.com/pfrederiksen/f1-schedule/internal/schedule"
	"github.com/pfrederiksen/f1-schedule/internal/scraper"
	"github.com/pfrederiksen/f1-schedule/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version is reported by --version; set at build time
var Version = "dev"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "f1-schedule",
		Short: "Build the upcoming Formula One broadcast schedule",
		Long: `Downloads the Formula One broadcast schedule from TSN, drops the race
weekends that are already over and publishes the rest as a web page,
a JSON file and an iCalendar feed.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), time.Now())
		},
	}

	// Define flags
	flags := cmd.Flags()
	flags.StringVar(&cfg.URL, "url", cfg.URL, "Schedule page URL (env: F1_SCHEDULE_URL)")
	flags.IntVar(&cfg.Year, "year", cfg.Year, "Season year used to complete event dates; 0 uses the reference date's year (env: F1_SCHEDULE_YEAR)")
	flags.StringVar(&cfg.Date, "date", cfg.Date, "Reference date YYYY-MM-DD; empty means today (env: F1_SCHEDULE_DATE)")
	flags.StringVar(&cfg.Timezone, "timezone", cfg.Timezone, "IANA timezone of the schedule (env: F1_SCHEDULE_TZ)")
	flags.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Output directory (env: F1_SCHEDULE_OUT)")
	flags.StringVar(&cfg.TemplatePath, "template", cfg.TemplatePath, "Page template; empty uses the built-in one (env: F1_SCHEDULE_TEMPLATE)")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Timeout for downloading the schedule page")
	flags.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Print the upcoming races instead of writing files")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "Dry-run output format: text or json")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error (env: F1_SCHEDULE_LOG_LEVEL)")

	return cmd
}

// Run fetches, filters and publishes the schedule. Nothing is written unless
// every step before rendering succeeded.
func Run(ctx context.Context, cfg Config, stdout, stderr io.Writer, now time.Time) error {
	if ctx == nil {
		ctx = context.Background()
	}

	set, err := cfg.resolve(now)
	if err != nil {
		return err
	}

	logger.SetDefault(logger.New(set.level, stderr))

	logger.Info("Downloading HTML", logger.Fields{
		"url":     cfg.URL,
		"timeout": cfg.Timeout.String(),
	})

	fetchCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	start := time.Now()
	rows, err := scraper.New(scraper.WithURL(cfg.URL), scraper.WithTimeout(cfg.Timeout)).FetchRows(fetchCtx)
	logger.RecordTiming("fetch", time.Since(start))
	if err != nil {
		return fmt.Errorf("fetching schedule: %w", err)
	}

	logger.Debug("Got HTML", logger.Fields{"rows": len(rows)})

	races, err := schedule.Build(rows)
	if err != nil {
		return fmt.Errorf("building schedule: %w", err)
	}

	logger.Info("Found races", logger.Fields{
		"races":  len(races),
		"events": races.EventCount(),
	})

	upcoming, next, err := schedule.SelectNext(races, set.reference, set.year)
	if err != nil {
		return fmt.Errorf("selecting next race: %w", err)
	}

	logger.SetGauge("races.total", float64(len(races)))
	logger.SetGauge("races.remaining", float64(len(upcoming)))

	fields := logger.Fields{
		"races_left": len(upcoming),
		"reference":  set.reference.Format(dateLayout),
		"year":       set.year,
	}
	if next != nil {
		fields["next_race"] = *next
		fields["next_city"] = upcoming[0].City
	}
	logger.Info("Selected upcoming races", fields)

	if cfg.DryRun {
		result := &OutputResult{
			GeneratedAt:     now.UTC(),
			ReferenceDate:   set.reference.Format(dateLayout),
			Year:            set.year,
			NextRaceWeekend: next,
			RaceCount:       len(upcoming),
			Races:           upcoming,
		}
		if err := WriteOutput(stdout, result, set.format); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	start = time.Now()
	if err := publish(cfg, set, upcoming, next, now); err != nil {
		return err
	}
	logger.RecordTiming("render", time.Since(start))

	logger.Info("Done", logger.Fields{"out": cfg.OutDir})
	logger.Debug("Run metrics", logger.GetMetricsSnapshot())

	return nil
}

func publish(cfg Config, set *settings, races schedule.Schedule, next *string, now time.Time) error {
	store, err := storage.New(cfg.OutDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	gw, err := render.New(store, render.Options{
		TemplatePath: cfg.TemplatePath,
		Year:         set.year,
		Location:     set.location,
		Now:          func() time.Time { return now },
	})
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}

	logger.Info("Writing files", logger.Fields{"dir": store.Dir()})

	if err := gw.Render(races, next); err != nil {
		return fmt.Errorf("rendering site: %w", err)
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logger.Error("Run failed", nil, err)
		os.Exit(ExitError)
	}
}
