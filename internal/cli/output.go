package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pfrederiksen/f1-schedule/internal/schedule"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	GeneratedAt     time.Time         `json:"generated_at"`
	ReferenceDate   string            `json:"reference_date"`
	Year            int               `json:"year"`
	NextRaceWeekend *string           `json:"next_race_weekend"`
	RaceCount       int               `json:"race_count"`
	Races           schedule.Schedule `json:"races"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	if result.RaceCount == 0 || result.NextRaceWeekend == nil {
		fmt.Fprintln(w, "No upcoming races.")
		return nil
	}

	fmt.Fprintf(w, "Next race weekend: %s\n", *result.NextRaceWeekend)

	for _, race := range result.Races {
		fmt.Fprintf(w, "\n%s (%d events):\n", strings.TrimSpace(race.City), len(race.Events))
		for _, evt := range race.Events {
			fmt.Fprintf(w, "  %s: %s %s (%s)\n",
				strings.TrimSpace(evt.Name),
				strings.TrimSpace(evt.Date),
				strings.TrimSpace(evt.Time),
				strings.TrimSpace(evt.Network))
		}
	}

	fmt.Fprintf(w, "\nTotal: %d races left as of %s\n", result.RaceCount, result.ReferenceDate)
	return nil
}
