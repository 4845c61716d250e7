// Package calendar exports the upcoming race weekends as an iCalendar feed.
package calendar

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/pfrederiksen/f1-schedule/internal/schedule"
)

const (
	ProductID = "-//f1-schedule//f1-schedule//EN"
	Name      = "Formula One on TSN"

	// SessionLength is the assumed length of a timed session
	SessionLength = 2 * time.Hour
)

// sessionLayouts are tried against the normalized session time
var sessionLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"3 PM",
	"3PM",
	"15:04",
}

// GenerateICS builds a calendar with one VEVENT per session. Session times
// are read in loc; sessions without a readable time become all-day events.
func GenerateICS(races schedule.Schedule, year int, loc *time.Location, now time.Time) (string, error) {
	if loc == nil {
		loc = time.UTC
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetXWRCalName(Name)

	for _, race := range races {
		city := strings.TrimSpace(race.City)
		for _, evt := range race.Events {
			day, err := schedule.ParseDate(evt.Date, year, loc)
			if err != nil {
				return "", fmt.Errorf("race %q: %w", city, err)
			}

			name := strings.TrimSpace(evt.Name)
			vevent := cal.AddEvent(GenerateUID(city, name, evt.Date))
			vevent.SetDtStampTime(now.UTC())
			vevent.SetSummary(fmt.Sprintf("F1 %s - %s", city, name))
			vevent.SetLocation(city)
			if network := strings.TrimSpace(evt.Network); network != "" {
				vevent.SetDescription(fmt.Sprintf("Watch on %s", network))
			}

			if start, ok := sessionStart(day, evt.Time); ok {
				vevent.SetStartAt(start)
				vevent.SetEndAt(start.Add(SessionLength))
			} else {
				vevent.SetAllDayStartAt(day)
				vevent.SetAllDayEndAt(day.AddDate(0, 0, 1))
			}
		}
	}

	return cal.Serialize(ics.WithNewLineWindows), nil
}

// GenerateUID creates a deterministic event UID so feed readers update
// sessions in place across runs
func GenerateUID(city, name, date string) string {
	h := sha1.New()
	h.Write([]byte(city + "|" + name + "|" + strings.TrimSpace(date)))
	return fmt.Sprintf("%x@f1-schedule", h.Sum(nil))
}

// sessionStart combines day with a broadcast time such as "9:55 a.m. ET"
func sessionStart(day time.Time, text string) (time.Time, bool) {
	text = normalizeTime(text)
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range sessionLayouts {
		t, err := time.Parse(layout, text)
		if err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), true
		}
	}
	return time.Time{}, false
}

func normalizeTime(s string) string {
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, ".", "")
	fields := strings.Fields(s)
	if n := len(fields); n > 0 {
		switch fields[n-1] {
		case "ET", "EST", "EDT":
			fields = fields[:n-1]
		}
	}
	return strings.Join(fields, " ")
}
