package schedule

import (
	"fmt"
	"time"
)

// TodayLabel is the label used when the next race weekend starts on the
// reference day itself. The reference instant is midnight, so a plain
// relative rendering would read "in a few seconds" here instead.
const TodayLabel = "today"

// SelectNext keeps the race groups with at least one event on or after the
// reference day and labels the first event of the first kept group relative
// to that day. Event dates are completed with year in ref's location.
//
// The returned label is nil when no group is left.
func SelectNext(races Schedule, ref time.Time, year int) (Schedule, *string, error) {
	day := startOfDay(ref)
	loc := ref.Location()

	upcoming := make(Schedule, 0, len(races))
	for _, race := range races {
		keep, err := hasUpcomingEvent(race, day, year, loc)
		if err != nil {
			return nil, nil, fmt.Errorf("race %q: %w", race.City, err)
		}
		if keep {
			upcoming = append(upcoming, race)
		}
	}

	if len(upcoming) == 0 {
		return upcoming, nil, nil
	}

	first, err := ParseDate(upcoming[0].Events[0].Date, year, loc)
	if err != nil {
		return nil, nil, err
	}

	label := TodayLabel
	if !first.Equal(day) {
		label = RelativeLabel(day, first)
	}

	return upcoming, &label, nil
}

// hasUpcomingEvent reports whether any event of race falls on or after day.
// Every event date is parsed so a corrupt date is never skipped silently.
func hasUpcomingEvent(race RaceGroup, day time.Time, year int, loc *time.Location) (bool, error) {
	upcoming := false
	for _, evt := range race.Events {
		date, err := ParseDate(evt.Date, year, loc)
		if err != nil {
			return false, err
		}
		if !date.Before(day) {
			upcoming = true
		}
	}
	return upcoming, nil
}
