package schedule

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order after the year has been appended to the
// cleaned date text. Weekdays are checked for syntax only.
var dateLayouts = []string{
	"Jan 2 2006",
	"January 2 2006",
	"Mon Jan 2 2006",
	"Mon January 2 2006",
	"Monday Jan 2 2006",
	"Monday January 2 2006",
}

// ParseDate completes a partial date such as "Mar 21" with year and returns
// midnight of that day in loc. It returns a *DateParseError when the text is
// not a valid calendar day in that year.
func ParseDate(dateText string, year int, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	cleaned := cleanDate(dateText)
	if cleaned == "" {
		return time.Time{}, &DateParseError{Text: dateText, Year: year}
	}

	full := cleaned + " " + strconv.Itoa(year)

	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, full, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, &DateParseError{Text: dateText, Year: year, Err: lastErr}
}

// cleanDate drops punctuation and collapses whitespace so "Sun., Mar. 21"
// reads as "Sun Mar 21"
func cleanDate(s string) string {
	s = strings.NewReplacer(".", " ", ",", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// startOfDay truncates t to midnight in its own location
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
